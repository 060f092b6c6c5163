package db

import (
	"fmt"
	"os"

	constant "github.com/Claretdelgado/bd-calvillo/pkg/common"
	"github.com/Claretdelgado/bd-calvillo/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DB struct {
	Conn *gorm.DB
}

// New opens the database behind dialector, runs migrations and returns an
// explicit handle. Callers own the handle and pass it into server
// construction; there is no process-wide instance.
func New(dialector gorm.Dialector) (*DB, error) {
	var logger = constant.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	instance := &DB{Conn: conn}

	err = instance.Conn.AutoMigrate(&models.SensorReading{}, &models.User{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
	}

	return instance, nil
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyAquaDbPath); !found {
		dbPath = "bd-calvillo.db"
	}
	return sqlite.Open(dbPath)
}

// UseMemorySqliteDialector opens a uniquely named shared in-memory
// database, so each call gets an isolated store while gorm's pool still
// sees a single database.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}
