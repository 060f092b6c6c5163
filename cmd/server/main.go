package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Claretdelgado/bd-calvillo/pkg/aqua"
	"github.com/Claretdelgado/bd-calvillo/pkg/common"
	"github.com/Claretdelgado/bd-calvillo/pkg/db"
	aquaHttp "github.com/Claretdelgado/bd-calvillo/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	aquaDbType := os.Getenv(common.EnvKeyAquaDBType)
	switch aquaDbType {
	case "file":
		dbInstance, err = db.New(db.UseSqliteDialector())
	case "memory":
		dbInstance, err = db.New(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown AQUA_DB_TYPE: " + aquaDbType)
	}
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyAquaJwtSecret))
	if jwtSecret == "" {
		log.Fatal("AQUA_JWT_SECRET is required, set it in .env")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAquaHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":5000"
	}

	logger := common.GetLogger()

	aquaCore := &aqua.Aqua{
		Db: *dbInstance,
	}
	aquaCore.WithServices(aqua.ServiceOpts{
		Reading: aquaCore.GetIReading(),
		Account: aquaCore.GetIAccount(),
	})

	rs := &aquaHttp.RestfulServer{
		Server:    gin.Default(),
		Aqua:      aquaCore,
		JwtSecret: []byte(jwtSecret),
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
