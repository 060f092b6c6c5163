package aqua

import (
	"errors"

	"github.com/Claretdelgado/bd-calvillo/pkg/common"
	"github.com/Claretdelgado/bd-calvillo/pkg/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUserExists is returned when registering a username that is
	// already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so login failures stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (a *Aqua) register(username string, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryAquaAccount),
	)

	var existing models.User
	err := a.Db.Conn.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := a.Db.Conn.Create(&user).Error; err != nil {
		// the unique index can still trip on a concurrent register
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	logger.Info("Registered user", zap.String("username", username), zap.Uint("user_id", user.ID))

	return &user, nil
}

func (a *Aqua) authenticate(username string, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryAquaAccount),
	)

	var user models.User
	if err := a.Db.Conn.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	logger.Info("Authenticated user", zap.String("username", username), zap.Uint("user_id", user.ID))

	return &user, nil
}

type IAccountImpl struct {
	aqua *Aqua
}

func (ia *IAccountImpl) Register(username string, password string) (*models.User, error) {
	return ia.aqua.register(username, password)
}

func (ia *IAccountImpl) Authenticate(username string, password string) (*models.User, error) {
	return ia.aqua.authenticate(username, password)
}

func (a *Aqua) GetIAccount() IAccount {
	return &IAccountImpl{aqua: a}
}
