package aqua

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Claretdelgado/bd-calvillo/pkg/common"
	"github.com/Claretdelgado/bd-calvillo/pkg/models"
	_ "github.com/Claretdelgado/bd-calvillo/pkg/testing"
)

func TestRegister(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, aquaObj, _, _ := GetMockAquaWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	username := uuid.NewString()

	user, err := aquaObj.Account.Register(username, "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, username, user.Username)

	// the stored password is a bcrypt hash of the input, not the input
	var saved models.User
	err = aquaObj.Db.Conn.Where("username = ?", username).First(&saved).Error
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("hunter2")))
}

func TestRegisterDuplicate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, aquaObj, _, _ := GetMockAquaWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	username := uuid.NewString()

	_, err := aquaObj.Account.Register(username, "hunter2")
	require.NoError(t, err)

	_, err = aquaObj.Account.Register(username, "other-password")
	require.ErrorIs(t, err, ErrUserExists)

	var count int64
	err = aquaObj.Db.Conn.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, aquaObj, _, _ := GetMockAquaWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	username := uuid.NewString()

	registered, err := aquaObj.Account.Register(username, "hunter2")
	require.NoError(t, err)

	user, err := aquaObj.Account.Authenticate(username, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticate_FailureModesIndistinguishable(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, aquaObj, _, _ := GetMockAquaWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	username := uuid.NewString()

	_, err := aquaObj.Account.Register(username, "hunter2")
	require.NoError(t, err)

	_, wrongPassErr := aquaObj.Account.Authenticate(username, "not-the-password")
	_, noUserErr := aquaObj.Account.Authenticate(uuid.NewString(), "hunter2")

	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	require.ErrorIs(t, noUserErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), noUserErr.Error())
}
