package aqua

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Claretdelgado/bd-calvillo/pkg/aqua/mocks"
	"github.com/Claretdelgado/bd-calvillo/pkg/db"
)

func GetMockAquaWithMemorySqliteDialector(t *testing.T, useMockIReading, useMockIAccount bool) (
	*gomock.Controller,
	*Aqua,
	*mocks.MockIReading,
	*mocks.MockIAccount,
) {
	ctrl := gomock.NewController(t)

	mockIReading := mocks.NewMockIReading(ctrl)
	mockIAccount := mocks.NewMockIAccount(ctrl)

	dbInstance, err := db.New(db.UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	aquaInstance := &Aqua{Db: *dbInstance}

	readingService := aquaInstance.GetIReading()
	if useMockIReading {
		readingService = mockIReading
	}

	accountService := aquaInstance.GetIAccount()
	if useMockIAccount {
		accountService = mockIAccount
	}

	aquaInstance.WithServices(ServiceOpts{
		Reading: readingService,
		Account: accountService,
	})

	return ctrl, aquaInstance, mockIReading, mockIAccount
}
