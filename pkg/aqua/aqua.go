package aqua

import (
	"github.com/Claretdelgado/bd-calvillo/pkg/db"
	"github.com/Claretdelgado/bd-calvillo/pkg/models"
)

type IReading interface {
	StoreReading(input *models.SensorReading) (*models.SensorReading, error)
	ListReadings() ([]models.SensorReading, error)
}

type IAccount interface {
	Register(username string, password string) (*models.User, error)
	Authenticate(username string, password string) (*models.User, error)
}

type Aqua struct {
	Db      db.DB
	Reading IReading
	Account IAccount
}

type ServiceOpts struct {
	Reading IReading
	Account IAccount
}

func (a *Aqua) WithServices(opts ServiceOpts) *Aqua {
	if opts.Reading != nil {
		a.Reading = opts.Reading
	}
	if opts.Account != nil {
		a.Account = opts.Account
	}
	return a
}
