package aqua

import (
	"time"

	"github.com/Claretdelgado/bd-calvillo/pkg/common"
	"github.com/Claretdelgado/bd-calvillo/pkg/models"
	"go.uber.org/zap"
)

func (a *Aqua) storeReading(input *models.SensorReading) (*models.SensorReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryAquaReading),
	)

	reading := models.SensorReading{
		Tds:       input.Tds,
		Ph:        input.Ph,
		Oxygen:    input.Oxygen,
		Timestamp: input.Timestamp,
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	logger.Info("Received sensor reading", zap.Reflect("reading", reading))

	if err := a.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Stored sensor reading", zap.Reflect("reading", reading))

	return &reading, nil
}

func (a *Aqua) listReadings() ([]models.SensorReading, error) {
	readings := []models.SensorReading{}
	err := a.Db.Conn.Find(&readings).Error
	return readings, err
}

type IReadingImpl struct {
	aqua *Aqua
}

func (ir *IReadingImpl) StoreReading(input *models.SensorReading) (*models.SensorReading, error) {
	return ir.aqua.storeReading(input)
}

func (ir *IReadingImpl) ListReadings() ([]models.SensorReading, error) {
	return ir.aqua.listReadings()
}

func (a *Aqua) GetIReading() IReading {
	return &IReadingImpl{aqua: a}
}
