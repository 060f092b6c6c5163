package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Claretdelgado/bd-calvillo/pkg/aqua"
	"github.com/Claretdelgado/bd-calvillo/pkg/auth"
	"github.com/Claretdelgado/bd-calvillo/pkg/common"
	"github.com/Claretdelgado/bd-calvillo/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ReadingRequest struct {
	Tds       float64   `json:"tds"`
	Ph        float64   `json:"ph"`
	Oxygen    float64   `json:"oxygen"`
	Timestamp time.Time `json:"timestamp"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Tds":       z.Float64().Required(),
	"Ph":        z.Float64().Required(),
	"Oxygen":    z.Float64().Required(),
	"Timestamp": z.Time(),
})

func (rs *RestfulServer) SubmitReading(c *gin.Context) {
	var req ReadingRequest

	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if _, err := rs.Aqua.Reading.StoreReading(&models.SensorReading{
		Tds:       req.Tds,
		Ph:        req.Ph,
		Oxygen:    req.Oxygen,
		Timestamp: req.Timestamp,
	}); err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Failed to store sensor reading", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to store sensor reading")
		return
	}

	c.String(http.StatusOK, "sensor reading stored")
}

func (rs *RestfulServer) ListReadings(c *gin.Context) {
	readings, err := rs.Aqua.Reading.ListReadings()
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Failed to list sensor readings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sensor readings"})
		return
	}

	c.JSON(http.StatusOK, readings)
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var credentialsRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required().Min(1),
	"Password": z.String().Required().Min(1),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := credentialsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Aqua.Account.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, aqua.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"userId":  user.ID,
	})
}

func (rs *RestfulServer) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := credentialsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Aqua.Account.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, aqua.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	token, err := auth.Issue(user.ID, rs.JwtSecret, time.Now())
	if err != nil {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (rs *RestfulServer) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "access granted",
		"user_id": c.GetUint(ContextKeyUserID),
	})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
