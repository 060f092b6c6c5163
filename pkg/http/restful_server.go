package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Claretdelgado/bd-calvillo/pkg/aqua"
)

type RestfulServer struct {
	Server    *gin.Engine
	Aqua      *aqua.Aqua
	JwtSecret []byte
}

func (rs *RestfulServer) Setup() {
	// probes and dashboards post from anywhere, keep CORS wide open
	rs.Server.Use(cors.Default())

	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/submit", rs.SubmitReading)
	rs.Server.GET("/sensors", rs.ListReadings)

	rs.Server.POST("/register", rs.Register)
	rs.Server.POST("/login", rs.Login)

	protected := rs.Server.Group("/")
	protected.Use(rs.TokenGate())
	protected.GET("/protected", rs.Protected)
}
