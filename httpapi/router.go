package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/datasight/tablecast/configs"
)

// NewRouter builds the gin engine with the forecasting routes, CORS, and
// request logging.
func NewRouter(cfg *configs.Config, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	forecastHandler := NewForecastHandler(log)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		forecast := api.Group("/forecast")
		{
			forecast.POST("/single", forecastHandler.Single)
			forecast.POST("/multi", forecastHandler.Multi)
		}
	}

	return r
}

// RequestLogger logs one structured line per request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
