// Package httpapi exposes the forecasting engine over HTTP. It owns only
// request decoding and response writing; all computation happens in the
// engine, one independent pipeline per request.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/datasight/tablecast"
	"github.com/datasight/tablecast/frame"
)

// ForecastRequest is the single-series request body.
type ForecastRequest struct {
	Rows        frame.Rows `json:"rows"`
	ValueColumn string     `json:"value_column"`
	DateColumn  string     `json:"date_column"`
	Periods     int        `json:"periods"`
	Method      string     `json:"method"`
}

// MultiForecastRequest is the multi-series request body.
type MultiForecastRequest struct {
	Rows    frame.Rows `json:"rows"`
	Columns []string   `json:"columns"`
	Periods int        `json:"periods"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ForecastHandler serves the forecasting routes.
type ForecastHandler struct {
	log *logrus.Logger
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(log *logrus.Logger) *ForecastHandler {
	return &ForecastHandler{log: log}
}

// Single handles POST /api/forecast/single.
func (h *ForecastHandler) Single(c *gin.Context) {
	var req ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, err)
		return
	}

	f, err := tablecast.New(&tablecast.Options{
		Method:     tablecast.Method(req.Method),
		Periods:    req.Periods,
		DateColumn: req.DateColumn,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := f.Forecast(req.Rows, req.ValueColumn)
	if err != nil {
		h.fail(c, err)
		return
	}
	writeResult(c, res)
}

// Multi handles POST /api/forecast/multi.
func (h *ForecastHandler) Multi(c *gin.Context) {
	var req MultiForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, err)
		return
	}

	f, err := tablecast.New(&tablecast.Options{Periods: req.Periods})
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := f.ForecastColumns(req.Rows, req.Columns)
	if err != nil {
		h.fail(c, err)
		return
	}
	writeResult(c, res)
}

// HealthCheck handles GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *ForecastHandler) fail(c *gin.Context, err error) {
	h.log.WithError(err).Warn("forecast request failed")
	writeJSON(c, http.StatusBadRequest, failureResponse{Error: err.Error()})
}

type jsonMarshaler interface {
	JSON() ([]byte, error)
}

func writeResult(c *gin.Context, res jsonMarshaler) {
	b, err := res.JSON()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

func writeJSON(c *gin.Context, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(status, "application/json; charset=utf-8", b)
}
