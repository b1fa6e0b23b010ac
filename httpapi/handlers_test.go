package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasight/tablecast"
	"github.com/datasight/tablecast/configs"
	"github.com/datasight/tablecast/frame"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))

	cfg := &configs.Config{
		Port:         "8080",
		GinMode:      gin.TestMode,
		AllowOrigins: []string{"*"},
	}
	return NewRouter(cfg, log)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func rampRows(columns []string, n int) frame.Rows {
	rows := make(frame.Rows, n)
	for i := range rows {
		row := make(map[string]any, len(columns))
		for j, col := range columns {
			row[col] = float64(i * (j + 2))
		}
		rows[i] = row
	}
	return rows
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest(http.MethodGet, "/api/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestForecastSingle(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/forecast/single", ForecastRequest{
		Rows:        rampRows([]string{"sales"}, 20),
		ValueColumn: "sales",
		Periods:     7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res tablecast.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.True(t, res.Success)
	assert.Equal(t, "sales", res.Column)
	assert.Equal(t, 7, res.Periods)
	assert.Len(t, res.ForecastData, 7)
	assert.Len(t, res.HistoricalData, 20)
}

func TestForecastSingleFailures(t *testing.T) {
	router := newTestRouter()

	testData := map[string]struct {
		req ForecastRequest
	}{
		"missing column": {
			req: ForecastRequest{
				Rows:        rampRows([]string{"sales"}, 20),
				ValueColumn: "revenue",
			},
		},
		"insufficient data": {
			req: ForecastRequest{
				Rows:        rampRows([]string{"sales"}, 3),
				ValueColumn: "sales",
			},
		},
		"unknown method": {
			req: ForecastRequest{
				Rows:        rampRows([]string{"sales"}, 20),
				ValueColumn: "sales",
				Method:      "arima",
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			w := postJSON(t, router, "/api/forecast/single", td.req)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var res failureResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestForecastSingleMalformedBody(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest(http.MethodPost, "/api/forecast/single", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestForecastMulti(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/forecast/multi", MultiForecastRequest{
		Rows:    rampRows([]string{"a", "b"}, 20),
		Columns: []string{"a", "missing", "b"},
		Periods: 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res tablecast.MultiResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.ColumnsProcessed)
	require.Len(t, res.Forecasts, 2)
	assert.Equal(t, "a", res.Forecasts[0].Column)
	assert.Equal(t, "b", res.Forecasts[1].Column)
}

func TestForecastMultiNoForecastableColumns(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/forecast/multi", MultiForecastRequest{
		Rows:    rampRows([]string{"a"}, 20),
		Columns: []string{"x", "y"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var res failureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
}
