package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/bytefifo/internal/metrics"
)

func TestCounters(t *testing.T) {
	m := metrics.New()
	m.Produced.Inc()
	m.Produced.Add(2)
	m.Suppressed.Inc()

	assert.Equal(t, uint64(3), metrics.Count(m.Produced))
	assert.Equal(t, uint64(1), metrics.Count(m.Suppressed))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Produced))
	assert.Equal(t, uint64(0), metrics.Count(m.Consumed))
}

func TestDepth(t *testing.T) {
	m := metrics.New()
	m.SetDepth("bytes", 12)
	m.SetDepth("bytes", 8)

	assert.Equal(t, float64(8), m.Depth("bytes"))
	assert.Equal(t, float64(0), m.Depth("frames"))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.Reported.Inc()
	assert.Equal(t, uint64(0), metrics.Count(b.Reported))
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.Produced.Add(5)

	running := true
	h := m.Handler(func() error {
		if !running {
			return errors.New("stopped")
		}
		return nil
	})

	code, body := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "bytefifo_produced_frames_total 5")

	code, _ = get(t, h, "/live")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, h, "/ready")
	assert.Equal(t, http.StatusOK, code)

	running = false
	code, _ = get(t, h, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
