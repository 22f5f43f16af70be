package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carwash-backend/internal/health"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatusChecker struct {
	status health.HealthStatus
}

func (f *fakeStatusChecker) CheckBasic() health.HealthStatus {
	return f.status
}

func TestBasicHealth(t *testing.T) {
	h := NewHealthHandler(&fakeStatusChecker{})

	rec := httptest.NewRecorder()
	h.BasicHealth(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestReadinessHealthStatuses(t *testing.T) {
	cases := []struct {
		status   string
		wantCode int
	}{
		{"healthy", http.StatusOK},
		{"degraded", http.StatusOK},
		{"unhealthy", http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			h := NewHealthHandler(&fakeStatusChecker{status: health.HealthStatus{Status: tc.status}})

			rec := httptest.NewRecorder()
			h.ReadinessHealth(rec, httptest.NewRequest("GET", "/health/ready", nil))
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestDetailedHealthCarriesDependencyDetail(t *testing.T) {
	checker := &fakeStatusChecker{status: health.HealthStatus{
		Status:   "degraded",
		Database: health.DatabaseHealth{Status: "healthy", ResponseTime: 3},
		Redis:    health.RedisHealth{Status: "unavailable"},
	}}
	h := NewHealthHandler(checker)

	rec := httptest.NewRecorder()
	h.DetailedHealth(rec, httptest.NewRequest("GET", "/health/detailed", nil))

	// Detail endpoint stays 200 even when degraded
	assert.Equal(t, http.StatusOK, rec.Code)

	var body health.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "healthy", body.Database.Status)
	assert.Equal(t, "unavailable", body.Redis.Status)
}
