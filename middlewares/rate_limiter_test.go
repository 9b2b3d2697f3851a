package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomRate(t *testing.T) {
	cases := []struct {
		in     string
		limit  int64
		period time.Duration
	}{
		{"10-2m", 10, 2 * time.Minute},
		{"5-1h", 5, time.Hour},
		{"20-10s", 20, 10 * time.Second},
	}

	for _, tc := range cases {
		rate, err := ParseCustomRate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.limit, rate.Limit)
		assert.Equal(t, tc.period, rate.Period)
	}

	for _, bad := range []string{"", "10", "10-2d", "x-2m", "10-xm"} {
		_, err := ParseCustomRate(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewRateLimiterEnforcesLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No REDIS_URL in tests, so the in-memory store is used.
	r := gin.New()
	r.POST("/limited", NewRateLimiter("2-1m", "limitedRouteTest"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	status := func() int {
		req, _ := http.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, status())
	assert.Equal(t, http.StatusOK, status())
	assert.Equal(t, http.StatusTooManyRequests, status())
}

func TestNewRateLimiterInvalidRatePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/open", NewRateLimiter("bogus", "openRouteTest"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest(http.MethodPost, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
