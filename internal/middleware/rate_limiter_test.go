package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	handler := NewIPRateLimiter(2, 4).Middleware()(okHandler)

	for i := 0; i < 4; i++ {
		rec := serve(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}

	rec := serve(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := NewIPRateLimiter(5, 5).Middleware()(okHandler)

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 5; i++ {
			rec := serve(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for IP %s should succeed", i, ip)
		}
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := NewIPRateLimiter(5, 10).Middleware()(okHandler)

	var (
		wg            sync.WaitGroup
		mu            sync.Mutex
		successCount  int
		rateLimitHits int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serve(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitHits++
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, successCount, 0)
	assert.Greater(t, rateLimitHits, 0)
	assert.Equal(t, 20, successCount+rateLimitHits)
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(5, 10)
	now := time.Now()
	limiter.now = func() time.Time { return now.Add(-5 * time.Minute) }
	limiter.limiterFor("old_ip")
	limiter.now = func() time.Time { return now }
	limiter.limiterFor("new_ip")

	limiter.cleanup()

	assert.Equal(t, 1, limiter.size())
	_, oldExists := limiter.visitors["old_ip"]
	assert.False(t, oldExists)
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	limiter := NewIPRateLimiter(5, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- limiter.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_IgnoresSpoofedForwardingHeaders(t *testing.T) {
	e := echo.New()
	extractor, err := NewIPExtractor(nil)
	require.NoError(t, err)
	e.IPExtractor = extractor
	handler := NewIPRateLimiter(1, 2).Middleware()(okHandler)

	codes := make([]int, 0, 4)
	for _, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3", "4.4.4.4"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		req.Header.Set("X-Forwarded-For", spoofed)
		req.Header.Set("X-Real-IP", spoofed)
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestNewIPExtractor(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "no trusted proxies uses socket address",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1", "X-Real-IP": "192.168.1.2"},
			remoteAddr: "198.51.100.7:12345",
			expected:   "198.51.100.7",
		},
		{
			name:       "trusted proxy forwards client address",
			trusted:    []string{"10.0.0.0/8"},
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.20"},
			remoteAddr: "10.1.2.3:12345",
			expected:   "198.51.100.20",
		},
		{
			name:       "untrusted peer cannot inject a hop",
			trusted:    []string{"10.0.0.0/8"},
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.20"},
			remoteAddr: "203.0.113.5:12345",
			expected:   "203.0.113.5",
		},
		{
			name:       "spoofed left-most hop behind trusted proxy",
			trusted:    []string{"10.0.0.0/8"},
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, 198.51.100.20"},
			remoteAddr: "10.1.2.3:12345",
			expected:   "198.51.100.20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := NewIPExtractor(tt.trusted)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.expected, extractor(req))
		})
	}
}

func TestNewIPExtractor_InvalidRange(t *testing.T) {
	_, err := NewIPExtractor([]string{"not-a-cidr"})

	assert.ErrorContains(t, err, "not-a-cidr")
}
