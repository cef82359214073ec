package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestLoggerTestSuite struct {
	suite.Suite
	echo *echo.Echo
	buf  *bytes.Buffer
}

func TestRequestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestLoggerTestSuite))
}

func (s *RequestLoggerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
	s.buf = &bytes.Buffer{}
}

func (s *RequestLoggerTestSuite) logged() map[string]any {
	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &entry))
	return entry
}

func (s *RequestLoggerTestSuite) TestRequestLogger_Success() {
	logger := slog.New(slog.NewJSONHandler(s.buf, nil))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-1")

	err := RequestLogger(logger)(okHandler)(c)

	s.NoError(err)
	entry := s.logged()
	s.Equal("INFO", entry["level"])
	s.Equal("request completed", entry["msg"])
	s.Equal("trace-1", entry["trace_id"])
	s.Equal("GET", entry["method"])
	s.Equal("/api/v1/departments", entry["path"])
	s.EqualValues(http.StatusOK, entry["status"])
}

func (s *RequestLoggerTestSuite) TestRequestLogger_ErrorIsHandledBeforeLogging() {
	logger := slog.New(slog.NewJSONHandler(s.buf, nil))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := RequestLogger(logger)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad input")
	})(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	entry := s.logged()
	s.Equal("WARN", entry["level"])
	s.EqualValues(http.StatusBadRequest, entry["status"])
}
