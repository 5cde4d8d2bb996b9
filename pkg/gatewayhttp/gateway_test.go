package gatewayhttp_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reddit-archive/activity-service/pkg/gatewayhttp"
)

// healthyService is a minimal double for the gateway's activityService
// interface, avoiding a dependency on the real storeclient/gomock
// machinery for what is a pure HTTP-adaptation test.
type healthyService struct {
	err error

	recordedContextID string
	recordedVisitorID  string
	recordCalls        int
}

func (s *healthyService) IsHealthy(context.Context) error {
	return s.err
}

func (s *healthyService) RecordActivity(_ context.Context, contextID, visitorID string) error {
	s.recordCalls++
	s.recordedContextID = contextID
	s.recordedVisitorID = visitorID
	return nil
}

func TestGatewayHealthOK(t *testing.T) {
	svc := &healthyService{}
	gw := gatewayhttp.NewGateway(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	gw.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestGatewayHealthFailure(t *testing.T) {
	svc := &healthyService{err: errors.New("store unreachable")}
	gw := gatewayhttp.NewGateway(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	gw.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGatewayPixelRecordsAndAnswersNoContent(t *testing.T) {
	// remote_addr="1.2.3.4", user_agent="Mozilla/5.0" -> visitor id
	// 6abbd3bc1a661ad396626b8c77b2ba6e52943782.
	svc := &healthyService{}
	gw := gatewayhttp.NewGateway(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/context.png", nil)
	req.RemoteAddr = "1.2.3.4:54321"
	req.Header.Set("User-Agent", "Mozilla/5.0")
	rec := httptest.NewRecorder()
	gw.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 1, svc.recordCalls)
	require.Equal(t, "context", svc.recordedContextID)
	require.Equal(t, "6abbd3bc1a661ad396626b8c77b2ba6e52943782", svc.recordedVisitorID)
	require.Equal(t, "no-cache, max-age=0", rec.Header().Get("Cache-Control"))
	require.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	require.Equal(t, "Thu, 01 Jan 1970 00:00:00 GMT", rec.Header().Get("Expires"))
}

func TestGatewayPixelDefaultsMissingUserAgentToEmpty(t *testing.T) {
	// remote_addr="1.2.3.4", no user agent -> visitor id is the SHA-1
	// of "1.2.3.4" alone.
	svc := &healthyService{}
	gw := gatewayhttp.NewGateway(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/context.png", nil)
	req.RemoteAddr = "1.2.3.4:54321"
	req.Header.Del("User-Agent")
	rec := httptest.NewRecorder()
	gw.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "09c35807ba47a82592ef88e5d6304ea699b8cbe2", svc.recordedVisitorID)
}

func TestGatewayPixelRejectsOverlongContextID(t *testing.T) {
	// A context id the route regex can't match falls through to a
	// 404, never reaching the handler.
	svc := &healthyService{}
	gw := gatewayhttp.NewGateway(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/"+strings.Repeat("a", 41)+".png", nil)
	req.RemoteAddr = "1.2.3.4:1"
	rec := httptest.NewRecorder()
	gw.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, svc.recordCalls)
}
