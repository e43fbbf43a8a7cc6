package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/shopverse/storefront/internal/api/middleware"
)

func CreateTestRequestWithSession(method, target string, body io.Reader, session string, pathParams map[string]string) *http.Request {
	req := CreateTestRequest(method, target, body, pathParams)
	req.Header.Set("X-Session-ID", session)

	return req
}

func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
