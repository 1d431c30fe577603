package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-coach-api/internal/config"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
	"github.com/vfg2006/revenue-coach-api/pkg/apiErrors"
)

func newTestSharer() sharing.Sharer {
	return sharing.NewService(&config.Config{
		Share: config.Share{Secret: "test-secret", TTL: time.Hour},
	})
}

func newRequest(method, target string, body []byte, params ...httprouter.Param) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if len(params) > 0 {
		req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params(params)))
	}
	return req
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}
