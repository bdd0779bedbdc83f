package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"theater/pkg/config"

	"github.com/stretchr/testify/require"
)

const testAPIPrefix = "/api/v1"

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.APIVersionPrefix = testAPIPrefix
	return cfg
}

func decodeAPIResponse(t testing.TB, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be a JSON envelope")
	return resp
}
