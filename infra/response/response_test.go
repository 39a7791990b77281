package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, 201, "Created", map[string]any{"id": "cs_test_1"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 201, resp.Code)
	assert.Equal(t, "Created", resp.Message)
	assert.Equal(t, "cs_test_1", resp.Data.(map[string]any)["id"])
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, 400, "Invalid request", assert.AnError)

	assert.Equal(t, 400, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request", resp.Message)
	assert.Equal(t, assert.AnError.Error(), resp.Error)
}

func TestError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, 500, "Unexpected error", nil)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
}

func TestProviderError(t *testing.T) {
	rec := httptest.NewRecorder()

	ProviderError(rec, 400, "Unknown payment provider", "paypal", assert.AnError)

	assert.Equal(t, 400, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "paypal", resp.Provider)
}
