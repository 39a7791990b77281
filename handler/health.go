package handler

import (
	"net/http"
	"time"

	"github.com/evgolabs/evpay/infra/response"
)

// Health reports service liveness
func Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
