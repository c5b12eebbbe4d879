package handler

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/types"
)

// Liveness probe
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, types.HealthResponse{Status: "ok"})
	}
}
