package http

import (
	"net/http"

	"github.com/mkhalidov/go-identity-service/internal/logger"
	"github.com/mkhalidov/go-identity-service/internal/utils"
)

// getValues handles GET /api/values, the sample protected resource.
// The auth middleware has already validated the bearer token and stored the
// caller's user id in the context before this handler runs.
func (h *Handler) getValues(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in context on a protected route")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	log.Debug().Int64("id", userID).Msg("serving values")

	utils.WriteJSON(w, []string{"value1", "value2"}, http.StatusOK)
}
