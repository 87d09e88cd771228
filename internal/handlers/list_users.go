package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context, role *string) ([]models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Description Lists users, optionally filtered by role.
// @Tags users
// @Produce json
// @Param role query string false "Filter by role (investor, admin)"
// @Success 200 {array} models.UserDB
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var role *string
		if v := r.URL.Query().Get("role"); v != "" {
			role = &v
		}

		users, err := svc.List(ctx, role)
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// RegisterListUsersHandler registers routes for listing users
func RegisterListUsersHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/users", h)
}
