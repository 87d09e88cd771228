package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/driveshare-capital/backend/internal/logger"
	"github.com/driveshare-capital/backend/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, name, email, role string) (*models.UserDB, bool, error)
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// required: true
	// default: Ada Investor
	Name string `json:"name"`

	// Email, unique per account
	// required: true
	// default: ada@example.com
	Email string `json:"email"`

	// Role, investor or admin
	// default: investor
	Role string `json:"role"`
}

// CreateUserResponse represents a successful user creation response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Identifier of the new or existing user
	ID string `json:"id"`

	// Set to "exists" when the email was already registered
	Message string `json:"message,omitempty"`
}

// NewCreateUserHandler returns an HTTP handler that upserts a user by email.
// @Summary Create user
// @Description Creates a user, or returns the existing one when the email is already registered. The wallet is provisioned on first creation.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "Create User Request"
// @Success 201 {object} handlers.CreateUserResponse "User created"
// @Success 200 {object} handlers.CreateUserResponse "User already existed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid name, email or role"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	validRoles := map[string]struct{}{
		models.RoleInvestor: {},
		models.RoleAdmin:    {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create user request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" {
			logger.Log.Warnw("missing user name")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Name is required"})
			return
		}
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			logger.Log.Warnw("invalid user email", "email", req.Email)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid email"})
			return
		}
		if req.Role == "" {
			req.Role = models.RoleInvestor
		}
		if _, ok := validRoles[req.Role]; !ok {
			logger.Log.Warnw("invalid user role", "role", req.Role)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid role"})
			return
		}

		user, created, err := svc.Create(ctx, req.Name, req.Email, req.Role)
		if err != nil {
			logger.Log.Errorw("failed to create user", "email", req.Email, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp := CreateUserResponse{ID: user.UserID.String()}
		if created {
			w.WriteHeader(http.StatusCreated)
		} else {
			resp.Message = "exists"
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(resp)
	}
}

// RegisterCreateUserHandler registers routes for creating users
func RegisterCreateUserHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/users", h)
}
