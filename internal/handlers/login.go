package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserInput true "Login payload, email ignored"
// @Success 200 {object} handlers.TokenResponse "Token issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.UserInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.Login(r.Context(), in.Username, in.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				respondError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("failed to login user", "err", err)
				respondInternal(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Success: true, Token: token})
	}
}
