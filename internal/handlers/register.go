package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pzaremba/book-library-api/internal/logger"
	"github.com/pzaremba/book-library-api/internal/models"
	"github.com/pzaremba/book-library-api/internal/services"
	"github.com/pzaremba/book-library-api/internal/validation"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with a unique username and email. The password is hashed before storing; a token for the new user is returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserInput true "Registration payload"
// @Success 201 {object} handlers.TokenResponse "User registered, token issued"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate username or email"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.UserInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		v := validation.New()
		models.ValidateUserInput(v, in)
		if !v.Valid() {
			respondValidation(w, v.Errors)
			return
		}

		token, err := svc.Register(r.Context(), in.Username, in.Password, in.Email)
		if err != nil {
			var conflict *services.ConflictError
			if errors.As(err, &conflict) {
				respondError(w, http.StatusConflict, conflict.Error())
				return
			}
			logger.Log.Errorw("failed to register user", "err", err)
			respondInternal(w)
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Success: true, Token: token})
	}
}
