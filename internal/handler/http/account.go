package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkhalidov/go-identity-service/internal/logger"
	"github.com/mkhalidov/go-identity-service/internal/service"
	"github.com/mkhalidov/go-identity-service/internal/store"
	"github.com/mkhalidov/go-identity-service/internal/utils"
	"github.com/mkhalidov/go-identity-service/models"
)

// register handles POST /api/account/register.
//
// On success the response is 200 with a confirmation body; no token is
// issued, registration does not log the user in. Validation failures
// (including a duplicate username) are returned as a structured error list
// with 400 and are never retried.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	_, err := h.services.AuthService.RegisterUser(ctx, user, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ValidationErrorResponse{
				Errors: []models.ValidationError{{
					Code:        "InvalidRegistrationData",
					Description: "Username, email, and password are required.",
				}},
			}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteJSON(w, models.ValidationErrorResponse{
				Errors: []models.ValidationError{{
					Code:        "DuplicateUserName",
					Description: fmt.Sprintf("Username '%s' is already taken.", req.Username),
				}},
			}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			status := statusFromError(err)
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{Result: "User created successfully"}, http.StatusOK)
}

// login handles POST /api/account/login.
//
// A successful credential check yields 200 with the signed bearer token.
// Every credential failure — unknown username, wrong password, empty
// inputs — produces an identical bare 401 so that the response does not
// reveal whether the username exists.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid username/password")
			w.WriteHeader(http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			status := statusFromError(err)
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
