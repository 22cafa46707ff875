package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pbrandao-dev/bookshelf-api/internal/auth"
	"github.com/pbrandao-dev/bookshelf-api/internal/models"
	"github.com/pbrandao-dev/bookshelf-api/internal/services"
	"github.com/pbrandao-dev/bookshelf-api/internal/validator"
)

// AuthHandler handles registration, login and profile lookup.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.JWTManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration and issues the first token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := validator.New()
	models.ValidateRegistration(v, payload.Username, payload.Email, payload.Password)
	if !v.Valid() {
		respondValidationErrors(w, v.Errors)
		return
	}

	user, err := h.users.Register(r.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			respondError(w, http.StatusConflict, "a user with this email or username already exists")
			return
		}
		respondServerError(w, r, err)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Email, user.Username)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Login authenticates a user and issues a fresh token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("email", payload.Email).Msg("failed authentication attempt")
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondServerError(w, r, err)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Email, user.Username)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Me returns the profile of the user named by the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "access token required")
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
