package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/internal/service/auth"
	"github.com/lifeos/lifeos-backend/internal/service/user"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

type profileService interface {
	Me(ctx context.Context) (*domain.User, error)
	UpdateLabels(ctx context.Context, input user.UpdateLabelsInput) (*domain.User, error)
	SetInitialBalance(ctx context.Context, input user.SetInitialBalanceInput) (*domain.User, error)
}

// AuthHandler serves registration, login and profile endpoints.
type AuthHandler struct {
	svc     authService
	profile profileService
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, profile profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, profile: profile, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type labelsRequest struct {
	Labels []string `json:"labels"`
}

type balanceRequest struct {
	InitialBalance *amountInput `json:"initial_balance"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		User:        toUserResponse(result.User),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.profile.Me(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateLabels handles PUT /auth/labels.
func (h *AuthHandler) UpdateLabels(w http.ResponseWriter, r *http.Request) {
	var req labelsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.profile.UpdateLabels(r.Context(), user.UpdateLabelsInput{Labels: req.Labels})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetInitialBalance handles PUT /auth/balance. The balance can be set once.
func (h *AuthHandler) SetInitialBalance(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.InitialBalance == nil || req.InitialBalance.Raw == "" {
		h.handleError(w, r, domain.NewValidationError("initial_balance", "required"))
		return
	}
	amount, err := decimal.NewFromString(req.InitialBalance.Raw)
	if err != nil {
		h.handleError(w, r, domain.NewValidationError("initial_balance", "must be a number"))
		return
	}

	u, err := h.profile.SetInitialBalance(r.Context(), user.SetInitialBalanceInput{Amount: amount})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, auth.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username already taken")
	case errors.Is(err, domain.ErrAlreadySet):
		writeError(w, http.StatusConflict, "initial balance already set")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		handleError(h.log, w, r, err)
	}
}
