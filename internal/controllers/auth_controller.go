package controllers

import (
	"net/http"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/middleware"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

type AuthController struct {
	svc services.AuthService
}

func NewAuthController(svc services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// ----------------------------------------------------------------
// POST /api/v1/auth/register
// ----------------------------------------------------------------
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := c.svc.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondServiceError(w, err, "Failed to create account")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.SessionResponse{
		Email:       u.Email,
		DisplayName: u.DisplayName,
	})
}

// ----------------------------------------------------------------
// POST /api/v1/auth/login
// ----------------------------------------------------------------
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, ttl, err := c.svc.Login(r.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		respondServiceError(w, err, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{Token: token})
}

// ----------------------------------------------------------------
// POST /api/v1/auth/logout
// ----------------------------------------------------------------
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Logged out"})
}

// ----------------------------------------------------------------
// GET /api/v1/me
// ----------------------------------------------------------------
func (c *AuthController) MeHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SessionResponse{
		Email:       sess.Email,
		DisplayName: sess.DisplayName,
	})
}
