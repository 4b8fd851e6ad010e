package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aurora-studio/site-api/internal/auth"
	"github.com/aurora-studio/site-api/internal/httpx"
	"github.com/aurora-studio/site-api/internal/models"
)

type AuthHandler struct {
	svc    *auth.Service
	issuer *auth.TokenIssuer
	log    *zap.Logger
}

func NewAuthHandler(svc *auth.Service, issuer *auth.TokenIssuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, issuer: issuer, log: log}
}

// ----------- Request/Response DTOs -------------

type registerReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResp struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type loginResp struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// -------------- REGISTER ----------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := httpx.Decode(w, r, &req); err != nil {
		return
	}

	user, err := h.svc.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, userResp{
		Message: "User registered successfully.",
		User:    user,
	})
}

// -------------- LOGIN ------------------------

// Login returns the user plus a signed token carrying their role. Admin
// routes accept only that token; nothing the client claims about itself is
// trusted.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.Decode(w, r, &req); err != nil {
		return
	}

	user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	token, err := h.issuer.Mint(user)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, loginResp{
		Message: "Login successful.",
		User:    user,
		Token:   token,
	})
}
