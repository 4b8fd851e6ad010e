package handlers

import (
	"go.uber.org/zap"

	"github.com/aurora-studio/site-api/internal/auth"
	"github.com/aurora-studio/site-api/internal/contacts"
)

type Handler struct {
	Auth     *AuthHandler
	Contacts *ContactHandler
}

func NewHandler(authSvc *auth.Service, contactSvc *contacts.Service, issuer *auth.TokenIssuer, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(authSvc, issuer, log),
		Contacts: NewContactHandler(contactSvc, log),
	}
}
