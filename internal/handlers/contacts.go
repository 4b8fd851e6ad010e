package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aurora-studio/site-api/internal/contacts"
	"github.com/aurora-studio/site-api/internal/httpx"
	"github.com/aurora-studio/site-api/internal/models"
)

type ContactHandler struct {
	svc *contacts.Service
	log *zap.Logger
}

func NewContactHandler(svc *contacts.Service, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

// ---------------------- SUBMIT ----------------------

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FullName        string  `json:"full_name"`
		Email           string  `json:"email"`
		ServiceInterest *string `json:"service_interest"`
		Message         string  `json:"message"`
	}

	if err := httpx.Decode(w, r, &body); err != nil {
		return
	}

	c, err := h.svc.Submit(r.Context(), body.FullName, body.Email, body.ServiceInterest, body.Message)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Message sent successfully.",
		"contactId": c.ID,
	})
}

// ---------------------- LIST ----------------------

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// ---------------------- GET ONE ----------------------

func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, c)
}

// ---------------------- RENAME ----------------------

func (h *ContactHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)

	var body struct {
		FullName string `json:"full_name"`
	}

	if err := httpx.Decode(w, r, &body); err != nil {
		return
	}

	c, err := h.svc.Rename(r.Context(), id, body.FullName)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, struct {
		Message string          `json:"message"`
		Contact *models.Contact `json:"contact"`
	}{
		Message: "Contact name updated successfully.",
		Contact: c,
	})
}

// ---------------------- DELETE ----------------------

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := urlID(r)

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Contact message deleted successfully.",
		"deletedId": id,
	})
}

// urlID pulls the {id} route param. A non-numeric id parses to 0, which no
// row ever has, so it falls through to not-found.
func urlID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}
