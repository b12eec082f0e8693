package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
	"github.com/3-lines-studio/folio/internal/usecase"
)

const maxSubscribeBody = 4 << 10

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewsletterHandler accepts a JSON body {"email": "..."} or a form post
// with an email field.
type NewsletterHandler struct {
	service *usecase.NewsletterService
}

func NewNewsletterHandler(service *usecase.NewsletterService) http.Handler {
	return &NewsletterHandler{service: service}
}

func (h *NewsletterHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, maxSubscribeBody)

	var email string
	mediatype, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if mediatype == "application/json" {
		var body subscribeRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, subscribeResponse{Error: "invalid request body"})
			return
		}
		email = body.Email
	} else {
		email = req.FormValue("email")
	}

	sub, err := h.service.Subscribe(req.Context(), email)
	switch {
	case errors.Is(err, core.ErrInvalidEmail):
		writeJSON(w, http.StatusBadRequest, subscribeResponse{Error: err.Error()})
	case errors.Is(err, core.ErrAlreadySubscribed):
		writeJSON(w, http.StatusConflict, subscribeResponse{Error: err.Error()})
	case err != nil:
		logging.FromContext(req.Context()).Error("newsletter subscribe failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, subscribeResponse{Error: "subscription failed"})
	default:
		writeJSON(w, http.StatusCreated, subscribeResponse{Email: sub.Email})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
