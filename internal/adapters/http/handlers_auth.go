package http

import (
	"net/http"

	"github.com/rentmy/rentmy-api/internal/application"
)

// Auth endpoints answer with the {success, token, errors} envelope at 200/400
// and nothing else. Expected failures arrive pre-folded into the result by the
// application layer; an error return here means the store itself failed.

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeAuthResult(w, application.InvalidPayloadResult())
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}
	writeAuthResult(w, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeAuthResult(w, application.InvalidPayloadResult())
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	writeAuthResult(w, res)
}

func writeAuthResult(w http.ResponseWriter, res application.AuthResult) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}
