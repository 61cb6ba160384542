package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/application"
	"github.com/rentmy/rentmy-api/internal/domain"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_items", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		writeMappedError(r.Context(), w, "get_item", err)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req application.ItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_item", err)
		return
	}

	if claims, ok := claimsFromContext(r.Context()); ok {
		httpLogger().InfoContext(r.Context(), "item created",
			"operation", "create_item",
			"outcome", "success",
			"item_id", item.ID,
			"user_id", claims.UserID,
			"request_id", requestIDFromContext(r.Context()),
		)
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		writeMappedError(r.Context(), w, "update_item", err)
		return
	}

	var req application.ItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.service.UpdateItem(r.Context(), itemID, req); err != nil {
		writeMappedError(r.Context(), w, "update_item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		writeMappedError(r.Context(), w, "delete_item", err)
		return
	}

	item, err := h.service.DeleteItem(r.Context(), itemID)
	if err != nil {
		writeMappedError(r.Context(), w, "delete_item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// itemIDFromPath parses the {id} route parameter. A malformed id can never
// match a stored item, so it maps to 404 rather than a validation error.
func itemIDFromPath(r *http.Request) (uuid.UUID, error) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return itemID, nil
}
