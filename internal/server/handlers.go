package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fooddash/internal/food"
	"fooddash/internal/jsonutil"

	"github.com/go-chi/chi/v5"
)

// FoodHandler serves the /foods collection.
type FoodHandler struct {
	repo   Repository
	logger *slog.Logger
}

// NewFoodHandler creates a handler backed by repo.
func NewFoodHandler(repo Repository, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{repo: repo, logger: logger}
}

// List handles GET /foods.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list foods", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.writeJSON(w, http.StatusOK, foods)
}

// Get handles GET /foods/{id}.
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	f, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.repoError(w, "get", id, err)
		return
	}
	h.writeJSON(w, http.StatusOK, f)
}

// Create handles POST /foods. Any id in the body is ignored.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft food.Draft
	if err := jsonutil.DecodeWithContext(r.Body, &draft, "create body", false); err != nil {
		h.logger.Warn("invalid create body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	created, err := h.repo.Create(r.Context(), draft)
	if err != nil {
		h.logger.Error("failed to create food", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.logger.Info("food created", "id", created.ID, "name", created.Name)
	h.writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /foods/{id}. The id in the path wins over the body.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	var f food.Food
	if err := jsonutil.DecodeWithContext(r.Body, &f, "update body", false); err != nil {
		h.logger.Warn("invalid update body", "id", id, "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	f.ID = id
	updated, err := h.repo.Update(r.Context(), f)
	if err != nil {
		h.repoError(w, "update", id, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /foods/{id}.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.foodID(w, r)
	if !ok {
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.repoError(w, "delete", id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *FoodHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FoodHandler) foodID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		h.logger.Warn("invalid food id", "id", raw)
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}
	return id, true
}

func (h *FoodHandler) repoError(w http.ResponseWriter, op string, id int, err error) {
	if errors.Is(err, ErrFoodNotFound) {
		h.logger.Info("food not found", "op", op, "id", id)
		h.writeError(w, http.StatusNotFound, "Food not found")
		return
	}
	h.logger.Error("food repository failed", "op", op, "id", id, "error", err)
	h.writeError(w, http.StatusInternalServerError, "Internal server error")
}

func (h *FoodHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (h *FoodHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
