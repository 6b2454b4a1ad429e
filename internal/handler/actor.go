package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// ActorHandler handles the war codex roster endpoints.
type ActorHandler struct {
	actorRepo *repository.WarActorRepository
}

// NewActorHandler creates a new actor handler.
func NewActorHandler(actorRepo *repository.WarActorRepository) *ActorHandler {
	return &ActorHandler{actorRepo: actorRepo}
}

// List handles GET /api/war-actors.
func (h *ActorHandler) List(w http.ResponseWriter, r *http.Request) {
	actors, err := h.actorRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch war actors")
		return
	}
	WriteJSON(w, http.StatusOK, actors)
}

// GetByCodename handles GET /api/war-actors/{codename}. The codename
// matches case-insensitively, so /api/war-actors/evolynn works.
func (h *ActorHandler) GetByCodename(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actorRepo.GetByCodename(r.Context(), r.PathValue("codename"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch war actor")
		return
	}
	if actor == nil {
		WriteError(w, http.StatusNotFound, "War actor not found")
		return
	}
	WriteJSON(w, http.StatusOK, actor)
}

// GetByID handles GET /api/war-actors/id/{id}.
func (h *ActorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actorRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch war actor")
		return
	}
	if actor == nil {
		WriteError(w, http.StatusNotFound, "War actor not found")
		return
	}
	WriteJSON(w, http.StatusOK, actor)
}
