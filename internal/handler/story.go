package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// StoryHandler handles the story chapter and screenplay scene endpoints.
type StoryHandler struct {
	chapterRepo *repository.StoryChapterRepository
	sceneRepo   *repository.EvolversSceneRepository
}

// NewStoryHandler creates a new story handler.
func NewStoryHandler(chapterRepo *repository.StoryChapterRepository, sceneRepo *repository.EvolversSceneRepository) *StoryHandler {
	return &StoryHandler{
		chapterRepo: chapterRepo,
		sceneRepo:   sceneRepo,
	}
}

// ListChapters handles GET /api/story-chapters, ordered by chapter number.
func (h *StoryHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.chapterRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch story chapters")
		return
	}
	WriteJSON(w, http.StatusOK, chapters)
}

// GetChapter handles GET /api/story-chapters/{id}.
func (h *StoryHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.chapterRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch story chapter")
		return
	}
	if chapter == nil {
		WriteError(w, http.StatusNotFound, "Story chapter not found")
		return
	}
	WriteJSON(w, http.StatusOK, chapter)
}

// ListScenes handles GET /api/evolvers-scenes, ordered by scene number.
func (h *StoryHandler) ListScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := h.sceneRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch scenes")
		return
	}
	WriteJSON(w, http.StatusOK, scenes)
}

// GetScenesByAct handles GET /api/evolvers-scenes/act/{act}.
func (h *StoryHandler) GetScenesByAct(w http.ResponseWriter, r *http.Request) {
	scenes, err := h.sceneRepo.GetByAct(r.Context(), r.PathValue("act"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch scenes by act")
		return
	}
	WriteJSON(w, http.StatusOK, scenes)
}
