package storyimage

import (
	"encoding/json"
	"log"
	"net/http"

	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/fallback"
)

type Handler struct {
	service *Service
	baseURL string
	hub     *events.Hub
}

func NewHandler(service *Service, baseURL string, hub *events.Hub) *Handler {
	return &Handler{
		service: service,
		baseURL: baseURL,
		hub:     hub,
	}
}

// HandleGenerate - POST /api/generate-story-image
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid story image request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{ImageURL: fallback.DefaultImageURL(h.baseURL)})
		return
	}

	h.hub.Publish("generation_started", map[string]interface{}{
		"operation": "story_image",
	})

	imageURL, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.Printf("❌ Story image generation failed, falling back to placeholder: %v", err)
		imageURL = fallback.DefaultImageURL(h.baseURL)
	}

	h.hub.Publish("generation_finished", map[string]interface{}{
		"operation": "story_image",
	})

	json.NewEncoder(w).Encode(GenerateResponse{ImageURL: imageURL})
}
