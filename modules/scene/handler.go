package scene

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

// HandleCreate - POST /api/create-storyboard
// 실패해도 5xx 대신 placeholder로 degrade (fail-soft)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid storyboard request: %v", err)
		json.NewEncoder(w).Encode(CreateResponse{
			StoryboardImages: []string{fallback.DefaultImageURL(h.baseURL)},
			SceneDescription: "Error creating storyboard",
		})
		return
	}

	h.hub.Publish("generation_started", map[string]interface{}{
		"operation":  "create_storyboard",
		"characters": len(req.Characters),
	})

	imageURLs, sceneDescription, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Printf("❌ Storyboard creation failed, falling back to placeholder: %v", err)
		imageURLs = []string{fallback.DefaultImageURL(h.baseURL)}
		sceneDescription = "Error creating storyboard"
	}

	h.hub.Publish("generation_finished", map[string]interface{}{
		"operation": "create_storyboard",
		"images":    len(imageURLs),
	})

	json.NewEncoder(w).Encode(CreateResponse{
		StoryboardImages: imageURLs,
		SceneDescription: sceneDescription,
	})
}
