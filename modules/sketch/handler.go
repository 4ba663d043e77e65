package sketch

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/store"
)

type Handler struct {
	store *store.Collection[Sketch]
	hub   *events.Hub
}

func NewHandler(collection *store.Collection[Sketch], hub *events.Hub) *Handler {
	return &Handler{
		store: collection,
		hub:   hub,
	}
}

// HandleList - GET /api/sketches
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sketches": h.store.Load(),
	})
}

// HandleSave - POST /api/sketches
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid sketch request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid request format",
		})
		return
	}

	if req.Name == "" || req.DataURL == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Name and dataUrl are required",
		})
		return
	}

	newSketch := Sketch{
		ID:        req.ID,
		Name:      req.Name,
		DataURL:   req.DataURL,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := h.store.Update(func(sketches []Sketch) []Sketch {
		return append(sketches, newSketch)
	}); err != nil {
		log.Printf("❌ Failed to save sketch: %v", err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Failed to save sketch",
		})
		return
	}

	log.Printf("✅ Sketch saved: %s", newSketch.Name)
	h.hub.Publish("sketch_saved", map[string]interface{}{"id": newSketch.ID, "name": newSketch.Name})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"sketch":  newSketch,
	})
}
