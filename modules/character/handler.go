package character

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/events"
)

type Handler struct {
	store  *Store
	assets *assets.Manager
	hub    *events.Hub
}

func NewHandler(store *Store, manager *assets.Manager, hub *events.Hub) *Handler {
	return &Handler{
		store:  store,
		assets: manager,
		hub:    hub,
	}
}

// HandleList - GET /api/characters
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.List())
}

// HandleCreate - POST /api/characters (multipart: name, image)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("❌ Invalid multipart form: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid multipart form"})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	file, header, err := r.FormFile("image")
	if name == "" || err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Name and image are required"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Failed to read uploaded image: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to read uploaded image"})
		return
	}

	imageURL, err := h.assets.Store(imageData, header.Filename)
	if err != nil {
		log.Printf("❌ Failed to store character image: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to store image"})
		return
	}

	newCharacter, err := h.store.Create(name, imageURL)
	if err != nil {
		log.Printf("❌ Failed to save character: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to save character"})
		return
	}

	log.Printf("✅ Character created: #%d %s", newCharacter.ID, newCharacter.Name)
	h.hub.Publish("character_created", map[string]interface{}{
		"id":   newCharacter.ID,
		"name": newCharacter.Name,
	})

	json.NewEncoder(w).Encode(newCharacter)
}
