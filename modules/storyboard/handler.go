package storyboard

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/store"
)

type Handler struct {
	store  *store.Collection[Scene]
	assets *assets.Manager
	hub    *events.Hub
}

func NewHandler(collection *store.Collection[Scene], manager *assets.Manager, hub *events.Hub) *Handler {
	return &Handler{
		store:  collection,
		assets: manager,
		hub:    hub,
	}
}

// HandleList - GET /api/storyboards
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"storyboards": h.store.Load(),
	})
}

// HandleSave - POST /api/storyboards (일괄 또는 단일)
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid storyboard request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid request format",
		})
		return
	}

	scenes := req.Scenes
	if len(scenes) == 0 {
		// 단일 storyboard 저장
		scenes = []Scene{{ID: req.ID, ImageURL: req.ImageURL, Description: req.Description}}
	}

	savedScenes := make([]Scene, 0, len(scenes))
	for _, scene := range scenes {
		// data URL 이미지는 자산으로 업로드 후 URL로 교체
		if strings.HasPrefix(scene.ImageURL, "data:image/") {
			url, err := h.assets.StoreDataURL(scene.ImageURL, "storyboard.png")
			if err != nil {
				log.Printf("⚠️  Failed to upload storyboard image: %v", err)
			} else {
				scene.ImageURL = url
			}
		}
		scene.CreatedAt = time.Now().Format(time.RFC3339)
		savedScenes = append(savedScenes, scene)
	}

	if err := h.store.Update(func(existing []Scene) []Scene {
		return append(existing, savedScenes...)
	}); err != nil {
		log.Printf("❌ Failed to save storyboard scenes: %v", err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Failed to save storyboard",
		})
		return
	}

	log.Printf("✅ Storyboard scenes saved: %d", len(savedScenes))
	h.hub.Publish("storyboard_saved", map[string]interface{}{"count": len(savedScenes)})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"scenes":  savedScenes,
	})
}

// HandleUpdate - PUT /api/storyboards/{id} (endFrame 추가 등)
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sceneID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid storyboard id",
		})
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid request format",
		})
		return
	}

	endFrameURL := req.EndFrameURL
	if strings.HasPrefix(endFrameURL, "data:image/") {
		url, uploadErr := h.assets.StoreDataURL(endFrameURL, "end_frame.png")
		if uploadErr != nil {
			log.Printf("⚠️  Failed to upload end frame: %v", uploadErr)
		} else {
			endFrameURL = url
		}
	}

	var updated *Scene
	if err := h.store.Update(func(scenes []Scene) []Scene {
		for i := range scenes {
			if scenes[i].ID == sceneID {
				scenes[i].EndFrameURL = endFrameURL
				updated = &scenes[i]
				break
			}
		}
		return scenes
	}); err != nil {
		log.Printf("❌ Failed to update storyboard: %v", err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Failed to update storyboard",
		})
		return
	}

	if updated == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Storyboard not found",
		})
		return
	}

	log.Printf("✅ Storyboard %d updated with end frame", sceneID)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    true,
		"storyboard": updated,
	})
}
