package story

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/store"
)

type Handler struct {
	store *store.Collection[Story]
	hub   *events.Hub
}

func NewHandler(collection *store.Collection[Story], hub *events.Hub) *Handler {
	return &Handler{
		store: collection,
		hub:   hub,
	}
}

// HandleList - GET /api/stories
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"stories": h.store.Load(),
	})
}

// HandleSave - POST /api/stories
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	newStory := Story{
		ID:        req.ID,
		Text:      req.Text,
		Elements:  req.Elements,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if newStory.Elements == nil {
		newStory.Elements = []Element{}
	}

	if err := h.store.Update(func(stories []Story) []Story {
		return append(stories, newStory)
	}); err != nil {
		log.Printf("❌ Failed to save story: %v", err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Failed to save story",
		})
		return
	}

	log.Printf("✅ Story saved: #%d", newStory.ID)
	h.hub.Publish("story_saved", map[string]interface{}{"id": newStory.ID})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"story":   newStory,
	})
}

// HandleUpdate - PUT /api/stories/{id} (id 기준 전체 교체)
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	storyID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid story id",
		})
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	var updated *Story
	if err := h.store.Update(func(stories []Story) []Story {
		for i := range stories {
			if stories[i].ID != storyID {
				continue
			}
			stories[i].Text = req.Text
			stories[i].Elements = req.Elements
			if stories[i].Elements == nil {
				stories[i].Elements = []Element{}
			}
			stories[i].UpdatedAt = time.Now().Format(time.RFC3339)
			updated = &stories[i]
			break
		}
		return stories
	}); err != nil {
		log.Printf("❌ Failed to update story: %v", err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Failed to update story",
		})
		return
	}

	if updated == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Story not found",
		})
		return
	}

	log.Printf("✅ Story %d updated", storyID)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"story":   updated,
	})
}

// decodeRequest - 스토리 요청 본문 파싱 + 검증
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (SaveRequest, bool) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid story request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid request format",
		})
		return SaveRequest{}, false
	}
	if req.Text == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Text is required",
		})
		return SaveRequest{}, false
	}
	return req, true
}
