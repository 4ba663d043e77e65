// Package legacy - 구버전 mock 생성 엔드포인트
// 실제 생성 전 버전의 stand-in으로만 남아 있는 deprecated 경로
package legacy

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"anim-studio-server/modules/common/fallback"
)

const (
	imageDelay      = 1500 * time.Millisecond
	storyboardDelay = 2500 * time.Millisecond
)

type Handler struct {
	baseURL string

	// 테스트에서 sleep 없이 돌리기 위한 주입점
	ImageDelay      time.Duration
	StoryboardDelay time.Duration
}

func NewHandler(baseURL string) *Handler {
	return &Handler{
		baseURL:         baseURL,
		ImageDelay:      imageDelay,
		StoryboardDelay: storyboardDelay,
	}
}

// HandleGenerateImage - POST /api/generate-image (mock)
func (h *Handler) HandleGenerateImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ImageGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request format"})
		return
	}

	log.Printf("🎨 [Legacy] Generating image for character: %s", req.Character.Name)
	time.Sleep(h.ImageDelay)

	json.NewEncoder(w).Encode(map[string]string{
		"imageUrl": fallback.DefaultImageURL(h.baseURL),
	})
}

// HandleGenerateStoryboard - POST /api/generate-storyboard (mock)
func (h *Handler) HandleGenerateStoryboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req StoryboardGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request format"})
		return
	}

	log.Printf("🎬 [Legacy] Generating storyboard from image: %s", req.KeyImageURL)
	time.Sleep(h.StoryboardDelay)

	json.NewEncoder(w).Encode(MockScenes(fallback.DefaultImageURL(h.baseURL)))
}
