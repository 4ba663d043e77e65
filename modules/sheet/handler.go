package sheet

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

// HandleGenerate - POST /api/generate-character-sheet
// 생성 실패는 에러 상태 대신 placeholder 5장으로 degrade (fail-soft)
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid character sheet request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{
			CharacterSheetImages: fallback.DefaultImageURLs(h.baseURL, FallbackSheetCount),
		})
		return
	}

	h.hub.Publish("generation_started", map[string]interface{}{
		"operation": "character_sheet",
		"character": req.Character.Name,
	})

	sheetURLs, err := h.service.Generate(r.Context(), req.Character)
	if err != nil {
		log.Printf("❌ Character sheet generation failed, falling back to placeholders: %v", err)
		sheetURLs = fallback.DefaultImageURLs(h.baseURL, FallbackSheetCount)
	}

	h.hub.Publish("generation_finished", map[string]interface{}{
		"operation": "character_sheet",
		"character": req.Character.Name,
		"images":    len(sheetURLs),
	})

	json.NewEncoder(w).Encode(GenerateResponse{CharacterSheetImages: sheetURLs})
}
