package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"

	"anim-studio-server/modules/character"
	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/config"
	"anim-studio-server/modules/common/events"
	"anim-studio-server/modules/common/fallback"
	"anim-studio-server/modules/common/gemini"
	"anim-studio-server/modules/common/refimage"
	"anim-studio-server/modules/common/store"
	"anim-studio-server/modules/legacy"
	"anim-studio-server/modules/nextscene"
	"anim-studio-server/modules/scene"
	"anim-studio-server/modules/sheet"
	"anim-studio-server/modules/sketch"
	"anim-studio-server/modules/story"
	"anim-studio-server/modules/storyboard"
	"anim-studio-server/modules/storyimage"
)

// CORS 미들웨어
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "AI Animation Studio Backend is running.",
	})
}

// placeholder 자산이 없으면 생성 - 생성 실패 fallback이 항상 서빙 가능해야 함
func ensurePlaceholderAsset(staticDir string) {
	path := filepath.Join(staticDir, "images", fallback.DefaultImageName)
	if _, err := os.Stat(path); err == nil {
		return
	}

	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512"><rect width="512" height="512" fill="#e2e8f0"/><text x="256" y="256" text-anchor="middle" fill="#64748b" font-family="sans-serif" font-size="24">placeholder</text></svg>`
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		log.Printf("⚠️  Failed to write placeholder asset: %v", err)
		return
	}
	log.Printf("✅ Placeholder asset created: %s", path)
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 공용 인프라 초기화
	assetManager, err := assets.NewManager(cfg.StaticDir, cfg.BaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to initialize asset manager: %v", err)
	}
	ensurePlaceholderAsset(cfg.StaticDir)

	loader := refimage.NewLoader(assetManager)
	hub := events.NewHub()

	// Gemini 클라이언트 - 키가 없으면 nil, 생성 요청은 placeholder로 degrade
	var generator gemini.Generator
	if client := gemini.NewClient(context.Background(), cfg.GeminiAPIKey); client != nil {
		generator = client
	}

	// 컬렉션 저장소 (JSON 문서 하나씩)
	characterStore := character.NewStore(filepath.Join(cfg.DataDir, "characters.json"))
	sketchStore := store.NewCollection[sketch.Sketch](filepath.Join(cfg.DataDir, "sketches.json"), "sketches")
	storyboardStore := store.NewCollection[storyboard.Scene](filepath.Join(cfg.DataDir, "storyboards.json"), "storyboards")
	storyStore := store.NewCollection[story.Story](filepath.Join(cfg.DataDir, "stories.json"), "stories")

	// 핸들러 조립
	characterHandler := character.NewHandler(characterStore, assetManager, hub)
	sketchHandler := sketch.NewHandler(sketchStore, hub)
	storyboardHandler := storyboard.NewHandler(storyboardStore, assetManager, hub)
	storyHandler := story.NewHandler(storyStore, hub)

	sheetHandler := sheet.NewHandler(
		sheet.NewService(generator, cfg.GeminiImageModel, loader, assetManager, characterStore),
		cfg.BaseURL, hub)
	sceneHandler := scene.NewHandler(
		scene.NewService(generator, cfg.GeminiImageModel, cfg.GeminiVisionModel, loader, assetManager),
		cfg.BaseURL, hub)
	storyImageHandler := storyimage.NewHandler(
		storyimage.NewService(generator, cfg.GeminiImageModel, loader, assetManager),
		cfg.BaseURL, hub)
	nextSceneHandler := nextscene.NewHandler(
		nextscene.NewService(generator, cfg.GeminiImageModel, loader, assetManager),
		cfg.BaseURL, hub)
	legacyHandler := legacy.NewHandler(cfg.BaseURL)

	// 라우터 설정
	r := mux.NewRouter()
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)

	r.HandleFunc("/api/characters", characterHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/characters", characterHandler.HandleCreate).Methods("POST")

	r.HandleFunc("/api/sketches", sketchHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/sketches", sketchHandler.HandleSave).Methods("POST")

	r.HandleFunc("/api/storyboards", storyboardHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/storyboards", storyboardHandler.HandleSave).Methods("POST")
	r.HandleFunc("/api/storyboards/{id}", storyboardHandler.HandleUpdate).Methods("PUT")

	r.HandleFunc("/api/stories", storyHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/stories", storyHandler.HandleSave).Methods("POST")
	r.HandleFunc("/api/stories/{id}", storyHandler.HandleUpdate).Methods("PUT")

	// 실제 생성 엔드포인트
	r.HandleFunc("/api/generate-character-sheet", sheetHandler.HandleGenerate).Methods("POST")
	r.HandleFunc("/api/create-storyboard", sceneHandler.HandleCreate).Methods("POST")
	r.HandleFunc("/api/generate-story-image", storyImageHandler.HandleGenerate).Methods("POST")
	r.HandleFunc("/api/generate-next-scene", nextSceneHandler.HandleGenerate).Methods("POST")

	// 구버전 mock 엔드포인트 (deprecated)
	r.HandleFunc("/api/generate-image", legacyHandler.HandleGenerateImage).Methods("POST")
	r.HandleFunc("/api/generate-storyboard", legacyHandler.HandleGenerateStoryboard).Methods("POST")

	// 정적 자산 서빙 (읽기 전용)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	log.Printf("🚀 AI Animation Studio Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: %s/health", cfg.BaseURL)
	log.Printf("📡 Event stream: ws://localhost:%s/ws", cfg.Port)
	log.Printf("🖼️  Static assets: %s/static/images/", cfg.BaseURL)

	// 서버 시작
	if err := http.ListenAndServe(cfg.GetAddr(), r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
