package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Server
	Port    string
	BaseURL string

	// Gemini API
	GeminiAPIKey      string
	GeminiImageModel  string
	GeminiVisionModel string

	// 로컬 저장소
	DataDir   string
	StaticDir string
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	globalConfig = &Config{
		// Server
		Port:    getEnv("PORT", "8000"),
		BaseURL: getEnv("BASE_URL", "http://localhost:8000"),

		// Gemini API
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiImageModel:  getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		GeminiVisionModel: getEnv("GEMINI_VISION_MODEL", "gemini-2.0-flash"),

		// 로컬 저장소
		DataDir:   getEnv("DATA_DIR", "data"),
		StaticDir: getEnv("STATIC_DIR", "static"),
	}

	// API 키가 없어도 서버는 기동 - 생성 요청은 placeholder로 degrade
	if globalConfig.GeminiAPIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set - generation endpoints will return placeholders")
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Base URL: %s", globalConfig.BaseURL)
	log.Printf("   Gemini: %s (vision: %s)", globalConfig.GeminiImageModel, globalConfig.GeminiVisionModel)
	log.Printf("   Data dir: %s, Static dir: %s", globalConfig.DataDir, globalConfig.StaticDir)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetAddr - 서버 바인드 주소 생성
func (c *Config) GetAddr() string {
	return fmt.Sprintf(":%s", c.Port)
}
