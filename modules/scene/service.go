package scene

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/gemini"
	"anim-studio-server/modules/common/imaging"
	"anim-studio-server/modules/common/refimage"
)

type Service struct {
	generator   gemini.Generator
	imageModel  string
	visionModel string
	loader      *refimage.Loader
	assets      *assets.Manager
}

func NewService(generator gemini.Generator, imageModel, visionModel string, loader *refimage.Loader, manager *assets.Manager) *Service {
	return &Service{
		generator:   generator,
		imageModel:  imageModel,
		visionModel: visionModel,
		loader:      loader,
		assets:      manager,
	}
}

// Create - 스케치 기반 스토리보드 생성 (vision 분석 → 이미지 생성, 원격 호출 2번)
func (s *Service) Create(ctx context.Context, req CreateRequest) ([]string, string, error) {
	if s.generator == nil {
		return nil, "", fmt.Errorf("generator not configured")
	}

	sketchData, sketchMime, err := imaging.DecodeDataURL(req.BackgroundImage)
	if err != nil {
		return nil, "", fmt.Errorf("invalid background image: %w", err)
	}

	log.Printf("🎬 Creating storyboard: %d characters, ratio %s", len(req.Characters), req.AspectRatio)

	// 1단계 - vision 호출로 스케치를 장면 설명으로 변환
	sceneDescription, err := s.analyzeSketch(ctx, sketchData, sketchMime, req)
	if err != nil {
		return nil, "", err
	}
	log.Printf("📝 Scene description: %s", truncateString(sceneDescription, 120))

	// 2단계 - 장면 설명 + 스케치 + 캐릭터 시트로 생성 호출
	parts := []*genai.Part{
		genai.NewPartFromText(BuildGenerationPrompt(sceneDescription, req.Prompt, req.AspectRatio, req.Characters)),
		genai.NewPartFromBytes(sketchData, sketchMime),
	}
	for _, placement := range req.Characters {
		for _, sheetData := range s.loader.LoadAll(placement.Character.CharacterSheets) {
			parts = append(parts, genai.NewPartFromBytes(sheetData, imaging.SniffMime(sheetData)))
		}
	}

	result, err := s.generator.Generate(ctx, s.imageModel, parts)
	if err != nil {
		return nil, "", fmt.Errorf("storyboard generation failed: %w", err)
	}
	if len(result.Images) == 0 {
		return nil, "", fmt.Errorf("no image parts in response")
	}

	imageURLs := make([]string, 0, len(result.Images))
	for _, imageData := range result.Images {
		url, err := s.assets.StoreGenerated(imageData)
		if err != nil {
			return nil, "", fmt.Errorf("failed to store storyboard image: %w", err)
		}
		imageURLs = append(imageURLs, url)
	}

	log.Printf("✅ Storyboard created: %d images", len(imageURLs))
	return imageURLs, sceneDescription, nil
}

// analyzeSketch - vision 모델로 스케치 + 배치를 장면 설명 텍스트로 변환
func (s *Service) analyzeSketch(ctx context.Context, sketchData []byte, sketchMime string, req CreateRequest) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(BuildAnalysisPrompt(req.Characters)),
		genai.NewPartFromBytes(sketchData, sketchMime),
	}

	result, err := s.generator.Generate(ctx, s.visionModel, parts)
	if err != nil {
		return "", fmt.Errorf("sketch analysis failed: %w", err)
	}

	if result.Text == "" {
		// 설명이 비어 있으면 사용자 프롬프트 기반 설명으로 대체
		return fmt.Sprintf("Storyboard scene created from user prompt: %s", req.Prompt), nil
	}
	return result.Text, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
