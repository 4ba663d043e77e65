package storyimage

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
	generator gemini.Generator
	model     string
	loader    *refimage.Loader
	assets    *assets.Manager
}

func NewService(generator gemini.Generator, model string, loader *refimage.Loader, manager *assets.Manager) *Service {
	return &Service{
		generator: generator,
		model:     model,
		loader:    loader,
		assets:    manager,
	}
}

// Generate - 스토리 일러스트 생성
// 캐릭터마다 시트 전체를 첨부, 시트가 없으면 기본 이미지로 대체
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("generator not configured")
	}

	log.Printf("🎨 Generating story image: %d characters, ratio %s", len(req.Characters), req.AspectRatio)

	parts := []*genai.Part{
		genai.NewPartFromText(BuildStoryImagePrompt(req.Story, req.AspectRatio)),
	}

	for _, ch := range req.Characters {
		refs := ch.CharacterSheets
		if len(refs) == 0 {
			refs = []string{ch.ImageURL}
		}
		for _, refData := range s.loader.LoadAll(refs) {
			parts = append(parts, genai.NewPartFromBytes(refData, imaging.SniffMime(refData)))
		}
	}

	result, err := s.generator.Generate(ctx, s.model, parts)
	if err != nil {
		return "", fmt.Errorf("story image generation failed: %w", err)
	}
	if len(result.Images) == 0 {
		return "", fmt.Errorf("no image parts in response")
	}

	// 첫 번째 생성 이미지만 사용
	url, err := s.assets.StoreGenerated(result.Images[0])
	if err != nil {
		return "", fmt.Errorf("failed to store story image: %w", err)
	}

	log.Printf("✅ Story image generated: %s", url)
	return url, nil
}
