package nextscene

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

// Generate - start frame에서 이어지는 end frame 생성
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("generator not configured")
	}

	log.Printf("🎬 Generating next scene from: %s", req.StartFrameURL)

	// start frame URL을 로컬 자산에서 바이너리로 복원
	startFrame, err := s.loader.Load(req.StartFrameURL)
	if err != nil {
		return "", fmt.Errorf("failed to load start frame: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(BuildNextScenePrompt(req.Prompt, req.AspectRatio)),
		genai.NewPartFromBytes(startFrame, imaging.SniffMime(startFrame)),
	}

	result, err := s.generator.Generate(ctx, s.model, parts)
	if err != nil {
		return "", fmt.Errorf("next scene generation failed: %w", err)
	}
	if len(result.Images) == 0 {
		return "", fmt.Errorf("no image parts in response")
	}

	url, err := s.assets.StoreGenerated(result.Images[0])
	if err != nil {
		return "", fmt.Errorf("failed to store end frame: %w", err)
	}

	log.Printf("✅ Next scene generated: %s", url)
	return url, nil
}
