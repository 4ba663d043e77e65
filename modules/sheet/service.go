package sheet

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"anim-studio-server/modules/character"
	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/gemini"
	"anim-studio-server/modules/common/imaging"
	"anim-studio-server/modules/common/refimage"
)

type Service struct {
	generator  gemini.Generator
	model      string
	loader     *refimage.Loader
	assets     *assets.Manager
	characters *character.Store
}

func NewService(generator gemini.Generator, model string, loader *refimage.Loader, manager *assets.Manager, characters *character.Store) *Service {
	return &Service{
		generator:  generator,
		model:      model,
		loader:     loader,
		assets:     manager,
		characters: characters,
	}
}

// Generate - 캐릭터 시트 생성
// 기준 이미지 + 5파트 프롬프트로 한 번 호출, 응답의 모든 이미지 파트가 새 시트가 됨
func (s *Service) Generate(ctx context.Context, ch character.Character) ([]string, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("generator not configured")
	}

	log.Printf("🎨 Generating character sheet for #%d %s", ch.ID, ch.Name)

	parts := []*genai.Part{
		genai.NewPartFromText(BuildCharacterSheetPrompt(ch.Name)),
	}

	// 기준 이미지 로드 - 없으면 첨부 없이 진행
	if refData, err := s.loader.Load(ch.ImageURL); err != nil {
		log.Printf("⚠️  Skipping primary image for %s: %v", ch.Name, err)
	} else {
		parts = append(parts, genai.NewPartFromBytes(refData, imaging.SniffMime(refData)))
	}

	result, err := s.generator.Generate(ctx, s.model, parts)
	if err != nil {
		return nil, fmt.Errorf("character sheet generation failed: %w", err)
	}
	if len(result.Images) == 0 {
		return nil, fmt.Errorf("no image parts in response")
	}

	sheetURLs := make([]string, 0, len(result.Images))
	for _, imageData := range result.Images {
		url, err := s.assets.StoreGenerated(imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to store sheet image: %w", err)
		}
		sheetURLs = append(sheetURLs, url)
	}

	if _, err := s.characters.SetSheets(ch.ID, sheetURLs); err != nil {
		return nil, fmt.Errorf("failed to persist character sheets: %w", err)
	}

	log.Printf("✅ Character sheet generated: %d images for %s", len(sheetURLs), ch.Name)
	return sheetURLs, nil
}
