package scene

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"anim-studio-server/modules/character"
	"anim-studio-server/modules/common/assets"
	"anim-studio-server/modules/common/gemini"
	"anim-studio-server/modules/common/refimage"
)

const (
	baseURL = "http://localhost:8000"
	// 1x1 투명 PNG
	sketchDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="
)

type fakeGenerator struct {
	generate func(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error) {
	return f.generate(ctx, model, parts)
}

func newTestService(t *testing.T, generator gemini.Generator) (*Service, *assets.Manager) {
	t.Helper()

	manager, err := assets.NewManager(t.TempDir(), baseURL)
	require.NoError(t, err)

	loader := refimage.NewLoader(manager)
	return NewService(generator, "image-model", "vision-model", loader, manager), manager
}

func TestCreateRunsAnalysisThenGeneration(t *testing.T) {
	var models []string
	generator := &fakeGenerator{
		generate: func(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error) {
			models = append(models, model)
			if model == "vision-model" {
				return &gemini.Result{Text: "A boy stands at the forest entrance."}, nil
			}
			return &gemini.Result{Images: [][]byte{[]byte("frame-a"), []byte("frame-b")}}, nil
		},
	}
	service, _ := newTestService(t, generator)

	imageURLs, description, err := service.Create(context.Background(), CreateRequest{
		BackgroundImage: sketchDataURL,
		Prompt:          "소년이 숲에 들어간다",
		AspectRatio:     "16:9",
	})
	require.NoError(t, err)

	// vision 분석 후 이미지 생성 순서
	assert.Equal(t, []string{"vision-model", "image-model"}, models)
	assert.Equal(t, "A boy stands at the forest entrance.", description)

	require.Len(t, imageURLs, 2)
	for _, url := range imageURLs {
		assert.Contains(t, url, baseURL+"/static/images/generated_")
	}
}

func TestCreateFallsBackToPromptDescription(t *testing.T) {
	generator := &fakeGenerator{
		generate: func(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error) {
			if model == "vision-model" {
				return &gemini.Result{}, nil // 빈 설명
			}
			return &gemini.Result{Images: [][]byte{[]byte("frame")}}, nil
		},
	}
	service, _ := newTestService(t, generator)

	_, description, err := service.Create(context.Background(), CreateRequest{
		BackgroundImage: sketchDataURL,
		Prompt:          "소년이 숲에 들어간다",
	})
	require.NoError(t, err)
	assert.Equal(t, "Storyboard scene created from user prompt: 소년이 숲에 들어간다", description)
}

func TestCreateAttachesCharacterSheets(t *testing.T) {
	var imageParts int
	generator := &fakeGenerator{
		generate: func(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error) {
			if model == "vision-model" {
				return &gemini.Result{Text: "scene"}, nil
			}
			imageParts = len(parts)
			return &gemini.Result{Images: [][]byte{[]byte("frame")}}, nil
		},
	}
	service, manager := newTestService(t, generator)

	sheetURL, err := manager.Store([]byte("sheet bytes"), "sheet.png")
	require.NoError(t, err)

	_, _, err = service.Create(context.Background(), CreateRequest{
		BackgroundImage: sketchDataURL,
		Characters: []Placement{{
			Character: character.Character{ID: 1, Name: "아리", CharacterSheets: []string{sheetURL}},
			X:         0.25,
			Y:         0.75,
		}},
	})
	require.NoError(t, err)

	// 프롬프트 + 스케치 + 시트 1장
	assert.Equal(t, 3, imageParts)
}

func TestCreateInvalidBackgroundImage(t *testing.T) {
	generator := &fakeGenerator{
		generate: func(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error) {
			t.Fatal("generator should not be called for invalid input")
			return nil, nil
		},
	}
	service, _ := newTestService(t, generator)

	_, _, err := service.Create(context.Background(), CreateRequest{BackgroundImage: "not-base64!!"})
	assert.Error(t, err)
}

func TestCreateGenerationError(t *testing.T) {
	generator := &fakeGenerator{
		generate: func(ctx context.Context, model string, parts []*genai.Part) (*gemini.Result, error) {
			if model == "vision-model" {
				return &gemini.Result{Text: "scene"}, nil
			}
			return nil, errors.New("quota exceeded")
		},
	}
	service, _ := newTestService(t, generator)

	_, _, err := service.Create(context.Background(), CreateRequest{BackgroundImage: sketchDataURL})
	assert.Error(t, err)
}

func TestCreateWithoutGenerator(t *testing.T) {
	service, _ := newTestService(t, nil)

	_, _, err := service.Create(context.Background(), CreateRequest{BackgroundImage: sketchDataURL})
	assert.Error(t, err)
}

func TestToPercent(t *testing.T) {
	assert.Equal(t, 25, toPercent(0.25))
	assert.Equal(t, 100, toPercent(1.0))
	assert.Equal(t, 50, toPercent(50))   // 이미 퍼센트
	assert.Equal(t, 100, toPercent(250)) // 상한
	assert.Equal(t, 0, toPercent(-3))    // 하한
	assert.Equal(t, 33, toPercent(0.333))
}
