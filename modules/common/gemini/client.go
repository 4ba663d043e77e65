package gemini

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Result - 생성 응답을 demux한 결과
// Images: 응답 순서대로 모은 inline 이미지 바이너리, Text: 텍스트 파트 연결
type Result struct {
	Images [][]byte
	Text   string
}

// Generator - 생성 호출 한 번을 추상화
// 테스트에서는 fake로 대체하고, 핸들러는 에러를 placeholder로 변환
type Generator interface {
	Generate(ctx context.Context, model string, parts []*genai.Part) (*Result, error)
}

// Client - Gemini API 클라이언트 래퍼
type Client struct {
	genaiClient *genai.Client
}

// NewClient - Gemini 클라이언트 생성
// API 키가 없으면 nil 반환 - 핸들러가 nil 체크 후 placeholder로 degrade
func NewClient(ctx context.Context, apiKey string) *Client {
	if apiKey == "" {
		return nil
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("❌ Failed to create Genai client: %v", err)
		return nil
	}

	log.Println("✅ Genai client initialized")
	return &Client{genaiClient: genaiClient}
}

// Generate - 단일 생성 호출 후 첫 번째 candidate만 demux
func (c *Client) Generate(ctx context.Context, model string, parts []*genai.Part) (*Result, error) {
	content := &genai.Content{Parts: parts}

	resp, err := generateWithRetry(ctx, c.genaiClient, model, []*genai.Content{content}, &genai.GenerateContentConfig{
		Temperature: floatPtr(0.7),
	})
	if err != nil {
		return nil, err
	}

	return parseResponse(resp)
}

// parseResponse - 첫 번째 candidate의 파트들을 이미지/텍스트로 분리
func parseResponse(resp *genai.GenerateContentResponse) (*Result, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("empty candidate content")
	}

	result := &Result{}
	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			log.Printf("🖼️  Image part received: %d bytes", len(part.InlineData.Data))
			result.Images = append(result.Images, part.InlineData.Data)
			continue
		}
		if part.Text != "" {
			log.Printf("📝 Text part received: %s", truncateString(part.Text, 80))
			result.Text += part.Text
		}
	}
	return result, nil
}

// Helper functions
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func floatPtr(f float64) *float32 {
	f32 := float32(f)
	return &f32
}
