package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const maxRetries = 3

// generateWithRetry - 429 에러 시 재시도하는 헬퍼 함수 (최대 3번, 2초 간격)
func generateWithRetry(
	ctx context.Context,
	client *genai.Client,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {

	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			log.Printf("   🔄 Retry attempt %d/%d", attempt, maxRetries)
		}

		result, err := client.Models.GenerateContent(ctx, model, contents, config)
		if err == nil {
			return result, nil
		}
		lastErr = err

		// 429가 아닌 다른 에러면 바로 반환 (재시도 안 함)
		if !is429Error(err) {
			return nil, err
		}

		log.Printf("⚠️  Gemini rate limit (429) on attempt %d/%d", attempt, maxRetries)
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
	}

	return nil, fmt.Errorf("gemini call exhausted %d attempts: %w", maxRetries, lastErr)
}

// is429Error - 429 Rate Limit 에러인지 확인
func is429Error(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(strings.ToLower(errStr), "rate limit") ||
		strings.Contains(strings.ToLower(errStr), "quota")
}
