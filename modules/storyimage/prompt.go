package storyimage

import (
	"fmt"

	"anim-studio-server/modules/common/prompt"
)

// BuildStoryImagePrompt - 스토리 일러스트 생성 프롬프트
func BuildStoryImagePrompt(storyText, aspectRatio string) string {
	return fmt.Sprintf(`Create an anime-style illustration for this story:

Story: %s

Style: High-quality anime art, detailed characters, vibrant colors, dynamic composition.
Characters should match the provided reference images exactly - same appearance, clothing, and features.

The scene should capture the emotion and action described in the story text.

%s`, storyText, prompt.AspectRatioInstruction(aspectRatio))
}
