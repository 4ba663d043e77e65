package scene

import (
	"fmt"
	"math"
	"strings"

	"anim-studio-server/modules/common/prompt"
)

// BuildAnalysisPrompt - 스케치 + 배치 정보를 장면 설명으로 변환하는 vision 프롬프트
func BuildAnalysisPrompt(placements []Placement) string {
	var b strings.Builder

	b.WriteString(`You are given a rough background sketch for an animation storyboard. Analyze the sketch and describe the scene in natural language: the setting, composition, perspective, lighting and mood.

`)

	if len(placements) > 0 {
		b.WriteString("The following characters are placed on the sketch:\n")
		for _, p := range placements {
			b.WriteString(fmt.Sprintf("- %s at %d%% from the left, %d%% from the top\n",
				p.Character.Name, toPercent(p.X), toPercent(p.Y)))
		}
		b.WriteString("\nInclude each character's position in the scene description.\n")
	}

	b.WriteString("\nRespond with the scene description only, no preamble.")
	return b.String()
}

// BuildGenerationPrompt - 장면 설명 + 비율 지시문 + 캐릭터 배치 지시를 합친 생성 프롬프트
func BuildGenerationPrompt(sceneDescription, userPrompt, aspectRatio string, placements []Placement) string {
	var b strings.Builder

	b.WriteString(`Create a polished anime-style storyboard frame based on the attached rough sketch.

SCENE DESCRIPTION: `)
	b.WriteString(sceneDescription)
	b.WriteString("\n")

	if userPrompt != "" {
		b.WriteString(fmt.Sprintf("\nDIRECTION: %s\n", userPrompt))
	}

	b.WriteString(`
Style: High-quality anime art, detailed characters, vibrant colors, dynamic composition.
Characters should match the provided reference sheet images exactly - same appearance, clothing, and features.
`)

	for _, p := range placements {
		b.WriteString(fmt.Sprintf("- Place %s at %d%% from the left and %d%% from the top of the frame.\n",
			p.Character.Name, toPercent(p.X), toPercent(p.Y)))
	}

	b.WriteString("\n")
	b.WriteString(prompt.AspectRatioInstruction(aspectRatio))
	return b.String()
}

// toPercent - 비율 좌표(0~1)를 퍼센트 정수로 변환, 1 초과는 이미 퍼센트로 취급
func toPercent(v float64) int {
	if v <= 1.0 {
		v = v * 100
	}
	return int(math.Round(math.Min(100, math.Max(0, v))))
}
