package nextscene

import (
	"fmt"

	"anim-studio-server/modules/common/prompt"
)

// BuildNextScenePrompt - start frame에서 이어지는 end frame 생성 프롬프트
// 스타일/캐릭터/배경 일관성 유지를 명시적으로 지시
func BuildNextScenePrompt(userPrompt, aspectRatio string) string {
	sceneInstruction := "Create a natural next scene that logically follows from the start frame. Show what happens next in this story sequence."
	if userPrompt != "" {
		sceneInstruction = fmt.Sprintf("Create the next scene with this direction: %s", userPrompt)
	}

	return fmt.Sprintf(`You are given a START FRAME image. Create an END FRAME that shows the next logical scene in the sequence.

START FRAME: This is the current scene (provided as image)

TASK: %s

REQUIREMENTS:
- Maintain visual consistency with the start frame (same art style, character designs, color palette)
- Show clear progression from start to end frame
- Keep the same characters and setting unless specifically instructed otherwise
- Create a smooth visual transition that could be animated between these two frames

Style: High-quality anime art, detailed characters, vibrant colors, dynamic composition that matches the start frame.

%s`, sceneInstruction, prompt.AspectRatioInstruction(aspectRatio))
}
