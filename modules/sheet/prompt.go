package sheet

import "fmt"

// BuildCharacterSheetPrompt - 캐릭터 시트 생성용 5파트 프롬프트
// 레퍼런스 이미지의 캐릭터를 기준으로 시트 구성을 지시
func BuildCharacterSheetPrompt(characterName string) string {
	return fmt.Sprintf(`You are given a reference image of the character "%s". Create a complete character reference sheet for this character, as a set of separate images:

1. PROPORTIONS: A full-body turnaround showing the character's accurate body proportions with height guides.
2. THREE VIEWS: The character from the front, side, and back, standing in a neutral pose.
3. EXPRESSIONS: A sheet of facial expressions (happy, sad, angry, surprised, neutral).
4. POSES: A sheet of dynamic action poses that show how the character moves.
5. COSTUME VARIATIONS: The character in several costume/outfit variations.

REQUIREMENTS:
- Every image MUST depict the EXACT same character as the reference image: identical face, hairstyle, colors, clothing details and proportions
- Clean white background, model-sheet style line art with flat colors
- No text or annotations inside the images

OUTPUT: Generate ONLY the images, no text or explanations.`, characterName)
}
