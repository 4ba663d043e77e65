package legacy

import (
	"anim-studio-server/modules/character"
	"anim-studio-server/modules/storyboard"
)

// ImageGenerationRequest - 구버전 이미지 생성 요청
type ImageGenerationRequest struct {
	Character  character.Character `json:"character"`
	SketchData string              `json:"sketchData"`
}

// StoryboardGenerationRequest - 구버전 스토리보드 생성 요청
type StoryboardGenerationRequest struct {
	KeyImageURL string `json:"keyImageUrl"`
}

// MockScenes - 구버전 mock 스토리보드 (imageUrl은 응답 시 placeholder로 채움)
func MockScenes(placeholderURL string) []storyboard.Scene {
	return []storyboard.Scene{
		{ID: 1, ImageURL: placeholderURL, Description: "1. [AI] 소년이 신비로운 숲의 입구를 발견합니다."},
		{ID: 2, ImageURL: placeholderURL, Description: "2. [AI] 숲으로 들어가자 빛나는 버섯들을 마주칩니다."},
		{ID: 3, ImageURL: placeholderURL, Description: "3. [AI] 버섯들 사이에서 작은 정령을 만납니다."},
	}
}
