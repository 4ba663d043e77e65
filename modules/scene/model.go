package scene

import "anim-studio-server/modules/character"

// Placement - 캔버스 위 캐릭터 배치
// x, y는 캔버스 비율 좌표 (0~1), 1보다 크면 퍼센트로 취급
type Placement struct {
	Character character.Character `json:"character"`
	X         float64             `json:"x"`
	Y         float64             `json:"y"`
}

// CreateRequest - 스케치 기반 스토리보드 생성 요청
type CreateRequest struct {
	BackgroundImage string      `json:"backgroundImage"`
	Characters      []Placement `json:"characters"`
	Prompt          string      `json:"prompt"`
	AspectRatio     string      `json:"aspectRatio"`
}

// CreateResponse - 스토리보드 생성 응답
type CreateResponse struct {
	StoryboardImages []string `json:"storyboardImages"`
	SceneDescription string   `json:"sceneDescription"`
}
