package story

import "anim-studio-server/modules/character"

// Element - 스토리 구성 요소 (텍스트 또는 캐릭터 참조)
// character는 denormalize된 스냅샷 - 라이브 링크 아님
type Element struct {
	Type      string               `json:"type"`
	Content   string               `json:"content"`
	Character *character.Character `json:"character,omitempty"`
}

// Story - 스토리
type Story struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Elements  []Element `json:"elements"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt,omitempty"`
}

// SaveRequest - 스토리 생성/수정 요청
type SaveRequest struct {
	ID       int       `json:"id"`
	Text     string    `json:"text"`
	Elements []Element `json:"elements"`
}
