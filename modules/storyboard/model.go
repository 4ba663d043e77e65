package storyboard

// Scene - 스토리보드 장면
// EndFrameURL은 다음 장면 생성 결과가 붙는 자리 (옵션)
type Scene struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	EndFrameURL string `json:"endFrameUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// SaveRequest - 장면 일괄 저장 요청
// scenes가 없으면 단일 장면 필드를 사용
type SaveRequest struct {
	Scenes      []Scene `json:"scenes"`
	ID          int     `json:"id"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

// UpdateRequest - 장면 endFrame 업데이트 요청
type UpdateRequest struct {
	EndFrameURL string `json:"endFrameUrl"`
}
