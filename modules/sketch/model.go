package sketch

// Sketch - 캔버스 스케치 (저장 후 불변)
type Sketch struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DataURL   string `json:"dataUrl"`
	CreatedAt string `json:"createdAt"`
}

// SaveRequest - 스케치 저장 요청
// id는 클라이언트가 관리 (충돌 검사 없음, last write wins)
type SaveRequest struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}
