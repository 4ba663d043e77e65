package nextscene

// GenerateRequest - 다음 장면(end frame) 생성 요청
type GenerateRequest struct {
	StartFrameURL string `json:"startFrameUrl"`
	Prompt        string `json:"prompt,omitempty"`
	AspectRatio   string `json:"aspectRatio,omitempty"`
}

// GenerateResponse - 다음 장면 생성 응답
type GenerateResponse struct {
	EndFrameURL string `json:"endFrameUrl"`
}
