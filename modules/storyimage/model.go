package storyimage

import (
	"anim-studio-server/modules/character"
	"anim-studio-server/modules/story"
)

// GenerateRequest - 스토리 일러스트 생성 요청
type GenerateRequest struct {
	Story       string                `json:"story"`
	Elements    []story.Element       `json:"elements"`
	Characters  []character.Character `json:"characters"`
	AspectRatio string                `json:"aspectRatio"`
}

// GenerateResponse - 스토리 일러스트 생성 응답
type GenerateResponse struct {
	ImageURL string `json:"imageUrl"`
}
