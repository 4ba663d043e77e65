package sheet

import "anim-studio-server/modules/character"

// GenerateRequest - 캐릭터 시트 생성 요청
type GenerateRequest struct {
	Character character.Character `json:"character"`
}

// GenerateResponse - 캐릭터 시트 생성 응답
type GenerateResponse struct {
	CharacterSheetImages []string `json:"characterSheetImages"`
}

// FallbackSheetCount - 생성 실패 시 돌려주는 placeholder 장수
const FallbackSheetCount = 5
