package character

// Character - 등장인물
// CharacterSheets는 시트 생성 시 통째로 교체됨
type Character struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	ImageURL        string   `json:"imageUrl"`
	CharacterSheets []string `json:"characterSheets"`
}
