package character

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store - 캐릭터 컬렉션 저장소
// 다른 컬렉션과 달리 next_id 카운터를 문서에 같이 persist
type Store struct {
	path string
	mu   sync.Mutex
}

type document struct {
	Characters []Character `json:"characters"`
	NextID     int         `json:"next_id"`
}

// NewStore - 캐릭터 저장소 생성
func NewStore(path string) *Store {
	return &Store{path: path}
}

// List - 캐릭터 전체 로드
func (s *Store) List() []Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.loadLocked()
	return doc.Characters
}

// Get - id로 캐릭터 조회
func (s *Store) Get(id int) (Character, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.loadLocked().Characters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Character{}, false
}

// Create - 캐릭터 생성 (id는 persist된 next_id로 서버가 할당)
func (s *Store) Create(name, imageURL string) (Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked()
	newCharacter := Character{
		ID:              doc.NextID,
		Name:            name,
		ImageURL:        imageURL,
		CharacterSheets: []string{},
	}
	doc.Characters = append(doc.Characters, newCharacter)
	doc.NextID++

	if err := s.saveLocked(doc); err != nil {
		return Character{}, err
	}
	return newCharacter, nil
}

// SetSheets - 캐릭터 시트 교체 후 persist
func (s *Store) SetSheets(id int, sheets []string) (Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadLocked()
	for i := range doc.Characters {
		if doc.Characters[i].ID != id {
			continue
		}
		doc.Characters[i].CharacterSheets = sheets
		if err := s.saveLocked(doc); err != nil {
			return Character{}, err
		}
		return doc.Characters[i], nil
	}
	return Character{}, fmt.Errorf("character not found: %d", id)
}

func (s *Store) loadLocked() document {
	doc := document{Characters: []Character{}, NextID: 1}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  Failed to read %s: %v", s.path, err)
		}
		return doc
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("⚠️  Malformed document %s, treating as empty: %v", s.path, err)
		return document{Characters: []Character{}, NextID: 1}
	}
	if doc.Characters == nil {
		doc.Characters = []Character{}
	}

	// next_id가 뒤처져 있으면 max(id)+1로 복구
	maxID := 0
	for _, ch := range doc.Characters {
		if ch.ID > maxID {
			maxID = ch.ID
		}
	}
	if doc.NextID <= maxID {
		doc.NextID = maxID + 1
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}
	return doc
}

func (s *Store) saveLocked(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal characters: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
