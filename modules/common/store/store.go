package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Collection - JSON 문서 하나로 백업되는 컬렉션 저장소
// 문서 형식: {"<key>": [...]}
type Collection[T any] struct {
	path string
	key  string
	mu   sync.Mutex
}

// NewCollection - 컬렉션 저장소 생성
// path: JSON 문서 경로, key: 문서 내 배열 키 (예: "sketches")
func NewCollection[T any](path, key string) *Collection[T] {
	return &Collection[T]{path: path, key: key}
}

// Load - 컬렉션 전체 로드
// 파일이 없거나 깨져 있으면 빈 컬렉션으로 처리 (서버는 계속 동작)
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

// Save - 컬렉션 전체 저장 (문서 통째로 덮어쓰기)
func (c *Collection[T]) Save(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(items)
}

// Update - load-mutate-save 한 사이클을 잠금 안에서 수행
func (c *Collection[T]) Update(fn func(items []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(fn(c.loadLocked()))
}

func (c *Collection[T]) loadLocked() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  Failed to read %s: %v", c.path, err)
		}
		return []T{}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("⚠️  Malformed document %s, treating as empty: %v", c.path, err)
		return []T{}
	}

	raw, ok := doc[c.key]
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("⚠️  Malformed %q array in %s, treating as empty: %v", c.key, c.path, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *Collection[T]) saveLocked(items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", c.key, err)
	}

	data, err := json.MarshalIndent(map[string]json.RawMessage{c.key: raw}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return nil
}
