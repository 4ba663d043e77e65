package assets

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"anim-studio-server/modules/common/imaging"
)

// PublicPrefix - 정적 자산이 서빙되는 URL 경로
const PublicPrefix = "/static/images/"

// ErrNotFound - URL을 로컬 경로로 변환할 수 없는 경우
var ErrNotFound = fmt.Errorf("asset not found")

// Manager - 로컬 정적 자산 관리자
// 이미지 바이너리를 staticDir/images 아래에 저장하고 공개 URL을 발급
type Manager struct {
	staticDir string
	baseURL   string
}

// NewManager - 자산 관리자 생성 (images 디렉토리 보장)
func NewManager(staticDir, baseURL string) (*Manager, error) {
	if strings.TrimSpace(staticDir) == "" {
		return nil, fmt.Errorf("static dir is required")
	}
	if err := os.MkdirAll(filepath.Join(staticDir, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images dir: %w", err)
	}
	return &Manager{
		staticDir: staticDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}, nil
}

// Store - 이미지 바이너리 저장 후 공개 URL 반환
// 파일명: <unix timestamp>_<hint> (업로드 원본 파일명 유지)
func (m *Manager) Store(data []byte, hint string) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().Unix(), safeFilename(hint))
	return m.write(data, name)
}

// StoreGenerated - 생성된 이미지 저장 (충돌 방지용 랜덤 suffix)
func (m *Manager) StoreGenerated(data []byte) (string, error) {
	timestamp := time.Now().UnixNano() / int64(time.Millisecond)
	name := fmt.Sprintf("generated_%d_%d.png", timestamp, rand.Intn(999999))
	return m.write(data, name)
}

// StoreDataURL - data URL 페이로드를 PNG로 변환해서 저장
func (m *Manager) StoreDataURL(dataURL, hint string) (string, error) {
	data, _, err := imaging.DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	pngData, err := imaging.ConvertToPNG(data)
	if err != nil {
		return "", err
	}
	return m.Store(pngData, hint)
}

// Resolve - 발급된 URL을 로컬 파일 경로로 변환
// baseURL prefix가 있으면 제거, 없으면 상대 경로로 취급
func (m *Manager) Resolve(url string) (string, error) {
	rel := url
	if m.baseURL != "" && strings.HasPrefix(rel, m.baseURL) {
		rel = strings.TrimPrefix(rel, m.baseURL)
	}
	rel = strings.TrimPrefix(rel, "/")
	rel = filepath.Clean(rel)

	// 자산 루트 밖으로 나가는 경로는 거부
	if rel == ".." || strings.HasPrefix(rel, "../") || filepath.IsAbs(rel) {
		return "", ErrNotFound
	}

	if strings.HasPrefix(rel, "static/") {
		return filepath.Join(m.staticDir, strings.TrimPrefix(rel, "static/")), nil
	}
	return rel, nil
}

// Read - 발급된 URL의 이미지 바이너리 읽기 (프롬프트 재첨부용)
func (m *Manager) Read(url string) ([]byte, error) {
	path, err := m.Resolve(url)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Failed to read asset %s: %v", path, err)
		return nil, ErrNotFound
	}
	return data, nil
}

// safeFilename - 업로드 파일명 정리 (경로 탈출 방지)
func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" || name == "." {
		return "image.png"
	}
	return name
}

func (m *Manager) write(data []byte, name string) (string, error) {
	path := filepath.Join(m.staticDir, "images", name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset %s: %w", path, err)
	}
	log.Printf("💾 Asset saved: %s (%d bytes)", path, len(data))
	return m.baseURL + PublicPrefix + name, nil
}
