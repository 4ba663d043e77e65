package refimage

import (
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"anim-studio-server/modules/common/assets"
)

// Loader - 프롬프트에 재첨부할 참조 이미지 로더
// 같은 캐릭터 시트를 매 호출마다 디스크에서 다시 읽지 않도록 캐싱
type Loader struct {
	assets *assets.Manager
	cache  *cache.Cache
}

// NewLoader - 참조 이미지 로더 생성
func NewLoader(manager *assets.Manager) *Loader {
	return &Loader{
		assets: manager,
		// 참조 이미지 다운로드 결과를 보관하는 캐시
		cache: cache.New(30*time.Minute, 1*time.Hour),
	}
}

// Load - URL의 이미지 바이너리 로드 (캐시 우선)
func (l *Loader) Load(url string) ([]byte, error) {
	if cached, found := l.cache.Get(url); found {
		return cached.([]byte), nil
	}

	data, err := l.assets.Read(url)
	if err != nil {
		return nil, err
	}

	l.cache.Set(url, data, cache.DefaultExpiration)
	return data, nil
}

// LoadAll - 여러 URL을 로드, 없는 첨부는 건너뜀 (생성은 계속 진행)
func (l *Loader) LoadAll(urls []string) [][]byte {
	images := make([][]byte, 0, len(urls))
	for _, url := range urls {
		data, err := l.Load(url)
		if err != nil {
			log.Printf("⚠️  Skipping missing attachment %s: %v", url, err)
			continue
		}
		images = append(images, data)
	}
	return images
}
