package fallback

import "strings"

// DefaultImageName - 생성 실패 시 돌려주는 고정 placeholder 자산
const DefaultImageName = "default.svg"

// DefaultImageURL - placeholder 이미지의 공개 URL
func DefaultImageURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/static/images/" + DefaultImageName
}

// DefaultImageURLs - placeholder URL n개 복사본
// 캐릭터 시트 생성 실패 시 5장짜리 fallback에 사용
func DefaultImageURLs(baseURL string, n int) []string {
	urls := make([]string, n)
	url := DefaultImageURL(baseURL)
	for i := range urls {
		urls[i] = url
	}
	return urls
}
