package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG 디코더 등록
	"image/png"
	"net/http"
	"strings"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// DecodeDataURL - data URL (data:image/png;base64,...) 을 바이너리로 변환
// 헤더가 없는 순수 base64 문자열도 허용
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	payload := dataURL
	mimeType := ""

	if strings.HasPrefix(dataURL, "data:") {
		idx := strings.Index(dataURL, ",")
		if idx < 0 {
			return nil, "", fmt.Errorf("invalid data URL: missing comma separator")
		}
		header := dataURL[len("data:"):idx]
		payload = dataURL[idx+1:]

		if semi := strings.Index(header, ";"); semi >= 0 {
			mimeType = header[:semi]
		} else {
			mimeType = header
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	if mimeType == "" {
		mimeType = SniffMime(data)
	}
	return data, mimeType, nil
}

// SniffMime - 바이너리에서 MIME 타입 추정
func SniffMime(data []byte) string {
	return http.DetectContentType(data)
}

// ConvertToPNG - 지원하는 포맷(PNG/JPEG/WebP)을 PNG로 재인코딩
// 이미 PNG면 그대로 반환
func ConvertToPNG(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) {
		return data, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG (source: %s): %w", format, err)
	}
	return buf.Bytes(), nil
}
