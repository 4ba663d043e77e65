package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixelBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mP8/x8AAwMB/6X+ZQAAAABJRU5ErkJggg=="

func TestDecodeDataURL(t *testing.T) {
	data, mimeType, err := DecodeDataURL("data:image/png;base64," + pixelBase64)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)

	expected, _ := base64.StdEncoding.DecodeString(pixelBase64)
	assert.Equal(t, expected, data)
}

func TestDecodeDataURLWithoutHeader(t *testing.T) {
	data, mimeType, err := DecodeDataURL(pixelBase64)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.NotEmpty(t, data)
}

func TestDecodeDataURLInvalid(t *testing.T) {
	_, _, err := DecodeDataURL("data:image/png;base64")
	assert.Error(t, err)

	_, _, err = DecodeDataURL("data:image/png;base64,%%%not-base64%%%")
	assert.Error(t, err)
}

func TestConvertToPNGPassesThroughPNG(t *testing.T) {
	data, _ := base64.StdEncoding.DecodeString(pixelBase64)

	out, err := ConvertToPNG(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestConvertToPNGFromJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	out, err := ConvertToPNG(buf.Bytes())
	require.NoError(t, err)

	// PNG로 다시 디코딩 가능해야 함
	_, err = png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestConvertToPNGRejectsGarbage(t *testing.T) {
	_, err := ConvertToPNG([]byte("definitely not an image"))
	assert.Error(t, err)
}
