package helper

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeBase64ImagePlainPayload(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(pngBytes(t, 10, 10))
	out, err := DecodeBase64Image(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDecodeBase64ImageDataURLHeader(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 4, 4))
	out, err := DecodeBase64Image(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDecodeBase64ImageRejectsBadInput(t *testing.T) {
	_, err := DecodeBase64Image("")
	assert.Error(t, err)

	_, err = DecodeBase64Image("bukan base64!!!")
	assert.Error(t, err)

	// base64 valid tapi bukan gambar
	notImage := base64.StdEncoding.EncodeToString([]byte("halo dunia ini bukan gambar"))
	_, err = DecodeBase64Image(notImage)
	assert.Error(t, err)
}

func TestFitWithinDownscalesKeepingAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3200, 1600))
	got := fitWithin(src, webpMaxW, webpMaxH)
	b := got.Bounds()
	assert.Equal(t, 1600, b.Dx())
	assert.Equal(t, 800, b.Dy())

	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, small.Bounds(), fitWithin(small, webpMaxW, webpMaxH).Bounds())
}
