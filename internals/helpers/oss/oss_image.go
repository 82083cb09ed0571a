package helper

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)

	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 80
)

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("format tidak didukung: %s", ct)
	}
}

// resize keep-aspect kalau melebihi batas
func fitWithin(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}
	rw := float64(maxW) / float64(w)
	rh := float64(maxH) / float64(h)
	r := rw
	if rh < rw {
		r = rh
	}
	nw, nh := int(float64(w)*r), int(float64(h)*r)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   Entry points untuk controller
======================================================================= */

// EncodeFormFileToWebP: multipart file → WebP bytes
func EncodeFormFileToWebP(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("ukuran file melebihi %d bytes", maxUploadSize)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("buka file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("baca file: %w", err)
	}
	if int64(len(all)) > maxUploadSize {
		return nil, fmt.Errorf("ukuran file melebihi %d bytes", maxUploadSize)
	}

	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}
	return encodeWebP(fitWithin(img, webpMaxW, webpMaxH))
}

// DecodeBase64Image: payload base64 (dengan atau tanpa data-URL header) → WebP bytes.
// Dipakai submission handler; error di sini adalah error VALIDASI, bukan error upload.
func DecodeBase64Image(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("payload kosong")
	}
	// dukung "data:image/png;base64,...."
	if i := strings.Index(payload, ","); i >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("base64 tidak valid: %w", err)
	}
	if int64(len(raw)) > maxUploadSize {
		return nil, fmt.Errorf("ukuran gambar melebihi %d bytes", maxUploadSize)
	}
	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}
	return encodeWebP(fitWithin(img, webpMaxW, webpMaxH))
}

func randomObjectName() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
