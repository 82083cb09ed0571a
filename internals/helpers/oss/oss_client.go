package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	ak := getEnv("OSS_ACCESS_KEY_ID")
	sk := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Verifikasi ringan lokasi bucket
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadBytes menulis object apa adanya. key relatif terhadap Prefix.
func (s *OSSService) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	fullKey := s.withPrefix(key)
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
		oss.WithContext(ctx),
	}
	if err := s.Bucket.PutObject(fullKey, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss put %s: %w", fullKey, err)
	}
	return s.PublicURL(fullKey), nil
}

// UploadAsWebP membaca file multipart (jpg/png/webp), re-encode ke WebP, lalu upload.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, dir string) (string, error) {
	data, err := EncodeFormFileToWebP(fh)
	if err != nil {
		return "", err
	}
	key := strings.Trim(dir, "/") + "/" + randomObjectName() + ".webp"
	return s.UploadBytes(ctx, key, data, "image/webp")
}

// UploadFormFile mengunggah file multipart apa adanya (tanpa re-encode),
// mempertahankan ekstensi aslinya. Dipakai untuk materi kelas non-gambar.
func (s *OSSService) UploadFormFile(ctx context.Context, fh *multipart.FileHeader, dir string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran file maksimal %d MB", maxUploadSize/(1<<20))
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open form file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read form file: %w", err)
	}
	if int64(len(data)) > maxUploadSize {
		return "", fmt.Errorf("ukuran file maksimal %d MB", maxUploadSize/(1<<20))
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	name := randomObjectName()
	if ext := path.Ext(fh.Filename); ext != "" {
		name += strings.ToLower(ext)
	}
	key := strings.Trim(dir, "/") + "/" + name
	return s.UploadBytes(ctx, key, data, contentType)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(s.withPrefix(key), oss.WithContext(ctx))
}

// DeleteByPublicURL menghapus object dari URL publiknya (best-effort parse).
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	u, err := url.Parse(publicURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return fmt.Errorf("empty object key in url %q", publicURL)
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) PublicURL(fullKey string) string {
	// endpoint bisa berupa "oss-ap-southeast-5.aliyuncs.com" atau URL lengkap
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, fullKey)
}

func (s *OSSService) withPrefix(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + "/" + key
}
