package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes is used when the caller does not pass a limit.
const DefaultMaxBytes int64 = 40 << 20

const (
	msgUnsupportedType = "Tipo de arquivo não suportado. Use JPEG, PNG, WEBP ou SVG"
	msgInvalidImage    = "Arquivo de imagem inválido"
	msgUploadFailed    = "Erro ao enviar arquivo"
	msgInvalidURL      = "URL de arquivo inválida"
	msgDeleteFailed    = "Erro ao remover arquivo"
)

var allowedTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// ObjectAPI is the subset of the S3 client the gateway calls.
type ObjectAPI interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Config describes the bucket and how its objects are reached publicly.
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	MaxBytes        int64
}

// File is an upload candidate.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult reports the outcome of an upload. On failure only Error is set.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Key     string `json:"key,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Result reports the outcome of a delete.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Gateway uploads and deletes public images in one bucket.
type Gateway struct {
	client   ObjectAPI
	bucket   string
	region   string
	prefix   string
	maxBytes int64
	log      *zap.Logger
	newKey   func() string

	mu    sync.Mutex
	ready bool
}

// NewS3Client builds a path-style client suitable for MinIO and other
// S3-compatible endpoints.
func NewS3Client(cfg Config) *s3.Client {
	return s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(strings.TrimRight(cfg.Endpoint, "/")),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})
}

// New constructs a Gateway over client.
func New(client ObjectAPI, cfg Config, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(cfg.Endpoint, "/")
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Gateway{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		prefix:   base + "/" + cfg.Bucket + "/",
		maxBytes: maxBytes,
		log:      log,
		newKey:   func() string { return uuid.NewString() },
	}
}

// PublicURL returns the URL an object key is served from.
func (g *Gateway) PublicURL(key string) string {
	return g.prefix + key
}

// Owns reports whether rawURL points into this gateway's bucket.
func (g *Gateway) Owns(rawURL string) bool {
	_, err := g.keyFromURL(rawURL)
	return err == nil
}

// Upload validates file and stores it under a random key. Type and size are
// checked before the bucket is touched. A limit <= 0 falls back to the
// gateway default.
func (g *Gateway) Upload(ctx context.Context, file File, maxBytes int64) UploadResult {
	if maxBytes <= 0 {
		maxBytes = g.maxBytes
	}

	contentType := normalizeContentType(file.ContentType)
	fallbackExt, ok := allowedTypes[contentType]
	if !ok {
		return UploadResult{Error: msgUnsupportedType}
	}
	if file.Size > maxBytes {
		return UploadResult{Error: sizeMessage(maxBytes)}
	}
	if file.Body == nil {
		return UploadResult{Error: msgInvalidImage}
	}

	payload, err := io.ReadAll(io.LimitReader(file.Body, maxBytes+1))
	if err != nil {
		g.log.Warn("read upload failed", zap.Error(err))
		return UploadResult{Error: msgUploadFailed}
	}
	if int64(len(payload)) > maxBytes {
		return UploadResult{Error: sizeMessage(maxBytes)}
	}

	width, height := 0, 0
	if contentType != "image/svg+xml" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(payload))
		if err != nil {
			return UploadResult{Error: msgInvalidImage}
		}
		width, height = cfg.Width, cfg.Height
	}

	if err := g.ensureBucket(ctx); err != nil {
		g.log.Error("ensure bucket failed", zap.String("bucket", g.bucket), zap.Error(err))
		return UploadResult{Error: msgUploadFailed}
	}

	key := g.newKey() + extension(file.Name, fallbackExt)
	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		g.log.Error("put object failed", zap.String("key", key), zap.Error(err))
		return UploadResult{Error: msgUploadFailed}
	}

	return UploadResult{
		Success: true,
		URL:     g.PublicURL(key),
		Key:     key,
		Width:   width,
		Height:  height,
	}
}

// Delete removes the object rawURL points to. URLs outside the bucket are
// rejected without calling storage.
func (g *Gateway) Delete(ctx context.Context, rawURL string) Result {
	key, err := g.keyFromURL(rawURL)
	if err != nil {
		return Result{Error: msgInvalidURL}
	}

	if _, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}); err != nil {
		g.log.Error("delete object failed", zap.String("key", key), zap.Error(err))
		return Result{Error: msgDeleteFailed}
	}
	return Result{Success: true}
}

// ensureBucket runs once per process. A failed attempt is retried on the
// next call.
func (g *Gateway) ensureBucket(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready {
		return nil
	}

	_, err := g.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(g.bucket)})
	if err == nil {
		g.ready = true
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("head bucket: %w", err)
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(g.bucket)}
	if g.region != "" && g.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(g.region),
		}
	}
	if _, err := g.client.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}

	g.log.Info("bucket created", zap.String("bucket", g.bucket))
	g.ready = true
	return nil
}

func (g *Gateway) keyFromURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(trimmed, g.prefix) {
		return "", errors.New("url outside bucket")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", err
	}
	key := path.Base(parsed.Path)
	if key == "" || key == "." || key == "/" || key == g.bucket {
		return "", errors.New("url has no object key")
	}
	return key, nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchBucket":
			return true
		}
	}
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return true
	}
	return false
}

func normalizeContentType(raw string) string {
	contentType := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if contentType == "image/jpg" {
		return "image/jpeg"
	}
	return contentType
}

func extension(name, fallback string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if ext == "" || len(ext) > 6 {
		return fallback
	}
	return ext
}

func sizeMessage(limit int64) string {
	return fmt.Sprintf("Arquivo excede o limite de %dMB", limit>>20)
}
