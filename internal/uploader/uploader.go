package uploader

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/botovelho/barbearia-api/internal/config"
	"github.com/botovelho/barbearia-api/internal/httperr"
)

// ===============================
// Upload de imagens
// ===============================
//
// Logo, avatar dos barbeiros e fotos do "sobre". JPEG e PNG são
// reencodados em WebP (com downscale se a imagem for grande demais);
// GIF e WebP passam direto. Destino: disco local ou S3.

const maxDimension = 1600

var ErrUnsupportedType = httperr.ErrBusiness("invalid_type")

type Service struct {
	provider  string
	dir       string
	bucket    string
	region    string
	publicURL string
	s3c       *s3.Client
	log       zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) *Service {
	s := &Service{
		provider:  strings.ToLower(cfg.UploadProvider),
		dir:       cfg.UploadDir,
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		publicURL: cfg.S3PublicURL,
		log:       logger,
	}

	if s.provider == "s3" {
		s.s3c = s3.New(s3.Options{
			Region: cfg.S3Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
			),
		})
	}

	return s
}

// Save converte (quando faz sentido), persiste e devolve a URL pública.
func (s *Service) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	data, contentType, err := s.normalize(data, contentType)
	if err != nil {
		return "", err
	}

	filename := uuid.NewString() + extensionFor(contentType)

	if s.provider == "s3" {
		return s.saveS3(ctx, data, contentType, filename)
	}
	return s.saveLocal(data, filename)
}

func (s *Service) normalize(data []byte, contentType string) ([]byte, string, error) {
	switch contentType {
	case "image/jpeg", "image/png":
		converted, err := toWebP(data)
		if err != nil {
			// imagem corrompida: melhor recusar do que guardar lixo
			return nil, "", fmt.Errorf("reencode: %w", ErrUnsupportedType)
		}
		return converted, "image/webp", nil
	case "image/webp", "image/gif":
		return data, contentType, nil
	default:
		return nil, "", ErrUnsupportedType
	}
}

func toWebP(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func (s *Service) saveLocal(data []byte, filename string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + filename, nil
}

func (s *Service) saveS3(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	key := "uploads/" + filename

	_, err := s.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}

	base := s.publicURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.bucket, s.region)
	}
	return base + "/" + key, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/jpeg":
		return ".jpg"
	default:
		return ".png"
	}
}
