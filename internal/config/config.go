package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServerPort    string
	JWTSecret     string
	AdminPassword string

	// Arquivo único que guarda o documento inteiro da barbearia.
	DataFile string

	// Cache de disponibilidade (vazio = desligado).
	RedisAddr     string
	RedisPassword string
	CacheTTLSec   int

	// Upload de imagens (logo, avatar, fotos do sobre).
	UploadProvider string // local | s3
	UploadDir      string
	UploadMaxMB    int

	S3Bucket          string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicURL       string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		DataFile: getEnv("DATA_FILE", "data/db.json"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTLSec:   getEnvInt("CACHE_TTL_SECONDS", 30),

		UploadProvider: getEnv("UPLOAD_PROVIDER", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "public/uploads"),
		UploadMaxMB:    getEnvInt("UPLOAD_MAX_MB", 5),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
