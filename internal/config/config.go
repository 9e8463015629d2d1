package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort          string
	JWTSecret         string
	CORSOrigins       string
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash, env'den gelir (veritabanı yok)
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		CORSOrigins:       getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@siparis.local"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.AdminPasswordHash == "" {
		log.Fatal("[FATAL] ADMIN_PASSWORD_HASH environment değişkeni tanımlanmamış! bcrypt hash bekleniyor.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}
	if cfg.AdminEmail == "admin@siparis.local" {
		log.Println("[WARN] ADMIN_EMAIL varsayılan değer kullanılıyor.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
