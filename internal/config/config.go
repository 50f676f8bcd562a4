package config

import (
	"log"
	"os"
)

// fallbackJWTSecret is the insecure built-in signing key the portal has
// always shipped with. It is only used when JWT_SECRET is unset; the
// Config records that fact so deployments can alert on it.
const fallbackJWTSecret = "IEF_SUPER_SECRET_KEY_2025"

type Config struct {
	MongoURI          string
	MongoDatabase     string
	JWTSecret         []byte
	InsecureJWTSecret bool
	Port              string
	UploadsDir        string
}

func New() *Config {
	cfg := &Config{
		MongoURI:      getenv("MONGO_URI", "mongodb://127.0.0.1:27017/kec_ief"),
		MongoDatabase: getenv("DB_NAME", "kec_ief"),
		Port:          getenv("PORT", "4000"),
		UploadsDir:    getenv("UPLOADS_DIR", "uploads"),
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("WARNING: JWT_SECRET not set, falling back to the built-in signing key")
		secret = fallbackJWTSecret
		cfg.InsecureJWTSecret = true
	}
	cfg.JWTSecret = []byte(secret)

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
