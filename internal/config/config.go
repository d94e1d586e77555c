package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	JWTSecret string
	JWTTTL    time.Duration

	// RabbitURL is optional; when empty the service runs without event
	// publishing.
	RabbitURL string

	UploadDir string

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "5000"),

		MongoURI: getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "tonnishop"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    parseDuration(getenv("JWT_TTL", "720h"), 720*time.Hour),

		RabbitURL: os.Getenv("RABBITMQ_URL"),

		UploadDir: getenv("UPLOAD_DIR", "uploads"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
