package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	MaxBodyBytes     int64

	// Auth / Security
	JWTSecret string
	TokenTTL  time.Duration // session and verification tokens share one lifetime

	// Verification links mailed to new accounts. The service appends
	// /verify?token=<token> to this URL.
	PublicBaseURL string

	// Account store
	UsersFile string

	// Text-generation collaborator
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	// Mail collaborator
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPInsecure bool
	SMTPTimeout  time.Duration

	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	cfg.PublicBaseURL = strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("missing required env var: PUBLIC_BASE_URL")
	}

	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("missing required env var: GROQ_API_KEY")
	}

	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	if cfg.SMTPFrom == "" {
		return nil, fmt.Errorf("missing required env var: SMTP_FROM")
	}

	// optional with defaults
	ttl, err := getDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	cfg.UsersFile = getEnv("USERS_FILE", "users.json")

	cfg.GroqModel = getEnv("GROQ_MODEL", "llama-3.3-70b-versatile")
	cfg.GroqBaseURL = strings.TrimRight(getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"), "/")

	cfg.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	port, err := getInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTPPort = port
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPInsecure = strings.EqualFold(os.Getenv("SMTP_INSECURE"), "true")

	st, err := getDuration("SMTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.SMTPTimeout = st

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	mb, err := getInt("MAX_BODY_BYTES", 2<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxBodyBytes = int64(mb)

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
