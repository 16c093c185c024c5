package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = 8080
	defaultAdminCORS = "http://localhost:7000,http://localhost:7001"
	defaultStoreCORS = "http://localhost:8000"
)

// PayhereConfig holds the merchant credentials. It is built once at start and
// passed by value, so nothing mutates it after boot.
type PayhereConfig struct {
	MerchantID     string
	MerchantSecret string
	AppID          string
	AppSecret      string
}

// HasMerchant reports whether payment operations may run at all.
func (c PayhereConfig) HasMerchant() bool {
	return c.MerchantID != "" && c.MerchantSecret != ""
}

// HasApp reports whether the app credentials needed by the merchant API
// (refunds, captures) are present.
func (c PayhereConfig) HasApp() bool {
	return c.AppID != "" && c.AppSecret != ""
}

type HTTPConfig struct {
	Port      int
	StoreCORS []string
	AdminCORS []string
}

// LoadEnvFile loads the dotenv file matching APP_ENV (or NODE_ENV):
// production => .env.production, staging => .env.staging, test => .env.test,
// anything else => .env. A missing file is not an error.
func LoadEnvFile() string {
	name := EnvFileName(firstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("NODE_ENV")))
	if err := godotenv.Load(name); err != nil {
		log.Printf("[config] env file not loaded file=%s err=%v", name, err)
		return name
	}
	log.Printf("[config] env file loaded file=%s", name)
	return name
}

func EnvFileName(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production":
		return ".env.production"
	case "staging":
		return ".env.staging"
	case "test":
		return ".env.test"
	default:
		return ".env"
	}
}

func PayhereFromEnv() PayhereConfig {
	cfg := PayhereConfig{
		MerchantID:     strings.TrimSpace(os.Getenv("PAYHERE_MERCHANT_ID")),
		MerchantSecret: strings.TrimSpace(os.Getenv("PAYHERE_MERCHANT_SECRET")),
		AppID:          strings.TrimSpace(os.Getenv("PAYHERE_APP_ID")),
		AppSecret:      strings.TrimSpace(os.Getenv("PAYHERE_APP_SECRET")),
	}
	if !cfg.HasMerchant() {
		log.Printf("[config] payhere merchant id/secret missing; payment operations will be rejected")
	}
	return cfg
}

func HTTPFromEnv() HTTPConfig {
	port, err := strconv.Atoi(getenvDefault("PORT", strconv.Itoa(defaultPort)))
	if err != nil || port <= 0 {
		log.Printf("[config] invalid PORT=%q; using %d", os.Getenv("PORT"), defaultPort)
		port = defaultPort
	}
	return HTTPConfig{
		Port:      port,
		StoreCORS: splitList(getenvDefault("STORE_CORS", defaultStoreCORS)),
		AdminCORS: splitList(getenvDefault("ADMIN_CORS", defaultAdminCORS)),
	}
}

// AllowedOrigins returns the union of store and admin origins.
func (c HTTPConfig) AllowedOrigins() []string {
	seen := make(map[string]struct{}, len(c.StoreCORS)+len(c.AdminCORS))
	out := make([]string, 0, len(c.StoreCORS)+len(c.AdminCORS))
	for _, o := range append(append([]string{}, c.StoreCORS...), c.AdminCORS...) {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
