package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseJWKSURL    string
	AIAPIKey           string
	AIBaseURL          string
	AIDefaultModel     string
	SystemCronToken    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	SupabaseURL = MustGetEnv("SUPABASE_URL")
	SupabaseServiceKey = MustGetEnv("SUPABASE_SERVICE_KEY")
	SupabaseJWKSURL = MustGetEnv("SUPABASE_JWKS_URL")
	AIAPIKey = MustGetEnv("AI_API_KEY")
	AIBaseURL = GetEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai")
	AIDefaultModel = GetEnv("AI_DEFAULT_MODEL", "gemini-2.5-flash")
	SystemCronToken = MustGetEnv("SYSTEM_CRON_TOKEN")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// MustGetEnv stops the process when a required key is absent.
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("❌ %s is not set", key)
	}
	return value
}
