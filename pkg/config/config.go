package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string

	ResendApiKey string
	EmailFrom    string
	EmailReplyTo string
	FrontendURL  string

	GroqApiKey string
	GroqModel  string

	// DemoTutors keeps the tutor directory non-empty when the store is
	// empty or unreachable. Disable in production.
	DemoTutors bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		ResendApiKey:    getEnv("RESEND_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "TutorConnect <onboarding@resend.dev>"),
		EmailReplyTo:    getEnv("EMAIL_REPLY_TO", "support@tutorconnect.com"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		GroqApiKey:      getEnv("GROQ_API_KEY", ""),
		GroqModel:       getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		DemoTutors:      getEnvAsBool("DEMO_TUTORS", true),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
