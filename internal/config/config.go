package config

import "os"

// Config holds everything the process reads from the environment.
// Values come from os.Getenv (a .env file is loaded in main via godotenv);
// every field has a development default so the server runs out of the box.
type Config struct {
	Port     string // main CRUD API listener
	DemoPort string // api-key demo listener
	DBFile   string // path to the JSON datastore document
	APIKey   string // static key for the /secure-data demo route
}

func Load() Config {
	return Config{
		Port:     getenv("PORT", "3000"),
		DemoPort: getenv("DEMO_PORT", "5000"),
		DBFile:   getenv("DB_FILE", "db.json"),
		APIKey:   getenv("API_KEY", "cosmogalaxy123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
