package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates the settings the server cannot run without.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	if os.Getenv("DB_URL") == "" {
		if os.Getenv("DB_HOST") == "" || os.Getenv("DB_PORT") == "" ||
			os.Getenv("DB_USER") == "" || os.Getenv("DB_PASSWORD") == "" ||
			os.Getenv("DB_NAME") == "" {
			return fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}
	}

	return nil
}

// JWTSecret returns the token signing secret. LoadConfig guarantees it is
// non-empty before the server starts.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Port returns the HTTP listen port, defaulting to 3000.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3000"
}
