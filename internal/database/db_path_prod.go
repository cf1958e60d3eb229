//go:build prod

package database

import (
	"log"
	"os"
	"path/filepath"
)

// GetDefaultDBPath returns the SQLite file used when DATABASE_URL is unset.
// Production builds keep it under the user's config directory.
func GetDefaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("database: no user config dir (%v), using ./blogly.db", err)
		return "blogly.db"
	}

	appDir := filepath.Join(configDir, "blogly")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		log.Printf("database: cannot create %s (%v), using ./blogly.db", appDir, err)
		return "blogly.db"
	}

	return filepath.Join(appDir, "blogly.db")
}

func IsDevelopment() bool {
	return false
}
