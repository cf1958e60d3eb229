//go:build !prod

package database

// GetDefaultDBPath returns the SQLite file used when DATABASE_URL is unset.
// Development builds keep it in the working directory.
func GetDefaultDBPath() string {
	return "blogly.db"
}

func IsDevelopment() bool {
	return true
}
