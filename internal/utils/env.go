package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindProjectRoot walks up from the working directory to the first go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads .env from the working directory, falling back to the project
// root. A missing file is not an error; variables already set are kept.
func LoadEnv() error {
	candidates := []string{".env"}
	if root, err := FindProjectRoot(); err == nil {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}
	for _, path := range candidates {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
