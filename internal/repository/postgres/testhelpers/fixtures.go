package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetRestaurantIDByName returns the id of a fixture restaurant
func GetRestaurantIDByName(db *sql.DB, name string) (string, error) {
	var id string
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM restaurants WHERE name = $1", name).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("get restaurant id by name %q: %w", name, err)
	}
	return id, nil
}
