// Package envfile parses dotenv files discovered in the installation.
package envfile

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Parse reads a .env file into a key/value map without touching the
// process environment.
func Parse(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}
