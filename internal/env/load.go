package env

import (
	"os"

	"github.com/joho/godotenv"
)

// ConfigPathVar names the variable holding the world config path.
const ConfigPathVar = "CUBEWORLD_CONFIG"

// Load reads the given file (e.g. ".env") and sets environment variables for each
// KEY=VALUE line. Variables already set in the environment win.
// The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// ConfigPath returns $CUBEWORLD_CONFIG, or fallback when it is unset or empty.
func ConfigPath(fallback string) string {
	if p := os.Getenv(ConfigPathVar); p != "" {
		return p
	}
	return fallback
}
