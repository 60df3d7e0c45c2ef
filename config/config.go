package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if one is present. Running without
// a .env file is fine in deployed environments where everything comes from
// the process environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on process environment")
	}
}
