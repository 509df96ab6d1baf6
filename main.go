package main

import (
	"os"

	"github.com/joho/godotenv"

	"citizen-interview/internal/cli"
)

func main() {
	// .env необязателен: переменные могут прийти из окружения
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
