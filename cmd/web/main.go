package main

import (
	"workhive_backend/internal/app"
	"workhive_backend/internal/logger"
)

func main() {
	a, err := app.New()
	if err != nil {
		logger.Fatal("Failed to start application", "error", err)
	}

	if err := a.Run(); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}
