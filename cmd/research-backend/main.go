package main

import (
	"log"

	"github.com/glowup/research-backend/internal/builder"
)

func main() {
	app, err := builder.Build()
	if err != nil {
		log.Fatalf("research-backend: build: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("research-backend: run: %v", err)
	}
}
