package main

import (
	"context"
	"log"

	"bookstore/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (postgres, modules, http server).
// 3) Serve until the listener fails.
func main() {
	log.Println("bookstore api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("bookstore api stopped with error: %v", err)
	}
}
