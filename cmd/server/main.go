package main

import (
	"log"

	"ruin-platform/internal/app"
)

func main() {
	server := app.NewServer()
	log.Fatal(server.Start())
}
