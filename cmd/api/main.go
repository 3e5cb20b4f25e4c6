package main

import (
	"context"
	"log"

	"github.com/labops/labstock/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("labstock api exited: %v", err)
	}
}
