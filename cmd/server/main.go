// Command server runs the hackweek backend HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; see internal/config for the full list.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/hackweekhq/hackweek-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
