// Interactive console planner: asks for a profile on stdin, prints BMI,
// daily calorie needs and a scaled meal plan, and offers to edit and rerun.
// Usage: go run ./cmd/diet-planner
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"lg/diet-planner/internal/config"
	"lg/diet-planner/internal/logging"
	"lg/diet-planner/internal/session"
)

func main() {
	// Logs share the terminal with the dialogue: default to warn, on stderr.
	cfg, err := config.Load(zerolog.WarnLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logging.New("diet-planner", cfg, os.Stderr)

	if err := session.New(os.Stdin, os.Stdout, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("session ended with error")
	}
}
