// cmd/statsguru/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/statsguru/internal/cli"
)

func main() {
	// Rows are flushed per record, so an interrupt only loses the page in flight
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Interrupt received, stopping")
		os.Exit(1)
	}()

	cli.Execute()
}
