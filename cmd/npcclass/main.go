// Package main runs the NPC class loader.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	npcclasscmd "github.com/louisbranch/gamedata/internal/cmd/npcclass"
	"github.com/louisbranch/gamedata/internal/platform/config"
)

func main() {
	cfg, err := npcclasscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[NPCCLASS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := npcclasscmd.Run(ctx, cfg, os.Stdout); err != nil {
		if errors.Is(err, npcclasscmd.ErrInconsistent) {
			stop()
			config.ExitCodef(2, "npcclass: %v", err)
		}
		stop()
		config.Exitf("npcclass: %v", err)
	}
}
