// Package main balances the spellbook and saves the generated catalog.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/cmd"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/config"
	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/tools/spellbook"
)

func main() {
	cfg, err := spellbook.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	err = cmd.RunWithTelemetry(ctx, cmd.ServiceSpellbook, func(ctx context.Context) error {
		return spellbook.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %s", apperrors.Localize(err, cfg.Locale))
	}
}
