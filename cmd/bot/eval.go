package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgard/cthulhubot/internal/bot/handlers"
	"github.com/edgard/cthulhubot/internal/config"
	"github.com/edgard/cthulhubot/internal/dice"
)

var errNotACommand = errors.New("not a known command")

// newEvalCmd answers a single command line offline, printing the reply the
// bot would send.
func newEvalCmd() *cobra.Command {
	var seed uint64

	evalCmd := &cobra.Command{
		Use:   "eval <command line>",
		Short: "Evaluate a command line without connecting to Telegram",
		Example: `  bot eval /roll 60 "#Spot Hidden"
  bot eval --seed 7 /cr 2d6+3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Defaults()
			if err != nil {
				return err
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

			src := dice.NewSource()
			if cmd.Flags().Changed("seed") {
				src = dice.NewSeededSource(seed)
			}

			deps := handlers.HandlerDeps{
				Logger: log,
				Config: cfg,
				Roller: dice.NewEvaluator(src, log),
				Source: src,
			}
			dispatcher := handlers.NewDispatcher(deps, handlers.RegisterAllCommands(deps))

			line := strings.Join(args, " ")
			_, reply, ok, err := dispatcher.Evaluate(cmd.Context(), line)
			if !ok {
				return fmt.Errorf("%w: %q", errNotACommand, line)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			return err
		},
	}
	evalCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a deterministic dice source")

	return evalCmd
}
