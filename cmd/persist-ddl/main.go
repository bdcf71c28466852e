// Command persist-ddl prints the DDL of entities declared in YAML files.
//
//	persist-ddl --dialect postgres --drop entities.yaml
//	persist-ddl --watch entities.yaml
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/persist/dialect/all"
	"github.com/syssam/persist/query"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var (
		name    string
		drop    bool
		watch   bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "persist-ddl [flags] file.yaml...",
		Short: "Print the DDL of entities declared in YAML",
		Example: `  persist-ddl entities.yaml
  persist-ddl --dialect mysql --drop entities.yaml
  persist-ddl --watch entities.yaml`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			d, err := all.Get(name)
			if err != nil {
				return err
			}
			r := &renderer{gen: query.New(d), drop: drop, out: cmd.OutOrStdout(), log: logger}
			if watch {
				return r.watch(cmd.Context(), args)
			}
			return r.renderFiles(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&name, "dialect", "d", "h2", "Target dialect: "+strings.Join(all.Names(), ", "))
	cmd.Flags().BoolVar(&drop, "drop", false, "Emit drop statements before create statements")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when an input file changes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}
