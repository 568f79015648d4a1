package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mdsplice/mdsplice/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file> <ops-dir>",
	Short: "Apply batch files dropped into a directory to a target document",
	Long: `Watches ops-dir for new or changed .yaml/.json batch files, applying each
one to file and writing the result back atomically, after a 100ms
debounce window.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, opsDir := args[0], args[1]

		if _, err := os.Stat(target); err != nil {
			return reportError(fmt.Errorf("target %s: %w", target, err), false)
		}
		if info, err := os.Stat(opsDir); err != nil || !info.IsDir() {
			return reportError(fmt.Errorf("ops directory %s not found", opsDir), false)
		}

		w := watch.New(target, opsDir, slog.Default())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- w.Run() }()

		fmt.Printf("watching %s for batches to apply to %s\n", opsDir, target)

		select {
		case err := <-errCh:
			if err != nil {
				return reportError(err, false)
			}
			return nil
		case <-ctx.Done():
			w.Stop()
			fmt.Println("stopped watching")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
