package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/noir"
	noirlc "github.com/aretw0/noir/pkg/adapters/lifecycle"
)

var (
	watchPattern string
	watchStdin   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print note changes as they happen",
	Long: `Watch the notes directory and print one line per change until interrupted.
With --capture-stdin, each line read from stdin is published as captured text
and echoed on the same stream.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := openService(noir.WithWatcherErrorHandler(func(err error) {
			slog.Warn("watcher error", "error", err)
		}))
		defer svc.Close()

		changes, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch notes", err)
		}
		notes := noirlc.NewSource(changes)
		if err := notes.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}

		captured := noirlc.NewSource(svc.Captures())
		if err := captured.Start(ctx); err != nil {
			fatal("Failed to start capture stream", err)
		}
		if watchStdin {
			go func() {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					svc.Capture(scanner.Text())
				}
			}()
		}

		slog.Info("watching notes", "pattern", watchPattern, "data_dir", filepath.Dir(svc.ImagesPath()))
		noteEvents, captureEvents := notes.Events(), captured.Events()
		for noteEvents != nil || captureEvents != nil {
			select {
			case e, ok := <-noteEvents:
				if !ok {
					noteEvents = nil
					continue
				}
				fmt.Println(e.String())
			case e, ok := <-captureEvents:
				if !ok {
					captureEvents = nil
					continue
				}
				fmt.Printf("CAPTURE %s\n", e.String())
			case <-ctx.Done():
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*.md", "Note file pattern (doublestar syntax)")
	watchCmd.Flags().BoolVar(&watchStdin, "capture-stdin", false, "Publish stdin lines as captured text")
}
