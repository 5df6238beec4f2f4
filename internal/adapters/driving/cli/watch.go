package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/james-keevy/acqf-eqf-comparator/internal/logger"
)

// watchDebounce collapses the burst of events editors emit for one save.
const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-extract a file every time it changes",
	Long: `Prints the descriptor table of a file, then watches it and prints a fresh
table after every save. Useful while tuning a CSV by hand. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	render := func() {
		result, err := processFile(cmd.Context(), path, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), warningStyle.Render("error: "+err.Error()))
			return
		}
		cmd.Println(mutedStyle.Render(fmt.Sprintf("%s  %s", time.Now().Format(time.TimeOnly), filepath.Base(path))))
		if result.Empty() {
			cmd.Println("No level descriptors found.")
			return
		}
		for _, level := range result.Table.Levels() {
			printLevel(cmd, result.Table, level)
		}
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch %s: %w", args[0], err)
	}
	render()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFile(ctx, path, func() {
		cmd.Println()
		render()
	})
}

// watchFile calls onChange after each write to path until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are still seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching directory %s: %w", filepath.Dir(target), err)
	}
	logger.Debug("watching %s", target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(watchDebounce)
			}

		case <-pending:
			pending = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch %s: %v", target, err)
		}
	}
}
