package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// addWatch enables directory watch mode.
var addWatch bool

// settleDelay is how long a watched file must be quiet before ingest.
// Editors and downloads write in bursts; ingesting on the first event
// reads half a file.
const settleDelay = 500 * time.Millisecond

var addCmd = &cobra.Command{
	Use:   "add [file...]",
	Short: "Add documents to the library",
	Long: `Reads the given files, extracts their text, and stores them in the
library. PDF, Markdown, and plain-text files are supported.

With --watch, the argument is a directory: existing supported files are
ingested immediately and new or changed files are picked up until
interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addWatch, "watch", "w", false, "watch a directory and ingest new files")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if addWatch {
		if len(args) != 1 {
			return errors.New("--watch takes exactly one directory")
		}
		return watchDirectory(cmd, args[0])
	}

	var failed int
	for _, path := range args {
		if err := addFile(cmd, path); err != nil {
			failed++
			cmd.PrintErrf("  %s: %v\n", filepath.Base(path), err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// addFile ingests a single file and prints the outcome.
func addFile(cmd *cobra.Command, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	doc, err := libraryService.Add(context.Background(), domain.Upload{
		Name:     name,
		MIMEType: detectMIMEType(path),
		Content:  content,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Added %s (%s, %d bytes)\n", doc.Name, doc.MIMEType, doc.Size)
	return nil
}

// watchDirectory ingests existing supported files, then watches for new
// or modified ones until the process is interrupted.
func watchDirectory(cmd *cobra.Command, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	// Ingest what is already there.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !isSupportedFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := addFile(cmd, path); err != nil {
			cmd.PrintErrf("  %s: %v\n", entry.Name(), err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// Pending files settle before ingest so partially written files are
	// not picked up mid-write.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settleDelay / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isSupportedFile(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < settleDelay {
					continue
				}
				delete(pending, path)
				if err := addFile(cmd, path); err != nil {
					cmd.PrintErrf("  %s: %v\n", filepath.Base(path), err)
				}
			}

		case <-sigCh:
			cmd.Println("Stopping watch")
			return nil
		}
	}
}

// detectMIMEType maps a file path to a MIME type by extension, falling
// back to plain text for unknown extensions.
func detectMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".md", ".markdown":
		return "text/markdown"
	default:
		if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
			// Strip parameters like "; charset=utf-8".
			if idx := strings.Index(mimeType, ";"); idx >= 0 {
				mimeType = mimeType[:idx]
			}
			return mimeType
		}
		return "text/plain"
	}
}

// isSupportedFile reports whether the file name looks like an ingestable
// document. Hidden and temporary files are skipped in watch mode.
func isSupportedFile(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".md", ".markdown", ".txt", ".text", ".csv", ".json", ".yaml", ".yml", ".toml", ".html", ".xml":
		return true
	default:
		return false
	}
}
