// Package filesystem reads documentation files from a local folder.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
	"github.com/tracedocs/ddsdocs-cli/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.FileScanner = (*Scanner)(nil)

// Scanner discovers supported documentation files under a root folder.
type Scanner struct{}

// New creates a new filesystem scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan walks root recursively and returns every supported file in
// lexicographic path order. A missing root is not an error: it yields an
// empty result, the same as an empty folder.
func (s *Scanner) Scan(ctx context.Context, root string) ([]domain.FileRef, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory: %w", root, domain.ErrInvalidInput)
	}

	var refs []domain.FileRef
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || !domain.IsSupportedFile(path) {
			return nil
		}

		fileInfo, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		format, _ := domain.FormatForPath(path) // IsSupportedFile guarantees ok
		refs = append(refs, domain.FileRef{
			Path:     path,
			Format:   format,
			Size:     fileInfo.Size(),
			Modified: fileInfo.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	// WalkDir is lexical per directory; sorting the full paths makes the
	// cross-directory order explicit.
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })

	return refs, nil
}

// Read returns the raw bytes of a single file.
func (s *Scanner) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Watch emits the path of every supported file that is created, written,
// renamed or removed under root. Subdirectories created while watching are
// picked up as well. The channel closes when ctx is cancelled.
func (s *Scanner) Watch(ctx context.Context, root string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	changes := make(chan string, 16)
	go func() {
		defer watcher.Close()
		defer close(changes)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				s.handleEvent(ctx, watcher, event, changes)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// handleEvent registers newly created directories and forwards changes to
// supported files.
func (s *Scanner) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, changes chan<- string) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				logger.Warn("Failed to watch %s: %v", event.Name, err)
			}
			return
		}
	}

	if !domain.IsSupportedFile(event.Name) {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	select {
	case changes <- event.Name:
	case <-ctx.Done():
	}
}
