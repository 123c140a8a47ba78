package kernelspec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nbstack/kernelsync/pkg/condaenv"
)

// Writer installs descriptor directories under a kernel root.
type Writer struct {
	root   string
	prefix string
	logger *log.Logger
}

// NewWriter creates a Writer for the given kernel root.
func NewWriter(root string) *Writer {
	return &Writer{
		root:   root,
		prefix: DirPrefix,
		logger: log.Default(),
	}
}

// SetPrefix overrides the generated-directory prefix.
func (w *Writer) SetPrefix(prefix string) {
	if prefix != "" {
		w.prefix = prefix
	}
}

// SetLogger replaces the writer's logger.
func (w *Writer) SetLogger(logger *log.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// Clean removes every generated descriptor directory under the root. A
// missing root is fine; entries without the prefix are left alone.
func (w *Writer) Clean() error {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read kernel root: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), w.prefix) {
			continue
		}
		w.logger.Info("removing generated kernel", "dir", entry.Name())
		if err := os.RemoveAll(filepath.Join(w.root, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// WriteAll sweeps stale generated descriptors, then writes one descriptor
// directory per environment. Running it twice leaves exactly one directory
// per environment.
func (w *Writer) WriteAll(envs []condaenv.Environment) error {
	if err := w.Clean(); err != nil {
		return err
	}

	if len(envs) == 0 {
		w.logger.Info("no environments recorded, nothing to write")
		return nil
	}

	if err := os.MkdirAll(w.root, 0755); err != nil {
		return fmt.Errorf("failed to create kernel root: %w", err)
	}

	for _, env := range envs {
		dir := filepath.Join(w.root, w.prefix+env.Name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create kernel directory: %w", err)
		}

		data, err := json.Marshal(New(env.Name, env.Interpreter))
		if err != nil {
			return fmt.Errorf("failed to marshal kernel spec: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", FileName, err)
		}

		w.logger.Info("wrote kernel descriptor", "env", env.Name, "dir", dir)
	}

	return nil
}
