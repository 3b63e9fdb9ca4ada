package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ImageExt is the extension of every stored image
const ImageExt = ".png"

// Manager handles file storage inside the download directory
type Manager struct {
	outputDir string
}

// New returns a manager for outputDir without touching the filesystem
func New(outputDir string) *Manager {
	return &Manager{outputDir: outputDir}
}

// NewManager creates the output directory (idempotently) and returns a manager for it
func NewManager(outputDir string) (*Manager, error) {
	m := New(outputDir)
	if err := m.EnsureDir(); err != nil {
		return nil, err
	}
	return m, nil
}

// EnsureDir creates the output directory and any missing parents
func (m *Manager) EnsureDir() error {
	if err := os.MkdirAll(m.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// PathFor returns the destination path for an image ID
func (m *Manager) PathFor(id int) string {
	return filepath.Join(m.outputDir, strconv.Itoa(id)+ImageExt)
}

// SaveImage copies r into {id}.png and returns the number of bytes written.
// An existing file for the ID is replaced.
func (m *Manager) SaveImage(r io.Reader, id int) (int64, error) {
	filename := m.PathFor(id)

	out, err := os.CreateTemp(m.outputDir, "."+strconv.Itoa(id)+"-*.part")
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempFile := out.Name()

	n, err := io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to save image data: %w", err)
	}
	if closeErr != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to close file: %w", closeErr)
	}

	if err := os.Chmod(tempFile, 0644); err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return n, nil
}

// Remove deletes the image for id if it exists
func (m *Manager) Remove(id int) error {
	err := os.Remove(m.PathFor(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", m.PathFor(id), err)
	}
	return nil
}

// Exists reports whether an image for id is on disk
func (m *Manager) Exists(id int) bool {
	_, err := os.Stat(m.PathFor(id))
	return err == nil
}

// ListIDs returns the IDs of all stored images in ascending order
func (m *Manager) ListIDs() ([]int, error) {
	entries, err := os.ReadDir(m.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var ids []int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ImageExt {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, ImageExt))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids, nil
}

// GetOutputDir returns the output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}
