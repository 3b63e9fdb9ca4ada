// Package archive packs the download directory into a single zip file.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Result describes a written archive
type Result struct {
	Path  string
	Files int
}

// CreateZip recursively zips srcDir into dest, like `zip -r dest srcDir`.
// Entry names are prefixed with the base name of srcDir. The archive is
// written to a temporary file next to dest and renamed into place, so a
// failed run never leaves a truncated archive.
func CreateZip(srcDir, dest string) (*Result, error) {
	srcDir = filepath.Clean(srcDir)
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", srcDir)
	}

	out, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+"-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary archive: %w", err)
	}
	tempFile := out.Name()

	files, err := writeTree(out, srcDir)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return nil, err
	}
	if closeErr != nil {
		os.Remove(tempFile)
		return nil, fmt.Errorf("failed to close archive: %w", closeErr)
	}

	if err := os.Chmod(tempFile, 0644); err != nil {
		os.Remove(tempFile)
		return nil, fmt.Errorf("failed to set archive mode: %w", err)
	}
	if err := os.Rename(tempFile, dest); err != nil {
		os.Remove(tempFile)
		return nil, fmt.Errorf("failed to rename archive: %w", err)
	}

	return &Result{Path: dest, Files: files}, nil
}

func writeTree(w io.Writer, srcDir string) (int, error) {
	zw := zip.NewWriter(w)
	base := filepath.Dir(srcDir)
	files := 0

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}

		if d.IsDir() {
			header.Name = name + "/"
			header.Method = zip.Store
			_, err = zw.CreateHeader(header)
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		header.Name = name
		header.Method = zip.Deflate
		entry, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		if err := copyFile(entry, path); err != nil {
			return err
		}
		files++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add %s to archive: %w", srcDir, err)
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return files, nil
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// ListFiles returns the names of the regular file entries in a zip archive,
// in archive order. Directory entries are skipped.
func ListFiles(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		names = append(names, f.Name)
	}
	return names, nil
}
