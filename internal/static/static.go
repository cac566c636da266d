// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/sculpt/internal/osutil"
)

const (
	filesDir = "files"

	// LibraryFile is the name of the canonical exercise catalog.
	LibraryFile = "library.yml"
)

//go:embed files/*
var embeddedFiles embed.FS

// Library returns the embedded exercise catalog.
func Library() []byte {
	b, err := embeddedFiles.ReadFile(filesDir + "/" + LibraryFile)
	if err != nil {
		// the file is compiled into the binary
		panic(err)
	}

	return b
}

// CopyFiles writes the embedded files to dir. Files that already exist are left
// untouched so that user edits survive.
func CopyFiles(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			destPath := filepath.Join(dir, strings.TrimPrefix(path, filesDir+"/"))

			if _, err := os.Stat(destPath); !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}
