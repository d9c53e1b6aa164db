package langsource

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// sniffSize is how much of each file is read for content-based detection.
const sniffSize = 16 * 1024

// LocalSource classifies the files of a checkout on disk.
type LocalSource struct {
	Root string
}

// NewLocalSource creates a source rooted at root.
func NewLocalSource(root string) (*LocalSource, error) {
	if root == "" {
		return nil, ErrNoPath
	}
	return &LocalSource{Root: root}, nil
}

// Languages implements Source. repo is ignored. Vendored, hidden,
// documentation, configuration, generated and binary files are skipped.
// Only programming and markup languages are counted, matching what
// hosting platforms report.
func (s *LocalSource) Languages(ctx context.Context, _ string) (map[string]int64, error) {
	out := make(map[string]int64)

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if enry.IsDotFile(rel) || enry.IsVendor(rel+"/") || enry.IsDocumentation(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if enry.IsDotFile(rel) || enry.IsVendor(rel) || enry.IsDocumentation(rel) || enry.IsConfiguration(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		content, err := readHead(path)
		if err != nil {
			return err
		}
		if enry.IsBinary(content) || enry.IsGenerated(rel, content) {
			return nil
		}

		lang := enry.GetLanguage(filepath.Base(rel), content)
		if lang == "" {
			return nil
		}
		switch enry.GetLanguageType(lang) {
		case enry.Programming, enry.Markup:
			out[lang] += info.Size()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.Root, err)
	}
	return out, nil
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}
