// Package catalog turns a directory of content fragments into page
// descriptors. Fragments are named "<category>-<name>.<ext>".
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wikigen/internal/util"
)

// Separator splits a fragment's file stem into category and name.
const Separator = "-"

// ErrMalformedName is wrapped by every NameError.
var ErrMalformedName = errors.New("malformed page file name")

// NameError reports a fragment whose file name does not follow
// "<category>-<name>.<ext>".
type NameError struct {
	FileName string
	Reason   string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q: %s (want <category>%s<name>.<ext>)", ErrMalformedName, e.FileName, e.Reason, Separator)
}

func (e *NameError) Unwrap() error { return ErrMalformedName }

// Page describes one page to be generated.
type Page struct {
	SourceFileName string // fragment file name inside the input directory
	Name           string // title-cased page name, e.g. "Human_Practices"
	Category       string // grouping tag, only used as a CSS hook
	HasContent     bool   // false for zero-length fragments
	IconURL        string
	Ext            string // lower-cased extension including the dot
}

// ParseFileName splits a fragment file name into its category and raw
// (not yet title-cased) name.
func ParseFileName(fileName string) (category, name string, err error) {
	ext := filepath.Ext(fileName)
	stem := strings.TrimSuffix(fileName, ext)
	if ext == "" || ext == "." {
		return "", "", &NameError{FileName: fileName, Reason: "missing extension"}
	}

	parts := strings.Split(stem, Separator)
	if len(parts) != 2 {
		return "", "", &NameError{
			FileName: fileName,
			Reason:   fmt.Sprintf("expected exactly one %q separator, found %d", Separator, len(parts)-1),
		}
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", &NameError{FileName: fileName, Reason: "empty category or name"}
	}
	return parts[0], parts[1], nil
}

// NewPage builds the descriptor for a fragment. iconBase is the URL prefix
// the lower-cased page name is appended to.
func NewPage(fileName string, size int64, iconBase string) (Page, error) {
	category, rawName, err := ParseFileName(fileName)
	if err != nil {
		return Page{}, err
	}
	name := util.TitleCase(rawName)
	return Page{
		SourceFileName: fileName,
		Name:           name,
		Category:       category,
		HasContent:     size > 0,
		IconURL:        iconBase + strings.ToLower(name),
		Ext:            strings.ToLower(filepath.Ext(fileName)),
	}, nil
}

// Build lists inputDir (non-recursively) and returns one Page per regular
// file, in the order os.ReadDir reports them (sorted by file name).
// Directories and dot files (editor swap files, .DS_Store) are skipped.
// Any unreadable entry or malformed name aborts the whole catalog.
func Build(inputDir, iconBase string) ([]Page, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", inputDir, err)
	}

	pages := make([]Page, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(inputDir, entry.Name()), err)
		}
		page, err := NewPage(entry.Name(), info.Size(), iconBase)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
