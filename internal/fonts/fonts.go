// Package fonts locates the optional overlay font under assets/fonts.
package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font file matches.
var ErrNotFound = errors.New("fonts: no matching font")

// BaseDirs are the directories searched, relative to the working directory. The second
// entry covers running from cmd/bounce.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the font files under dir as slash-separated paths relative to dir,
// sorted. A missing dir yields no files and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, e os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if e.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores so "Fira Mono",
// "fira-mono" and "FiraMono" compare equal.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Find searches BaseDirs for a font whose path contains name. See FindIn.
func Find(name string) (string, error) {
	return FindIn(BaseDirs(), name)
}

// FindIn returns the path of the first font under dirs whose relative path contains name
// (compared loosely). An empty name matches any font. When several match, a "Regular"
// face wins.
func FindIn(dirs []string, name string) (string, error) {
	want := normalize(name)
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
