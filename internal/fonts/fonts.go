package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
// dir comes first when set; the repo-relative fallback covers running from cmd/walkthrough.
func BaseDirs(dir string) []string {
	out := []string{"assets/fonts", "../../assets/fonts"}
	if dir != "" && dir != out[0] {
		out = append([]string{dir}, out...)
	}
	return out
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. Only .ttf and .otf are included. A missing dir is not an error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range Exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// First returns the full path of the first font under dirs, preferring a "Regular" face.
// Used as the shared UI font; returns os.ErrNotExist when there is none.
func First(dirs []string) (string, error) {
	_, full, err := find(dirs, "")
	return full, err
}

// FindFont searches dirs for a font file whose path matches search, e.g. "Inter" or
// "Inter-Regular". Returns the relative and full path. When several match, prefers one
// whose path contains "Regular".
func FindFont(dirs []string, search string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", "", os.ErrNotExist
	}
	return find(dirs, norm)
}

func find(dirs []string, norm string) (string, string, error) {
	var candidates []struct{ rel, full string }
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if !strings.Contains(normalizeForMatch(rel), norm) {
				continue
			}
			full := base + "/" + rel
			if _, err := os.Stat(full); err == nil {
				candidates = append(candidates, struct{ rel, full string }{rel, full})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}
