package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.TTF"))
	touch(t, filepath.Join(dir, "readme.txt"))

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "Inter/Inter-Bold.ttf" {
		t.Fatalf("ScanDir = %v", got)
	}

	missing, err := ScanDir(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing dir = %v, %v", missing, err)
	}
}

func TestFindFont_PrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf"))

	rel, full, err := FindFont([]string{dir}, "google sans")
	if err != nil {
		t.Fatal(err)
	}
	if rel != "Google_Sans/GoogleSans-Regular.ttf" || full != dir+"/"+rel {
		t.Fatalf("FindFont = %q, %q", rel, full)
	}

	if _, _, err := FindFont([]string{dir}, "  "); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("blank search err = %v", err)
	}
}

func TestFirst(t *testing.T) {
	empty := t.TempDir()
	if _, err := First([]string{empty}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("empty dir err = %v", err)
	}

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.otf"))
	got, err := First([]string{empty, dir})
	if err != nil || got != dir+"/a.otf" {
		t.Fatalf("First = %q, %v", got, err)
	}
}

func TestBaseDirs(t *testing.T) {
	if got := BaseDirs("fonts"); got[0] != "fonts" || len(got) != 3 {
		t.Fatalf("BaseDirs = %v", got)
	}
	if got := BaseDirs("assets/fonts"); len(got) != 2 {
		t.Fatalf("BaseDirs = %v", got)
	}
}
