package fontbank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFaceMissingFileDegrades(t *testing.T) {
	bank := New()
	path := filepath.Join(t.TempDir(), "missing.ttf")

	face, err := bank.Face(path, 180)
	if face == nil {
		t.Fatal("no fallback face returned")
	}
	if face != bank.FallbackFace() {
		t.Fatal("degraded face is not the fallback face")
	}
	var unavailable *FontUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected FontUnavailableError, got %v", err)
	}
	if unavailable.Path != path {
		t.Fatalf("error names wrong path: %q", unavailable.Path)
	}
}

func TestFaceEmptyPath(t *testing.T) {
	bank := New()
	face, err := bank.Face("", 100)
	if face != bank.FallbackFace() || err == nil {
		t.Fatalf("empty path: face=%v err=%v", face, err)
	}
}

func TestFaceLoadsTrueType(t *testing.T) {
	bank := New()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	writeFile(t, path, goregular.TTF)

	face, err := bank.Face(path, 120)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if face == bank.FallbackFace() {
		t.Fatal("real font returned the fallback face")
	}
	again, err := bank.Face(path, 120)
	if err != nil || again != face {
		t.Fatalf("cached face not reused: %v", err)
	}
}

func TestFaceUnparseableFileDegrades(t *testing.T) {
	bank := New()
	path := filepath.Join(t.TempDir(), "garbage.ttf")
	writeFile(t, path, []byte("not a font"))

	face, err := bank.Face(path, 100)
	if face != bank.FallbackFace() {
		t.Fatal("unparseable font did not degrade to fallback")
	}
	var unavailable *FontUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected FontUnavailableError, got %v", err)
	}
}
