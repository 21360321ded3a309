package palettecache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/safenetcreations/my-invocies-sub000/internal/branding"
)

func sampleResult() branding.ExtractionResult {
	return branding.ExtractionResult{
		Palette: branding.ColorPalette{
			Primary:         "#2563eb",
			Secondary:       "#10b981",
			Accent:          "#f59e0b",
			TextOnPrimary:   "#ffffff",
			TextOnSecondary: "#000000",
			TextOnAccent:    "#000000",
		},
		DominantColors: []branding.BrandColor{"#2563eb", "#10b981", "#f59e0b"},
		ContrastRatios: branding.ContrastRatios{Primary: 5.17, Secondary: 8.28, Accent: 9.78},
		WCAGCompliant:  true,
	}
}

func TestDiskCachePutGet(t *testing.T) {
	cache, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	key := "0123456789abcdef"
	want := sampleResult()
	if err := cache.Put(key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("Get: expected a hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get for an unknown key reported a hit")
	}
}

func TestDiskCacheCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	key := "corrupt"
	if err := os.WriteFile(filepath.Join(dir, key+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := cache.Get(key); ok {
		t.Error("corrupt entry reported as a hit")
	}
}

func TestDiskCachePutOverwrites(t *testing.T) {
	cache, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	key := "k"
	first := sampleResult()
	if err := cache.Put(key, first); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second := first
	second.Palette.Primary = "#111827"
	if err := cache.Put(key, second); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("Get: expected a hit")
	}
	if got.Palette.Primary != "#111827" {
		t.Errorf("primary = %s, want the overwritten #111827", got.Palette.Primary)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "palettes")
	if _, err := New(dir); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory was not created: %v", err)
	}
}
