package zippackager

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"
)

func TestPackager_BundlesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "screenshots.zip")

	p, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := p.Add("shot_1290x2796.png", []byte("png-bytes")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := p.Add("shot_1080x1920.jpg", []byte("jpg-bytes")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reader.File))
	}

	want := map[string]string{
		"shot_1290x2796.png": "png-bytes",
		"shot_1080x1920.jpg": "jpg-bytes",
	}
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		if want[f.Name] != string(data) {
			t.Errorf("entry %s: expected %q, got %q", f.Name, want[f.Name], data)
		}
	}
}

func TestPackager_AddAfterClose(t *testing.T) {
	p, err := New(filepath.Join(t.TempDir(), "a.zip"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := p.Add("late.png", []byte("x")); err == nil {
		t.Error("expected error adding after close")
	}
	// Second close is a no-op.
	if err := p.Close(); err != nil {
		t.Errorf("second Close should be nil, got %v", err)
	}
}
