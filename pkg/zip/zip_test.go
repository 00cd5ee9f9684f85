package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchiveAssets(t *testing.T) {
	assets := []Asset{
		{Filename: "render.png", MIME: "image/png", Data: []byte("first")},
		{Filename: "render.jpg", MIME: "image/jpeg", Data: []byte("second")},
	}

	archive := ArchiveAssets(assets)
	if len(archive) == 0 {
		t.Fatalf("ArchiveAssets returned empty archive")
	}

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(zr.File))
	}
	for i, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %q: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %q: %v", f.Name, err)
		}
		if !bytes.Equal(data, assets[i].Data) {
			t.Fatalf("%q = %q, want %q", f.Name, data, assets[i].Data)
		}
	}
}

func TestArchiveAssetsEmptyInput(t *testing.T) {
	archive := ArchiveAssets(nil)
	if _, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive))); err != nil {
		t.Fatalf("empty archive unreadable: %v", err)
	}
}
