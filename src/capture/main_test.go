package capture

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stewardhq/steward/src/monitor"
)

func writeTestJPEG(t *testing.T, path string, value uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 32, 24))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	buffer := new(bytes.Buffer)
	if err := jpeg.Encode(buffer, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestForDevice(t *testing.T) {
	if _, ok := ForDevice("http://camera.local/stream", 10).(*MJPEGSource); !ok {
		t.Error("expected an MJPEGSource for an http device")
	}
	if _, ok := ForDevice("https://camera.local/stream", 10).(*MJPEGSource); !ok {
		t.Error("expected an MJPEGSource for an https device")
	}
	if _, ok := ForDevice("/var/frames", 10).(*FolderSource); !ok {
		t.Error("expected a FolderSource for a directory device")
	}
}

func TestFolderSourceReplay(t *testing.T) {
	dir := t.TempDir()
	writeTestJPEG(t, filepath.Join(dir, "frame_001.jpg"), 10)
	writeTestJPEG(t, filepath.Join(dir, "frame_002.jpg"), 20)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	source := NewFolderSource(100)
	if err := source.Open(dir); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer source.Close()

	first, err := source.Read()
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if first.Gray == nil || first.RGBA == nil {
		t.Fatal("frame is missing a pixel plane")
	}
	if first.Gray.Bounds().Dx() != 32 || first.Gray.Bounds().Dy() != 24 {
		t.Errorf("unexpected frame dimensions: %v", first.Gray.Bounds())
	}
	if first.Timestamp.IsZero() {
		t.Error("frame carries no capture timestamp")
	}

	if _, err := source.Read(); err != nil {
		t.Fatalf("second read failed: %v", err)
	}

	// Non-image files are skipped, so the third read hits exhaustion.
	_, err = source.Read()
	if !errors.Is(err, monitor.ErrRead) {
		t.Errorf("expected ErrRead on exhaustion, got %v", err)
	}
}

func TestFolderSourceOpenMissingDirectory(t *testing.T) {
	source := NewFolderSource(10)
	err := source.Open(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, monitor.ErrDeviceUnavailable) {
		t.Errorf("expected ErrDeviceUnavailable, got %v", err)
	}
}

func TestFolderSourceOpenEmptyDirectory(t *testing.T) {
	source := NewFolderSource(10)
	err := source.Open(t.TempDir())
	if !errors.Is(err, monitor.ErrDeviceUnavailable) {
		t.Errorf("expected ErrDeviceUnavailable for a directory without frames, got %v", err)
	}
}
