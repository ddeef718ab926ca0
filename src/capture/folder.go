package capture

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/monitor"
)

// FolderSource replays a directory of image files in lexical order at a
// fixed rate, useful for development and for cameras that drop frames
// into a watch directory. The source is exhausted when every file has
// been read once.
type FolderSource struct {
	interval time.Duration
	files    []string
	next     int
}

func NewFolderSource(fps int) *FolderSource {
	if fps <= 0 {
		fps = 20
	}
	return &FolderSource{interval: time.Second / time.Duration(fps)}
}

func (s *FolderSource) Open(device string) error {
	entries, err := os.ReadDir(device)
	if err != nil {
		return deviceUnavailable(device, err)
	}

	s.files = s.files[:0]
	s.next = 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".jpeg") || strings.HasSuffix(name, ".png") {
			s.files = append(s.files, filepath.Join(device, entry.Name()))
		}
	}
	sort.Strings(s.files)

	if len(s.files) == 0 {
		return deviceUnavailable(device, errors.New("no image files found"))
	}
	log.Log.Info("capture.folder.Open(): replaying " + device)
	return nil
}

func (s *FolderSource) Read() (monitor.Frame, error) {
	if s.next >= len(s.files) {
		return monitor.Frame{}, readFailed(errors.New("frame source exhausted"))
	}

	path := s.files[s.next]
	s.next++

	file, err := os.Open(path)
	if err != nil {
		return monitor.Frame{}, readFailed(err)
	}
	img, _, err := image.Decode(file)
	file.Close()
	if err != nil {
		return monitor.Frame{}, readFailed(err)
	}

	time.Sleep(s.interval)
	return toFrame(img, time.Now()), nil
}

func (s *FolderSource) Close() error {
	s.files = nil
	s.next = 0
	return nil
}
