package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/monitor"
	"github.com/stewardhq/steward/src/utils"
)

// DiskStore persists screenshots as JPEG files below the configured save
// directory, next to the recordings.
type DiskStore struct {
	SaveDir string
	offload *S3Client
}

func NewDiskStore(saveDir string, s3 *S3Client) (*DiskStore, error) {
	if err := utils.CreateDirectoryIfNotExists(saveDir); err != nil {
		return nil, fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}
	return &DiskStore{SaveDir: saveDir, offload: s3}, nil
}

// Save writes the frame as motion_<timestamp>.jpg and returns its path.
func (s *DiskStore) Save(frame monitor.Frame, timestamp time.Time) (string, error) {
	payload, err := EncodeJPEG(frame)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.SaveDir, "motion_"+timestamp.Format("20060102_150405")+".jpg")
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}

	log.Log.Debug("storage.screenshots.Save(): saved screenshot " + path)
	if s.offload != nil {
		go s.offload.Upload(path)
	}
	return path, nil
}
