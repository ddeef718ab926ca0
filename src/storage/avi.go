package storage

import (
	"fmt"
	"path/filepath"

	"github.com/icza/mjpeg"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
	"github.com/stewardhq/steward/src/utils"
)

// AVISink writes motion recordings as MJPEG encoded .avi files below the
// configured save directory, one file per recording session.
type AVISink struct {
	config  *models.Config
	saveDir string
	offload *S3Client
}

// NewAVISink creates the sink and makes sure the save directory exists.
// The S3 client is optional, when given every finished recording is
// offloaded best-effort.
func NewAVISink(config *models.Config, s3 *S3Client) (*AVISink, error) {
	saveDir := config.Monitor.SaveDir
	if err := utils.CreateDirectoryIfNotExists(saveDir); err != nil {
		return nil, fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}
	return &AVISink{config: config, saveDir: saveDir, offload: s3}, nil
}

// Create opens a new .avi container for the given destination identifier.
func (s *AVISink) Create(destination string, width int, height int, fps int) (monitor.Recording, error) {
	path := filepath.Join(s.saveDir, destination+".avi")
	writer, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}
	log.Log.Debug("storage.avi.Create(): opened recording " + path)
	return &aviRecording{writer: writer, path: path, sink: s}, nil
}

type aviRecording struct {
	writer mjpeg.AviWriter
	path   string
	sink   *AVISink
}

func (r *aviRecording) Write(frame monitor.Frame) error {
	payload, err := EncodeJPEG(frame)
	if err != nil {
		return err
	}
	if err := r.writer.AddFrame(payload); err != nil {
		return fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}
	return nil
}

func (r *aviRecording) Close() error {
	if err := r.writer.Close(); err != nil {
		return fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}
	if r.sink.offload != nil {
		go r.sink.offload.Upload(r.path)
	}
	// Clean up the recording directory if necessary.
	CleanupRecordingDirectory(r.sink.config)
	return nil
}
