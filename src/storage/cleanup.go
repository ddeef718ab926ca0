package storage

import (
	"os"
	"path/filepath"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/utils"
)

// CleanupRecordingDirectory removes the oldest file from the save
// directory when it exceeds the configured size budget. Called after a
// recording session finishes, one file at a time.
func CleanupRecordingDirectory(config *models.Config) {
	if config.AutoClean != "true" {
		log.Log.Debug("storage.cleanup.CleanupRecordingDirectory(): autoclean disabled, nothing to do here.")
		return
	}

	maxSize := config.MaxDirectorySize
	if maxSize == 0 {
		maxSize = 300
	}

	saveDir := config.Monitor.SaveDir
	size, err := utils.DirSize(saveDir)
	if err != nil {
		log.Log.Info("storage.cleanup.CleanupRecordingDirectory(): something went wrong, " + err.Error())
		return
	}

	sizeInMB := size / 1000 / 1000
	if sizeInMB < maxSize {
		return
	}

	oldestFile, err := utils.FindOldestFile(saveDir)
	if err != nil {
		log.Log.Info("storage.cleanup.CleanupRecordingDirectory(): something went wrong, " + err.Error())
		return
	}

	err = os.Remove(filepath.Join(saveDir, oldestFile.Name()))
	if err != nil {
		log.Log.Info("storage.cleanup.CleanupRecordingDirectory(): something went wrong, " + err.Error())
		return
	}
	log.Log.Info("storage.cleanup.CleanupRecordingDirectory(): removed oldest file as part of cleanup - " + oldestFile.Name())
}
