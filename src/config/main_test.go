package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stewardhq/steward/src/models"
)

func TestOpenConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data", "config"), 0755); err != nil {
		t.Fatal(err)
	}
	payload := `{
		"key": "abc",
		"name": "home",
		"monitor": {
			"device": "http://camera.local/stream",
			"sensitivity": 35,
			"record_seconds": 5
		}
	}`
	if err := os.WriteFile(filepath.Join(dir, "data", "config", "config.json"), []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	var configuration models.Configuration
	OpenConfig(dir, &configuration)

	if configuration.Config.Key != "abc" {
		t.Errorf("unexpected key: %q", configuration.Config.Key)
	}
	if configuration.Config.Monitor.Sensitivity != 35 {
		t.Errorf("unexpected sensitivity: %d", configuration.Config.Monitor.Sensitivity)
	}
	if configuration.Config.Monitor.RecordSeconds != 5 {
		t.Errorf("unexpected record seconds: %d", configuration.Config.Monitor.RecordSeconds)
	}
	// Everything the file left out falls back to a default.
	if configuration.Config.Monitor.MinArea != 500 {
		t.Errorf("min area default not applied: %d", configuration.Config.Monitor.MinArea)
	}
	if configuration.Config.Monitor.SaveDir != "security_recordings" {
		t.Errorf("save dir default not applied: %q", configuration.Config.Monitor.SaveDir)
	}
	if configuration.Config.Timezone != "UTC" {
		t.Errorf("timezone default not applied: %q", configuration.Config.Timezone)
	}
	if configuration.Config.Calendar.Database != "calendar.db" {
		t.Errorf("calendar database default not applied: %q", configuration.Config.Calendar.Database)
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	config := models.Config{
		Timezone: "Europe/Brussels",
		Monitor: models.Monitor{
			Sensitivity:   80,
			MinArea:       1200,
			RecordSeconds: 30,
			SaveDir:       "recordings",
			FPS:           5,
		},
	}
	SetDefaults(&config)

	if config.Monitor.Sensitivity != 80 || config.Monitor.MinArea != 1200 {
		t.Errorf("explicit detection values overwritten: %+v", config.Monitor)
	}
	if config.Monitor.RecordSeconds != 30 || config.Monitor.FPS != 5 {
		t.Errorf("explicit recording values overwritten: %+v", config.Monitor)
	}
	if config.Timezone != "Europe/Brussels" {
		t.Errorf("explicit timezone overwritten: %q", config.Timezone)
	}
}

func TestOverrideWithEnvironmentVariables(t *testing.T) {
	t.Setenv("STEWARD_MONITOR_DEVICE", "http://other.local/stream")
	t.Setenv("STEWARD_MONITOR_SENSITIVITY", "55")
	t.Setenv("STEWARD_NOTIFY_METHOD", "chatbot")
	t.Setenv("STEWARD_CHATBOT_TOKEN", "token123")

	var configuration models.Configuration
	configuration.Config.Monitor.Device = "http://camera.local/stream"
	configuration.Config.Monitor.Sensitivity = 20

	OverrideWithEnvironmentVariables(&configuration)

	if configuration.Config.Monitor.Device != "http://other.local/stream" {
		t.Errorf("device not overridden: %q", configuration.Config.Monitor.Device)
	}
	if configuration.Config.Monitor.Sensitivity != 55 {
		t.Errorf("sensitivity not overridden: %d", configuration.Config.Monitor.Sensitivity)
	}
	if configuration.Config.Notify.Method != "chatbot" {
		t.Errorf("notify method not overridden: %q", configuration.Config.Notify.Method)
	}
	if configuration.Config.Notify.Chatbot.Token != "token123" {
		t.Errorf("chatbot token not overridden: %q", configuration.Config.Notify.Chatbot.Token)
	}
}

func TestOverrideIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("STEWARD_MONITOR_SENSITIVITY", "not a number")

	var configuration models.Configuration
	configuration.Config.Monitor.Sensitivity = 20
	OverrideWithEnvironmentVariables(&configuration)

	if configuration.Config.Monitor.Sensitivity != 20 {
		t.Errorf("invalid override applied: %d", configuration.Config.Monitor.Sensitivity)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data", "config"), 0755); err != nil {
		t.Fatal(err)
	}

	var configuration models.Configuration
	config := models.Config{Name: "home", Monitor: models.Monitor{Device: "testdevice"}}
	if err := SaveConfig(dir, config, &configuration); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if configuration.Config.Name != "home" {
		t.Error("in-memory configuration not updated")
	}

	var reloaded models.Configuration
	OpenConfig(dir, &reloaded)
	if reloaded.Config.Monitor.Device != "testdevice" {
		t.Errorf("saved config did not round-trip: %+v", reloaded.Config.Monitor)
	}
}
