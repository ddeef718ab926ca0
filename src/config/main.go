package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
)

// OpenConfig reads the configuration of this Steward instance from
// the data directory. It keeps retrying, the file might show up late
// when mounted through a configmap or volume.
func OpenConfig(configDirectory string, configuration *models.Configuration) {
	for {
		jsonFile, err := os.Open(configDirectory + "/data/config/config.json")
		if err != nil {
			log.Log.Error("config.main.OpenConfig(): config file is not found " + configDirectory + "/data/config/config.json, trying again in 5s.")
			time.Sleep(5 * time.Second)
			continue
		}
		err = json.NewDecoder(jsonFile).Decode(&configuration.Config)
		jsonFile.Close()
		if err != nil {
			log.Log.Error("config.main.OpenConfig(): JSON file not valid: " + err.Error())
			time.Sleep(5 * time.Second)
			continue
		}
		log.Log.Info("config.main.OpenConfig(): successfully opened config.json")
		break
	}
	SetDefaults(&configuration.Config)
}

// SaveConfig writes the current configuration back to disk, it is called
// from the REST api when the configuration is updated.
func SaveConfig(configDirectory string, config models.Config, configuration *models.Configuration) error {
	payload, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	err = os.WriteFile(configDirectory+"/data/config/config.json", payload, 0644)
	if err != nil {
		return err
	}
	configuration.Config = config
	log.Log.Info("config.main.SaveConfig(): configuration saved")
	return nil
}

// SetDefaults fills in the values which might not be set in the config
// file, so the rest of the code doesn't need to guard against zeroes.
func SetDefaults(config *models.Config) {
	if config.Monitor.Sensitivity == 0 {
		config.Monitor.Sensitivity = 20
	}
	if config.Monitor.MinArea == 0 {
		config.Monitor.MinArea = 500
	}
	if config.Monitor.RecordSeconds == 0 {
		config.Monitor.RecordSeconds = 10
	}
	if config.Monitor.SaveDir == "" {
		config.Monitor.SaveDir = "security_recordings"
	}
	if config.Monitor.FPS == 0 {
		config.Monitor.FPS = 20
	}
	if config.Calendar.Database == "" {
		config.Calendar.Database = "calendar.db"
	}
	if config.Timezone == "" {
		config.Timezone = "UTC"
	}
}

// OverrideWithEnvironmentVariables overrides the configuration with
// environment variables, which is convenient for container deployments.
func OverrideWithEnvironmentVariables(configuration *models.Configuration) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "STEWARD_") {
			continue
		}
		key := strings.Split(env, "=")[0]
		value := os.Getenv(key)

		switch key {
		case "STEWARD_NAME":
			configuration.Config.Name = value
		case "STEWARD_TIMEZONE":
			configuration.Config.Timezone = value
		case "STEWARD_MONITOR_DEVICE":
			configuration.Config.Monitor.Device = value
		case "STEWARD_MONITOR_SENSITIVITY":
			if i, err := strconv.Atoi(value); err == nil {
				configuration.Config.Monitor.Sensitivity = i
			}
		case "STEWARD_MONITOR_MIN_AREA":
			if i, err := strconv.Atoi(value); err == nil {
				configuration.Config.Monitor.MinArea = i
			}
		case "STEWARD_MONITOR_RECORD_SECONDS":
			if i, err := strconv.Atoi(value); err == nil {
				configuration.Config.Monitor.RecordSeconds = i
			}
		case "STEWARD_MONITOR_SAVE_DIR":
			configuration.Config.Monitor.SaveDir = value
		case "STEWARD_NOTIFY_METHOD":
			configuration.Config.Notify.Method = value
		case "STEWARD_SMTP_SERVER":
			configuration.Config.Notify.Email.Server = value
		case "STEWARD_SMTP_PORT":
			if i, err := strconv.Atoi(value); err == nil {
				configuration.Config.Notify.Email.Port = i
			}
		case "STEWARD_SMTP_USERNAME":
			configuration.Config.Notify.Email.Username = value
		case "STEWARD_SMTP_PASSWORD":
			configuration.Config.Notify.Email.Password = value
		case "STEWARD_SMTP_FROM":
			configuration.Config.Notify.Email.From = value
		case "STEWARD_SMTP_TO":
			configuration.Config.Notify.Email.To = value
		case "STEWARD_CHATBOT_TOKEN":
			configuration.Config.Notify.Chatbot.Token = value
		case "STEWARD_CHATBOT_CHATID":
			configuration.Config.Notify.Chatbot.ChatID = value
		case "STEWARD_MQTT_URI":
			configuration.Config.MQTT.URI = value
		case "STEWARD_MQTT_USERNAME":
			configuration.Config.MQTT.Username = value
		case "STEWARD_MQTT_PASSWORD":
			configuration.Config.MQTT.Password = value
		case "STEWARD_CALENDAR_DATABASE":
			configuration.Config.Calendar.Database = value
		}
	}
}
