// Notification transports for the security monitor. Delivery is
// at-most-once and best-effort, a failed send is logged by the caller and
// never retried.
package notify

import (
	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
)

// NewChannel selects the notification channel for the configured method.
// An unknown or unconfigured method yields a channel that only logs, so
// the monitor keeps working without notifications.
func NewChannel(config *models.Notify) monitor.NotificationChannel {
	switch config.Method {
	case "email":
		if config.Email.Server != "" && config.Email.Username != "" {
			return &EmailChannel{Config: config.Email}
		}
	case "chatbot":
		if config.Chatbot.Token != "" && config.Chatbot.ChatID != "" {
			return &ChatbotChannel{Config: config.Chatbot}
		}
	}
	log.Log.Warning("notify.main.NewChannel(): notification method '" + config.Method + "' not configured or not supported")
	return &NoopChannel{}
}

// NoopChannel drops notifications, used when nothing is configured.
type NoopChannel struct{}

func (n *NoopChannel) Send(imageLocation string, captionText string) error {
	log.Log.Debug("notify.main.Send(): no notification channel configured, dropping: " + captionText)
	return nil
}
