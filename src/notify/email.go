package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
)

// EmailChannel sends motion alerts over SMTP with the screenshot
// attached.
type EmailChannel struct {
	Config models.Email
}

func (e *EmailChannel) Send(imageLocation string, captionText string) error {
	config := e.Config

	to := config.To
	if to == "" {
		to = config.From
	}

	message := gomail.NewMessage()
	message.SetHeader("From", config.From)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "ALERT! Motion detected")
	message.SetBody("text/plain", captionText)
	if imageLocation != "" {
		message.Attach(imageLocation)
	}

	port := config.Port
	if port == 0 {
		port = 587
	}

	dialer := gomail.NewDialer(config.Server, port, config.Username, config.Password)
	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("%w: %s", monitor.ErrNotification, err.Error())
	}

	log.Log.Info("notify.email.Send(): notification sent to " + to)
	return nil
}
