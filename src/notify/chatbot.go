package notify

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
)

// ChatbotChannel posts motion alerts to an HTTP bot API, modelled after
// the Telegram sendPhoto endpoint.
type ChatbotChannel struct {
	Config models.Chatbot
	// Client can be replaced in tests, nil falls back to a client with
	// a sane timeout.
	Client *http.Client
}

func (c *ChatbotChannel) Send(imageLocation string, captionText string) error {
	config := c.Config

	uri := config.URI
	if uri == "" {
		uri = "https://api.telegram.org"
	}
	endpoint := uri + "/bot" + config.Token + "/sendPhoto"

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if imageLocation != "" {
		photo, err := os.Open(imageLocation)
		if err != nil {
			return fmt.Errorf("%w: %s", monitor.ErrNotification, err.Error())
		}
		part, err := writer.CreateFormFile("photo", filepath.Base(imageLocation))
		if err != nil {
			photo.Close()
			return fmt.Errorf("%w: %s", monitor.ErrNotification, err.Error())
		}
		if _, err := io.Copy(part, photo); err != nil {
			photo.Close()
			return fmt.Errorf("%w: %s", monitor.ErrNotification, err.Error())
		}
		photo.Close()
	}

	writer.WriteField("chat_id", config.ChatID)
	writer.WriteField("caption", captionText)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %s", monitor.ErrNotification, err.Error())
	}

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	response, err := client.Post(endpoint, writer.FormDataContentType(), body)
	if err != nil {
		return fmt.Errorf("%w: %s", monitor.ErrNotification, err.Error())
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(response.Body)
		return fmt.Errorf("%w: chatbot api returned %d: %s", monitor.ErrNotification, response.StatusCode, string(payload))
	}

	log.Log.Info("notify.chatbot.Send(): notification sent to chat " + config.ChatID)
	return nil
}
