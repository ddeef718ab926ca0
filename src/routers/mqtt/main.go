package mqtt

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
)

// ConfigureMQTT connects to the configured broker, used to announce
// motion events to other home automation systems. Returns nil when no
// broker is configured.
func ConfigureMQTT(configuration *models.Configuration) mqtt.Client {

	config := configuration.Config
	if config.MQTT.URI == "" {
		log.Log.Info("routers.mqtt.ConfigureMQTT(): no broker configured, skipping")
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.MQTT.URI)
	log.Log.Info("routers.mqtt.ConfigureMQTT(): set broker uri " + config.MQTT.URI)

	// The MQTT broker can have username/password credentials to protect
	// it from the outside.
	if config.MQTT.Username != "" || config.MQTT.Password != "" {
		opts.SetUsername(config.MQTT.Username)
		opts.SetPassword(config.MQTT.Password)
		log.Log.Info("routers.mqtt.ConfigureMQTT(): set username " + config.MQTT.Username)
	}

	opts.SetCleanSession(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(30 * time.Second)

	// A random suffix avoids client id conflicts with a previous,
	// not yet expired session.
	mqttClientID := config.Key + strconv.Itoa(rand.Intn(100))
	opts.SetClientID(mqttClientID)

	opts.OnConnect = func(c mqtt.Client) {
		log.Log.Info("routers.mqtt.ConfigureMQTT(): " + mqttClientID + " connected to " + config.MQTT.URI)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Log.Error("routers.mqtt.ConfigureMQTT(): failed to connect: " + token.Error().Error())
		return nil
	}
	return client
}

// PublishMotion announces a motion event on steward/<key>/motion.
func PublishMotion(client mqtt.Client, configuration *models.Configuration, event models.MotionEvent) {
	if client == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Log.Error("routers.mqtt.PublishMotion(): " + err.Error())
		return
	}
	topic := "steward/" + configuration.Config.Key + "/motion"
	client.Publish(topic, 2, false, payload)
	log.Log.Debug("routers.mqtt.PublishMotion(): published motion event on " + topic)
}

// DisconnectMQTT closes the broker connection.
func DisconnectMQTT(client mqtt.Client) {
	if client != nil {
		client.Disconnect(1000)
	}
}
