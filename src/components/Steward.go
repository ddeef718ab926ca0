package components

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/stewardhq/steward/src/calendar"
	"github.com/stewardhq/steward/src/capture"
	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/monitor"
	"github.com/stewardhq/steward/src/notify"
	routers "github.com/stewardhq/steward/src/routers/http"
	mqttRouter "github.com/stewardhq/steward/src/routers/mqtt"
	"github.com/stewardhq/steward/src/routers/websocket"
	"github.com/stewardhq/steward/src/storage"
)

// Bootstrap wires all the tools together and fires up the REST api. This
// call blocks for the lifetime of the process.
func Bootstrap(port string, configuration *models.Configuration, communication *models.Communication) {
	log.Log.Debug("components.Steward.Bootstrap(): started")

	config := &configuration.Config

	communication.HandleMotion = make(chan models.MotionEvent, 1)

	// Object storage is optional, recordings and screenshots are
	// offloaded when credentials are present.
	s3Client, err := storage.NewS3Client(config.S3)
	if err != nil {
		log.Log.Error("components.Steward.Bootstrap(): " + err.Error())
		s3Client = nil
	}

	sink, err := storage.NewAVISink(config, s3Client)
	if err != nil {
		log.Log.Fatal("components.Steward.Bootstrap(): " + err.Error())
	}
	store, err := storage.NewDiskStore(config.Monitor.SaveDir, s3Client)
	if err != nil {
		log.Log.Fatal("components.Steward.Bootstrap(): " + err.Error())
	}

	notifier := notify.NewChannel(&config.Notify)
	source := capture.ForDevice(config.Monitor.Device, config.Monitor.FPS)

	recorder := monitor.New(configuration, communication, source, sink, store, notifier)

	events, err := calendar.Open(config.Calendar.Database)
	if err != nil {
		log.Log.Fatal("components.Steward.Bootstrap(): " + err.Error())
	}

	// An MQTT connection is optional as well, motion events are also
	// available on the websocket feed.
	mqttClient := mqttRouter.ConfigureMQTT(configuration)

	go HandleMotionEvents(configuration, communication, mqttClient)

	// This will go into a blocking state, serving the tool api.
	routers.StartServer(port, configuration, communication, recorder, events)

	log.Log.Debug("components.Steward.Bootstrap(): finished")
}

// HandleMotionEvents fans motion events out to the websocket clients and
// the MQTT broker.
func HandleMotionEvents(configuration *models.Configuration, communication *models.Communication, mqttClient mqtt.Client) {
	log.Log.Debug("components.Steward.HandleMotionEvents(): started")
	for event := range communication.HandleMotion {
		websocket.Broadcast(event)
		mqttRouter.PublishMotion(mqttClient, configuration, event)
	}
	log.Log.Debug("components.Steward.HandleMotionEvents(): finished")
}
