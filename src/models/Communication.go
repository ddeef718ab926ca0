package models

// The communication struct that is managing all the communication between
// the different goroutines: the monitor loop publishes motion events, and
// the websocket feed and MQTT router consume them.
type Communication struct {
	HandleMotion chan MotionEvent
}
