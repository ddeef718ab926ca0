package models

// MotionRegion is the bounding rectangle of a contiguous area whose pixel
// difference from the reference frame exceeded the threshold. Recomputed
// every frame, never persisted.
type MotionRegion struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MotionEvent is passed around when a recording session starts, it is
// distributed to the websocket feed and the MQTT router.
type MotionEvent struct {
	Timestamp  int64          `json:"timestamp"`
	SessionID  string         `json:"session_id"`
	Device     string         `json:"device"`
	Screenshot string         `json:"screenshot,omitempty"`
	Regions    []MotionRegion `json:"regions,omitempty"`
}
