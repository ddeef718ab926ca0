package models

// Configuration wraps the active Config, together with the name of
// the instance it was loaded for.
type Configuration struct {
	Name   string `json:"name"`
	Config Config `json:"config"`
}

// Config is the highlevel struct which contains all the configuration of
// your Steward instance: the security monitor, the calendar tool and the
// surfaces exposed to the conversational agent.
type Config struct {
	Key       string       `json:"key"`
	Name      string       `json:"name"`
	Timezone  string       `json:"timezone,omitempty"`
	Monitor   Monitor      `json:"monitor"`
	Region    *Region      `json:"region,omitempty"`
	Time      string       `json:"time,omitempty"`
	Timetable []*Timetable `json:"timetable,omitempty"`
	Notify    Notify       `json:"notify"`
	MQTT      MQTT         `json:"mqtt,omitempty"`
	S3        *S3          `json:"s3,omitempty"`
	Calendar  Calendar     `json:"calendar"`
	AutoClean string       `json:"autoclean,omitempty"`
	// MaxDirectorySize is the recordings directory budget in megabytes,
	// only relevant when autoclean is enabled.
	MaxDirectorySize int64 `json:"max_directory_size,omitempty"`
}

// Monitor defines which capture device the security monitor reads from,
// and contains the motion detection and recording parameters.
type Monitor struct {
	Device string `json:"device"`
	// Sensitivity is the binary threshold applied to the frame delta.
	// A higher value means a higher threshold, so less sensitive.
	Sensitivity   int    `json:"sensitivity"`
	MinArea       int    `json:"min_area"`
	RecordSeconds int    `json:"record_seconds"`
	SaveDir       string `json:"save_dir"`
	FPS           int    `json:"fps,omitempty"`
}

// Notify selects the notification method ("email" or "chatbot") and holds
// the credentials for both transports.
type Notify struct {
	Method  string  `json:"method"`
	Email   Email   `json:"email,omitempty"`
	Chatbot Chatbot `json:"chatbot,omitempty"`
}

// Email contains the SMTP configuration for email notifications.
type Email struct {
	Server   string `json:"server"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// Chatbot contains the HTTP bot API configuration, modelled after the
// Telegram sendPhoto endpoint.
type Chatbot struct {
	URI    string `json:"uri,omitempty"`
	Token  string `json:"token"`
	ChatID string `json:"chat_id"`
}

// MQTT is an optional broker to which motion events are published.
type MQTT struct {
	URI      string `json:"uri,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// S3 contains the credentials of an object storage endpoint, used to
// offload recordings and screenshots.
type S3 struct {
	Endpoint  string `json:"endpoint,omitempty"`
	Publickey string `json:"publickey,omitempty"`
	Secretkey string `json:"secretkey,omitempty"`
	Region    string `json:"region,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	ProxyURI  string `json:"proxyuri,omitempty"`
}

// Calendar holds the location of the calendar event store.
type Calendar struct {
	Database string `json:"database"`
}

// Region specifies one or more polygons as Region Of Interest (ROI);
// only pixels inside a polygon participate in motion detection.
type Region struct {
	Name    string    `json:"name"`
	Polygon []Polygon `json:"polygon"`
}

// Polygon is a sequence of coordinates (x,y).
type Polygon struct {
	Id          string       `json:"id"`
	Coordinates []Coordinate `json:"coordinates"`
}

// Coordinate belongs to a Polygon.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Timetable allows you to set a Time Of Interest (TOI), which limits
// detection to a predefined time interval. Two tracks can be set per
// weekday, which allows you to give some flexibility.
type Timetable struct {
	Start1 int `json:"start1"`
	End1   int `json:"end1"`
	Start2 int `json:"start2"`
	End2   int `json:"end2"`
}
