// The motion detection and recording state machine of the security
// monitor. The recorder consumes frames from an abstract source and emits
// its side effects (screenshots, recordings, notifications) through the
// injected collaborators, it does not know about transports or storage.
package monitor

import (
	"math"
	"sync"
	"time"

	"github.com/dromara/carbon/v2"
	"github.com/gofrs/uuid"
	"github.com/tevino/abool"

	"github.com/stewardhq/steward/src/conditions"
	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
	"github.com/stewardhq/steward/src/vision"
)

// MotionRecorder drives the {Idle, Recording} state machine, frame by
// frame. All state (reference frame, active session) is owned by the loop
// goroutine; Start and Stop only exchange the run flag and the done
// channel with it.
type MotionRecorder struct {
	configuration *models.Configuration
	communication *models.Communication

	source   FrameSource
	sink     RecordingSink
	store    ScreenshotStore
	notifier NotificationChannel

	// Clock is used for wall-clock decisions when a frame carries no
	// capture timestamp. Overridable in tests.
	Clock func() time.Time

	mu      sync.Mutex
	running *abool.AtomicBool
	done    chan struct{}
}

func New(configuration *models.Configuration, communication *models.Communication, source FrameSource, sink RecordingSink, store ScreenshotStore, notifier NotificationChannel) *MotionRecorder {
	return &MotionRecorder{
		configuration: configuration,
		communication: communication,
		source:        source,
		sink:          sink,
		store:         store,
		notifier:      notifier,
		Clock:         time.Now,
		running:       abool.New(),
	}
}

// IsRunning reports whether the monitoring loop is active.
func (m *MotionRecorder) IsRunning() bool {
	return m.running.IsSet()
}

// Start acquires the frame source and begins the monitoring loop on a
// dedicated goroutine. Invoking it while already running is a no-op.
func (m *MotionRecorder) Start() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running.IsSet() {
		log.Log.Info("monitor.main.Start(): security monitoring already running")
		return "security monitoring already running", nil
	}

	device := m.configuration.Config.Monitor.Device
	if err := m.source.Open(device); err != nil {
		log.Log.Error("monitor.main.Start(): could not open capture device " + device + ": " + err.Error())
		return "failed to start security monitoring", ErrDeviceUnavailable
	}

	m.running.Set()
	m.done = make(chan struct{})
	go m.loop()

	log.Log.Info("monitor.main.Start(): security monitoring started")
	return "security monitoring started", nil
}

// Stop signals the loop to exit and blocks until it has observably
// stopped mutating state and released the frame source. Invoking it
// while not running is a no-op.
func (m *MotionRecorder) Stop() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running.IsSet() {
		log.Log.Info("monitor.main.Stop(): security monitoring not running")
		return "security monitoring not running", nil
	}

	// The loop only observes the flag at an iteration boundary, there is
	// no cancellation mid-I/O-call.
	m.running.UnSet()
	<-m.done
	m.done = nil

	log.Log.Info("monitor.main.Stop(): security monitoring stopped")
	return "security monitoring stopped", nil
}

func (m *MotionRecorder) loop() {
	m.run()
	if err := m.source.Close(); err != nil {
		log.Log.Error("monitor.main.loop(): error closing frame source: " + err.Error())
	}
	m.running.UnSet()
	close(m.done)
}

// run is the per-frame loop, the sole mutator of the reference frame and
// the recording session.
func (m *MotionRecorder) run() {
	config := m.configuration.Config
	loc, _ := time.LoadLocation(config.Timezone)
	if loc == nil {
		loc = time.UTC
	}

	// The first frame becomes the initial reference.
	first, err := m.source.Read()
	if err != nil {
		log.Log.Error("monitor.main.run(): error reading first frame: " + err.Error())
		return
	}

	reference := vision.Smooth(first.Gray)
	bounds := first.Gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	detector := vision.NewDetector(config.Monitor.Sensitivity, config.Monitor.MinArea)
	detector.SetRegion(bounds, config.Region)

	recordDuration := time.Duration(config.Monitor.RecordSeconds) * time.Second

	var session *RecordingSession
	var recording Recording

	for m.running.IsSet() {
		frame, err := m.source.Read()
		if err != nil {
			// Fatal for this monitoring session, not retried.
			log.Log.Error("monitor.main.run(): error reading frame: " + err.Error())
			break
		}

		now := frame.Timestamp
		if now.IsZero() {
			now = m.Clock()
		}

		gray := vision.Smooth(frame.Gray)

		// A stream can change resolution mid-session, the old reference
		// is not comparable anymore. Re-baseline and skip this frame.
		if gray.Bounds() != reference.Bounds() {
			log.Log.Warning("monitor.main.run(): frame dimensions changed, resetting reference")
			reference = gray
			bounds = gray.Bounds()
			width = bounds.Dx()
			height = bounds.Dy()
			detector.SetRegion(bounds, config.Region)
			continue
		}

		regions := detector.Detect(reference, gray)
		motionDetected := len(regions) > 0

		// Detection can be limited to a time window, same timetable
		// encoding as the recording conditions.
		if motionDetected && !conditions.IsWithinTimeInterval(loc, &config) {
			motionDetected = false
		}

		// Cosmetic overlays, drawn before any persistence write.
		if frame.RGBA != nil {
			if motionDetected {
				for _, region := range regions {
					vision.DrawRectangle(frame.RGBA, region.X, region.Y, region.Width, region.Height)
				}
			}
			vision.DrawTimestamp(frame.RGBA, now)
		}

		if motionDetected && session == nil {
			session, recording = m.startSession(now, width, height, frame, regions)
		}

		if session != nil {
			if recording != nil {
				if err := recording.Write(frame); err != nil {
					log.Log.Error("monitor.main.run(): error writing frame: " + err.Error())
				}
			}
			session.Frames++

			if now.Sub(session.Start) >= recordDuration {
				if recording != nil {
					if err := recording.Close(); err != nil {
						log.Log.Error("monitor.main.run(): error closing recording: " + err.Error())
					}
				}
				log.Log.Info("monitor.main.run(): recording finished: " + session.Destination)
				session = nil
				recording = nil
			}
		}

		// Refresh the reference frame every 30 seconds to adapt to
		// lighting drift. The wall-clock modulo is coarse and loop
		// cadence dependent, it can fire multiple times within a window
		// or skip one entirely.
		seconds := float64(now.UnixNano()) / float64(time.Second)
		if math.Mod(seconds, 30) < 1 {
			reference = gray
		}
	}

	if recording != nil {
		if err := recording.Close(); err != nil {
			log.Log.Error("monitor.main.run(): error closing recording: " + err.Error())
		}
	}
}

// startSession creates a recording session, persists a screenshot, sends
// the one-shot notification and announces the motion event. Persistence
// and notification failures are logged and swallowed, they never block
// or alter the state transition.
func (m *MotionRecorder) startSession(now time.Time, width int, height int, frame Frame, regions []models.MotionRegion) (*RecordingSession, Recording) {
	config := m.configuration.Config

	id, _ := uuid.NewV4()
	session := &RecordingSession{
		ID:          id.String(),
		Start:       now,
		Destination: "motion_" + now.Format("20060102_150405"),
	}

	recording, err := m.sink.Create(session.Destination, width, height, config.Monitor.FPS)
	if err != nil {
		log.Log.Error("monitor.main.startSession(): error creating recording: " + err.Error())
		recording = nil
	}

	location, err := m.store.Save(frame, now)
	if err != nil {
		log.Log.Error("monitor.main.startSession(): error saving screenshot: " + err.Error())
		location = ""
	}

	caption := "Motion detected at " + carbon.CreateFromStdTime(now).Layout("15:04:05 02.01.2006")
	if err := m.notifier.Send(location, caption); err != nil {
		log.Log.Error("monitor.main.startSession(): error sending notification: " + err.Error())
	}

	if m.communication != nil && m.communication.HandleMotion != nil {
		event := models.MotionEvent{
			Timestamp:  now.Unix(),
			SessionID:  session.ID,
			Device:     config.Monitor.Device,
			Screenshot: location,
			Regions:    regions,
		}
		select {
		case m.communication.HandleMotion <- event:
		default:
		}
	}

	log.Log.Info("monitor.main.startSession(): motion detected, recording started: " + session.Destination)
	return session, recording
}
