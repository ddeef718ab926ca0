package conditions

import (
	"time"

	"github.com/stewardhq/steward/src/models"
)

// IsWithinTimeInterval checks the timetable of the current weekday. Each
// weekday carries two tracks expressed in seconds of the day, detection
// is only enabled within one of them. Without a timetable (or with
// time="false") detection is always enabled.
func IsWithinTimeInterval(loc *time.Location, config *models.Config) (enabled bool) {
	enabled = true
	if config.Time == "false" {
		return
	}
	if len(config.Timetable) == 0 {
		return
	}

	now := time.Now().In(loc)
	weekday := int(now.Weekday())
	if weekday >= len(config.Timetable) {
		return
	}
	timeInterval := config.Timetable[weekday]
	if timeInterval == nil {
		return
	}

	currentTimeInSeconds := now.Hour()*60*60 + now.Minute()*60 + now.Second()
	if (currentTimeInSeconds >= timeInterval.Start1 && currentTimeInSeconds <= timeInterval.End1) ||
		(currentTimeInSeconds >= timeInterval.Start2 && currentTimeInSeconds <= timeInterval.End2) {
		return
	}

	enabled = false
	return
}
