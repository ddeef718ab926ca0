// Conditions limit motion detection to predefined moments, for example a
// time window per weekday.
package conditions

import (
	"errors"
	"time"

	"github.com/stewardhq/steward/src/models"
)

func Validate(loc *time.Location, config *models.Config) (valid bool, err error) {
	valid = true
	err = nil

	withinTimeInterval := IsWithinTimeInterval(loc, config)
	if !withinTimeInterval {
		valid = false
		err = errors.New("time interval not valid")
		return
	}

	return
}
