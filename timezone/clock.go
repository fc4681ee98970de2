package timezone

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// Clock renders wall-clock times with a strftime format.
type Clock struct {
	format      string
	localOffset *int64
	now         func() time.Time
}

// NewClock returns a clock using format. A nil localOffset means the system
// zone is local.
func NewClock(format string, localOffset *int64) *Clock {
	return &Clock{format: format, localOffset: localOffset, now: time.Now}
}

// WithNow replaces the time source.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	c.now = now
	return c
}

// At returns the current time at offset hours from UTC.
func (c *Clock) At(offset int64) time.Time {
	return c.now().In(Zone(offset))
}

// Format renders the current time at offset hours from UTC.
func (c *Clock) Format(offset int64) string {
	return strftime.Format(c.format, c.At(offset))
}

// LocalOffset is the configured local offset, or the system zone's offset
// truncated to whole hours.
func (c *Clock) LocalOffset() int64 {
	if c.localOffset != nil {
		return *c.localOffset
	}
	_, seconds := c.now().Zone()
	return int64(seconds / 3600)
}

// LocalTime renders the current local time.
func (c *Clock) LocalTime() string {
	if c.localOffset != nil {
		return c.Format(*c.localOffset)
	}
	return strftime.Format(c.format, c.now())
}

// Zone returns a fixed zone named like "UTC+2".
func Zone(offset int64) *time.Location {
	name := "UTC"
	if offset != 0 {
		name = fmt.Sprintf("UTC%+d", offset)
	}
	return time.FixedZone(name, int(offset)*3600)
}
