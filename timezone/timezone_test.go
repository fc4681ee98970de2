package timezone

import (
	"testing"
	"time"

	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccepts(t *testing.T) {
	tests := []struct {
		line string
		want store.Entry
	}{
		{"SomeName,UTC+4", store.Entry{Name: "SomeName", Offset: 4}},
		{"SomeName,+4", store.Entry{Name: "SomeName", Offset: 4}},
		{"SomeName,UTC-4", store.Entry{Name: "SomeName", Offset: -4}},
		{"SomeName,-4", store.Entry{Name: "SomeName", Offset: -4}},
		{"bob,-05", store.Entry{Name: "bob", Offset: -5}},
		{"far,+99", store.Entry{Name: "far", Offset: 99}},
		{"with space,UTC+0", store.Entry{Name: "with space", Offset: 0}},
		{"绝对,UTC+8", store.Entry{Name: "绝对", Offset: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, line := range []string{
		"",
		",UTC+8",
		",asdfUTC+8",
		"ausername,",
		"alice,UTC+",
		"alice,UTC+123",
		"alice,4",
		"alice,GMT+4",
		"alice,UTC+4 ",
		"a,b,+3",
		"alice+4",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
			assert.False(t, errors.IsFatal(err))
		})
	}
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "-5", FormatOffset(-5))
	assert.Equal(t, "0", FormatOffset(0))
	assert.Equal(t, "12", FormatOffset(12))
}

func TestClock(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 22, 30, 15, 0, time.UTC)
	c := NewClock("%H:%M:%S", nil).WithNow(func() time.Time { return fixed })

	assert.Equal(t, "22:30:15", c.Format(0))
	assert.Equal(t, "00:30:15", c.Format(2))
	assert.Equal(t, "17:30:15", c.Format(-5))
	assert.Equal(t, 2, c.At(2).Day())

	// The zone of the injected time is "local".
	assert.Equal(t, int64(0), c.LocalOffset())
	assert.Equal(t, "22:30:15", c.LocalTime())
}

func TestClockConfiguredLocalOffset(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	local := int64(-3)
	c := NewClock("%Y-%m-%d %H:%M", &local).WithNow(func() time.Time { return fixed })

	assert.Equal(t, int64(-3), c.LocalOffset())
	assert.Equal(t, "2024-06-01 07:00", c.LocalTime())
}

func TestSystemLocalOffset(t *testing.T) {
	zone := time.FixedZone("IST", 5*3600+1800)
	c := NewClock("%H", nil).WithNow(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, zone) })
	assert.Equal(t, int64(5), c.LocalOffset())
}

func TestZone(t *testing.T) {
	name, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, Zone(-7)).Zone()
	assert.Equal(t, "UTC-7", name)
	assert.Equal(t, -7*3600, offset)

	name, _ = time.Date(2024, 1, 1, 0, 0, 0, 0, Zone(0)).Zone()
	assert.Equal(t, "UTC", name)
}
