// Package timezone parses "name,[UTC]±H" entries and renders the time at a
// whole-hour UTC offset.
package timezone

import (
	"regexp"
	"strconv"

	"github.com/grovetools/tzclock/errors"
	"github.com/grovetools/tzclock/store"
)

var entryRegex = regexp.MustCompile(`^([^,]+),(?:UTC)?([-+][0-9]{1,2})$`)

// Parse turns a line such as "alice,UTC+2" or "bob,-5" into an entry. The
// offset is not range checked.
func Parse(line string) (store.Entry, error) {
	m := entryRegex.FindStringSubmatch(line)
	if m == nil {
		return store.Entry{}, errors.InvalidInput(line, "expected name,[UTC]+H or name,[UTC]-H")
	}

	offset, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return store.Entry{}, errors.OffsetParse(m[2], err)
	}

	return store.Entry{Name: m[1], Offset: offset}, nil
}

// FormatOffset renders an offset the way the table shows it.
func FormatOffset(offset int64) string {
	return strconv.FormatInt(offset, 10)
}
