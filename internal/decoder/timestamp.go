package decoder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/relvacode/iso8601"
)

var errNoZone = errors.New("missing UTC offset")

// ParseTimestamp parses an ISO-8601 timestamp that carries a zone designator
// ("Z", "±hh:mm", "±hhmm" or "±hh"). RFC 3339 input keeps its full
// nanosecond fraction; other ISO-8601 forms go through the iso8601 parser.
func ParseTimestamp(s string) (time.Time, error) {
	if !hasZoneDesignator(s) {
		return time.Time{}, &MalformedTimestampError{Value: s, Err: errNoZone}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := iso8601.ParseString(s)
	if err != nil {
		return time.Time{}, &MalformedTimestampError{Value: s, Err: err}
	}
	return t, nil
}

func hasZoneDesignator(s string) bool {
	sep := strings.IndexAny(s, "Tt")
	if sep < 0 {
		return false
	}
	clock := s[sep+1:]
	if strings.HasSuffix(clock, "Z") || strings.HasSuffix(clock, "z") {
		return true
	}
	i := strings.LastIndexAny(clock, "+-")
	if i < 0 {
		return false
	}
	offset := strings.Replace(clock[i+1:], ":", "", 1)
	if len(offset) != 2 && len(offset) != 4 {
		return false
	}
	for _, c := range offset {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func formatScalar(v any) string {
	return fmt.Sprint(v)
}
