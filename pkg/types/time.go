package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var numOfDigitsOfUnixTimestamp = len(strconv.FormatInt(time.Now().Unix(), 10))
var numOfDigitsOfMilliSecondUnixTimestamp = len(strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10))
var numOfDigitsOfNanoSecondsUnixTimestamp = len(strconv.FormatInt(time.Now().UnixNano(), 10))

var looseTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time is the bar timestamp. It is encoded as unix seconds, the format used by
// the charting layer, and decoded from unix seconds, milliseconds, nanoseconds
// or one of the loose date-time layouts.
type Time time.Time

func NewTimeFromUnix(sec int64, nsec int64) Time {
	return Time(time.Unix(sec, nsec))
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) String() string {
	return time.Time(t).UTC().Format(time.RFC3339)
}

func (t Time) Equal(o Time) bool {
	return time.Time(t).Equal(time.Time(o))
}

func (t Time) Before(o Time) bool {
	return time.Time(t).Before(time.Time(o))
}

func (t Time) MarshalJSON() ([]byte, error) {
	return t.appendUnix(nil), nil
}

// UnixString is the text form of MarshalJSON, used for csv columns.
func (t Time) UnixString() string {
	return string(t.appendUnix(nil))
}

// appendUnix appends the unix seconds, with a decimal fraction when the time
// is not on a whole second.
func (t Time) appendUnix(buf []byte) []byte {
	tt := time.Time(t)
	ns := tt.Nanosecond()
	if ns == 0 {
		return strconv.AppendInt(buf, tt.Unix(), 10)
	}

	if tt.Unix() < 0 {
		sec := float64(tt.UnixNano()) / float64(time.Second)
		return strconv.AppendFloat(buf, sec, 'f', -1, 64)
	}

	frac := strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
	buf = strconv.AppendInt(buf, tt.Unix(), 10)
	buf = append(buf, '.')
	return append(buf, frac...)
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch vt := v.(type) {
	case float64:
		tt, err := convertFloat64ToTime(vt)
		if err != nil {
			return err
		}
		*t = Time(tt)
		return nil

	case string:
		tt, err := ParseTime(vt)
		if err != nil {
			return err
		}
		*t = Time(tt)
		return nil
	}

	return fmt.Errorf("can not parse %T %+v as time", v, v)
}

// ParseTime parses a numeric unix timestamp (seconds, milliseconds or
// nanoseconds, detected by the number of digits) or a date-time string.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return convertFloat64ToTime(f)
	}

	for _, layout := range looseTimeFormats {
		if tt, err := time.Parse(layout, s); err == nil {
			return tt, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time format: %q", s)
}

// convertFloat64ToTime picks the unit by the number of integer digits of f,
// counted on its plain decimal form so that 1.7e12 reads as milliseconds.
func convertFloat64ToTime(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%v is not a timestamp", f)
	}

	vt := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
	if idx := strings.Index(vt, "."); idx >= 0 {
		vt = vt[0:idx]
	}

	if len(vt) <= numOfDigitsOfUnixTimestamp {
		return time.Unix(0, int64(f*float64(time.Second))), nil
	} else if len(vt) <= numOfDigitsOfMilliSecondUnixTimestamp {
		return time.Unix(0, int64(f)*int64(time.Millisecond)), nil
	} else if len(vt) <= numOfDigitsOfNanoSecondsUnixTimestamp {
		return time.Unix(0, int64(f)), nil
	}

	return time.Time{}, fmt.Errorf("the floating point value %f is out of the timestamp range", f)
}
