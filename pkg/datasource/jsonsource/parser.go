package jsonsource

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/tradeacademy/indicatorlab/pkg/metrics"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

var (
	// ErrUnsupportedDocument is returned when the payload is neither a bar array nor an object wrapping one.
	ErrUnsupportedDocument = errors.New("expected an array of bars")

	// ErrMissingField is returned when a bar lacks one of time, open, high, low and close.
	ErrMissingField = errors.New("missing bar field")

	ErrInvalidTimeFormat   = errors.New("cannot parse bar time")
	ErrInvalidPriceFormat  = errors.New("OHLC prices must be numbers or decimal strings")
	ErrInvalidVolumeFormat = errors.New("volume must be a number or a decimal string")
)

// wrapperKeys are the object keys searched for the bar array when the
// document is an object.
var wrapperKeys = []string{"bars", "candles", "klines", "data"}

var fieldAliases = map[string][]string{
	"time":   {"time", "t", "timestamp", "openTime", "date"},
	"open":   {"open", "o"},
	"high":   {"high", "h"},
	"low":    {"low", "l"},
	"close":  {"close", "c"},
	"volume": {"volume", "v"},
}

// ReadBarsFromFile parses a JSON file of price bars.
func ReadBarsFromFile(filename string) ([]types.PriceBar, error) {
	payload, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	bars, err := ParseBars(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}

	return bars, nil
}

// ParseBars accepts the payload formats used by charting front-ends and
// exchange APIs:
//
//	[{"time": 1700000000, "open": 1, "high": 2, "low": 0.5, "close": 1.5, "volume": 10}, ...]
//	{"bars": [...]}
//	[[1700000000000, "1", "2", "0.5", "1.5", "10"], ...]
//
// Field values may be numbers or strings. Volume is optional.
func ParseBars(payload []byte) ([]types.PriceBar, error) {
	parser := fastjson.Parser{}
	val, err := parser.ParseBytes(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse payload")
	}

	if val.Type() == fastjson.TypeObject {
		val = unwrap(val)
		if val == nil {
			return nil, ErrUnsupportedDocument
		}
	}

	items, err := val.Array()
	if err != nil {
		return nil, ErrUnsupportedDocument
	}

	bars := make([]types.PriceBar, 0, len(items))
	for i, item := range items {
		bar, err := parseBar(item)
		if err != nil {
			return nil, errors.Wrapf(err, "bar %d", i)
		}
		bars = append(bars, bar)
	}

	metrics.ObserveInputBars("json", len(bars))
	return bars, nil
}

func unwrap(val *fastjson.Value) *fastjson.Value {
	for _, key := range wrapperKeys {
		if v := val.Get(key); v != nil && v.Type() == fastjson.TypeArray {
			return v
		}
	}
	return nil
}

func parseBar(val *fastjson.Value) (types.PriceBar, error) {
	switch val.Type() {
	case fastjson.TypeObject:
		return parseBarObject(val)
	case fastjson.TypeArray:
		return parseBarArray(val)
	}

	return types.PriceBar{}, errors.Wrapf(ErrUnsupportedDocument, "unexpected %s element", val.Type())
}

func parseBarObject(val *fastjson.Value) (bar types.PriceBar, err error) {
	fields := make(map[string]*fastjson.Value, len(fieldAliases))
	for name, aliases := range fieldAliases {
		for _, alias := range aliases {
			if v := val.Get(alias); v != nil && v.Type() != fastjson.TypeNull {
				fields[name] = v
				break
			}
		}
	}

	for _, name := range []string{"time", "open", "high", "low", "close"} {
		if fields[name] == nil {
			return bar, errors.Wrap(ErrMissingField, name)
		}
	}

	return decodeFields(fields["time"], fields["open"], fields["high"], fields["low"], fields["close"], fields["volume"])
}

// parseBarArray decodes the [time, open, high, low, close, volume, ...] layout
// of the exchange kline endpoints. Extra elements are ignored.
func parseBarArray(val *fastjson.Value) (types.PriceBar, error) {
	elems := val.GetArray()
	if len(elems) < 5 {
		return types.PriceBar{}, errors.Wrapf(ErrMissingField, "got %d elements", len(elems))
	}

	var volume *fastjson.Value
	if len(elems) > 5 {
		volume = elems[5]
	}

	return decodeFields(elems[0], elems[1], elems[2], elems[3], elems[4], volume)
}

func decodeFields(t, o, h, l, c, v *fastjson.Value) (bar types.PriceBar, err error) {
	ts, ok := rawString(t)
	if !ok {
		return bar, ErrInvalidTimeFormat
	}

	tt, err := types.ParseTime(ts)
	if err != nil {
		return bar, ErrInvalidTimeFormat
	}
	bar.Time = types.Time(tt)

	prices := []struct {
		dst *float64
		val *fastjson.Value
	}{
		{&bar.Open, o},
		{&bar.High, h},
		{&bar.Low, l},
		{&bar.Close, c},
	}
	for _, p := range prices {
		if *p.dst, err = number(p.val); err != nil {
			return types.PriceBar{}, ErrInvalidPriceFormat
		}
	}

	if v != nil && v.Type() != fastjson.TypeNull {
		if bar.Volume, err = number(v); err != nil {
			return types.PriceBar{}, ErrInvalidVolumeFormat
		}
	}

	return bar, nil
}

// rawString returns the text of a number or string value.
func rawString(val *fastjson.Value) (string, bool) {
	switch val.Type() {
	case fastjson.TypeString:
		return string(val.GetStringBytes()), true
	case fastjson.TypeNumber:
		return string(val.MarshalTo(nil)), true
	}
	return "", false
}

func number(val *fastjson.Value) (float64, error) {
	switch val.Type() {
	case fastjson.TypeNumber:
		return val.Float64()
	case fastjson.TypeString:
		return strconv.ParseFloat(string(val.GetStringBytes()), 64)
	}
	return 0, errors.Errorf("unexpected %s value", val.Type())
}
