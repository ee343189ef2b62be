package profiler

import (
	"strconv"
	"strings"
)

// appendRecord serializes one duration event in Trace Event Format. Field
// order is fixed so the raw file stays readable; timestamps and durations
// are microseconds with three decimal places. Any double quote in the name
// becomes a single quote, which keeps the JSON well-formed without full
// escaping.
func appendRecord(dst []byte, r Record) []byte {
	name := strings.ReplaceAll(r.Name, `"`, `'`)

	dst = append(dst, `,{"cat":"function","dur":`...)
	dst = appendMicros(dst, float64(r.Dur.Microseconds()))
	dst = append(dst, `,"name":"`...)
	dst = append(dst, name...)
	dst = append(dst, `","ph":"X","pid":0,"tid":`...)
	dst = strconv.AppendUint(dst, r.TID, 10)
	dst = append(dst, `,"ts":`...)
	dst = appendMicros(dst, r.Start)
	dst = append(dst, '}')
	return dst
}

func appendMicros(dst []byte, us float64) []byte {
	return strconv.AppendFloat(dst, us, 'f', 3, 64)
}
