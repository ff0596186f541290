package foldersize

import (
	"math"
	"strconv"
)

// byteUnits are the binary magnitude labels, bytes through petabytes.
//
//nolint:gochecknoglobals // Rendering constant
var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count as a human-readable magnitude string
// using binary (1024-based) units. It never fails: negative input renders as
// "0 B".
//
// Values in the base unit, or at or above 100 in their unit, carry no
// fractional digit; everything else is rounded to one fractional digit with
// a trailing ".0" dropped, so 1024 renders as "1 KB" and 1536 as "1.5 KB".
func FormatBytes(size int64) string {
	if size < 0 {
		size = 0
	}

	unit := 0
	for s := size; s >= 1024 && unit < len(byteUnits)-1; s >>= 10 {
		unit++
	}

	if unit == 0 {
		return strconv.FormatInt(size, 10) + " B"
	}

	value := float64(size) / float64(int64(1)<<(10*unit))
	value = math.Round(value*10) / 10

	if value >= 100 {
		return strconv.FormatFloat(math.Round(value), 'f', 0, 64) + " " + byteUnits[unit]
	}

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + byteUnits[unit]
}
