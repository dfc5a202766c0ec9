package eta

import (
	"fmt"
	"math"
)

// FormatDuration renders a duration in seconds as "12.34s" below one
// minute and as signed, zero-padded H:MM:SS at a minute or more. The
// hours field grows as wide as needed; the sign prefix appears only
// for negative values, with truncation toward zero on the magnitude.
//
// NaN and the infinities take the short form ("NaNs", "+Infs"):
// degenerate estimates flow through display rather than erroring.
func FormatDuration(secs float64) string {
	if math.IsNaN(secs) || math.IsInf(secs, 0) || math.Abs(secs) < 60 {
		return fmt.Sprintf("%.2fs", secs)
	}

	sign := ""
	s := int64(secs)
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, s/3600, (s/60)%60, s%60)
}

// FormatThroughput renders an iterations-per-second value: "2.50 it/s"
// above one iteration per second, otherwise the time per iteration,
// e.g. "2.00s/iter".
func FormatThroughput(x float64) string {
	if x > 1 {
		return fmt.Sprintf("%.2f it/s", x)
	}
	return FormatDuration(1/x) + "/iter"
}
