package collector

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// lookbackStart converts a Yahoo-style range ("5d", "6mo", "1y") into a start time before end.
func lookbackStart(end time.Time, rng string) (time.Time, error) {
	rng = strings.TrimSpace(strings.ToLower(rng))
	var unit string
	for _, u := range []string{"mo", "d", "y"} {
		if strings.HasSuffix(rng, u) {
			unit = u
			break
		}
	}
	if unit == "" {
		return time.Time{}, fmt.Errorf("unsupported range %q", rng)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(rng, unit))
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("unsupported range %q", rng)
	}
	switch unit {
	case "d":
		return end.AddDate(0, 0, -n), nil
	case "mo":
		return end.AddDate(0, -n, 0), nil
	default:
		return end.AddDate(-n, 0, 0), nil
	}
}
