package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	sizePattern     = regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	durationPattern = regexp.MustCompile(`^(\d+)\s*(d|h|m|s)$`)
)

// ParseSize parses a human readable size ("10MB", "512K", "100") into bytes.
func ParseSize(sizeStr string) (uint64, error) {
	matches := sizePattern.FindStringSubmatch(strings.TrimSpace(sizeStr))
	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	switch strings.ToUpper(matches[2]) {
	case "T":
		return value << 40, nil
	case "G":
		return value << 30, nil
	case "M":
		return value << 20, nil
	case "K":
		return value << 10, nil
	default:
		return value, nil
	}
}

// ParseDuration parses a duration with support for days ("28d", "5m").
// "0" and zero values ("0d") return 0, which callers treat as disabled.
func ParseDuration(durationStr string) (time.Duration, error) {
	trimmed := strings.TrimSpace(durationStr)
	if trimmed == "0" {
		return 0, nil
	}

	matches := durationPattern.FindStringSubmatch(trimmed)
	if len(matches) < 3 {
		return 0, fmt.Errorf("invalid duration format: %s", durationStr)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", matches[1])
	}

	switch matches[2] {
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	default:
		return time.Duration(value) * time.Second, nil
	}
}
