package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive decimal row id.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	if n == 0 || n > uint64(^uint(0)) {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(n), nil
}
