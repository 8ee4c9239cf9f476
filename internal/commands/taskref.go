package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrRowRequired indicates no task number was given.
var ErrRowRequired = errors.New("task number required")

// ParseRowRef reads the 1-based task number in args[0] as printed by list.
// It returns the 0-based row and the remaining args.
func ParseRowRef(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrRowRequired
	}
	ref := args[0]
	if !isAllDigits(ref) {
		return 0, nil, fmt.Errorf("invalid task number: %s", ref)
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 {
		return 0, nil, fmt.Errorf("task number out of range: %s", ref)
	}
	return n - 1, args[1:], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
