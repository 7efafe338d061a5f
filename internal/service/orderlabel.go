package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rows written before the structured quantity field existed encode it as a
// " x N" suffix on the description. The field is authoritative; suffix
// parsing survives only as a read fallback, and new rows never rely on it.

var qtySuffixRe = regexp.MustCompile(`(?i)^(.*)\s+x\s*(\d+)$`)

// ParseOrderDescription splits a description into its base text and
// quantity. A trailing " x N" suffix wins over the stored quantity;
// without one, the stored quantity applies (zero meaning 1).
func ParseOrderDescription(description string, quantity int) (string, int) {
	trimmed := strings.TrimSpace(description)
	if m := qtySuffixRe.FindStringSubmatch(trimmed); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil || n < 1 {
			n = 1
		}
		return strings.TrimSpace(m[1]), n
	}
	if quantity < 1 {
		quantity = 1
	}
	return trimmed, quantity
}

// OrderLabel is the display label for a line item: "Name xN" for N > 1,
// the bare name otherwise.
func OrderLabel(description string, quantity int) string {
	base, qty := ParseOrderDescription(description, quantity)
	if qty > 1 {
		return fmt.Sprintf("%s x%d", base, qty)
	}
	return base
}
