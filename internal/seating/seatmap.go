package seating

import (
	"fmt"
	"strings"
)

// rows are lettered A through J; seats per row scales with capacity so
// the generated sequence always has exactly capacity labels
var rowLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// SeatsPerRow returns how many seats each row holds for the given
// room capacity: ceil(capacity / 10)
func SeatsPerRow(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return (capacity + len(rowLetters) - 1) / len(rowLetters)
}

// Generate derives the ordered seat universe for a room capacity.
// Labels are produced row-major ({row}{number}, numbers restarting at 1
// per row) and generation stops at exactly capacity labels, so the last
// row may be partially filled. Capacity 0 yields an empty universe.
func Generate(capacity int) []string {
	if capacity <= 0 {
		return nil
	}

	perRow := SeatsPerRow(capacity)
	seats := make([]string, 0, capacity)

	for _, row := range rowLetters {
		for n := 1; n <= perRow; n++ {
			if len(seats) == capacity {
				return seats
			}
			seats = append(seats, fmt.Sprintf("%s%d", row, n))
		}
	}

	return seats
}

// Normalize uppercases a seat label for comparison; the row letter is
// case-insensitive on input
func Normalize(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// InUniverse reports whether label belongs to the seat universe derived
// from capacity
func InUniverse(capacity int, label string) bool {
	label = Normalize(label)
	for _, seat := range Generate(capacity) {
		if seat == label {
			return true
		}
	}
	return false
}
