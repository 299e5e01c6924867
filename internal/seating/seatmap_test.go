package seating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLength(t *testing.T) {
	for _, capacity := range []int{0, 1, 5, 9, 10, 11, 50, 99, 100, 101, 250, 1000} {
		seats := Generate(capacity)
		assert.Len(t, seats, capacity, "capacity %d", capacity)
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	for _, capacity := range []int{1, 10, 37, 100, 473} {
		seats := Generate(capacity)
		seen := make(map[string]bool, len(seats))
		for _, seat := range seats {
			assert.False(t, seen[seat], "duplicate seat %s for capacity %d", seat, capacity)
			seen[seat] = true
		}
	}
}

func TestGenerateRowMajorOrder(t *testing.T) {
	for _, capacity := range []int{7, 10, 25, 100, 333} {
		perRow := SeatsPerRow(capacity)
		seats := Generate(capacity)
		for i, seat := range seats {
			wantRow := rowLetters[i/perRow]
			wantNumber := i%perRow + 1
			assert.Equal(t, fmt.Sprintf("%s%d", wantRow, wantNumber), seat,
				"capacity %d index %d", capacity, i)
		}
	}
}

func TestGenerateSmallRoom(t *testing.T) {
	// seatsPerRow = ceil(5/10) = 1, so one seat per row, rows A-E
	assert.Equal(t, []string{"A1", "B1", "C1", "D1", "E1"}, Generate(5))
}

func TestGeneratePartialLastRow(t *testing.T) {
	// capacity 25 -> 3 seats per row, last row (I) partially filled
	seats := Generate(25)
	assert.Equal(t, "A1", seats[0])
	assert.Equal(t, "A3", seats[2])
	assert.Equal(t, "B1", seats[3])
	assert.Equal(t, "I1", seats[24])
}

func TestGenerateZeroCapacity(t *testing.T) {
	assert.Empty(t, Generate(0))
	assert.Empty(t, Generate(-3))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "A1", Normalize("a1"))
	assert.Equal(t, "J10", Normalize(" j10 "))
}

func TestInUniverse(t *testing.T) {
	assert.True(t, InUniverse(50, "A1"))
	assert.True(t, InUniverse(50, "a1"))
	assert.True(t, InUniverse(50, "J5"))
	assert.False(t, InUniverse(50, "J6"))
	assert.False(t, InUniverse(50, "K1"))
	assert.False(t, InUniverse(0, "A1"))
}
