package mocks

import (
	"fmt"

	"github.com/stargrid/stargrid-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
	stringCalls   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Shuffle is a no-op: mocked shuffles keep elements in construction order,
// which makes the deck's draw order predictable in tests
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {}

// String returns the next queued result. With an empty queue it falls back
// to a numbered sequence ("mock-string-1", ...) so generated ids stay
// unique without queueing.
func (r *MockRandom) String(length int, alphabet string) string {
	r.stringCalls++
	if r.stringIndex >= len(r.StringResults) {
		return fmt.Sprintf("mock-string-%d", r.stringCalls)
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.StringResults = nil
	r.stringIndex = 0
	r.stringCalls = 0
}
