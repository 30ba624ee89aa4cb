package designer

import "fmt"

// Move returns a copy of list with the item at from removed and reinserted
// at to (an index into the already-shortened list). All other items keep
// their relative order. The input slice is never mutated; out-of-bounds
// indexes are reported without producing a partial result.
func Move[T any](list []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(list) {
		return nil, fmt.Errorf("move: from index %d out of range [0,%d)", from, len(list))
	}
	if to < 0 || to >= len(list) {
		return nil, fmt.Errorf("move: to index %d out of range [0,%d)", to, len(list))
	}

	result := make([]T, 0, len(list))
	result = append(result, list...)
	if from == to {
		return result, nil
	}

	item := result[from]
	result = append(result[:from], result[from+1:]...)

	// Reinsert at the target position in the shortened list.
	result = append(result, item)
	copy(result[to+1:], result[to:len(result)-1])
	result[to] = item

	return result, nil
}
