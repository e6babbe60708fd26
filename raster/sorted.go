package raster

// Insert value into list[0:count], which must already be sorted ascending, and
// return the new count. Elements after the insertion point shift up one slot.
//
// The insertion point is the first element strictly greater than value, so
// equal values keep their arrival order. There must be room for one more
// element; callers size the backing slice up front (see Scanner).
func InsertSorted(list []float64, count int, value float64) int {
	i := insertionIndex(list, count, value)
	copy(list[i+1:count+1], list[i:count])
	list[i] = value
	return count + 1
}

func insertionIndex(list []float64, count int, value float64) int {
	for i := 0; i < count; i++ {
		if list[i] > value {
			return i
		}
	}
	return count
}
