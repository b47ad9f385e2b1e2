package collections

// Contains reports whether elem is present in elements.
func Contains[T comparable](elem T, elements []T) bool {
	return IndexOf(elem, elements) >= 0
}

// IndexOf returns the position of the first occurrence of elem in elements, or -1.
func IndexOf[T comparable](elem T, elements []T) int {
	for i, e := range elements {
		if elem == e {
			return i
		}
	}
	return -1
}

// SwapRemove removes the element at index i by moving the last element into its
// place and truncating. Element order is not preserved.
// It panics if i is out of range.
func SwapRemove[T any](elements []T, i int) []T {
	last := len(elements) - 1
	elements[i] = elements[last]

	var zero T
	elements[last] = zero

	return elements[:last]
}
