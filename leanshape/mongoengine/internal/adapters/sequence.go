package adapters

// sliceSequence adapts any document-bearing slice type to the Sequence view.
// SetIndex silently drops values of a foreign element type; engines only ever
// write back what Index/Unwrap handed out, so this cannot occur in practice.
type sliceSequence[E any] struct {
	elements []E
}

func (s sliceSequence[E]) Len() int {
	return len(s.elements)
}

func (s sliceSequence[E]) Index(i int) any {
	return s.elements[i]
}

func (s sliceSequence[E]) SetIndex(i int, value any) {
	if element, ok := value.(E); ok {
		s.elements[i] = element
	}
}
