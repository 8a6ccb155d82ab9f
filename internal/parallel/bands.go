package parallel

// Band is a half-open range [Start, End) of rows or indices.
type Band struct {
	Start, End int
}

// Len returns the number of items in the band.
func (b Band) Len() int { return b.End - b.Start }

// Split divides [0, n) into at most parts contiguous bands of near-equal
// size, in ascending order. It returns nil for n <= 0.
func Split(n, parts int) []Band {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))

	bands := make([]Band, 0, parts)
	size, extra := n/parts, n%parts
	start := 0
	for i := range parts {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, Band{Start: start, End: end})
		start = end
	}
	return bands
}
