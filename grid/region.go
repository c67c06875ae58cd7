package grid

// orthogonal is the up, down, left, right offset table used for region
// flooding. The traverse package owns the canonical copy for searches.
var orthogonal = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Region returns the 4-connected component of traversable cells containing
// from, in breadth-first discovery order. An untraversable from yields nil.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) for the seen flags and output.
func Region(v View, from Coord) []Coord {
	if !v.Traversable(from) {
		return nil
	}
	cols := v.Cols()
	seen := make([]bool, v.Rows()*cols)
	seen[from.Row*cols+from.Col] = true
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range orthogonal {
			n := u.Add(d)
			if !v.Traversable(n) || seen[n.Row*cols+n.Col] {
				continue
			}
			seen[n.Row*cols+n.Col] = true
			queue = append(queue, n)
		}
	}

	return queue
}
