package table

// IndexOf returns the position of name in columns, or -1.
func IndexOf(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Union returns the columns of base followed by every column of the other lists
// that base does not contain yet, preserving first-seen order.
func Union(base []string, others ...[]string) []string {
	out := make([]string, 0, len(base))
	seen := make(map[string]struct{}, len(base))
	add := func(cols []string) {
		for _, c := range cols {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	add(base)
	for _, o := range others {
		add(o)
	}
	return out
}

// Difference returns the columns of a that are not in b, in a's order.
func Difference(a, b []string) []string {
	var out []string
	for _, c := range a {
		if IndexOf(b, c) < 0 {
			out = append(out, c)
		}
	}
	return out
}

// InsertAfter moves (or inserts) column immediately to the right of anchor.
// If anchor is not present the column list is returned unchanged.
func InsertAfter(columns []string, column, anchor string) []string {
	if column == anchor || IndexOf(columns, anchor) < 0 {
		return columns
	}
	out := remove(columns, column)
	idx := IndexOf(out, anchor)
	out = append(out, "")
	copy(out[idx+2:], out[idx+1:])
	out[idx+1] = column
	return out
}

// MoveLast moves column to the final position if it is present.
func MoveLast(columns []string, column string) []string {
	if IndexOf(columns, column) < 0 {
		return columns
	}
	return append(remove(columns, column), column)
}

func remove(columns []string, column string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if c != column {
			out = append(out, c)
		}
	}
	return out
}
