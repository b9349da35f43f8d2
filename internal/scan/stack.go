package scan

// sectionStack tracks the depths of currently open sections. Entering a
// section at depth L closes every open section at depth >= L: a new [top]
// header closes all nested sections, a [[child]] nests under the nearest
// open shallower section.
type sectionStack struct {
	depths []int
}

func (st *sectionStack) enter(depth int) {
	for len(st.depths) > 0 && st.depths[len(st.depths)-1] >= depth {
		st.depths = st.depths[:len(st.depths)-1]
	}
	st.depths = append(st.depths, depth)
}

// open returns the number of currently open sections, the depth assigned to
// key-value, comment, and bare content lines.
func (st *sectionStack) open() int {
	return len(st.depths)
}
