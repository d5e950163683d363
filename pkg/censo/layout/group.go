package layout

// Group is a run of contiguous flag fields that answer one question, such as
// "which water supplies does the school have". None is the position of the
// group's exclusive "none of the above" flag, or 0 when the group has none.
type Group struct {
	Name  string
	First int
	Last  int
	None  int
}

// Positions returns the member positions, excluding the None flag.
func (g Group) Positions() []int {
	out := make([]int, 0, g.Last-g.First+1)
	for p := g.First; p <= g.Last; p++ {
		out = append(out, p)
	}
	return out
}

// Span returns First..Last plus the None flag when present.
func (g Group) Span() []int {
	out := g.Positions()
	if g.None != 0 {
		out = append(out, g.None)
	}
	return out
}
