package table

// ScrollWindow computes which slice of a sorted/filtered record list to
// materialize for a given scroll offset, with spacer rows standing in for
// everything outside the window so scrollbar geometry stays correct.
type ScrollWindow struct {
	RowHeight   int // Pixels per row
	VisibleRows int // Rows that fit in the viewport
	Buffer      int // Extra rows rendered either side of the viewport
}

type WindowSlice struct {
	Start         int // First materialized row index
	End           int // One past the last materialized row index
	SkippedBefore int
	SkippedAfter  int
}

func (ws WindowSlice) SpacerBefore(rowHeight int) int {
	return ws.SkippedBefore * rowHeight
}

func (ws WindowSlice) SpacerAfter(rowHeight int) int {
	return ws.SkippedAfter * rowHeight
}

// Slice clamps the window to [0, total). For every offset,
// SkippedBefore + (End-Start) + SkippedAfter == total, and materialized rows
// keep their order in the full sequence.
func (w ScrollWindow) Slice(total int, scrollOffset int) WindowSlice {

	if total <= 0 {
		return WindowSlice{}
	}

	rowHeight := w.RowHeight
	if rowHeight <= 0 {
		rowHeight = 1
	}

	start := scrollOffset/rowHeight - w.Buffer
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	end := start + w.VisibleRows + 2*w.Buffer
	if end > total {
		end = total
	}

	return WindowSlice{
		Start:         start,
		End:           end,
		SkippedBefore: start,
		SkippedAfter:  total - end,
	}
}

// Materialize applies the slice to the full record list.
func (ws WindowSlice) Materialize(records []Record) []Record {
	return records[ws.Start:ws.End]
}

// Pages partitions records by a grouping key (e.g. invoice month), keeping
// the key order of first appearance in the sorted sequence.
type Pages struct {
	keys  []string
	pages map[string][]Record
}

func Paginate(records []Record, key func(Record) string) *Pages {

	p := &Pages{pages: map[string][]Record{}}

	for _, r := range records {

		k := key(r)
		if _, ok := p.pages[k]; !ok {
			p.keys = append(p.keys, k)
		}

		p.pages[k] = append(p.pages[k], r)
	}

	return p
}

func (p *Pages) TotalPages() int {
	return len(p.keys)
}

func (p *Pages) Keys() []string {
	return p.keys
}

// Page returns the partition for a zero-based page index, nil out of range.
func (p *Pages) Page(i int) []Record {

	if i < 0 || i >= len(p.keys) {
		return nil
	}

	return p.pages[p.keys[i]]
}
