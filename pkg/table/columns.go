package table

import (
	"sort"
	"strings"
)

type Column struct {
	ID       string
	Label    string
	Required bool // Required columns are always visible and cannot be hidden
	Numeric  bool
	Group    string
}

type ColumnGroup struct {
	ID      string
	Label   string
	Columns []string
}

// ColumnSet holds a page's static column config plus the user's current
// visible set. The effective visible set is always the union of the toggled
// set and the required columns.
type ColumnSet struct {
	columns []Column
	byID    map[string]Column
	visible map[string]bool
}

func NewColumnSet(columns []Column, defaultVisible ...string) *ColumnSet {

	cs := &ColumnSet{
		columns: columns,
		byID:    map[string]Column{},
		visible: map[string]bool{},
	}

	for _, c := range columns {
		cs.byID[c.ID] = c
	}

	for _, id := range defaultVisible {
		if _, ok := cs.byID[id]; ok {
			cs.visible[id] = true
		}
	}

	return cs
}

func (cs *ColumnSet) Columns() []Column {
	return cs.columns
}

func (cs *ColumnSet) Column(id string) (Column, bool) {
	c, ok := cs.byID[id]
	return c, ok
}

// NumericColumns feeds Sort.Apply.
func (cs *ColumnSet) NumericColumns() map[string]bool {

	out := map[string]bool{}
	for _, c := range cs.columns {
		if c.Numeric {
			out[c.ID] = true
		}
	}

	return out
}

func (cs *ColumnSet) IsVisible(id string) bool {

	c, ok := cs.byID[id]
	if !ok {
		return false
	}

	return c.Required || cs.visible[id]
}

// Toggle is a no-op for required and unknown columns.
func (cs *ColumnSet) Toggle(id string) {

	c, ok := cs.byID[id]
	if !ok || c.Required {
		return
	}

	if cs.visible[id] {
		delete(cs.visible, id)
	} else {
		cs.visible[id] = true
	}
}

// ToggleGroup bulk sets visibility, skipping required and unknown columns.
func (cs *ColumnSet) ToggleGroup(ids []string, visible bool) {

	for _, id := range ids {

		c, ok := cs.byID[id]
		if !ok || c.Required {
			continue
		}

		if visible {
			cs.visible[id] = true
		} else {
			delete(cs.visible, id)
		}
	}
}

func (cs *ColumnSet) ToggleAll(visible bool) {

	var ids []string
	for _, c := range cs.columns {
		ids = append(ids, c.ID)
	}

	cs.ToggleGroup(ids, visible)
}

// VisibleColumns returns visible columns in config order.
func (cs *ColumnSet) VisibleColumns() (out []Column) {

	for _, c := range cs.columns {
		if cs.IsVisible(c.ID) {
			out = append(out, c)
		}
	}

	return out
}

// EncodeParam serializes the toggled visible set as a sorted comma-joined
// string for URL persistence. Required columns are implied, not encoded.
func (cs *ColumnSet) EncodeParam() string {

	var ids []string
	for id := range cs.visible {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return strings.Join(ids, ",")
}

// DecodeParam restores a visible set from a URL parameter, silently dropping
// IDs that no longer exist in the column config.
func (cs *ColumnSet) DecodeParam(param string) {

	cs.visible = map[string]bool{}

	for _, id := range strings.Split(param, ",") {

		id = strings.TrimSpace(id)

		c, ok := cs.byID[id]
		if ok && !c.Required {
			cs.visible[id] = true
		}
	}
}

// SearchColumns narrows the column picker by label substring, case
// insensitive. Only a UI affordance: visibility semantics are untouched.
func (cs *ColumnSet) SearchColumns(query string) (out []Column) {

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cs.columns
	}

	for _, c := range cs.columns {
		if strings.Contains(strings.ToLower(c.Label), query) || strings.Contains(strings.ToLower(c.Group), query) {
			out = append(out, c)
		}
	}

	return out
}
