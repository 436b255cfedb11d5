package repository

import (
	"strconv"
	"strings"
)

// setBuilder assembles the SET clause of a partial UPDATE from optional
// fields. Columns are added only when the caller has a value for them,
// and every value travels as a bound parameter; column names come from
// compile-time constants in the repositories, never from user input.
type setBuilder struct {
	cols []string
	args []any
}

// add appends one column assignment with its bound value.
func (b *setBuilder) add(column string, value any) {
	b.cols = append(b.cols, column+"=?")
	b.args = append(b.args, value)
}

// empty reports whether no assignment has been added.
func (b *setBuilder) empty() bool { return len(b.cols) == 0 }

// clause returns the joined "col=?, col=?" fragment and its arguments.
func (b *setBuilder) clause() (string, []any) {
	return strings.Join(b.cols, ", "), b.args
}

// condBuilder assembles optional AND-joined filter conditions for
// search queries, mirroring setBuilder for the WHERE side.
type condBuilder struct {
	conds []string
	args  []any
}

// add appends one condition containing its own placeholders together
// with the values bound to them.
func (b *condBuilder) add(cond string, values ...any) {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, values...)
}

// addIn appends an "expr IN (?,...)" condition when values is
// non-empty; an empty set adds no filter.
func (b *condBuilder) addIn(expr string, values []any) {
	if len(values) == 0 {
		return
	}
	b.conds = append(b.conds, expr+" IN ("+placeholders(len(values))+")")
	b.args = append(b.args, values...)
}

// clause joins the collected conditions with AND. With no conditions it
// returns "1=1" so callers can always append it after WHERE.
func (b *condBuilder) clause() (string, []any) {
	if len(b.conds) == 0 {
		return "1=1", nil
	}
	return strings.Join(b.conds, " AND "), b.args
}

// placeholders returns n comma-separated "?" markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func idsToAny(ids []uint64) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}

func stringsToAny(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func boolsToAny(bs []bool) []any {
	out := make([]any, 0, len(bs))
	for _, b := range bs {
		out = append(out, b)
	}
	return out
}

// parseIDList splits a GROUP_CONCAT id list ("1,5,9") into IDs.
// Malformed fragments are skipped rather than failing the whole scan.
func parseIDList(s string) []uint64 {
	out := make([]uint64, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
