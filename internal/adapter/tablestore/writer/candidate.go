package writer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
)

// candidate is one immutable payload guess. Mutations always produce a new
// candidate; the one just tried is never modified.
type candidate struct {
	fields tablestore.Row
}

func newCandidate(fields tablestore.Row) candidate {
	cp := make(tablestore.Row, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return candidate{fields: cp}
}

func (c candidate) has(column string) bool {
	_, ok := c.fields[column]
	return ok
}

// without returns a copy of the candidate with the column removed.
func (c candidate) without(column string) candidate {
	next := newCandidate(c.fields)
	delete(next.fields, column)
	return next
}

// with returns a copy of the candidate with the column set.
func (c candidate) with(column string, value any) candidate {
	next := newCandidate(c.fields)
	next.fields[column] = value
	return next
}

// signature canonicalizes the candidate as sorted field=value pairs so the
// same payload shape is never tried twice.
func (c candidate) signature() string {
	keys := make([]string, 0, len(c.fields))
	for k := range c.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%s=%v", k, c.fields[k])
	}
	return b.String()
}

// worklist is the candidate queue. Derived candidates go to the front so a
// refined guess is tried before falling back down the seed ladder.
type worklist struct {
	queue []candidate
	seen  map[string]bool
}

func newWorklist() *worklist {
	return &worklist{seen: make(map[string]bool)}
}

// pushBack enqueues a candidate unless its signature was already tried.
func (w *worklist) pushBack(c candidate) bool {
	sig := c.signature()
	if w.seen[sig] {
		return false
	}
	w.seen[sig] = true
	w.queue = append(w.queue, c)
	return true
}

// pushFront enqueues a candidate at the head unless already tried.
func (w *worklist) pushFront(c candidate) bool {
	sig := c.signature()
	if w.seen[sig] {
		return false
	}
	w.seen[sig] = true
	w.queue = append([]candidate{c}, w.queue...)
	return true
}

// retry re-enqueues the exact candidate at the head, bypassing the seen
// check. Used only after an external repair (foreign key recreation) made
// the same payload viable; callers bound how often this can happen.
func (w *worklist) retry(c candidate) {
	w.queue = append([]candidate{c}, w.queue...)
}

func (w *worklist) pop() (candidate, bool) {
	if len(w.queue) == 0 {
		return candidate{}, false
	}
	c := w.queue[0]
	w.queue = w.queue[1:]
	return c, true
}
