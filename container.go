package ecs

import "sort"

// Constructor is implemented by component types that need to run setup
// logic the first time a freshly added row becomes part of the sorted
// active set. Implementing it is optional; absence is not an error.
type Constructor interface {
	OnConstruct(seq uint64)
}

// Destructor is implemented by component types that need teardown logic
// when a row is removed, whether by explicit removal or container
// teardown. Implementing it is optional.
type Destructor interface {
	OnDestruct(seq uint64)
}

// row pairs a component value with the sequence it is tagged under.
type row[T any] struct {
	seq   uint64
	value T
}

// Group is the batched view handed to a grouped-mode system: every row of
// one component type that matched a single walk target, in sorted order.
type Group[T any] struct {
	rows []row[T]
}

// Len returns the number of rows in the group. A missing optional column or
// an empty static column both report 0.
func (g Group[T]) Len() int { return len(g.rows) }

// At returns a pointer to the i'th row's value. i must be in [0, Len()).
func (g Group[T]) At(i int) *T { return &g.rows[i].value }

type removalMode int

const (
	removeModeAll removalMode = iota
	removeModeFirst
	removeModeLast
	removeModeAt
)

type removalItem struct {
	seq  uint64
	mode removalMode
	idx  int
}

type modificationItem[T any] struct {
	index    int
	value    T
	priority int
	order    int // insertion sequence, used to break index+priority ties
}

// ComponentContainer owns every row of one component type, keyed by
// sequence. Additions, removals, and modifications are buffered until
// Normalize commits them in the fixed order: modifications, then
// additions (plus construction), then removals (plus destruction).
type ComponentContainer[T any] struct {
	rows          []row[T]
	lastSortedLen int
	lowerSeq      uint64
	upperSeq      uint64
	static        bool

	removals []removalItem
	mods     []modificationItem[T]
	modSeq   int

	typeID TypeID
	diag   Diagnostics
}

// NewComponentContainer returns an empty, normal-mode container tagged
// with T's registry id.
func NewComponentContainer[T any]() *ComponentContainer[T] {
	return &ComponentContainer[T]{typeID: TypeIDOf[T](), diag: defaultDiagnostics()}
}

// SetDiagnostics overrides the sink used for non-fatal warnings.
func (c *ComponentContainer[T]) SetDiagnostics(d Diagnostics) {
	if d != nil {
		c.diag = d
	}
}

func (c *ComponentContainer[T]) diagnostics() Diagnostics {
	if c.diag == nil {
		c.diag = defaultDiagnostics()
	}
	return c.diag
}

// Add buffers a new row for commit at the next Normalize. It panics if seq
// is 0 or the container is in Static mode; neither has a sensible
// continuation.
func (c *ComponentContainer[T]) Add(seq uint64, value T) {
	if seq == InvalidSequence {
		c.diagnostics().Warnf("ecs: add_component called with sequence 0")
		panic(&InvalidSequenceError{TypeID: c.typeID})
	}
	if c.static {
		c.diagnostics().Warnf("ecs: add_component on a static container")
		panic(&StaticNormalMixError{TypeID: c.typeID, Detail: "add_component called on a static container"})
	}
	c.rows = append(c.rows, row[T]{seq: seq, value: value})
}

// AddStatic buffers a new static row and flips the container to Static
// mode if it is still empty. It panics if the container already holds
// normal rows. Returns the 0-based insertion index the row will occupy
// once normalized.
func (c *ComponentContainer[T]) AddStatic(value T) int {
	if !c.static {
		if len(c.rows) > 0 {
			c.diagnostics().Warnf("ecs: add_static_component on a container that already has normal rows")
			panic(&StaticNormalMixError{TypeID: c.typeID, Detail: "add_static_component called on a populated normal container"})
		}
		c.static = true
	}
	idx := len(c.rows)
	c.rows = append(c.rows, row[T]{seq: StaticSeq, value: value})
	return idx
}

// RemoveAll enqueues removal of every row tagged with seq.
func (c *ComponentContainer[T]) RemoveAll(seq uint64) {
	c.removals = append(c.removals, removalItem{seq: seq, mode: removeModeAll})
}

// RemoveFirst enqueues removal of the leftmost row tagged with seq.
func (c *ComponentContainer[T]) RemoveFirst(seq uint64) {
	c.removals = append(c.removals, removalItem{seq: seq, mode: removeModeFirst})
}

// RemoveLast enqueues removal of the rightmost row tagged with seq.
func (c *ComponentContainer[T]) RemoveLast(seq uint64) {
	c.removals = append(c.removals, removalItem{seq: seq, mode: removeModeLast})
}

// RemoveAt enqueues removal of the row at the exact sorted index idx,
// provided that row's sequence still matches seq at normalize time.
func (c *ComponentContainer[T]) RemoveAt(seq uint64, idx int) {
	c.removals = append(c.removals, removalItem{seq: seq, mode: removeModeAt, idx: idx})
}

// Modify enqueues an overwrite of the sorted row currently at idx. If
// several modifications target the same index, the one with the highest
// priority wins; ties are resolved by the modification enqueued last.
func (c *ComponentContainer[T]) Modify(idx int, value T, priority int) {
	c.mods = append(c.mods, modificationItem[T]{index: idx, value: value, priority: priority, order: c.modSeq})
	c.modSeq++
}

// LookupIndex binary-searches the sorted prefix for seq. A Static
// container always answers (0, true) once it has any rows, regardless of
// the sequence asked for.
func (c *ComponentContainer[T]) LookupIndex(seq uint64) (int, bool) {
	if c.lastSortedLen == 0 {
		return 0, false
	}
	if c.static {
		return 0, true
	}
	rows := c.rows[:c.lastSortedLen]
	i := sort.Search(len(rows), func(i int) bool { return rows[i].seq >= seq })
	if i < len(rows) && rows[i].seq == seq {
		return i, true
	}
	return 0, false
}

// RowAt returns a pointer to the value at sorted index idx. idx must be in
// [0, NumRows()).
func (c *ComponentContainer[T]) RowAt(idx int) *T {
	return &c.rows[idx].value
}

// SeqAt returns the sequence at sorted index idx, or 0 if idx is out of
// range.
func (c *ComponentContainer[T]) SeqAt(idx int) uint64 {
	if idx < 0 || idx >= c.lastSortedLen {
		return 0
	}
	return c.rows[idx].seq
}

// GroupAt returns a Group view over [start, start+length) of the sorted
// rows.
func (c *ComponentContainer[T]) GroupAt(start, length int) Group[T] {
	if length <= 0 {
		return Group[T]{}
	}
	return Group[T]{rows: c.rows[start : start+length]}
}

// NumRows returns the number of rows visible to walkers, i.e. the sorted
// prefix as of the last Normalize.
func (c *ComponentContainer[T]) NumRows() int { return c.lastSortedLen }

// LowerSequence returns the sequence of sorted row 0, or 0 if empty.
func (c *ComponentContainer[T]) LowerSequence() uint64 { return c.lowerSeq }

// UpperSequence returns the sequence of the last sorted row, or 0 if empty.
func (c *ComponentContainer[T]) UpperSequence() uint64 { return c.upperSeq }

// IsStatic reports whether the container is in Static mode.
func (c *ComponentContainer[T]) IsStatic() bool { return c.static }

func compRows[T any](a, b row[T]) bool { return a.seq < b.seq }

// Normalize commits staged mutations in the fixed order: modifications,
// then additions (invoking OnConstruct for each newly sorted row), then
// removals (invoking OnDestruct for each). stable forces a stable sort of
// the active rows; Static containers always sort stably regardless of the
// flag, since add_static_component indices must survive renormalization.
func (c *ComponentContainer[T]) Normalize(stable bool) {
	c.applyModifications()
	c.applyAdditions(stable)
	c.applyRemovals()
}

func (c *ComponentContainer[T]) applyModifications() {
	if len(c.mods) == 0 {
		return
	}
	mods := c.mods
	sort.SliceStable(mods, func(i, j int) bool { return mods[i].index < mods[j].index })

	i := 0
	for i < len(mods) {
		resolved := i
		j := i + 1
		for j < len(mods) && mods[j].index == mods[resolved].index {
			if mods[j].priority > mods[resolved].priority ||
				(mods[j].priority == mods[resolved].priority && mods[j].order > mods[resolved].order) {
				resolved = j
			}
			j++
		}
		m := mods[resolved]
		if m.index >= 0 && m.index < c.lastSortedLen {
			c.rows[m.index].value = m.value
		} else {
			c.diagnostics().Warnf("ecs: renormalize: modify index %d out of range (len=%d)", m.index, c.lastSortedLen)
		}
		i = j
	}
	c.mods = c.mods[:0]
	c.modSeq = 0
}

func (c *ComponentContainer[T]) applyAdditions(stable bool) {
	if len(c.rows) == 0 {
		c.lastSortedLen = 0
		c.lowerSeq = 0
		c.upperSeq = 0
		return
	}
	if c.lastSortedLen != len(c.rows) {
		for i := c.lastSortedLen; i < len(c.rows); i++ {
			if ctor, ok := any(&c.rows[i].value).(Constructor); ok {
				ctor.OnConstruct(c.rows[i].seq)
			}
		}
		if stable || c.static {
			sort.SliceStable(c.rows, func(i, j int) bool { return compRows(c.rows[i], c.rows[j]) })
		} else {
			sort.Slice(c.rows, func(i, j int) bool { return compRows(c.rows[i], c.rows[j]) })
		}
		c.lastSortedLen = len(c.rows)
	}
	c.lowerSeq = c.rows[0].seq
	c.upperSeq = c.rows[len(c.rows)-1].seq
}

func (c *ComponentContainer[T]) applyRemovals() {
	if len(c.removals) == 0 {
		return
	}
	for _, rem := range c.removals {
		c.applyOneRemoval(rem)
	}
	c.removals = c.removals[:0]
}

func (c *ComponentContainer[T]) applyOneRemoval(rem removalItem) {
	last := c.lastSortedLen
	start := sort.Search(last, func(i int) bool { return c.rows[i].seq >= rem.seq })

	switch rem.mode {
	case removeModeAll:
		end := start
		for end < last && c.rows[end].seq == rem.seq {
			end++
		}
		for i := start; i < end; i++ {
			c.destruct(c.rows[i])
		}
		if end > start {
			c.erase(start, end)
		}
	case removeModeFirst:
		if start < last && c.rows[start].seq == rem.seq {
			c.destruct(c.rows[start])
			c.erase(start, start+1)
		}
	case removeModeLast:
		end := start
		for end < c.lastSortedLen && c.rows[end].seq == rem.seq {
			end++
		}
		if end > start {
			c.destruct(c.rows[end-1])
			c.erase(end-1, end)
		}
	case removeModeAt:
		if rem.idx >= 0 && rem.idx < c.lastSortedLen && c.rows[rem.idx].seq == rem.seq {
			c.destruct(c.rows[rem.idx])
			c.erase(rem.idx, rem.idx+1)
		}
	}
}

func (c *ComponentContainer[T]) destruct(r row[T]) {
	if dtor, ok := any(&r.value).(Destructor); ok {
		dtor.OnDestruct(r.seq)
	}
}

// erase removes rows[lo:hi] from the active array, shifting subsequent
// rows (both sorted and pending) left, and adjusts lastSortedLen.
func (c *ComponentContainer[T]) erase(lo, hi int) {
	n := hi - lo
	copy(c.rows[lo:], c.rows[hi:])
	c.rows = c.rows[:len(c.rows)-n]
	c.lastSortedLen -= n
	if c.lastSortedLen > 0 {
		c.lowerSeq = c.rows[0].seq
		c.upperSeq = c.rows[c.lastSortedLen-1].seq
	} else {
		c.lowerSeq = 0
		c.upperSeq = 0
	}
}

// Clear destroys every active row, invoking OnDestruct for each. Rows that
// were added but never survived a Normalize are dropped silently, mirroring
// the source this runtime is modeled on: construction only ever happens
// post-sort, so a row that never got there never saw a constructor either,
// and by the same asymmetry it sees no destructor.
func (c *ComponentContainer[T]) Clear() {
	for i := 0; i < c.lastSortedLen; i++ {
		c.destruct(c.rows[i])
	}
	c.rows = nil
	c.lastSortedLen = 0
	c.lowerSeq = 0
	c.upperSeq = 0
	c.removals = nil
	c.mods = nil
}

// Serialize invokes sink's hook for every row currently held, including
// rows staged but not yet normalized, which lets callers take a pre-commit
// snapshot. T opts into serialization by implementing RowSerializer; rows
// of a type that doesn't are skipped silently.
func (c *ComponentContainer[T]) Serialize(sink Sink) {
	for i := range c.rows {
		s, ok := any(&c.rows[i].value).(RowSerializer)
		if !ok {
			return
		}
		data, err := s.MarshalComponent()
		if err != nil {
			c.diagnostics().Warnf("ecs: marshal component type %d seq %d: %v", c.typeID, c.rows[i].seq, err)
			continue
		}
		sink.WriteComponent(c.typeID, c.rows[i].seq, data)
	}
}
