package ecs

// runInfo describes the contiguous sorted run of one container that
// belongs to a single walk target: [start, start+length) for a per-entity
// container, or the entire static set (start=0, length=NumRows()) for a
// static one, repeated unchanged across every target.
type runInfo struct {
	start   int
	length  int
	static  bool
	missing bool // optional column had no match; exactly one nil slot
}

// iterLen is how many product slots this column contributes: its real run
// length, or exactly 1 (a nil slot) when the column is an absent optional.
func (r runInfo) iterLen() int {
	if r.missing {
		return 1
	}
	return r.length
}

// columnPlan is one system parameter's erased description: which container
// to read from and whether a miss there merely empties that column's run
// (optional) or disqualifies the whole target (mandatory).
type columnPlan struct {
	typeID   TypeID
	optional bool
}

// walkTarget is one row of the join: the entity sequence under
// consideration (meaningless when allStatic is true) and the per-column
// run computed for it.
type walkTarget struct {
	seq  uint64
	runs []runInfo
}

// planColumns resolves each columnPlan to its live Container, leaving nil
// for an optional column whose container is absent. A missing mandatory
// container makes the whole walk vacuous.
func planColumns(cm *ContainerMap, plans []columnPlan) (cols []Container, vacuous bool) {
	cols = make([]Container, len(plans))
	for i, p := range plans {
		c, ok := cm.Get(p.typeID)
		if !ok {
			if !p.optional {
				return cols, true
			}
			continue
		}
		cols[i] = c
	}
	return cols, false
}

// buildRun computes the run for container c at sequence seq. ok is false
// only when c is nil (container never registered).
func buildRun(c Container, seq uint64) (r runInfo, ok bool) {
	if c == nil {
		return runInfo{}, false
	}
	if c.IsStatic() {
		return runInfo{start: 0, length: c.NumRows(), static: true}, true
	}
	start, found := c.LookupIndex(seq)
	if !found {
		return runInfo{}, true
	}
	end := start
	n := c.NumRows()
	for end < n && c.SeqAt(end) == seq {
		end++
	}
	return runInfo{start: start, length: end - start}, true
}

// chooseLeader returns the index of the mandatory, non-static column with
// the smallest upper sequence, which bounds how far the join needs to
// look before no further target can possibly satisfy every mandatory
// column. Returns -1 if no such column exists.
func chooseLeader(plans []columnPlan, cols []Container) int {
	leader := -1
	var leaderUpper uint64
	for i, p := range plans {
		if p.optional || cols[i] == nil || cols[i].IsStatic() {
			continue
		}
		u := cols[i].UpperSequence()
		if leader == -1 || u < leaderUpper {
			leader = i
			leaderUpper = u
		}
	}
	return leader
}

// unionSequences merges the sorted distinct sequences present across every
// non-static column, used when no mandatory non-static column exists to
// drive the join directly.
func unionSequences(cols []Container) []uint64 {
	idx := make([]int, len(cols))
	var out []uint64
	for {
		best := ^uint64(0)
		have := false
		for i, c := range cols {
			if c == nil || c.IsStatic() {
				continue
			}
			if idx[i] >= c.NumRows() {
				continue
			}
			s := c.SeqAt(idx[i])
			if !have || s < best {
				best = s
				have = true
			}
		}
		if !have {
			return out
		}
		out = append(out, best)
		for i, c := range cols {
			if c == nil || c.IsStatic() || idx[i] >= c.NumRows() {
				continue
			}
			if c.SeqAt(idx[i]) == best {
				idx[i]++
			}
		}
	}
}

// walkTargets drives the erased join and returns one walkTarget per
// sequence where every mandatory column has a non-empty run, in ascending
// sequence order. When every column is static there is no entity axis at
// all; callers are expected to check allStatic and dispatch once instead
// of iterating targets.
func walkTargets(cm *ContainerMap, plans []columnPlan) (targets []walkTarget, allStatic bool) {
	cols, vacuous := planColumns(cm, plans)
	if vacuous {
		return nil, false
	}

	anyNonStatic := false
	for i := range plans {
		if cols[i] != nil && !cols[i].IsStatic() {
			anyNonStatic = true
		}
	}
	if !anyNonStatic {
		return nil, true
	}

	leader := chooseLeader(plans, cols)

	var candidates []uint64
	if leader >= 0 {
		lc := cols[leader]
		n := lc.NumRows()
		candidates = make([]uint64, 0, n)
		var last uint64
		hasLast := false
		for i := 0; i < n; i++ {
			s := lc.SeqAt(i)
			if !hasLast || s != last {
				candidates = append(candidates, s)
				last = s
				hasLast = true
			}
		}
	} else {
		candidates = unionSequences(cols)
	}

	targets = make([]walkTarget, 0, len(candidates))
candidateLoop:
	for _, seq := range candidates {
		runs := make([]runInfo, len(plans))
		for i, p := range plans {
			r, ok := buildRun(cols[i], seq)
			if !ok {
				if !p.optional {
					// Mandatory column never registered: every candidate
					// disqualifies. Caller already filtered this via
					// planColumns' vacuous flag, but guard anyway.
					return nil, false
				}
				runs[i] = runInfo{missing: true, length: 1}
				continue
			}
			if r.length == 0 {
				if !p.optional {
					if cols[i] != nil && seq > cols[i].UpperSequence() {
						// This mandatory column is exhausted for good; no
						// later candidate (all strictly larger) can match
						// it either, so the whole walk is done.
						break candidateLoop
					}
					// Gap at this sequence only; skip this target and
					// keep scanning later candidates against this column.
					continue candidateLoop
				}
				runs[i] = runInfo{missing: true, length: 1}
				continue
			}
			runs[i] = r
		}
		targets = append(targets, walkTarget{seq: seq, runs: runs})
	}
	return targets, false
}

// staticDispatchRuns builds one runInfo per column for the all-static
// corner case, where every column is a broadcast set and there is no
// entity sequence to join on at all.
func staticDispatchRuns(cm *ContainerMap, plans []columnPlan) (runs []runInfo, vacuous bool) {
	cols, vacuous := planColumns(cm, plans)
	if vacuous {
		return nil, true
	}
	runs = make([]runInfo, len(plans))
	for i, p := range plans {
		r, ok := buildRun(cols[i], 0)
		if !ok {
			if !p.optional {
				return nil, true
			}
			r = runInfo{missing: true, length: 1}
		}
		runs[i] = r
	}
	return runs, false
}

// forEachCombo enumerates the Cartesian product of every run's slots,
// rightmost column varying fastest, matching the nested-loop order a
// hand-written N-ary join would use.
func forEachCombo(runs []runInfo, visit func(idx []int)) {
	n := len(runs)
	idx := make([]int, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			visit(idx)
			return
		}
		length := runs[pos].iterLen()
		for i := 0; i < length; i++ {
			idx[pos] = i
			rec(pos + 1)
		}
	}
	rec(0)
}
