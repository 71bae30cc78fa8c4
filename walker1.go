package ecs

// System1 walks every row of one component type. The method called picks
// the dispatch: Walk calls its callback once per row, while WalkGrouped
// hands each entity's whole matching batch to the callback at once
// instead of expanding it.
type System1[T1 any] struct {
	Optional [1]bool
}

// ComponentTypeIDs returns the type ids this walker joins over, in
// parameter order.
func (s *System1[T1]) ComponentTypeIDs() [1]TypeID {
	return [1]TypeID{TypeIDOf[T1]()}
}

func (s *System1[T1]) plans() []columnPlan {
	ids := s.ComponentTypeIDs()
	return []columnPlan{{typeID: ids[0], optional: s.Optional[0]}}
}

// Walk invokes fn once per matching row, in ascending sequence order. A
// missing optional column is passed as a nil pointer; it never suppresses
// a call on its own.
func (s *System1[T1]) Walk(cm *ContainerMap, fn func(seq uint64, a *T1)) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		forEachCombo(runs, func(idx []int) {
			fn(StaticSeq, rowPtr(tc1, runs[0], idx[0]))
		})
		return
	}
	for _, t := range targets {
		forEachCombo(t.runs, func(idx []int) {
			fn(t.seq, rowPtr(tc1, t.runs[0], idx[0]))
		})
	}
}

// WalkGrouped invokes fn once per matching target with the whole run as a
// Group, instead of expanding the product row by row.
func (s *System1[T1]) WalkGrouped(cm *ContainerMap, fn func(seq uint64, a Group[T1])) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		fn(StaticSeq, rowGroup(tc1, runs[0]))
		return
	}
	for _, t := range targets {
		fn(t.seq, rowGroup(tc1, t.runs[0]))
	}
}

// WalkEntity dispatches fn for exactly one sequence, returning false
// without calling fn if a mandatory column has no row for it.
func (s *System1[T1]) WalkEntity(cm *ContainerMap, seq uint64, fn func(a *T1)) bool {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	cols, vacuous := planColumns(cm, s.plans())
	if vacuous {
		return false
	}
	r, ok := buildRun(cols[0], seq)
	if !ok {
		if s.Optional[0] {
			r = runInfo{missing: true, length: 1}
		} else {
			return false
		}
	} else if r.length == 0 {
		if !s.Optional[0] {
			return false
		}
		r = runInfo{missing: true, length: 1}
	}
	called := false
	forEachCombo([]runInfo{r}, func(idx []int) {
		called = true
		fn(rowPtr(tc1, r, idx[0]))
	})
	return called
}
