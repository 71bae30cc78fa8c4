package ecs

// System2 joins two component types and walks the matching rows.
type System2[T1, T2 any] struct {
	Optional [2]bool
}

func (s *System2[T1, T2]) ComponentTypeIDs() [2]TypeID {
	return [2]TypeID{TypeIDOf[T1](), TypeIDOf[T2]()}
}

func (s *System2[T1, T2]) plans() []columnPlan {
	ids := s.ComponentTypeIDs()
	return []columnPlan{
		{typeID: ids[0], optional: s.Optional[0]},
		{typeID: ids[1], optional: s.Optional[1]},
	}
}

// Walk invokes fn once per combination in the Cartesian product of rows
// sharing a sequence, in ascending sequence order, rightmost parameter
// varying fastest.
func (s *System2[T1, T2]) Walk(cm *ContainerMap, fn func(seq uint64, a *T1, b *T2)) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		forEachCombo(runs, func(idx []int) {
			fn(StaticSeq, rowPtr(tc1, runs[0], idx[0]), rowPtr(tc2, runs[1], idx[1]))
		})
		return
	}
	for _, t := range targets {
		forEachCombo(t.runs, func(idx []int) {
			fn(t.seq, rowPtr(tc1, t.runs[0], idx[0]), rowPtr(tc2, t.runs[1], idx[1]))
		})
	}
}

// WalkGrouped invokes fn once per matching target with each column handed
// over as a whole Group.
func (s *System2[T1, T2]) WalkGrouped(cm *ContainerMap, fn func(seq uint64, a Group[T1], b Group[T2])) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		fn(StaticSeq, rowGroup(tc1, runs[0]), rowGroup(tc2, runs[1]))
		return
	}
	for _, t := range targets {
		fn(t.seq, rowGroup(tc1, t.runs[0]), rowGroup(tc2, t.runs[1]))
	}
}

// WalkEntity dispatches fn for exactly one sequence, returning false
// without calling fn if a mandatory column has no row for it.
func (s *System2[T1, T2]) WalkEntity(cm *ContainerMap, seq uint64, fn func(a *T1, b *T2)) bool {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	cols, vacuous := planColumns(cm, s.plans())
	if vacuous {
		return false
	}
	runs := make([]runInfo, 2)
	for i, opt := range s.Optional {
		r, ok := buildRun(cols[i], seq)
		if !ok {
			if !opt {
				return false
			}
			r = runInfo{missing: true, length: 1}
		} else if r.length == 0 {
			if !opt {
				return false
			}
			r = runInfo{missing: true, length: 1}
		}
		runs[i] = r
	}
	called := false
	forEachCombo(runs, func(idx []int) {
		called = true
		fn(rowPtr(tc1, runs[0], idx[0]), rowPtr(tc2, runs[1], idx[1]))
	})
	return called
}
