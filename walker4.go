package ecs

// System4 joins four component types and walks the matching rows.
type System4[T1, T2, T3, T4 any] struct {
	Optional [4]bool
}

func (s *System4[T1, T2, T3, T4]) ComponentTypeIDs() [4]TypeID {
	return [4]TypeID{TypeIDOf[T1](), TypeIDOf[T2](), TypeIDOf[T3](), TypeIDOf[T4]()}
}

func (s *System4[T1, T2, T3, T4]) plans() []columnPlan {
	ids := s.ComponentTypeIDs()
	return []columnPlan{
		{typeID: ids[0], optional: s.Optional[0]},
		{typeID: ids[1], optional: s.Optional[1]},
		{typeID: ids[2], optional: s.Optional[2]},
		{typeID: ids[3], optional: s.Optional[3]},
	}
}

func (s *System4[T1, T2, T3, T4]) Walk(cm *ContainerMap, fn func(seq uint64, a *T1, b *T2, c *T3, d *T4)) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	tc3 := typedContainer[T3](cm, ids[2])
	tc4 := typedContainer[T4](cm, ids[3])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		forEachCombo(runs, func(idx []int) {
			fn(StaticSeq, rowPtr(tc1, runs[0], idx[0]), rowPtr(tc2, runs[1], idx[1]), rowPtr(tc3, runs[2], idx[2]), rowPtr(tc4, runs[3], idx[3]))
		})
		return
	}
	for _, t := range targets {
		forEachCombo(t.runs, func(idx []int) {
			fn(t.seq, rowPtr(tc1, t.runs[0], idx[0]), rowPtr(tc2, t.runs[1], idx[1]), rowPtr(tc3, t.runs[2], idx[2]), rowPtr(tc4, t.runs[3], idx[3]))
		})
	}
}

func (s *System4[T1, T2, T3, T4]) WalkGrouped(cm *ContainerMap, fn func(seq uint64, a Group[T1], b Group[T2], c Group[T3], d Group[T4])) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	tc3 := typedContainer[T3](cm, ids[2])
	tc4 := typedContainer[T4](cm, ids[3])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		fn(StaticSeq, rowGroup(tc1, runs[0]), rowGroup(tc2, runs[1]), rowGroup(tc3, runs[2]), rowGroup(tc4, runs[3]))
		return
	}
	for _, t := range targets {
		fn(t.seq, rowGroup(tc1, t.runs[0]), rowGroup(tc2, t.runs[1]), rowGroup(tc3, t.runs[2]), rowGroup(tc4, t.runs[3]))
	}
}

func (s *System4[T1, T2, T3, T4]) WalkEntity(cm *ContainerMap, seq uint64, fn func(a *T1, b *T2, c *T3, d *T4)) bool {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	tc3 := typedContainer[T3](cm, ids[2])
	tc4 := typedContainer[T4](cm, ids[3])
	cols, vacuous := planColumns(cm, s.plans())
	if vacuous {
		return false
	}
	runs := make([]runInfo, 4)
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
		fn(rowPtr(tc1, runs[0], idx[0]), rowPtr(tc2, runs[1], idx[1]), rowPtr(tc3, runs[2], idx[2]), rowPtr(tc4, runs[3], idx[3]))
	})
	return called
}
