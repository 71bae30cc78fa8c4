package ecs

// System6 joins six component types and walks the matching rows.
type System6[T1, T2, T3, T4, T5, T6 any] struct {
	Optional [6]bool
}

func (s *System6[T1, T2, T3, T4, T5, T6]) ComponentTypeIDs() [6]TypeID {
	return [6]TypeID{TypeIDOf[T1](), TypeIDOf[T2](), TypeIDOf[T3](), TypeIDOf[T4](), TypeIDOf[T5](), TypeIDOf[T6]()}
}

func (s *System6[T1, T2, T3, T4, T5, T6]) plans() []columnPlan {
	ids := s.ComponentTypeIDs()
	return []columnPlan{
		{typeID: ids[0], optional: s.Optional[0]},
		{typeID: ids[1], optional: s.Optional[1]},
		{typeID: ids[2], optional: s.Optional[2]},
		{typeID: ids[3], optional: s.Optional[3]},
		{typeID: ids[4], optional: s.Optional[4]},
		{typeID: ids[5], optional: s.Optional[5]},
	}
}

func (s *System6[T1, T2, T3, T4, T5, T6]) Walk(cm *ContainerMap, fn func(seq uint64, a *T1, b *T2, c *T3, d *T4, e *T5, f *T6)) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	tc3 := typedContainer[T3](cm, ids[2])
	tc4 := typedContainer[T4](cm, ids[3])
	tc5 := typedContainer[T5](cm, ids[4])
	tc6 := typedContainer[T6](cm, ids[5])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		forEachCombo(runs, func(idx []int) {
			fn(StaticSeq,
				rowPtr(tc1, runs[0], idx[0]), rowPtr(tc2, runs[1], idx[1]), rowPtr(tc3, runs[2], idx[2]),
				rowPtr(tc4, runs[3], idx[3]), rowPtr(tc5, runs[4], idx[4]), rowPtr(tc6, runs[5], idx[5]))
		})
		return
	}
	for _, t := range targets {
		forEachCombo(t.runs, func(idx []int) {
			fn(t.seq,
				rowPtr(tc1, t.runs[0], idx[0]), rowPtr(tc2, t.runs[1], idx[1]), rowPtr(tc3, t.runs[2], idx[2]),
				rowPtr(tc4, t.runs[3], idx[3]), rowPtr(tc5, t.runs[4], idx[4]), rowPtr(tc6, t.runs[5], idx[5]))
		})
	}
}

func (s *System6[T1, T2, T3, T4, T5, T6]) WalkGrouped(cm *ContainerMap, fn func(seq uint64, a Group[T1], b Group[T2], c Group[T3], d Group[T4], e Group[T5], f Group[T6])) {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	tc3 := typedContainer[T3](cm, ids[2])
	tc4 := typedContainer[T4](cm, ids[3])
	tc5 := typedContainer[T5](cm, ids[4])
	tc6 := typedContainer[T6](cm, ids[5])

	targets, allStatic := walkTargets(cm, s.plans())
	if allStatic {
		runs, vacuous := staticDispatchRuns(cm, s.plans())
		if vacuous {
			return
		}
		fn(StaticSeq, rowGroup(tc1, runs[0]), rowGroup(tc2, runs[1]), rowGroup(tc3, runs[2]), rowGroup(tc4, runs[3]), rowGroup(tc5, runs[4]), rowGroup(tc6, runs[5]))
		return
	}
	for _, t := range targets {
		fn(t.seq, rowGroup(tc1, t.runs[0]), rowGroup(tc2, t.runs[1]), rowGroup(tc3, t.runs[2]), rowGroup(tc4, t.runs[3]), rowGroup(tc5, t.runs[4]), rowGroup(tc6, t.runs[5]))
	}
}

func (s *System6[T1, T2, T3, T4, T5, T6]) WalkEntity(cm *ContainerMap, seq uint64, fn func(a *T1, b *T2, c *T3, d *T4, e *T5, f *T6)) bool {
	ids := s.ComponentTypeIDs()
	tc1 := typedContainer[T1](cm, ids[0])
	tc2 := typedContainer[T2](cm, ids[1])
	tc3 := typedContainer[T3](cm, ids[2])
	tc4 := typedContainer[T4](cm, ids[3])
	tc5 := typedContainer[T5](cm, ids[4])
	tc6 := typedContainer[T6](cm, ids[5])
	cols, vacuous := planColumns(cm, s.plans())
	if vacuous {
		return false
	}
	runs := make([]runInfo, 6)
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
		fn(rowPtr(tc1, runs[0], idx[0]), rowPtr(tc2, runs[1], idx[1]), rowPtr(tc3, runs[2], idx[2]),
			rowPtr(tc4, runs[3], idx[3]), rowPtr(tc5, runs[4], idx[4]), rowPtr(tc6, runs[5], idx[5]))
	})
	return called
}
