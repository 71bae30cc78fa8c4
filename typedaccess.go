package ecs

// typedContainer returns T's container already registered on cm, or nil if
// none has ever been created. It is the one place the per-arity walker
// files downcast the erased Container back to its concrete type.
func typedContainer[T any](cm *ContainerMap, id TypeID) *ComponentContainer[T] {
	c, ok := cm.Get(id)
	if !ok {
		return nil
	}
	return c.(*ComponentContainer[T])
}

// rowPtr returns a pointer to slot i of run r read through tc, or nil when
// r is an absent-optional slot (i must then be 0).
func rowPtr[T any](tc *ComponentContainer[T], r runInfo, i int) *T {
	if r.missing || tc == nil {
		return nil
	}
	return tc.RowAt(r.start + i)
}

// rowGroup returns the Group view for run r read through tc. An
// absent-optional run yields a zero-length Group.
func rowGroup[T any](tc *ComponentContainer[T], r runInfo) Group[T] {
	if r.missing || tc == nil {
		return Group[T]{}
	}
	return tc.GroupAt(r.start, r.length)
}
