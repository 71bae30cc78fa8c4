package ecs

import "sort"

// ContainerMap owns one ComponentContainer per component type, keyed by
// TypeID, and coordinates normalization and teardown across all of them.
// It mirrors the role the original ContainerMapInterface/ESCoreBase pair
// played, folded into a single type since this runtime has no separate
// core/system-registry split to justify keeping them apart.
type ContainerMap struct {
	containers map[TypeID]Container
	order      []TypeID // registration order, used by RemoveEntity, Renormalize and ClearAll
	diag       Diagnostics
}

// NewContainerMap returns an empty map using the default diagnostics sink.
func NewContainerMap() *ContainerMap {
	return &ContainerMap{
		containers: make(map[TypeID]Container, 16),
		diag:       defaultDiagnostics(),
	}
}

// NewContainerMapWithDiagnostics returns an empty map reporting through d.
func NewContainerMapWithDiagnostics(d Diagnostics) *ContainerMap {
	cm := NewContainerMap()
	if d != nil {
		cm.diag = d
	}
	return cm
}

// AddContainer registers c under id, unless a container is already
// registered for id. Returns false (and emits a diagnostic) if id was
// already taken; callers that want a type-safe registration path should
// use EnsureContainer instead.
func (cm *ContainerMap) AddContainer(id TypeID, c Container) bool {
	if _, exists := cm.containers[id]; exists {
		cm.diag.Warnf("ecs: container for type %d already registered", id)
		return false
	}
	cm.containers[id] = c
	cm.order = append(cm.order, id)
	return true
}

// Get returns the erased container registered for id, if any.
func (cm *ContainerMap) Get(id TypeID) (Container, bool) {
	c, ok := cm.containers[id]
	return c, ok
}

// HasContainer reports whether T has a registered container.
func HasContainer[T any](cm *ContainerMap) bool {
	_, ok := cm.containers[TypeIDOf[T]()]
	return ok
}

// EnsureContainer returns T's container, creating and registering an empty
// one on first use.
func EnsureContainer[T any](cm *ContainerMap) *ComponentContainer[T] {
	id := TypeIDOf[T]()
	if c, ok := cm.containers[id]; ok {
		return c.(*ComponentContainer[T])
	}
	tc := NewComponentContainer[T]()
	tc.SetDiagnostics(cm.diag)
	cm.containers[id] = tc
	cm.order = append(cm.order, id)
	return tc
}

// AddComponent buffers value under seq in T's container, creating the
// container if this is the first component of type T ever added.
func AddComponent[T any](cm *ContainerMap, seq uint64, value T) {
	EnsureContainer[T](cm).Add(seq, value)
}

// AddStaticComponent buffers value as a broadcast row in T's container and
// returns the index it will occupy once normalized.
func AddStaticComponent[T any](cm *ContainerMap, value T) int {
	return EnsureContainer[T](cm).AddStatic(value)
}

// RemoveAllComponent enqueues removal of every T row tagged seq.
func RemoveAllComponent[T any](cm *ContainerMap, seq uint64) {
	if c, ok := cm.containers[TypeIDOf[T]()]; ok {
		c.(*ComponentContainer[T]).RemoveAll(seq)
	}
}

// RemoveFirstComponent enqueues removal of the first T row tagged seq.
func RemoveFirstComponent[T any](cm *ContainerMap, seq uint64) {
	if c, ok := cm.containers[TypeIDOf[T]()]; ok {
		c.(*ComponentContainer[T]).RemoveFirst(seq)
	}
}

// RemoveLastComponent enqueues removal of the last T row tagged seq.
func RemoveLastComponent[T any](cm *ContainerMap, seq uint64) {
	if c, ok := cm.containers[TypeIDOf[T]()]; ok {
		c.(*ComponentContainer[T]).RemoveLast(seq)
	}
}

// RemoveAtComponent enqueues removal of the T row at sorted index idx,
// provided its sequence still matches seq come normalize time. Typically
// paired with a grouped-mode system that counted its way to idx.
func RemoveAtComponent[T any](cm *ContainerMap, seq uint64, idx int) {
	if c, ok := cm.containers[TypeIDOf[T]()]; ok {
		c.(*ComponentContainer[T]).RemoveAt(seq, idx)
	}
}

// StaticComponent returns a pointer to the broadcast row of type T at idx,
// or nil if T has no static container or idx is out of range.
func StaticComponent[T any](cm *ContainerMap, idx int) *T {
	c, ok := cm.containers[TypeIDOf[T]()]
	if !ok {
		return nil
	}
	tc := c.(*ComponentContainer[T])
	if !tc.IsStatic() || idx < 0 || idx >= tc.NumRows() {
		return nil
	}
	return tc.RowAt(idx)
}

// GetComponent returns a pointer to T's row for seq, if one is present in
// the normalized prefix.
func GetComponent[T any](cm *ContainerMap, seq uint64) (*T, bool) {
	c, ok := cm.containers[TypeIDOf[T]()]
	if !ok {
		return nil, false
	}
	tc := c.(*ComponentContainer[T])
	idx, found := tc.LookupIndex(seq)
	if !found {
		return nil, false
	}
	return tc.RowAt(idx), true
}

// StaticComponents returns the group of every broadcast row of type T.
func StaticComponents[T any](cm *ContainerMap) Group[T] {
	c, ok := cm.containers[TypeIDOf[T]()]
	if !ok {
		return Group[T]{}
	}
	tc := c.(*ComponentContainer[T])
	return tc.GroupAt(0, tc.NumRows())
}

// RemoveEntity enqueues removal of every component tagged seq across every
// registered container. Static containers are skipped since their rows
// are not keyed per entity.
func (cm *ContainerMap) RemoveEntity(seq uint64) {
	for _, id := range cm.order {
		c := cm.containers[id]
		if c.IsStatic() {
			continue
		}
		if r, ok := c.(entityRemover); ok {
			r.removeEntitySeq(seq)
		}
	}
}

// entityRemover lets RemoveEntity reach into a typed container without
// knowing T, via a method every ComponentContainer[T] implements.
type entityRemover interface {
	removeEntitySeq(seq uint64)
}

func (c *ComponentContainer[T]) removeEntitySeq(seq uint64) {
	c.RemoveAll(seq)
}

// Renormalize commits staged mutations across every registered container,
// in registration order.
func (cm *ContainerMap) Renormalize(stable bool) {
	for _, id := range cm.order {
		cm.containers[id].Normalize(stable)
	}
}

// ClearAll tears down every registered container, invoking destructors.
func (cm *ContainerMap) ClearAll() {
	for _, id := range cm.order {
		cm.containers[id].Clear()
	}
}

// Serialize streams every container's rows to sink, in ascending TypeID
// order so that output is deterministic across runs.
func (cm *ContainerMap) Serialize(sink Sink) {
	ids := make([]TypeID, 0, len(cm.containers))
	for id := range cm.containers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		cm.containers[id].Serialize(sink)
	}
}
