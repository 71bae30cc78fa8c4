package ecs

// InvalidSequence is never stored in a container; passing it to AddComponent
// is a structural error.
const InvalidSequence uint64 = 0

// StaticSeq is the sequence shared by every row of a static container.
//
// The source this runtime is modeled on reused entity id 1 for this
// purpose, which collides with the first id EntityIDSource hands out. The
// two namespaces never mix in practice (a container is either Static or
// Normal, never both), but to document the collision away entirely this
// implementation moves StaticSeq out of band to the maximum representable
// sequence instead of 1.
const StaticSeq uint64 = ^uint64(0)

// EntityIDSource is a trivial monotonic counter handing out fresh entity
// ids. Callers are free to use their own id scheme instead; the container
// core only requires that ids never be zero.
type EntityIDSource struct {
	cur uint64
}

// NewEntityIDSource returns a source whose first NextEntityID call yields 1.
func NewEntityIDSource() *EntityIDSource {
	return &EntityIDSource{}
}

// NextEntityID returns the next id in the sequence, post-increment.
func (s *EntityIDSource) NextEntityID() uint64 {
	s.cur++
	return s.cur
}

// Current returns the last id handed out, or 0 if none has been yet.
func (s *EntityIDSource) Current() uint64 {
	return s.cur
}
