// Package ecs implements a data-oriented Entity-Component-System runtime.
//
// Components are stored in per-type sorted vectors keyed by a 64-bit
// sequence (the entity id, or a reserved value for static/broadcast rows).
// Mutations are buffered on the container and only take effect during
// Renormalize, so that every system sees a fully consistent snapshot for
// the duration of one walk.
//
// Features:
//   - Deferred add/remove/modify, committed in one normalization pass.
//   - Static (entity-less) component storage, broadcast to every walk.
//   - Generic SystemN walkers performing the Cartesian-product join across
//     N component types, in either one-callback-per-tuple ("recurse") or
//     one-callback-per-entity ("grouped") form.
//   - Zero threading model: single actor stages mutations, normalizes,
//     then dispatches systems. No locks on the hot path.
package ecs
