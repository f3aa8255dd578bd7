// Package erased mirrors the generic serde interface family as a fixed,
// dynamically-dispatchable interface set.
//
// The generic family in the root package is parameterized by the backend's
// concrete type, so there is no common interface type for "a serializable
// value" or "a serializer": a slice of values bound to different backends, or
// a serializer chosen at runtime, cannot be expressed. This package provides
// exactly that: erased.Value and erased.Target wrap a concrete value together
// with its marshal or unmarshal routine, and erased.NewSerializer and
// erased.NewDeserializer wrap any concrete backend behind the object-safe
// Serializer and Deserializer interfaces.
//
// Erasure happens at the boundary only. Underneath every erased call the
// concrete backend type is still known: nested values re-erase through fresh
// stack-scoped adapters at each nesting level, compound state travels in
// tokens that borrow the backend's in-progress object, and no serialized data
// is ever buffered in between. The success path performs no work beyond one
// dynamic dispatch per call the value's marshal routine emits.
//
// Handles and tokens are scoped to the call that produced them: a Compound
// must be driven to completion by exactly one End before its serializer is
// used again, access tokens are valid only inside the visit that received
// them, and nothing here is safe for concurrent use.
package erased
