// Package serde defines a structural serialization data model for Go,
// split between a generic interface family and a dynamically-dispatchable
// mirror of it (package erased).
//
// The generic family in this package is parameterized by the backend's own
// concrete type: a Value[S] can only describe itself to the serializer type S
// it was instantiated with, and a Serializer[S] hands out backend-specific
// compound state. That keeps every call monomorphic and allocation-free, but
// it also means there is no single interface type for "a serializable value"
// or "a serializer" — you cannot put values bound to different backends in
// one slice, or pick a serializer at runtime. Package erased exists to bridge
// exactly that gap.
//
// Format backends implement the interfaces in this package; see jsoncodec and
// msgpackcodec for two complete ones. Backends are ordinary collaborators:
// the bridge in package erased works with any of them unmodified.
//
// None of the types in this module are safe for concurrent use. Serialization
// runs on a single call stack; goroutines serializing independent values must
// each construct their own serializers and handles.
package serde
