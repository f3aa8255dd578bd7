// Package jsoncodec implements the serde backend interfaces for JSON, on top
// of json-iterator's streaming Stream and Iterator. Output is produced and
// input is consumed incrementally; no document tree is built on either side.
//
// Shapes map onto JSON the usual way: sequences and tuples become arrays,
// maps and structs become objects, optionals and unit become null or the
// value itself, raw bytes become base64 strings. Variants serialize as the
// bare variant name when dataless and as a single-entry object otherwise.
package jsoncodec
