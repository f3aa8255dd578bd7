// Package msgpackcodec implements the serde backend interfaces for
// MessagePack, on top of vmihailenco/msgpack's Encoder and Decoder.
//
// MessagePack length-prefixes its containers, so beginning a sequence or map
// requires a known length hint and the element count is checked when the
// compound ends. Variants follow the same convention as jsoncodec: a bare
// string when dataless, a single-entry map otherwise.
package msgpackcodec
