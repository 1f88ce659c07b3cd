// Package codec serializes a tree's exact shape and values to JSON or YAML
// and reconstructs an equivalent tree.
//
// Every node is written as a mapping with up to two keys:
//
//	value: <T>        # present iff the node holds a value; null is a value
//	children:         # present iff the node has children, names sorted
//	  <segment>: <node>
//
// An empty mapping is a node with neither, which only appears for empty
// directories and for the root of an empty tree. Decoding rebuilds the tree
// through the public tree operations, so a decoded tree satisfies every tree
// invariant by construction, and Crawl over its root yields the same
// sequence as the tree that was encoded.
//
// Values come back as T. For an untyped tree (T = any) that means the
// format's native scalar types: JSON numbers decode as float64 and YAML
// integers as uint64 or int64, whatever Go type was stored.
//
// # Usage Example
//
//	data, err := codec.Marshal(t, codec.FormatYAML, codec.DefaultEncodeOptions())
//
//	back, err := codec.Unmarshal[int](data, codec.FormatYAML, codec.DefaultDecodeOptions())
//
// Documents in UTF-16 or a legacy 8-bit charset can be read by setting
// DecodeOptions.InputEncoding.
package codec
