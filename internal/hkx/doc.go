/*
Package hkx implements the generic packfile container format consumed by the
animation runtime: a tree of named elements with ordered attributes, text
payloads, and inline comment markers, serialized as tab-indented XML.

The package is deliberately schema-free. It knows nothing about behavior
graphs; it only guarantees that whatever tree it is handed is written out
deterministically, byte for byte, in the shape the runtime expects:

  - a fixed XML declaration,
  - attributes emitted in insertion order,
  - tab indentation proportional to nesting depth, siblings sharing a level,
  - explicit end tags even for empty elements,
  - comment nodes interleaved between field elements.

The typed behavior-graph layer lives in the 'behavior' package and composes
trees out of these primitives, mirroring how the generic 'dag' layer sat
beneath the typed graph builder in earlier revisions of this codebase.
*/
package hkx
