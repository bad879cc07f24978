// Package schema defines the declarative document type descriptor consumed by
// the validation interpreter and the renderers. A DocumentType is an ordered
// list of Field descriptors; each field declares its kind, editor options
// (slug source, tag layout, option lists, image hotspot) and an ordered list
// of Constraint records (kind, parameter, message). Descriptors are plain data:
// they are built once, checked with DocumentType.Check, and treated as
// immutable afterwards. Use Clone before handing a shared descriptor to code
// that may modify it.
package schema
