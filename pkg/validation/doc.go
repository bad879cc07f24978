// Package validation interprets the declarative constraints of a
// schema.DocumentType against a decoded document (map[string]any). It is a
// small pure interpreter: required, min/max length (UTF-16 code units for
// text, element count for arrays), inclusive min value and option list
// membership. All failures are collected so editors can show every problem at
// once.
package validation
