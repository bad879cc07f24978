// Package clothing declares the "clothing item" document type: its field
// descriptors, validation messages, the closed Category enumeration, and a
// typed Item mirror of stored documents.
package clothing
