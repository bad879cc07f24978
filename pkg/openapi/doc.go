// Package openapi exports document type descriptors as OpenAPI 3 component
// schemas so that API gateways and client generators can share the same
// field bounds as the editor. Export keeps kin-openapi types out of the
// caller's way; Document returns them for further composition.
package openapi
