// Package document reads candidate content documents from disk or any fs.FS.
// Files may be JSON or YAML; both decode into the same map shape the
// validator consumes.
package document
