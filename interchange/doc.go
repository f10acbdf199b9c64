// Package interchange writes plain dense exports for consumers that ignore
// block structure: a comma-and-space separated CSV with a one-line JSON
// metadata sidecar, and a row-index prefixed text form for dataframe loaders.
package interchange
