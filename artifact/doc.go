// Package artifact owns the files produced by one generation run.
//
// A Dir creates files under an output directory, optionally compressing
// payloads with gzip or zstd, and remembers everything it created. When a
// run fails, Abort removes every file of the set so no partial artifact
// survives; a successful run simply keeps them.
package artifact
