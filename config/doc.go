// Package config loads blockgen run files.
//
// A run file is HCL. Every attribute is optional; absent values keep the
// defaults from Default. Expressions may read the process environment
// through the env object, for example:
//
//	output_dir = "${env.HOME}/bench/out"
//	seed       = 42
//
//	export {
//	  csv         = true
//	  compression = "zstd"
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config
