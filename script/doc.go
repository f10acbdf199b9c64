// Package script emits the load/compute scripts that accompany generated
// block files.
//
// Two dialects are supported. DialectPDML is the block-aware mini-language:
// every input is declared with load(brs,bcs,brn,bcn,"path") and the
// computation is one or two expressions over the loaded names. DialectDML is
// the SystemML form over the dense CSV exports, for side-by-side runs of the
// same benchmark.
//
// Script text is a pure function of geometry and paths; nothing here looks
// at matrix values.
package script
