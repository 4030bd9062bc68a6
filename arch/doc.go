// Package arch describes the MIPS32 register files.
//
// There are 32 general purpose registers, each spelled either by number
// ($0 through $31) or by its calling convention alias ($zero, $at, $v0,
// ... $ra), and 32 floating point registers spelled $f0 through $f31.
// The spelling tables are ordered longest first so a spelling is never
// matched inside a longer one ($1 inside $10).
package arch
