// Package modification implements the modification algebra (spec §4.3):
// construction from AST, merge, split, and content hashing. The engine is
// single-threaded (spec §5), so the folded-expression memo on Modification
// needs no synchronization.
package modification
