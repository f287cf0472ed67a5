// meta/meta.go
package meta

// REFERENCE_COINS is the row played by every scenario unless configured otherwise.
var REFERENCE_COINS = []int{2, 6, 5, 2, 7, 3, 5, 4}

// MINIMIZE_SCALING_LIMIT is the largest row a minimize-opponent assignment is
// expected to finish on quickly. Larger rows are played but warned about: each
// self-referential lookahead branches twice per simulated turn, up to O(2^n) nodes.
const MINIMIZE_SCALING_LIMIT = 16
