// Package search recovers Caesar plaintext without the key.
//
// # Overview
//
// Every shift in [0, 26) is applied to the ciphertext. Each candidate is
// split on single spaces and scored by the number of tokens the dictionary
// recognises (see dictionary.IsWord). Empty tokens from consecutive spaces
// count as misses.
//
// # Selection
//
// The winner is the first shift, in ascending order, whose score is strictly
// greater than every earlier score. Later shifts that merely tie do not
// replace it. If every shift scores zero there is no result.
//
// # Concurrency
//
// Candidates are scored in parallel on an errgroup bounded by the worker
// limit. Scores are written into a slice indexed by shift and reduced only
// after every worker finishes, so the outcome never depends on scheduling.
package search
