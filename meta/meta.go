// meta/meta.go
package meta

import "time"

// TIME_LIMIT is the wall-clock budget of every move.
const TIME_LIMIT = 150 * time.Millisecond

// NUM_MATCHES is the number of matches per pairing in a tournament, two games each.
const NUM_MATCHES = 5

// SEARCH_DEPTH is the fixed depth of the minimax baselines.
const SEARCH_DEPTH = 3

// OUTPUT_DIR is where tournament results are written.
const OUTPUT_DIR = "results"
