// Package txnid generates short opaque batch-apply audit IDs, so a caller
// of `apply` or the HTTP automation surface can correlate a request with
// its effect in a log line or audit trail.
package txnid

import gonanoid "github.com/matoous/go-nanoid/v2"

// alphabet avoids visually ambiguous characters (0/O, 1/I/l).
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"

const length = 12

// New generates a fresh txn ID, prefixed "txn_" so it reads unambiguously
// in logs next to other identifiers.
func New() string {
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		// gonanoid.Generate only fails on a bad alphabet/length, both
		// constant here, so this path is unreachable in practice.
		return "txn_00000000"
	}
	return "txn_" + id
}
