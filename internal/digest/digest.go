// Package digest computes content digests for change detection.
//
// webwatch decides whether a page changed by comparing digests of the
// fetched body against the stored snapshot. The digest is used purely
// for equality detection, not for any security property.
package digest

import (
	"crypto/sha256"
	"fmt"
)

// Content returns the SHA-256 digest of the raw content bytes as a
// lowercase hex string. The result is deterministic: identical bytes
// always produce identical digests.
func Content(b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%x", sum)
}

// ContentString is a convenience wrapper over Content for string
// bodies, hashing their UTF-8 byte representation.
func ContentString(s string) string {
	return Content([]byte(s))
}
