// The credential package turns a user-supplied secret into the one-way
// digest we keep in place of the secret itself.
// The digest is the sha256 of the UTF-8 bytes of the secret, rendered
// as lowercase hex. There is no per-record salt, so two employees with
// the same secret carry the same hash, and a precomputed table of common
// secrets will find them. Files written by earlier versions depend on
// this exact format, so it is kept as is.

package credential

import (
  "crypto/sha256"
  "crypto/subtle"
  "fmt"
)

// HashLength is the number of hex characters in a hash.
const HashLength = 2 * sha256.Size

// Hash returns the lowercase hex sha256 of the given secret.
func Hash(secret string) string {
  sum := sha256.Sum256([]byte(secret))
  return fmt.Sprintf("%x", sum)
}

// Matches reports whether candidate hashes to the given stored hash.
func Matches(storedHash, candidate string) bool {
  proposed := Hash(candidate)
  return subtle.ConstantTimeCompare([]byte(proposed), []byte(storedHash)) == 1
}

// IsWellFormed reports whether h looks like something Hash could have produced.
func IsWellFormed(h string) bool {
  if len(h) != HashLength {
    return false
  }
  for _, c := range h {
    if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
      return false
    }
  }
  return true
}
