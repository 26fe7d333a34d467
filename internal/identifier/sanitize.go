// Package identifier derives filesystem- and front-matter-safe identifiers
// from DocFX uids. Both derivations are pure functions of the input uid and
// the policy; the same uid always yields the same identifier.
package identifier

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// forbidden is the set of characters that never survive sanitization. It
// covers characters illegal in filenames on common operating systems plus
// characters that break unquoted YAML front-matter scalars.
const forbidden = "<>:\"/\\|?*@()#`,[]{}"

// separators are the path-separator-like characters. SanitizeID collapses
// them to a dot so nested namespaces stay visually segmented; SanitizeFilename
// deletes them like any other forbidden character.
const separators = "/\\:"

// Placeholder substitutes for an empty or whitespace-only uid.
const Placeholder = "unknown"

// Policy bounds the length of sanitized identifiers. When the cleaned string
// exceeds MaxLength characters it is cut at TruncateAt and suffixed with an
// 8-hex-digit fingerprint of the original uid.
type Policy struct {
	MaxLength  int
	TruncateAt int
}

// DefaultPolicy returns the stock length policy (100 / 80).
func DefaultPolicy() Policy {
	return Policy{MaxLength: 100, TruncateAt: 80}
}

// SanitizeFilename maps a uid to a safe base filename (without extension).
func (p Policy) SanitizeFilename(uid string) string {
	uid = Fallback(uid)
	safe := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) {
			return -1
		}
		return r
	}, uid)
	return p.bound(safe, uid)
}

// SanitizeID maps a uid to a safe front-matter document id. Unlike
// SanitizeFilename it keeps namespace structure readable: path separators
// become dots instead of disappearing.
func (p Policy) SanitizeID(uid string) string {
	uid = Fallback(uid)
	safe := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(separators, r):
			return '.'
		case strings.ContainsRune(forbidden, r):
			return -1
		default:
			return r
		}
	}, uid)
	return p.bound(safe, uid)
}

// bound applies the length policy. The fingerprint is computed over the
// original uid, not the truncated prefix, so two long uids sharing a prefix
// still get distinct identifiers.
func (p Policy) bound(safe, uid string) string {
	runes := []rune(safe)
	if len(runes) <= p.MaxLength {
		return safe
	}
	return string(runes[:p.TruncateAt]) + "-" + Fingerprint(uid)
}

// Fallback substitutes Placeholder for empty or whitespace-only uids.
func Fallback(uid string) string {
	if strings.TrimSpace(uid) == "" {
		return Placeholder
	}
	return uid
}

// Fingerprint returns the first 8 hex digits of the MD5 digest of s. It only
// disambiguates truncated identifiers; it has no adversarial strength.
func Fingerprint(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:8]
}

// ContainsForbidden reports whether s still carries a forbidden character.
func ContainsForbidden(s string) bool {
	return strings.ContainsAny(s, forbidden)
}

// SanitizeFilename applies the default policy.
func SanitizeFilename(uid string) string {
	return DefaultPolicy().SanitizeFilename(uid)
}

// SanitizeID applies the default policy.
func SanitizeID(uid string) string {
	return DefaultPolicy().SanitizeID(uid)
}
