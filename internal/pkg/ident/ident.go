// Package ident reconciles the two identifier forms used by the system:
// the canonical hyphenated UUID string and the hyphen-stripped hex form
// used as the storage primary key.
package ident

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tgo/atrium/apiserver/internal/apperr"
)

const storageLen = 32

// New returns a fresh identifier in storage form.
func New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Normalize converts an identifier in either form to storage form.
// Returns apperr.ErrMalformedIdent if the input is not a UUID in
// canonical or storage form.
func Normalize(s string) (string, error) {
	stripped := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if len(stripped) != storageLen {
		return "", apperr.ErrMalformedIdent
	}
	for _, r := range stripped {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", apperr.ErrMalformedIdent
		}
	}
	return stripped, nil
}

// NormalizeAll normalizes every identifier in the list, dropping entries
// that do not parse. Reference lists read back from storage may carry
// either form.
func NormalizeAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := Normalize(id)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Canonical projects a storage-form identifier back to the hyphenated
// UUID string. Inputs already in canonical form pass through normalized.
// Unparseable inputs are returned unchanged.
func Canonical(s string) string {
	n, err := Normalize(s)
	if err != nil {
		return s
	}
	u, err := uuid.Parse(n)
	if err != nil {
		return s
	}
	return u.String()
}

// CanonicalAll maps Canonical over a list.
func CanonicalAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, Canonical(id))
	}
	return out
}

// Position interprets an identifier as a 1-based ordinal position into a
// listing. The second return is false when the input is not a positive
// base-10 integer.
func Position(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
