package license

import (
	"strings"

	"github.com/github/go-spdx/v2/spdxexp"
)

// Kind is the shape of a raw license reference. All downstream handling
// switches on it instead of re-deriving string heuristics.
type Kind int

const (
	// KindIdentifier is a plain id candidate: no whitespace, no URL scheme.
	KindIdentifier Kind = iota
	// KindExpression is a boolean SPDX expression (MIT OR Apache-2.0).
	KindExpression
	// KindURL starts with http; treated as an unresolvable reference.
	KindURL
	// KindTextBlob is a full license text pasted into a license field.
	KindTextBlob
	// KindFreeText is anything else containing whitespace.
	KindFreeText
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindExpression:
		return "expression"
	case KindURL:
		return "url"
	case KindTextBlob:
		return "text"
	default:
		return "freetext"
	}
}

// textBlobMinLen is the heuristic cutoff: values longer than this that also
// contain a line break are assumed to be pasted license texts.
const textBlobMinLen = 200

// Classify tags a raw license reference.
func Classify(raw string) Kind {
	if len(raw) > textBlobMinLen && strings.Contains(raw, "\n") {
		return KindTextBlob
	}
	if isExpression(raw) {
		return KindExpression
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "http") {
		return KindURL
	}
	if strings.ContainsAny(raw, " \t") {
		return KindFreeText
	}
	return KindIdentifier
}

// isExpression reports whether raw is a boolean license expression. A quick
// operator check gates the call into the expression parser; a parse that
// yields more than one license confirms it.
func isExpression(raw string) bool {
	upper := " " + strings.ToUpper(raw) + " "
	if !strings.Contains(upper, " AND ") && !strings.Contains(upper, " OR ") && !strings.Contains(upper, " WITH ") {
		return false
	}
	parts, err := spdxexp.ExtractLicenses(raw)
	return err == nil && len(parts) > 1
}
