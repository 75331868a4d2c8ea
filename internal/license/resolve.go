package license

import (
	"github.com/google/licensecheck"
)

// UnknownLicense is the sentinel returned by the scanner when it cannot
// classify a value.
const UnknownLicense = "UNKNOWN"

// scanConfidence is the minimum licensecheck coverage accepted from a scan.
// Below this the scan is treated as "not found".
const scanConfidence = 75.0

// Resolve maps a raw license reference to a canonical SPDX-style identifier.
// It tries the synonym table first, then a generic license scan, and falls
// back to returning raw unchanged. It never fails.
func Resolve(raw string) string {
	if id, ok := synonymToID[raw]; ok {
		return id
	}
	if id := scanLicense(raw); id != UnknownLicense {
		return id
	}
	return raw
}

// scanLicense runs the generic license scanner over a raw value. It works
// both for short references (URLs, names) and for full license texts and
// returns UnknownLicense when no confident single match is found.
func scanLicense(raw string) string {
	cov := licensecheck.Scan([]byte(raw))
	if len(cov.Match) == 0 || cov.Percent < scanConfidence {
		return UnknownLicense
	}
	id := cov.Match[0].ID
	for _, m := range cov.Match[1:] {
		if m.ID != id {
			// Mixed matches: not a single identifiable license.
			return UnknownLicense
		}
	}
	return id
}
