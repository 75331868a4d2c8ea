// Package sbom loads CycloneDX and SPDX JSON documents into the record
// types the license pipeline consumes.
package sbom

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/georgkoester/sbom2doc/internal/model"
)

// Load reads an SBOM file, autodetecting CycloneDX JSON vs SPDX JSON.
func Load(path string) (*model.SBOM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SBOM: %w", err)
	}

	var probe struct {
		BOMFormat   string `json:"bomFormat"`
		SPDXVersion string `json:"spdxVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing SBOM %s: %w", path, err)
	}

	switch {
	case probe.BOMFormat == "CycloneDX":
		return loadCycloneDX(data)
	case probe.SPDXVersion != "":
		return loadSPDX(data)
	default:
		return nil, fmt.Errorf("unrecognized SBOM format in %s (expected CycloneDX or SPDX JSON)", path)
	}
}
