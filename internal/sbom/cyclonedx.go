package sbom

import (
	"bytes"
	"fmt"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/georgkoester/sbom2doc/internal/model"
)

func loadCycloneDX(data []byte) (*model.SBOM, error) {
	var bom cdx.BOM
	decoder := cdx.NewBOMDecoder(bytes.NewReader(data), cdx.BOMFileFormatJSON)
	if err := decoder.Decode(&bom); err != nil {
		return nil, fmt.Errorf("decoding CycloneDX SBOM: %w", err)
	}

	out := &model.SBOM{
		Document: model.Document{
			Type:    "CycloneDX",
			Version: bom.SpecVersion.String(),
		},
	}
	if bom.Metadata != nil {
		out.Document.Created = bom.Metadata.Timestamp
		if bom.Metadata.Component != nil {
			out.Document.Name = bom.Metadata.Component.Name
		}
	}

	if bom.Components != nil {
		for _, c := range *bom.Components {
			out.Packages = append(out.Packages, convertCDXComponent(c))
		}
	}

	if bom.Dependencies != nil {
		for _, d := range *bom.Dependencies {
			if d.Dependencies == nil {
				continue
			}
			for _, dep := range *d.Dependencies {
				out.Relationships = append(out.Relationships, model.Relationship{
					Ref:     d.Ref,
					Related: dep,
					Type:    "DEPENDS_ON",
				})
			}
		}
	}

	return out, nil
}

func convertCDXComponent(c cdx.Component) model.Package {
	p := model.Package{
		ID:            c.BOMRef,
		Name:          c.Name,
		Version:       c.Version,
		Type:          string(c.Type),
		PURL:          c.PackageURL,
		CopyrightText: c.Copyright,
	}
	if c.Supplier != nil {
		p.Supplier = c.Supplier.Name
	}
	if p.Supplier == "" {
		p.Supplier = c.Publisher
	}

	if c.Licenses != nil {
		for _, lc := range *c.Licenses {
			switch {
			case lc.Expression != "":
				// Expressions travel as names; the pipeline classifies
				// and reports them without resolving.
				p.Licenses = append(p.Licenses, model.LicenseChoice{Name: lc.Expression})
			case lc.License != nil:
				choice := model.LicenseChoice{
					ID:   lc.License.ID,
					Name: lc.License.Name,
				}
				if lc.License.Text != nil {
					choice.Text = lc.License.Text.Content
				}
				p.Licenses = append(p.Licenses, choice)
			}
		}
	}
	return p
}
