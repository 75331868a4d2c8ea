package sbom

import (
	"bytes"
	"fmt"
	"strings"

	spdxjson "github.com/spdx/tools-golang/json"
	"github.com/spdx/tools-golang/spdx"

	"github.com/georgkoester/sbom2doc/internal/model"
)

func loadSPDX(data []byte) (*model.SBOM, error) {
	doc, err := spdxjson.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding SPDX SBOM: %w", err)
	}

	out := &model.SBOM{
		Document: model.Document{
			Type:    "SPDX",
			Version: doc.SPDXVersion,
			Name:    doc.DocumentName,
		},
	}
	if doc.CreationInfo != nil {
		out.Document.Created = doc.CreationInfo.Created
	}

	for _, p := range doc.Packages {
		if p == nil {
			continue
		}
		out.Packages = append(out.Packages, convertSPDXPackage(p))
	}

	for _, f := range doc.Files {
		if f == nil {
			continue
		}
		out.Files = append(out.Files, model.File{
			ID:               string(f.FileSPDXIdentifier),
			Name:             f.FileName,
			LicenseConcluded: spdxLicenseValue(f.LicenseConcluded),
			CopyrightText:    spdxCopyrightValue(f.FileCopyrightText),
		})
	}

	for _, r := range doc.Relationships {
		if r == nil {
			continue
		}
		out.Relationships = append(out.Relationships, model.Relationship{
			Ref:     string(r.RefA.ElementRefID),
			Related: string(r.RefB.ElementRefID),
			Type:    r.Relationship,
		})
	}

	return out, nil
}

func convertSPDXPackage(p *spdx.Package) model.Package {
	pkg := model.Package{
		ID:               string(p.PackageSPDXIdentifier),
		Name:             p.PackageName,
		Version:          p.PackageVersion,
		Type:             packageType(p),
		LicenseConcluded: spdxLicenseValue(p.PackageLicenseConcluded),
		CopyrightText:    spdxCopyrightValue(p.PackageCopyrightText),
	}
	if pkg.LicenseConcluded == "" {
		pkg.LicenseConcluded = spdxLicenseValue(p.PackageLicenseDeclared)
	}
	if p.PackageSupplier != nil {
		pkg.Supplier = p.PackageSupplier.Supplier
	}
	for _, ref := range p.PackageExternalReferences {
		if ref != nil && ref.RefType == "purl" {
			pkg.PURL = ref.Locator
			break
		}
	}
	return pkg
}

func packageType(p *spdx.Package) string {
	if p.PrimaryPackagePurpose != "" {
		return strings.ToLower(p.PrimaryPackagePurpose)
	}
	return "library"
}

// spdxLicenseValue filters the SPDX NONE sentinel, which means "looked and
// found nothing" and should behave like an absent field downstream.
func spdxLicenseValue(v string) string {
	if v == "NONE" {
		return ""
	}
	return v
}

func spdxCopyrightValue(v string) string {
	if v == "NONE" || v == "NOASSERTION" {
		return ""
	}
	return v
}
