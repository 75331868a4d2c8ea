package model

// Records produced by the SBOM parser. Fields are optional; the empty
// string marks an absent value.

// Document holds SBOM-level metadata.
type Document struct {
	Type    string
	Version string
	Name    string
	Created string
}

// LicenseChoice is one entry of a record's license list. Exactly one of
// ID, Name or Text is normally set; entries with none of them are ignored
// by the extractors.
type LicenseChoice struct {
	ID   string
	Name string
	Text string
}

// Package is a component record from the SBOM.
type Package struct {
	ID               string
	Name             string
	Version          string
	Type             string
	Supplier         string
	PURL             string
	Licenses         []LicenseChoice
	LicenseConcluded string
	CopyrightText    string
}

// File is a file record from the SBOM. It carries the same license and
// copyright fields as a package, so both satisfy Record.
type File struct {
	ID               string
	Name             string
	Licenses         []LicenseChoice
	LicenseConcluded string
	CopyrightText    string
}

// Relationship links two SBOM elements.
type Relationship struct {
	Ref     string
	Related string
	Type    string
}

// SBOM is the parsed input handed to the pipeline.
type SBOM struct {
	Document      Document
	Packages      []Package
	Files         []File
	Relationships []Relationship
}

// Record is the view of a package or file the license extractors consume.
type Record interface {
	RecordName() string
	LicenseList() []LicenseChoice
	ConcludedLicense() string
	Copyright() string
}

func (p Package) RecordName() string           { return p.Name }
func (p Package) LicenseList() []LicenseChoice { return p.Licenses }
func (p Package) ConcludedLicense() string     { return p.LicenseConcluded }
func (p Package) Copyright() string            { return p.CopyrightText }

func (f File) RecordName() string           { return f.Name }
func (f File) LicenseList() []LicenseChoice { return f.Licenses }
func (f File) ConcludedLicense() string     { return f.LicenseConcluded }
func (f File) Copyright() string            { return f.CopyrightText }

// Valid reports whether a package carries the minimum elements (id, name,
// version, supplier) and a meaningful supplier. Informational only; it
// does not alter document output.
func (p Package) Valid() bool {
	if p.ID == "" || p.Name == "" || p.Version == "" || p.Supplier == "" {
		return false
	}
	return p.Supplier != "NOASSERTION"
}
