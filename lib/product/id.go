// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

// ID is a decoded product identifier. The concrete type is one of
// MSLOPGS, M2020OPGS, MSLMesh or M2020Mesh; the set is closed.
//
// IDs are immutable values. Two IDs parsed from the same identifier
// compare equal with ==.
type ID interface {
	// FullID is the canonical identifier: the basename with its
	// extension removed.
	FullID() string
	String() string

	Variant() Variant
	Mission() Mission
	Camera() Camera
	Eye() Eye
	Color() Color
	// Special is the special-processing code, '_' for standard
	// processing.
	Special() byte
	ProductType() ProductType
	Kind() Kind
	Geometry() Geometry
	Size() Size
	Producer() Producer
	Version() int

	// Site and Drive are the rover waypoint. They equal SiteWildcard
	// and DriveWildcard when the field was all underscores.
	Site() int
	Drive() int

	// Sol is the sol the product was acquired on. HasSol is false when
	// the identifier carries no sol field or an empty one.
	Sol() int
	SolKind() SolKind
	HasSol() bool

	SCLK() SCLK
	MeshType() MeshType

	// IsSingleFrame is false for mesh aggregates, which combine many
	// frames.
	IsSingleFrame() bool
	IsSingleCamera() bool

	// Field returns the raw characters of a field, or "" when the
	// variant has no such field.
	Field(f Field) string

	MarshalText() ([]byte, error)

	sealed()
}

// base holds the decoded fields shared by every variant and
// implements the common accessors. Every field is comparable so that
// variant values compare with ==.
type base struct {
	variant     Variant
	fullID      string
	camera      Camera
	color       Color
	special     byte
	productType ProductType
	geometry    Geometry
	size        Size
	producer    Producer
	version     int
	site        int
	drive       int
	sol         int
	solKind     SolKind
	sclk        SCLK
	meshType    MeshType
	multiSol    bool
	multiSite   bool
	multiDrive  bool
}

func (b base) FullID() string           { return b.fullID }
func (b base) String() string           { return b.fullID }
func (b base) Variant() Variant         { return b.variant }
func (b base) Mission() Mission         { return b.variant.Mission() }
func (b base) Camera() Camera           { return b.camera }
func (b base) Eye() Eye                 { return b.camera.Eye() }
func (b base) Color() Color             { return b.color }
func (b base) Special() byte            { return b.special }
func (b base) ProductType() ProductType { return b.productType }
func (b base) Kind() Kind               { return b.productType.Kind() }
func (b base) Geometry() Geometry       { return b.geometry }
func (b base) Size() Size               { return b.size }
func (b base) Producer() Producer       { return b.producer }
func (b base) Version() int             { return b.version }
func (b base) Site() int                { return b.site }
func (b base) Drive() int               { return b.drive }
func (b base) Sol() int                 { return b.sol }
func (b base) SolKind() SolKind         { return b.solKind }
func (b base) SCLK() SCLK               { return b.sclk }
func (b base) MeshType() MeshType       { return b.meshType }

func (b base) HasSol() bool {
	return b.solKind != SolNone && b.solKind != SolMulti
}

func (b base) IsSingleFrame() bool { return !b.variant.IsMesh() }

func (b base) IsSingleCamera() bool { return b.camera != CameraMulti }

func (b base) Field(f Field) string {
	s, ok := SpanOf(b.variant, f)
	if !ok {
		return ""
	}
	return b.fullID[s.Start:s.End]
}

// MarshalText implements encoding.TextMarshaler. The text form is the
// full identifier.
func (b base) MarshalText() ([]byte, error) { return []byte(b.fullID), nil }

func (base) sealed() {}

// MSLOPGS is a single-frame Mars Science Laboratory product.
type MSLOPGS struct{ base }

// SampleType is the raw sample-type character: 'F' full frame, 'S'
// subframe, 'D' downsampled, 'T' thumbnail.
func (id MSLOPGS) SampleType() byte { return id.fullID[17] }

// Sequence is the command sequence that acquired the product.
func (id MSLOPGS) Sequence() string { return id.Field(FieldSequence) }

// M2020OPGS is a single-frame Mars 2020 product.
type M2020OPGS struct {
	base
	downsample  int
	compression string
	recon       int
}

// Venue is '_' for flight products and a letter for testbed products.
func (id M2020OPGS) Venue() byte { return id.fullID[8] }

// Sequence is the command sequence that acquired the product.
func (id M2020OPGS) Sequence() string { return id.Field(FieldSequence) }

// Downsample is the downsampling exponent: 0 is full resolution, each
// step halves both image dimensions.
func (id M2020OPGS) Downsample() int { return id.downsample }

// Compression is the three-character compression code. Codes starting
// with 'L' are lossless; for lossy codes the remaining two characters
// are a quality level, higher is better.
func (id M2020OPGS) Compression() string { return id.compression }

// Lossless reports whether the product was compressed losslessly.
func (id M2020OPGS) Lossless() bool { return id.compression[0] == 'L' }

// CompressionQuality is the base-37 value of the lossy quality level.
// It is zero for lossless products.
func (id M2020OPGS) CompressionQuality() int {
	if id.Lossless() {
		return 0
	}
	q, _ := DecodeVersion(id.compression[1:])
	return q
}

// ReconstructionCounter counts ground reprocessing passes of the same
// downlinked data.
func (id M2020OPGS) ReconstructionCounter() int { return id.recon }

// MSLMesh is an MSL mesh aggregate.
type MSLMesh struct{ base }

// MultiSol reports whether the mesh spans several sols.
func (id MSLMesh) MultiSol() bool { return id.multiSol }

// MultiSite reports whether the mesh spans several sites.
func (id MSLMesh) MultiSite() bool { return id.multiSite }

// MultiDrive reports whether the mesh spans several drives.
func (id MSLMesh) MultiDrive() bool { return id.multiDrive }

// M2020Mesh is a Mars 2020 mesh aggregate.
type M2020Mesh struct{ base }

// MultiSol reports whether the mesh spans several sols.
func (id M2020Mesh) MultiSol() bool { return id.multiSol }

// MultiSite reports whether the mesh spans several sites.
func (id M2020Mesh) MultiSite() bool { return id.multiSite }

// MultiDrive reports whether the mesh spans several drives.
func (id M2020Mesh) MultiDrive() bool { return id.multiDrive }

// Multi reports the multi-sol, multi-site and multi-drive flags of a
// mesh aggregate. Single-frame identifiers report all false.
func Multi(id ID) (sol, site, drive bool) {
	switch v := id.(type) {
	case MSLMesh:
		return v.multiSol, v.multiSite, v.multiDrive
	case M2020Mesh:
		return v.multiSol, v.multiSite, v.multiDrive
	}
	return false, false, false
}
