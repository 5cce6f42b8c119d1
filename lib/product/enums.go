// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import (
	"fmt"
	"strings"
)

// Mission identifies the rover mission an identifier belongs to.
type Mission uint8

const (
	MissionUnknown Mission = iota
	// MissionMSL is Mars Science Laboratory (Curiosity).
	MissionMSL
	// MissionM2020 is Mars 2020 (Perseverance).
	MissionM2020
)

func (m Mission) String() string {
	switch m {
	case MissionMSL:
		return "msl"
	case MissionM2020:
		return "m2020"
	default:
		return "unknown"
	}
}

// ParseMission parses a mission name as written in configuration
// files. Matching is case-insensitive.
func ParseMission(name string) (Mission, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "msl", "curiosity":
		return MissionMSL, nil
	case "m2020", "mars2020", "perseverance":
		return MissionM2020, nil
	default:
		return MissionUnknown, fmt.Errorf("unknown mission %q (expected msl or m2020)", name)
	}
}

// Variant is the identifier family tag. It selects the span table and
// the field decoders.
type Variant uint8

const (
	VariantUnknown Variant = iota
	// VariantMSLOPGS is a single-frame MSL product (36 characters).
	VariantMSLOPGS
	// VariantM2020OPGS is a single-frame Mars 2020 product (54 characters).
	VariantM2020OPGS
	// VariantMSLMesh is an MSL mesh aggregate (23 characters).
	VariantMSLMesh
	// VariantM2020Mesh is a Mars 2020 mesh aggregate (24 characters).
	VariantM2020Mesh
)

func (v Variant) String() string {
	switch v {
	case VariantMSLOPGS:
		return "msl_opgs"
	case VariantM2020OPGS:
		return "m2020_opgs"
	case VariantMSLMesh:
		return "msl_mesh"
	case VariantM2020Mesh:
		return "m2020_mesh"
	default:
		return "unknown"
	}
}

// Mission returns the mission the variant belongs to.
func (v Variant) Mission() Mission {
	switch v {
	case VariantMSLOPGS, VariantMSLMesh:
		return MissionMSL
	case VariantM2020OPGS, VariantM2020Mesh:
		return MissionM2020
	default:
		return MissionUnknown
	}
}

// Length returns the exact identifier length of the variant.
func (v Variant) Length() int {
	switch v {
	case VariantMSLOPGS:
		return mslOPGSLength
	case VariantM2020OPGS:
		return m2020OPGSLength
	case VariantMSLMesh:
		return mslMeshLength
	case VariantM2020Mesh:
		return m2020MeshLength
	default:
		return 0
	}
}

// IsMesh reports whether the variant is a mesh aggregate family.
func (v Variant) IsMesh() bool {
	return v == VariantMSLMesh || v == VariantM2020Mesh
}

// Eye is the stereo eye of a camera.
type Eye uint8

const (
	EyeMono Eye = iota
	EyeLeft
	EyeRight
	// EyeAny is only used as a preference: no eye is preferred.
	EyeAny
)

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	case EyeAny:
		return "any"
	default:
		return "mono"
	}
}

// ParseEye parses an eye name ("left", "right", "mono", "any").
func ParseEye(name string) (Eye, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return EyeLeft, nil
	case "right", "r":
		return EyeRight, nil
	case "mono", "m":
		return EyeMono, nil
	case "any", "":
		return EyeAny, nil
	default:
		return EyeAny, fmt.Errorf("unknown stereo eye %q", name)
	}
}

// Color is the color or spectral band of a raster product.
type Color uint8

const (
	ColorUnknown Color = iota
	ColorFullColor
	ColorGrayscale
	ColorRed
	ColorGreen
	ColorBlue
)

func (c Color) String() string {
	switch c {
	case ColorFullColor:
		return "full_color"
	case ColorGrayscale:
		return "grayscale"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// IsFullColor reports whether the product carries all color bands.
// Every other color, including ColorUnknown, counts as single band.
func (c Color) IsFullColor() bool { return c == ColorFullColor }

// BandRank orders colors from most to least preferred:
// full color, grayscale, green, red, blue, unknown. Lower is better.
func (c Color) BandRank() int {
	switch c {
	case ColorFullColor:
		return 0
	case ColorGrayscale:
		return 1
	case ColorGreen:
		return 2
	case ColorRed:
		return 3
	case ColorBlue:
		return 4
	default:
		return 5
	}
}

// Geometry is the linearity of a product: raw camera geometry or
// resampled to remove lens distortion.
type Geometry uint8

const (
	GeometryRaw Geometry = iota
	GeometryLinearized
)

func (g Geometry) String() string {
	if g == GeometryLinearized {
		return "linearized"
	}
	return "raw"
}

// Size distinguishes full products from thumbnails.
type Size uint8

const (
	SizeRegular Size = iota
	SizeThumbnail
)

func (s Size) String() string {
	if s == SizeThumbnail {
		return "thumbnail"
	}
	return "regular"
}

// Producer is the ground data system that generated a product.
type Producer uint8

const (
	ProducerUnknown Producer = iota
	// ProducerOPGS is the multimission instrument processing
	// subsystem at JPL.
	ProducerOPGS
	ProducerMSSS
	ProducerASU
	ProducerCornell
	// ProducerTeam is an instrument science team.
	ProducerTeam
)

func (p Producer) String() string {
	switch p {
	case ProducerOPGS:
		return "opgs"
	case ProducerMSSS:
		return "msss"
	case ProducerASU:
		return "asu"
	case ProducerCornell:
		return "cornell"
	case ProducerTeam:
		return "team"
	default:
		return "unknown"
	}
}

// ParseProducer parses a producer name as written in configuration.
func ParseProducer(name string) (Producer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "opgs", "mipl", "jpl":
		return ProducerOPGS, nil
	case "msss":
		return ProducerMSSS, nil
	case "asu":
		return ProducerASU, nil
	case "cornell":
		return ProducerCornell, nil
	case "team":
		return ProducerTeam, nil
	default:
		return ProducerUnknown, fmt.Errorf("unknown producer %q", name)
	}
}

// MeshType is the kind of mesh aggregate.
type MeshType uint8

const (
	MeshTypeNone MeshType = iota
	MeshTypeScene
	MeshTypeTactical
	MeshTypeContextual
	MeshTypeOrbital
)

func (m MeshType) String() string {
	switch m {
	case MeshTypeScene:
		return "scene"
	case MeshTypeTactical:
		return "tactical"
	case MeshTypeContextual:
		return "contextual"
	case MeshTypeOrbital:
		return "orbital"
	default:
		return "none"
	}
}

// SolKind qualifies a decoded sol value.
type SolKind uint8

const (
	// SolNone means the identifier carries no sol.
	SolNone SolKind = iota
	// SolSurface is an ordinary surface-operations sol.
	SolSurface
	// SolOverflow means the sol is past the field's range and the
	// value is SolOutOfRange.
	SolOverflow
	// SolCruise is a cruise-phase day of year; SCLK was not reset.
	SolCruise
	// SolGroundTest is a ground-test day of year; SCLK was not reset.
	SolGroundTest
	// SolMulti means a mesh aggregate spans several sols.
	SolMulti
)

func (k SolKind) String() string {
	switch k {
	case SolSurface:
		return "surface"
	case SolOverflow:
		return "overflow"
	case SolCruise:
		return "cruise"
	case SolGroundTest:
		return "ground_test"
	case SolMulti:
		return "multi"
	default:
		return "none"
	}
}

// Kind is the broad class of a product type.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindRaster is an image product.
	KindRaster
	// KindGeometry is a per-pixel geometry product.
	KindGeometry
	// KindMask is a mask over a geometry or raster product.
	KindMask
	// KindMesh is a mesh aggregate.
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindRaster:
		return "raster"
	case KindGeometry:
		return "geometry"
	case KindMask:
		return "mask"
	case KindMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// ProductType is the three-letter product type code.
type ProductType string

const (
	TypeEDR ProductType = "EDR"
	TypeECM ProductType = "ECM"
	TypeFDR ProductType = "FDR"
	TypeRAS ProductType = "RAS"
	TypeRAD ProductType = "RAD"
	TypeRAF ProductType = "RAF"
	TypeIOF ProductType = "IOF"
	TypeTEX ProductType = "TEX"

	// TypeXYZ is a point cloud.
	TypeXYZ ProductType = "XYZ"
	// TypeRNG is a range map.
	TypeRNG ProductType = "RNG"
	TypeUVW ProductType = "UVW"
	TypeDSP ProductType = "DSP"

	TypeMXY ProductType = "MXY"

	TypeMSH ProductType = "MSH"
)

var productKinds = map[ProductType]Kind{
	TypeEDR: KindRaster,
	TypeECM: KindRaster,
	TypeFDR: KindRaster,
	TypeRAS: KindRaster,
	TypeRAD: KindRaster,
	TypeRAF: KindRaster,
	TypeIOF: KindRaster,
	TypeTEX: KindRaster,
	TypeXYZ: KindGeometry,
	TypeRNG: KindGeometry,
	TypeUVW: KindGeometry,
	TypeDSP: KindGeometry,
	TypeMXY: KindMask,
	TypeMSH: KindMesh,
}

// Kind returns the product type's class, KindUnknown for unmapped codes.
func (t ProductType) Kind() Kind { return productKinds[t] }

// IsGeometry reports whether the type is a per-pixel geometry product.
func (t ProductType) IsGeometry() bool { return t.Kind() == KindGeometry }

// IsRaster reports whether the type is an image product.
func (t ProductType) IsRaster() bool { return t.Kind() == KindRaster }

// IsMask reports whether the type is a mask product.
func (t ProductType) IsMask() bool { return t.Kind() == KindMask }

// IsPointCloud reports whether the type is an XYZ point cloud.
func (t ProductType) IsPointCloud() bool { return t == TypeXYZ }

// IsRangeMap reports whether the type is a range map.
func (t ProductType) IsRangeMap() bool { return t == TypeRNG }
