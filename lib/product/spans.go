// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

const (
	mslOPGSLength   = 36
	m2020OPGSLength = 54
	mslMeshLength   = 23
	m2020MeshLength = 24

	// meshSeparator is the offset of the literal '_' that
	// distinguishes mesh aggregates from other identifiers.
	meshSeparator = 8
)

// Field names a fixed-width field of an identifier.
type Field uint8

const (
	FieldNone Field = iota
	FieldCamera
	FieldEye
	FieldColor
	FieldSpecial
	FieldSol
	FieldVenue
	FieldSCLK
	FieldMillis
	FieldProductType
	FieldGeometry
	FieldSize
	FieldSite
	FieldDrive
	FieldSequence
	FieldCameraSpecific
	FieldMeshType
	FieldProducer
	FieldVersion

	numFields

	// FieldVariants is not a span of its own. Passed to PartialID it
	// stands for the variant's quality-variant fields: the fields that
	// differ between copies of one observation processed at different
	// quality levels.
	FieldVariants Field = 0xff
)

var fieldNames = [numFields]string{
	FieldNone:           "none",
	FieldCamera:         "camera",
	FieldEye:            "eye",
	FieldColor:          "color",
	FieldSpecial:        "special",
	FieldSol:            "sol",
	FieldVenue:          "venue",
	FieldSCLK:           "sclk",
	FieldMillis:         "millis",
	FieldProductType:    "product_type",
	FieldGeometry:       "geometry",
	FieldSize:           "size",
	FieldSite:           "site",
	FieldDrive:          "drive",
	FieldSequence:       "sequence",
	FieldCameraSpecific: "camera_specific",
	FieldMeshType:       "mesh_type",
	FieldProducer:       "producer",
	FieldVersion:        "version",
}

func (f Field) String() string {
	if f == FieldVariants {
		return "variants"
	}
	if f < numFields {
		return fieldNames[f]
	}
	return "unknown"
}

// Span is a half-open character range [Start, End) of an identifier.
type Span struct {
	Start int
	End  int
}

// Len returns the width of the span.
func (s Span) Len() int { return s.End - s.Start }

// IsZero reports whether the span is absent.
func (s Span) IsZero() bool { return s.Start == 0 && s.End == 0 }

// layout is the constant field table of one identifier variant.
type layout struct {
	spans    [numFields]Span
	variants []Field
}

var layouts = map[Variant]*layout{
	VariantMSLOPGS: {
		spans: [numFields]Span{
			FieldCamera:      {0, 2},
			FieldEye:         {1, 2},
			FieldColor:       {2, 3},
			FieldSpecial:     {3, 4},
			FieldSCLK:        {4, 13},
			FieldProductType: {13, 16},
			FieldGeometry:    {16, 17},
			FieldSize:        {17, 18},
			FieldSite:        {18, 21},
			FieldDrive:       {21, 25},
			FieldSequence:    {25, 34},
			FieldProducer:    {34, 35},
			FieldVersion:     {35, 36},
		},
		variants: []Field{FieldSize, FieldProducer},
	},
	VariantM2020OPGS: {
		spans: [numFields]Span{
			FieldCamera:         {0, 2},
			FieldEye:            {1, 2},
			FieldColor:          {2, 3},
			FieldSpecial:        {3, 4},
			FieldSol:            {4, 8},
			FieldVenue:          {8, 9},
			FieldSCLK:           {9, 19},
			FieldMillis:         {20, 23},
			FieldProductType:    {23, 26},
			FieldSize:           {26, 27},
			FieldGeometry:       {27, 28},
			FieldSite:           {28, 31},
			FieldDrive:          {31, 35},
			FieldSequence:       {35, 44},
			FieldCameraSpecific: {45, 51},
			FieldProducer:       {51, 52},
			FieldVersion:        {52, 54},
		},
		variants: []Field{FieldSize, FieldCameraSpecific, FieldProducer},
	},
	VariantMSLMesh: {
		spans:    meshSpans(1),
		variants: []Field{FieldMeshType, FieldProducer},
	},
	VariantM2020Mesh: {
		spans:    meshSpans(2),
		variants: []Field{FieldMeshType, FieldProducer},
	},
}

// meshSpans builds the mesh aggregate table, which differs between
// missions only in the width of the trailing version field.
func meshSpans(versionWidth int) [numFields]Span {
	return [numFields]Span{
		FieldCamera:      {0, 2},
		FieldEye:         {1, 2},
		FieldColor:       {2, 3},
		FieldSpecial:     {3, 4},
		FieldSol:         {4, 8},
		FieldSite:        {9, 12},
		FieldDrive:       {12, 16},
		FieldProductType: {16, 19},
		FieldGeometry:    {19, 20},
		FieldMeshType:    {20, 21},
		FieldProducer:    {21, 22},
		FieldVersion:     {22, 22 + versionWidth},
	}
}

// SpanOf returns the span of a field within identifiers of the given
// variant. The second result is false when the variant has no such
// field.
func SpanOf(v Variant, f Field) (Span, bool) {
	l := layouts[v]
	if l == nil || f >= numFields {
		return Span{}, false
	}
	s := l.spans[f]
	return s, !s.IsZero()
}

// Fields returns the fields present in identifiers of the variant, in
// declaration order.
func Fields(v Variant) []Field {
	l := layouts[v]
	if l == nil {
		return nil
	}
	var fields []Field
	for f := FieldNone + 1; f < numFields; f++ {
		if !l.spans[f].IsZero() {
			fields = append(fields, f)
		}
	}
	return fields
}

// VariantFields returns the quality-variant fields of the variant, the
// set FieldVariants expands to.
func VariantFields(v Variant) []Field {
	l := layouts[v]
	if l == nil {
		return nil
	}
	return append([]Field(nil), l.variants...)
}
