// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import (
	"errors"
	"fmt"
	"strings"
)

var producerCodes = map[Mission]map[byte]Producer{
	MissionMSL: {
		'M': ProducerOPGS,
		'D': ProducerMSSS,
		'A': ProducerASU,
		'C': ProducerCornell,
		'P': ProducerTeam,
	},
	MissionM2020: {
		'J': ProducerOPGS,
		'M': ProducerMSSS,
		'A': ProducerASU,
		'C': ProducerCornell,
		'P': ProducerTeam,
	},
}

var meshTypeCodes = map[byte]MeshType{
	'S': MeshTypeScene,
	'T': MeshTypeTactical,
	'C': MeshTypeContextual,
	'O': MeshTypeOrbital,
}

// Strip reduces a URL, path or filename to the identifier it names:
// any query or fragment is dropped, the last path element is taken,
// and everything from its first '.' on is removed.
func Strip(raw string) string {
	s := raw
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return s
}

// VariantOf returns the variant an identifier would parse as, chosen
// from its length and, for mesh aggregates, the separator at offset 8.
func VariantOf(id string) Variant {
	switch len(id) {
	case mslOPGSLength:
		return VariantMSLOPGS
	case m2020OPGSLength:
		return VariantM2020OPGS
	case mslMeshLength:
		if id[meshSeparator] == '_' {
			return VariantMSLMesh
		}
	case m2020MeshLength:
		if id[meshSeparator] == '_' {
			return VariantM2020Mesh
		}
	}
	return VariantUnknown
}

// Parse decodes an identifier, a filename or a URL naming a product.
// Every failure is a *MalformedError.
func Parse(raw string) (ID, error) {
	full := Strip(raw)
	variant := VariantOf(full)
	if variant == VariantUnknown {
		err := fmt.Errorf("unrecognized identifier length %d (want %d, %d, %d or %d with '_' at offset %d)",
			len(full), mslOPGSLength, m2020OPGSLength, mslMeshLength, m2020MeshLength, meshSeparator)
		return nil, &MalformedError{Raw: raw, Length: len(full), Substring: full, Err: err}
	}

	d := &decoder{raw: raw, full: full, variant: variant, mission: variant.Mission(), layout: layouts[variant]}
	b := d.decodeCommon()
	switch variant {
	case VariantMSLOPGS:
		d.decodeMSLOPGS(&b)
		if d.err != nil {
			return nil, d.err
		}
		return MSLOPGS{base: b}, nil
	case VariantM2020OPGS:
		id := M2020OPGS{}
		d.decodeM2020OPGS(&b, &id)
		if d.err != nil {
			return nil, d.err
		}
		id.base = b
		return id, nil
	case VariantMSLMesh:
		d.decodeMesh(&b)
		if d.err != nil {
			return nil, d.err
		}
		return MSLMesh{base: b}, nil
	default:
		d.decodeMesh(&b)
		if d.err != nil {
			return nil, d.err
		}
		return M2020Mesh{base: b}, nil
	}
}

// TryParse is the lenient form of Parse: it returns nil for anything
// that is not a valid identifier.
func TryParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		return nil
	}
	return id
}

// MustParse is like Parse but panics on failure. It is intended for
// tests and package-level tables.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// decoder extracts fields through the variant's span table, keeping
// the first failure.
type decoder struct {
	raw     string
	full    string
	variant Variant
	mission Mission
	layout  *layout
	err     error
}

func (d *decoder) field(f Field) string {
	s := d.layout.spans[f]
	return d.full[s.Start:s.End]
}

func (d *decoder) fail(f Field, err error) {
	if d.err != nil {
		return
	}
	d.err = &MalformedError{
		Raw:       d.raw,
		Length:    len(d.full),
		Field:     f,
		Substring: d.field(f),
		Err:       err,
	}
}

var (
	errUnknownCode = errors.New("unmapped code")
	errBadChar     = errors.New("invalid character")
)

func (d *decoder) decodeCommon() base {
	b := base{variant: d.variant, fullID: d.full, special: d.field(FieldSpecial)[0]}

	code := strings.ToUpper(d.field(FieldCamera))
	if code == multiCameraCode && d.variant.IsMesh() {
		b.camera = CameraMulti
	} else if camera, ok := LookupCamera(d.mission, code); ok {
		b.camera = camera
	} else {
		d.fail(FieldCamera, fmt.Errorf("%w: no %s camera", errUnknownCode, d.mission))
	}

	b.color = decodeColor(d.mission, b.camera, d.field(FieldColor)[0])

	b.productType = ProductType(strings.ToUpper(d.field(FieldProductType)))
	if b.productType.Kind() == KindUnknown {
		d.fail(FieldProductType, fmt.Errorf("%w: unknown product type", errUnknownCode))
	}

	switch g := d.field(FieldGeometry)[0]; g {
	case 'N', 'n':
		b.geometry = GeometryRaw
	case 'L', 'l':
		b.geometry = GeometryLinearized
	default:
		d.fail(FieldGeometry, fmt.Errorf("%w: geometry must be N or L", errBadChar))
	}

	producer, ok := producerCodes[d.mission][upper(d.field(FieldProducer)[0])]
	if !ok {
		d.fail(FieldProducer, fmt.Errorf("%w: no %s producer", errUnknownCode, d.mission))
	}
	b.producer = producer

	version, err := DecodeVersion(d.field(FieldVersion))
	if err != nil {
		d.fail(FieldVersion, err)
	}
	b.version = version

	site, err := DecodeSite(d.field(FieldSite))
	if err != nil {
		d.fail(FieldSite, err)
	}
	b.site = site

	drive, err := DecodeDrive(d.field(FieldDrive))
	if err != nil {
		d.fail(FieldDrive, err)
	}
	b.drive = drive

	return b
}

func (d *decoder) decodeMSLOPGS(b *base) {
	switch d.field(FieldSize)[0] {
	case 'F', 'S', 'D':
		b.size = SizeRegular
	case 'T':
		b.size = SizeThumbnail
	default:
		d.fail(FieldSize, fmt.Errorf("%w: sample type must be F, S, D or T", errBadChar))
	}
	seconds, groundTest, err := DecodeSCLK(d.field(FieldSCLK))
	if err != nil {
		d.fail(FieldSCLK, err)
	}
	b.sclk = SCLK{Seconds: seconds, GroundTest: groundTest}
}

func (d *decoder) decodeM2020OPGS(b *base, id *M2020OPGS) {
	switch d.field(FieldSize)[0] {
	case '_', 'N':
		b.size = SizeRegular
	case 'T':
		b.size = SizeThumbnail
	default:
		d.fail(FieldSize, fmt.Errorf("%w: size must be _, N or T", errBadChar))
	}

	d.decodeSol(b)

	seconds, groundTest, err := DecodeSCLK(d.field(FieldSCLK))
	if err != nil {
		d.fail(FieldSCLK, err)
	}
	millis, err := DecodeMillis(d.field(FieldMillis))
	if err != nil {
		d.fail(FieldMillis, err)
	}
	b.sclk = SCLK{Seconds: seconds, Millis: millis, GroundTest: groundTest}

	specific := d.field(FieldCameraSpecific)
	if c := specific[0]; c < '0' || c > '3' {
		d.fail(FieldCameraSpecific, fmt.Errorf("%w: downsample must be 0-3", errBadChar))
	} else {
		id.downsample = int(c - '0')
	}
	id.compression = specific[1:4]
	if _, err := DecodeVersion(id.compression); err != nil {
		d.fail(FieldCameraSpecific, fmt.Errorf("compression code: %w", err))
	}
	recon, err := DecodeVersion(specific[4:6])
	if err != nil {
		d.fail(FieldCameraSpecific, fmt.Errorf("reconstruction counter: %w", err))
	}
	id.recon = recon
}

func (d *decoder) decodeMesh(b *base) {
	d.decodeSol(b)
	if allUnderscore(d.field(FieldSol)) {
		b.multiSol = true
		b.solKind = SolMulti
	}
	b.multiSite = b.site == SiteWildcard
	b.multiDrive = b.drive == DriveWildcard

	meshType, ok := meshTypeCodes[upper(d.field(FieldMeshType)[0])]
	if !ok {
		d.fail(FieldMeshType, fmt.Errorf("%w: mesh type must be S, T, C or O", errUnknownCode))
	}
	b.meshType = meshType
}

func (d *decoder) decodeSol(b *base) {
	sol, kind, err := DecodeSol(d.mission, d.field(FieldSol))
	if err != nil {
		d.fail(FieldSol, err)
	}
	b.sol, b.solKind = sol, kind
}

// decodeColor maps the color character. MSL engineering cameras use
// that position for the rover compute element, and are grayscale.
func decodeColor(m Mission, camera Camera, c byte) Color {
	if m == MissionMSL && camera.IsEngineering() {
		return ColorGrayscale
	}
	switch upper(c) {
	case 'F':
		return ColorFullColor
	case 'C':
		if m == MissionMSL {
			return ColorFullColor
		}
	case 'M':
		return ColorGrayscale
	case '_':
		if m == MissionMSL && camera != CameraMulti {
			return ColorGrayscale
		}
	case 'R':
		return ColorRed
	case 'G':
		return ColorGreen
	case 'B':
		return ColorBlue
	}
	return ColorUnknown
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
