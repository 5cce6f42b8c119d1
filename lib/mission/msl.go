// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package mission

import (
	"cmp"
	"slices"
	"time"

	"github.com/nasa-ammos/landform/lib/product"
)

// mslSolEpoch is the start of MSL sol 0 (local mean solar midnight at
// Gale crater before landing).
var mslSolEpoch = time.Date(2012, time.August, 5, 13, 49, 59, 0, time.UTC)

var mslTextureTypes = []product.ProductType{
	product.TypeEDR, product.TypeRAS, product.TypeRAD, product.TypeIOF,
}

var mslAlignmentTypes = []product.ProductType{
	product.TypeECM, product.TypeFDR,
}

// MSL returns the default Mars Science Laboratory policy.
func MSL() *Policy {
	p := &Policy{
		Mission:           product.MissionMSL,
		ExtensionPriority: []string{"img", "vic"},
		AllowedProducers: []product.Producer{
			product.ProducerTeam, product.ProducerASU, product.ProducerMSSS, product.ProducerOPGS,
		},
		AllowedSpecial: []byte{'A', '_'},
		PreferColor:    true,
		PreferredEye:   product.EyeLeft,
		Budget:         defaultBudget(),
		SolEpoch:       mslSolEpoch,

		IsNavcam: func(c product.Camera) bool {
			return c.StereoGroup() == product.CameraNavcamLeft
		},
		IsHazcam: func(c product.Camera) bool {
			g := c.StereoGroup()
			return g == product.CameraFrontHazcamLeft || g == product.CameraRearHazcamLeft
		},
		IsMastcam: func(c product.Camera) bool {
			return c.StereoGroup() == product.CameraMastcamLeft
		},
		IsArmcam: func(c product.Camera) bool {
			return c == product.CameraMAHLI
		},
		AcceptWedge:    rejectThumbnail,
		AcceptTexture:  rejectThumbnail,
		CompareMission: compareMSL,
	}
	p.UseForMeshing = func(id product.ID) bool {
		return id.ProductType() == product.TypeXYZ && p.IsStereoCamera(id.Camera())
	}
	p.UseForTexturing = func(id product.ID) bool {
		c := id.Camera()
		return slices.Contains(mslTextureTypes, id.ProductType()) && (p.IsStereoCamera(c) || p.IsArmcam(c))
	}
	p.UseForAlignment = func(id product.ID) bool {
		return slices.Contains(mslAlignmentTypes, id.ProductType()) && id.Camera().IsEngineering()
	}
	return p
}

// mslSampleRank orders MSL sample types: full frame, subframe,
// downsampled, thumbnail.
func mslSampleRank(sample byte) int {
	switch sample {
	case 'F':
		return 0
	case 'S':
		return 1
	case 'D':
		return 2
	default:
		return 3
	}
}

func compareMSL(a, b product.ID) int {
	x, ok := a.(product.MSLOPGS)
	if !ok {
		return 0
	}
	y, ok := b.(product.MSLOPGS)
	if !ok {
		return 0
	}
	return cmp.Compare(mslSampleRank(x.SampleType()), mslSampleRank(y.SampleType()))
}
