// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package mission

import (
	"cmp"
	"slices"
	"time"

	"github.com/nasa-ammos/landform/lib/product"
)

// m2020SolEpoch is the start of Mars 2020 sol 0 at Jezero crater.
var m2020SolEpoch = time.Date(2021, time.February, 17, 20, 28, 29, 0, time.UTC)

var m2020TextureTypes = []product.ProductType{
	product.TypeEDR, product.TypeRAS, product.TypeRAD, product.TypeRAF, product.TypeIOF,
}

var m2020AlignmentTypes = []product.ProductType{
	product.TypeECM, product.TypeFDR,
}

// M2020 returns the default Mars 2020 policy.
func M2020() *Policy {
	p := &Policy{
		Mission:           product.MissionM2020,
		ExtensionPriority: []string{"img", "vic"},
		AllowedProducers: []product.Producer{
			product.ProducerTeam, product.ProducerASU, product.ProducerMSSS, product.ProducerOPGS,
		},
		AllowedSpecial: []byte{'A', '_'},
		PreferColor:    true,
		PreferredEye:   product.EyeLeft,
		Budget:         defaultBudget(),
		SolEpoch:       m2020SolEpoch,

		IsNavcam: func(c product.Camera) bool {
			return c.StereoGroup() == product.CameraNavcamLeft
		},
		IsHazcam: func(c product.Camera) bool {
			g := c.StereoGroup()
			return g == product.CameraFrontHazcamLeft || g == product.CameraRearHazcamLeft
		},
		IsMastcam: func(c product.Camera) bool {
			return c.StereoGroup() == product.CameraMastcamZLeft
		},
		IsArmcam: func(c product.Camera) bool {
			return c == product.CameraWATSON
		},
		AcceptWedge:    acceptM2020Wedge,
		AcceptTexture:  rejectThumbnail,
		CompareMission: compareM2020,
	}
	p.UseForMeshing = func(id product.ID) bool {
		return id.ProductType() == product.TypeXYZ && p.IsStereoCamera(id.Camera())
	}
	p.UseForTexturing = func(id product.ID) bool {
		c := id.Camera()
		return slices.Contains(m2020TextureTypes, id.ProductType()) && (p.IsStereoCamera(c) || p.IsArmcam(c))
	}
	p.UseForAlignment = func(id product.ID) bool {
		return slices.Contains(m2020AlignmentTypes, id.ProductType()) && id.Camera().IsEngineering()
	}
	return p
}

// acceptM2020Wedge rejects rear hazcam wedges, which mostly see the
// rover body, along with thumbnails.
func acceptM2020Wedge(id product.ID, url string) (string, bool) {
	if id.Camera().StereoGroup() == product.CameraRearHazcamLeft {
		return "rear hazcam wedge", false
	}
	return rejectThumbnail(id, url)
}

// compareM2020 prefers less downsampling, then lossless compression,
// then higher lossy quality, then the latest reconstruction.
func compareM2020(a, b product.ID) int {
	x, ok := a.(product.M2020OPGS)
	if !ok {
		return 0
	}
	y, ok := b.(product.M2020OPGS)
	if !ok {
		return 0
	}
	if c := cmp.Compare(x.Downsample(), y.Downsample()); c != 0 {
		return c
	}
	if x.Lossless() != y.Lossless() {
		if x.Lossless() {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(y.CompressionQuality(), x.CompressionQuality()); c != 0 {
		return c
	}
	return cmp.Compare(y.ReconstructionCounter(), x.ReconstructionCounter())
}
