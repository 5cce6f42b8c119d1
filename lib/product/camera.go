// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

// Camera is the instrument that acquired a product. Stereo pairs are
// separate cameras that share a stereo group.
type Camera uint8

const (
	CameraUnknown Camera = iota
	// CameraMulti marks a mesh aggregate built from several cameras.
	CameraMulti

	CameraNavcamLeft
	CameraNavcamRight
	CameraFrontHazcamLeft
	CameraFrontHazcamRight
	CameraRearHazcamLeft
	CameraRearHazcamRight

	// MSL science cameras.
	CameraMastcamLeft
	CameraMastcamRight
	CameraMAHLI
	CameraMARDI
	CameraChemCamRMI

	// Mars 2020 science cameras.
	CameraMastcamZLeft
	CameraMastcamZRight
	CameraSuperCamRMI
	CameraCacheCam
	CameraWATSON
)

var cameraNames = [...]string{
	CameraUnknown:          "unknown",
	CameraMulti:            "multi",
	CameraNavcamLeft:       "navcam_left",
	CameraNavcamRight:      "navcam_right",
	CameraFrontHazcamLeft:  "front_hazcam_left",
	CameraFrontHazcamRight: "front_hazcam_right",
	CameraRearHazcamLeft:   "rear_hazcam_left",
	CameraRearHazcamRight:  "rear_hazcam_right",
	CameraMastcamLeft:      "mastcam_left",
	CameraMastcamRight:     "mastcam_right",
	CameraMAHLI:            "mahli",
	CameraMARDI:            "mardi",
	CameraChemCamRMI:       "chemcam_rmi",
	CameraMastcamZLeft:     "mastcamz_left",
	CameraMastcamZRight:    "mastcamz_right",
	CameraSuperCamRMI:      "supercam_rmi",
	CameraCacheCam:         "cachecam",
	CameraWATSON:           "watson",
}

func (c Camera) String() string {
	if int(c) < len(cameraNames) {
		return cameraNames[c]
	}
	return "unknown"
}

// cameraCodes maps the two-character instrument code at the start of
// an identifier to a camera, per mission.
var cameraCodes = map[Mission]map[string]Camera{
	MissionMSL: {
		"NL": CameraNavcamLeft,
		"NR": CameraNavcamRight,
		"FL": CameraFrontHazcamLeft,
		"FR": CameraFrontHazcamRight,
		"RL": CameraRearHazcamLeft,
		"RR": CameraRearHazcamRight,
		"ML": CameraMastcamLeft,
		"MR": CameraMastcamRight,
		"MH": CameraMAHLI,
		"MD": CameraMARDI,
		"CR": CameraChemCamRMI,
	},
	MissionM2020: {
		"NL": CameraNavcamLeft,
		"NR": CameraNavcamRight,
		"FL": CameraFrontHazcamLeft,
		"FR": CameraFrontHazcamRight,
		"RL": CameraRearHazcamLeft,
		"RR": CameraRearHazcamRight,
		"ZL": CameraMastcamZLeft,
		"ZR": CameraMastcamZRight,
		"SC": CameraSuperCamRMI,
		"CC": CameraCacheCam,
		"SI": CameraWATSON,
	},
}

// multiCameraCode is the instrument code of a multi-camera mesh.
const multiCameraCode = "__"

// LookupCamera returns the camera for a mission's two-character
// instrument code.
func LookupCamera(m Mission, code string) (Camera, bool) {
	c, ok := cameraCodes[m][code]
	return c, ok
}

// Code returns the camera's instrument code for the mission, or "" if
// the mission has no such camera.
func (c Camera) Code(m Mission) string {
	if c == CameraMulti {
		return multiCameraCode
	}
	for code, camera := range cameraCodes[m] {
		if camera == c {
			return code
		}
	}
	return ""
}

// Eye returns the stereo eye of the camera. Cameras that are not half
// of a stereo pair are EyeMono.
func (c Camera) Eye() Eye {
	switch c {
	case CameraNavcamLeft, CameraFrontHazcamLeft, CameraRearHazcamLeft,
		CameraMastcamLeft, CameraMastcamZLeft:
		return EyeLeft
	case CameraNavcamRight, CameraFrontHazcamRight, CameraRearHazcamRight,
		CameraMastcamRight, CameraMastcamZRight:
		return EyeRight
	default:
		return EyeMono
	}
}

// IsStereo reports whether the camera is one half of a stereo pair.
func (c Camera) IsStereo() bool { return c.Eye() != EyeMono }

// StereoGroup returns the left camera of the stereo pair c belongs to.
// A mono camera is its own group. Two products are frames of a
// comparable camera exactly when their stereo groups are equal.
func (c Camera) StereoGroup() Camera {
	switch c {
	case CameraNavcamRight:
		return CameraNavcamLeft
	case CameraFrontHazcamRight:
		return CameraFrontHazcamLeft
	case CameraRearHazcamRight:
		return CameraRearHazcamLeft
	case CameraMastcamRight:
		return CameraMastcamLeft
	case CameraMastcamZRight:
		return CameraMastcamZLeft
	default:
		return c
	}
}

// IsEngineering reports whether the camera is an engineering camera
// (navcam or hazcam).
func (c Camera) IsEngineering() bool {
	switch c.StereoGroup() {
	case CameraNavcamLeft, CameraFrontHazcamLeft, CameraRearHazcamLeft:
		return true
	}
	return false
}
