// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import "fmt"

// SolOutOfRange is the sol reported for an MSL sol field that has
// rolled past 9999.
const SolOutOfRange = 10000

// m2020LetteredSol is the first sol of the Mars 2020 lettered blocks:
// Lddd decodes to 10000 + L*1000 + ddd.
const m2020LetteredSol = 10000

// maxDayOfYear bounds the day-of-year form of a Mars 2020 sol.
const maxDayOfYear = 366

// DecodeSol decodes a four-character sol field using the mission's
// scheme. An all-underscore field decodes to SolNone; mesh aggregates
// read that as "several sols".
//
// MSL: dddd is the sol; any field containing a letter has rolled past
// the four-digit range and decodes to SolOutOfRange with SolOverflow.
//
// Mars 2020: dddd is the sol; Lddd continues past 9999 in blocks of
// 1000 per letter; dddL is a day of year with the spacecraft clock not
// yet reset to surface time, SolCruise when L is 'C' and SolGroundTest
// otherwise.
func DecodeSol(m Mission, s string) (int, SolKind, error) {
	if len(s) != 4 {
		return 0, SolNone, fmt.Errorf("sol %q is not 4 characters", s)
	}
	if allUnderscore(s) {
		return 0, SolNone, nil
	}
	sh := shape(s)
	if sh == "dddd" {
		v, _ := digits(s)
		return v, SolSurface, nil
	}
	switch m {
	case MissionMSL:
		for i := 0; i < len(sh); i++ {
			if sh[i] == '?' {
				return 0, SolNone, fmt.Errorf("sol %q matches no encoding", s)
			}
		}
		return SolOutOfRange, SolOverflow, nil
	case MissionM2020:
		switch sh {
		case "Lddd":
			ddd, _ := digits(s[1:])
			return m2020LetteredSol + letterValue(s[0])*1000 + ddd, SolSurface, nil
		case "dddL":
			doy, _ := digits(s[:3])
			if doy < 1 || doy > maxDayOfYear {
				return 0, SolNone, fmt.Errorf("sol %q: day of year %d out of range", s, doy)
			}
			if s[3] == 'C' || s[3] == 'c' {
				return doy, SolCruise, nil
			}
			return doy, SolGroundTest, nil
		}
		return 0, SolNone, fmt.Errorf("sol %q matches no encoding", s)
	default:
		return 0, SolNone, fmt.Errorf("sol %q: no sol encoding for mission %s", s, m)
	}
}

// SolToString encodes a sol, inverting DecodeSol. The overflow sentinel
// encodes canonically as "A000"; ground-test days of year use 'T' as
// their marker letter.
func SolToString(m Mission, sol int, kind SolKind) (string, error) {
	switch kind {
	case SolNone, SolMulti:
		return "____", nil
	case SolOverflow:
		if m != MissionMSL {
			return "", fmt.Errorf("sol overflow is not encodable for mission %s", m)
		}
		return "A000", nil
	case SolCruise, SolGroundTest:
		if m != MissionM2020 {
			return "", fmt.Errorf("day-of-year sols are not encodable for mission %s", m)
		}
		if sol < 1 || sol > maxDayOfYear {
			return "", fmt.Errorf("day of year %d out of range", sol)
		}
		marker := 'T'
		if kind == SolCruise {
			marker = 'C'
		}
		return fmt.Sprintf("%03d%c", sol, marker), nil
	}

	switch {
	case sol < 0:
		return "", fmt.Errorf("negative sol %d", sol)
	case sol < m2020LetteredSol:
		return fmt.Sprintf("%04d", sol), nil
	case m == MissionM2020 && sol < m2020LetteredSol+26*1000:
		r := sol - m2020LetteredSol
		return fmt.Sprintf("%c%03d", letter(r/1000), r%1000), nil
	default:
		return "", fmt.Errorf("sol %d out of range for mission %s", sol, m)
	}
}
