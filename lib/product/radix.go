// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import (
	"fmt"
	"strings"
)

// Site and drive sentinels. An all-underscore site or drive field
// decodes to these values; they stand for "any" (a wildcard) and sit
// one past the largest encodable value.
const (
	SiteWildcard  = 32768
	DriveWildcard = 65536

	maxSite  = SiteWildcard - 1
	maxDrive = DriveWildcard - 1
)

// Site encoding breakpoints. Each letter-bearing form starts where the
// previous one ends.
const (
	siteLetterDigitDigit   = 1000  // Ldd
	siteLetterLetterDigit  = 3600  // LLd
	siteLetterLetterLetter = 10360 // LLL
	siteDigitLetterLetter  = 27936 // dLL
)

// Drive encoding breakpoints.
const (
	driveLetterDigits       = 10000 // Lddd
	driveLetterLetterDigits = 36000 // LLdd
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

// letterValue maps A-Z (either case) to 0-25.
func letterValue(c byte) int {
	if c >= 'a' {
		return int(c - 'a')
	}
	return int(c - 'A')
}

func allUnderscore(s string) bool {
	return s != "" && strings.Trim(s, "_") == ""
}

// digits parses a run of decimal digits. Unlike strconv.Atoi it
// rejects signs and whitespace.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}

// shape reduces s to a pattern of 'd' (digit), 'L' (letter) and '?'
// (anything else), for matching the positional forms.
func shape(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
			b[i] = 'd'
		case isLetter(s[i]):
			b[i] = 'L'
		default:
			b[i] = '?'
		}
	}
	return string(b)
}

// DecodeVersion decodes a positional base-37 version code, most
// significant character first. Digits are 0-9, letters (either case)
// are 10-35, and '_' is 36 wherever it appears.
func DecodeVersion(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty version")
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d int
		switch {
		case isDigit(c):
			d = int(c - '0')
		case isLetter(c):
			d = 10 + letterValue(c)
		case c == '_':
			d = 36
		default:
			return 0, fmt.Errorf("invalid version character %q", c)
		}
		v = v*37 + d
	}
	return v, nil
}

// EncodeVersion is the inverse of DecodeVersion for a field of the
// given width. Letters are written in upper case.
func EncodeVersion(v, width int) (string, error) {
	if v < 0 {
		return "", fmt.Errorf("negative version %d", v)
	}
	b := make([]byte, width)
	rest := v
	for i := width - 1; i >= 0; i-- {
		d := rest % 37
		rest /= 37
		switch {
		case d < 10:
			b[i] = byte('0' + d)
		case d < 36:
			b[i] = byte('A' + d - 10)
		default:
			b[i] = '_'
		}
	}
	if rest != 0 {
		return "", fmt.Errorf("version %d does not fit in %d characters", v, width)
	}
	return string(b), nil
}

// DecodeSite decodes a three-character site field:
//
//	ddd  0 .. 999
//	Ldd  1000 + L*100 + dd              .. 3599
//	LLd  3600 + (L1*26 + L2)*10 + d     .. 10359
//	LLL  10360 + L1*676 + L2*26 + L3    .. 27935
//	dLL  27936 + d*676 + L1*26 + L2, capped at 32767
//	___  SiteWildcard
func DecodeSite(s string) (int, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("site %q is not 3 characters", s)
	}
	if allUnderscore(s) {
		return SiteWildcard, nil
	}
	switch shape(s) {
	case "ddd":
		v, _ := digits(s)
		return v, nil
	case "Ldd":
		dd, _ := digits(s[1:])
		return siteLetterDigitDigit + letterValue(s[0])*100 + dd, nil
	case "LLd":
		return siteLetterLetterDigit + (letterValue(s[0])*26+letterValue(s[1]))*10 + int(s[2]-'0'), nil
	case "LLL":
		return siteLetterLetterLetter + letterValue(s[0])*676 + letterValue(s[1])*26 + letterValue(s[2]), nil
	case "dLL":
		v := siteDigitLetterLetter + int(s[0]-'0')*676 + letterValue(s[1])*26 + letterValue(s[2])
		return min(v, maxSite), nil
	default:
		return 0, fmt.Errorf("site %q matches no encoding", s)
	}
}

// SiteToString encodes a site number, inverting DecodeSite.
func SiteToString(site int) (string, error) {
	switch {
	case site == SiteWildcard:
		return "___", nil
	case site < 0 || site > maxSite:
		return "", fmt.Errorf("site %d out of range", site)
	case site < siteLetterDigitDigit:
		return fmt.Sprintf("%03d", site), nil
	case site < siteLetterLetterDigit:
		r := site - siteLetterDigitDigit
		return fmt.Sprintf("%c%02d", letter(r/100), r%100), nil
	case site < siteLetterLetterLetter:
		r := site - siteLetterLetterDigit
		pair, d := r/10, r%10
		return fmt.Sprintf("%c%c%d", letter(pair/26), letter(pair%26), d), nil
	case site < siteDigitLetterLetter:
		r := site - siteLetterLetterLetter
		return fmt.Sprintf("%c%c%c", letter(r/676), letter(r/26%26), letter(r%26)), nil
	default:
		r := site - siteDigitLetterLetter
		return fmt.Sprintf("%d%c%c", r/676, letter(r/26%26), letter(r%26)), nil
	}
}

// DecodeDrive decodes a four-character drive field:
//
//	dddd  0 .. 9999
//	Lddd  10000 + L*1000 + ddd               .. 35999
//	LLdd  36000 + (L1*26 + L2)*100 + dd, capped at 65535
//	____  DriveWildcard
func DecodeDrive(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("drive %q is not 4 characters", s)
	}
	if allUnderscore(s) {
		return DriveWildcard, nil
	}
	switch shape(s) {
	case "dddd":
		v, _ := digits(s)
		return v, nil
	case "Lddd":
		ddd, _ := digits(s[1:])
		return driveLetterDigits + letterValue(s[0])*1000 + ddd, nil
	case "LLdd":
		dd, _ := digits(s[2:])
		v := driveLetterLetterDigits + (letterValue(s[0])*26+letterValue(s[1]))*100 + dd
		return min(v, maxDrive), nil
	default:
		return 0, fmt.Errorf("drive %q matches no encoding", s)
	}
}

// DriveToString encodes a drive number, inverting DecodeDrive.
func DriveToString(drive int) (string, error) {
	switch {
	case drive == DriveWildcard:
		return "____", nil
	case drive < 0 || drive > maxDrive:
		return "", fmt.Errorf("drive %d out of range", drive)
	case drive < driveLetterDigits:
		return fmt.Sprintf("%04d", drive), nil
	case drive < driveLetterLetterDigits:
		r := drive - driveLetterDigits
		return fmt.Sprintf("%c%03d", letter(r/1000), r%1000), nil
	default:
		r := drive - driveLetterLetterDigits
		pair := r / 100
		return fmt.Sprintf("%c%c%02d", letter(pair/26), letter(pair%26), r%100), nil
	}
}

func letter(v int) byte { return byte('A' + v) }
