// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import (
	"fmt"
	"math"
	"time"
)

// MaxSCLK is the clock value of an all-underscore clock field. It sorts
// after every real clock value.
const MaxSCLK = math.MaxInt64

// MaxMillis is the millisecond value of an all-underscore millisecond
// field.
const MaxMillis = 999

// GroundTestEpoch is the origin of ground-test clock values. A
// ground-test clock packs a timestamp as MMDDHHmmss; it decodes to the
// seconds elapsed between this epoch and that time in the epoch's year.
var GroundTestEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// SCLK is a decoded spacecraft clock value.
type SCLK struct {
	// Seconds is the clock count, or seconds since GroundTestEpoch for
	// a ground-test clock.
	Seconds int64

	// Millis is the sub-second part, 0 for identifiers without a
	// millisecond field.
	Millis int

	// GroundTest is true when the field carried a ground-test marker.
	GroundTest bool
}

// Compare orders clock values by seconds, then milliseconds.
func (s SCLK) Compare(other SCLK) int {
	switch {
	case s.Seconds < other.Seconds:
		return -1
	case s.Seconds > other.Seconds:
		return 1
	case s.Millis < other.Millis:
		return -1
	case s.Millis > other.Millis:
		return 1
	default:
		return 0
	}
}

func (s SCLK) String() string {
	if s.Seconds == MaxSCLK {
		return "max"
	}
	return fmt.Sprintf("%d.%03d", s.Seconds, s.Millis)
}

// DecodeSCLK decodes a spacecraft clock field. Plain digits are the
// clock count. An all-underscore field is MaxSCLK. A letter in the
// first or last position marks a ground-test clock: the letter is
// dropped, the digits are left-padded with zeros to ten characters and
// read as MMDDHHmmss. A zero month or day means the first month or day.
func DecodeSCLK(s string) (seconds int64, groundTest bool, err error) {
	if s == "" {
		return 0, false, fmt.Errorf("empty clock")
	}
	if allUnderscore(s) {
		return MaxSCLK, false, nil
	}
	var packed string
	switch {
	case isLetter(s[0]):
		packed = s[1:]
	case isLetter(s[len(s)-1]):
		packed = s[:len(s)-1]
	default:
		v, ok := digits(s)
		if !ok {
			return 0, false, fmt.Errorf("clock %q is not a decimal count", s)
		}
		return int64(v), false, nil
	}
	if len(packed) > 10 {
		return 0, false, fmt.Errorf("ground-test clock %q is longer than MMDDHHmmss", s)
	}
	if _, ok := digits(packed); !ok {
		return 0, false, fmt.Errorf("ground-test clock %q has non-digit characters", s)
	}
	for len(packed) < 10 {
		packed = "0" + packed
	}
	seconds, err = groundTestSeconds(packed)
	if err != nil {
		return 0, false, fmt.Errorf("ground-test clock %q: %w", s, err)
	}
	return seconds, true, nil
}

func groundTestSeconds(packed string) (int64, error) {
	field := func(i int) int {
		v, _ := digits(packed[i : i+2])
		return v
	}
	month, day := max(field(0), 1), max(field(2), 1)
	hour, minute, second := field(4), field(6), field(8)
	year := GroundTestEpoch.Year()
	if month > 12 {
		return 0, fmt.Errorf("month %d out of range", month)
	}
	if last := daysIn(time.Month(month), year); day > last {
		return 0, fmt.Errorf("day %d out of range for month %d", day, month)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return 0, fmt.Errorf("time %02d:%02d:%02d out of range", hour, minute, second)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return int64(t.Sub(GroundTestEpoch) / time.Second), nil
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DecodeMillis decodes a three-digit millisecond field. An
// all-underscore field is MaxMillis.
func DecodeMillis(s string) (int, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("milliseconds %q is not 3 characters", s)
	}
	if allUnderscore(s) {
		return MaxMillis, nil
	}
	v, ok := digits(s)
	if !ok {
		return 0, fmt.Errorf("milliseconds %q is not decimal", s)
	}
	return v, nil
}
