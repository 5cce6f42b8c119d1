// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product_test

import (
	"testing"

	"github.com/nasa-ammos/landform/lib/product"
)

func TestDecodeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: "01", want: 1},
		{in: "Z", want: 35},
		{in: "z", want: 35},
		{in: "_", want: 36},
		{in: "10", want: 37},
		{in: "A_", want: 10*37 + 36},
		{in: "__", want: 36*37 + 36},
		{in: "", wantErr: true},
		{in: "1-", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := product.DecodeVersion(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeVersion(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeVersion(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecodeVersion(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionRoundTrip(t *testing.T) {
	for width := 1; width <= 2; width++ {
		limit := 37
		if width == 2 {
			limit = 37 * 37
		}
		for v := 0; v < limit; v++ {
			s, err := product.EncodeVersion(v, width)
			if err != nil {
				t.Fatalf("EncodeVersion(%d, %d): %v", v, width, err)
			}
			got, err := product.DecodeVersion(s)
			if err != nil || got != v {
				t.Fatalf("DecodeVersion(EncodeVersion(%d)) = %d, %v (text %q)", v, got, err, s)
			}
		}
		if _, err := product.EncodeVersion(limit, width); err == nil {
			t.Errorf("EncodeVersion(%d, %d) succeeded past the field width", limit, width)
		}
	}
}

func TestDecodeSite(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "000", want: 0},
		{in: "999", want: 999},
		{in: "A00", want: 1000},
		{in: "B17", want: 1117},
		{in: "Z99", want: 3599},
		{in: "AA0", want: 3600},
		{in: "ZZ9", want: 10359},
		{in: "AAA", want: 10360},
		{in: "ZZZ", want: 27935},
		{in: "0AA", want: 27936},
		{in: "7DV", want: 32767},
		{in: "9ZZ", want: 32767},
		{in: "a00", want: 1000},
		{in: "___", want: product.SiteWildcard},
		{in: "A_0", wantErr: true},
		{in: "0A0", wantErr: true},
		{in: "00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := product.DecodeSite(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeSite(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSite(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecodeSite(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSiteRoundTrip(t *testing.T) {
	for site := 0; site <= product.SiteWildcard; site++ {
		s, err := product.SiteToString(site)
		if err != nil {
			t.Fatalf("SiteToString(%d): %v", site, err)
		}
		got, err := product.DecodeSite(s)
		if err != nil || got != site {
			t.Fatalf("DecodeSite(SiteToString(%d)) = %d, %v (text %q)", site, got, err, s)
		}
	}
	for _, bad := range []int{-1, product.SiteWildcard + 1} {
		if s, err := product.SiteToString(bad); err == nil {
			t.Errorf("SiteToString(%d) = %q, want error", bad, s)
		}
	}
}

func TestDecodeDrive(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "0000", want: 0},
		{in: "0052", want: 52},
		{in: "9999", want: 9999},
		{in: "A000", want: 10000},
		{in: "C123", want: 12123},
		{in: "Z999", want: 35999},
		{in: "AA00", want: 36000},
		{in: "LJ35", want: 65535},
		{in: "ZZ99", want: 65535},
		{in: "____", want: product.DriveWildcard},
		{in: "1A2B", wantErr: true},
		{in: "AAA0", wantErr: true},
		{in: "A00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := product.DecodeDrive(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeDrive(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeDrive(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecodeDrive(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDriveRoundTrip(t *testing.T) {
	for drive := 0; drive <= product.DriveWildcard; drive++ {
		s, err := product.DriveToString(drive)
		if err != nil {
			t.Fatalf("DriveToString(%d): %v", drive, err)
		}
		got, err := product.DecodeDrive(s)
		if err != nil || got != drive {
			t.Fatalf("DecodeDrive(DriveToString(%d)) = %d, %v (text %q)", drive, got, err, s)
		}
	}
}

func TestDecodeSol(t *testing.T) {
	tests := []struct {
		name     string
		mission  product.Mission
		in       string
		want     int
		wantKind product.SolKind
		wantErr  bool
	}{
		{name: "msl-plain", mission: product.MissionMSL, in: "0123", want: 123, wantKind: product.SolSurface},
		{name: "msl-overflow", mission: product.MissionMSL, in: "A123", want: product.SolOutOfRange, wantKind: product.SolOverflow},
		{name: "msl-overflow-any-letter", mission: product.MissionMSL, in: "12B4", want: product.SolOutOfRange, wantKind: product.SolOverflow},
		{name: "msl-none", mission: product.MissionMSL, in: "____", wantKind: product.SolNone},
		{name: "msl-bad", mission: product.MissionMSL, in: "12-4", wantErr: true},
		{name: "m2020-plain", mission: product.MissionM2020, in: "0001", want: 1, wantKind: product.SolSurface},
		{name: "m2020-lettered", mission: product.MissionM2020, in: "B042", want: 11042, wantKind: product.SolSurface},
		{name: "m2020-cruise", mission: product.MissionM2020, in: "200C", want: 200, wantKind: product.SolCruise},
		{name: "m2020-ground-test", mission: product.MissionM2020, in: "045T", want: 45, wantKind: product.SolGroundTest},
		{name: "m2020-bad-doy", mission: product.MissionM2020, in: "400C", wantErr: true},
		{name: "m2020-bad-shape", mission: product.MissionM2020, in: "0A01", wantErr: true},
		{name: "short", mission: product.MissionM2020, in: "001", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind, err := product.DecodeSol(tt.mission, tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeSol(%q) = %d %v, want error", tt.in, got, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSol(%q): %v", tt.in, err)
			}
			if got != tt.want || kind != tt.wantKind {
				t.Errorf("DecodeSol(%q) = %d %v, want %d %v", tt.in, got, kind, tt.want, tt.wantKind)
			}
		})
	}
}

func TestSolRoundTrip(t *testing.T) {
	for _, m := range []product.Mission{product.MissionMSL, product.MissionM2020} {
		limit := 10000
		if m == product.MissionM2020 {
			limit = 36000
		}
		for sol := 0; sol < limit; sol++ {
			s, err := product.SolToString(m, sol, product.SolSurface)
			if err != nil {
				t.Fatalf("SolToString(%v, %d): %v", m, sol, err)
			}
			got, kind, err := product.DecodeSol(m, s)
			if err != nil || got != sol || kind != product.SolSurface {
				t.Fatalf("DecodeSol(SolToString(%v, %d)) = %d %v, %v (text %q)", m, sol, got, kind, err, s)
			}
		}
	}

	s, err := product.SolToString(product.MissionMSL, product.SolOutOfRange, product.SolOverflow)
	if err != nil || s != "A000" {
		t.Errorf("SolToString(overflow) = %q, %v; want A000", s, err)
	}
	for _, kind := range []product.SolKind{product.SolCruise, product.SolGroundTest} {
		s, err := product.SolToString(product.MissionM2020, 123, kind)
		if err != nil {
			t.Fatalf("SolToString(%v): %v", kind, err)
		}
		got, gotKind, err := product.DecodeSol(product.MissionM2020, s)
		if err != nil || got != 123 || gotKind != kind {
			t.Errorf("DecodeSol(%q) = %d %v, %v; want 123 %v", s, got, gotKind, err, kind)
		}
	}
	if s, err := product.SolToString(product.MissionMSL, 10000, product.SolSurface); err == nil {
		t.Errorf("SolToString(MSL, 10000) = %q, want error", s)
	}
}

func TestDecodeSCLK(t *testing.T) {
	tests := []struct {
		name           string
		in             string
		want           int64
		wantGroundTest bool
		wantErr        bool
	}{
		{name: "plain", in: "0667022405", want: 667022405},
		{name: "msl-plain", in: "444665224", want: 444665224},
		{name: "max", in: "__________", want: product.MaxSCLK},
		{name: "initial-letter", in: "A612103015", want: 14121015, wantGroundTest: true},
		{name: "terminal-letter", in: "612103015C", want: 14121015, wantGroundTest: true},
		{name: "zero-month-and-day", in: "A000000001", want: 1, wantGroundTest: true},
		{name: "short-ground-test", in: "A13010000", want: 1040400, wantGroundTest: true},
		{name: "day-thirty", in: "A130100000", want: 2541600, wantGroundTest: true},
		{name: "invalid-day", in: "A231100000", wantErr: true},
		{name: "invalid-hour", in: "A12345678", wantErr: true},
		{name: "embedded-letter", in: "0667A22405", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, groundTest, err := product.DecodeSCLK(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeSCLK(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSCLK(%q): %v", tt.in, err)
			}
			if got != tt.want || groundTest != tt.wantGroundTest {
				t.Errorf("DecodeSCLK(%q) = %d ground=%v, want %d ground=%v",
					tt.in, got, groundTest, tt.want, tt.wantGroundTest)
			}
		})
	}
}

func TestDecodeMillis(t *testing.T) {
	for in, want := range map[string]int{"000": 0, "042": 42, "999": 999, "___": product.MaxMillis} {
		got, err := product.DecodeMillis(in)
		if err != nil || got != want {
			t.Errorf("DecodeMillis(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "12", "1_2", "abc"} {
		if got, err := product.DecodeMillis(bad); err == nil {
			t.Errorf("DecodeMillis(%q) = %d, want error", bad, got)
		}
	}
}

func TestSCLKCompare(t *testing.T) {
	a := product.SCLK{Seconds: 10, Millis: 5}
	b := product.SCLK{Seconds: 10, Millis: 6}
	c := product.SCLK{Seconds: 11}
	if a.Compare(b) >= 0 || b.Compare(c) >= 0 || a.Compare(c) >= 0 {
		t.Error("SCLK.Compare does not order by seconds then millis")
	}
	if a.Compare(a) != 0 {
		t.Error("SCLK.Compare(self) != 0")
	}
}
