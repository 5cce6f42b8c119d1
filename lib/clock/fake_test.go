// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeNow(t *testing.T) {
	c := Fake(epoch)
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now() = %v, want %v", got, epoch)
	}
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("time moved without Advance: %v", got)
	}
}

func TestFakeAdvance(t *testing.T) {
	c := Fake(epoch)
	start := c.Now()
	c.Advance(1500 * time.Millisecond)

	if got := Since(c, start); got != 1500*time.Millisecond {
		t.Errorf("Since() = %v, want 1.5s", got)
	}
}

func TestFakeSet(t *testing.T) {
	c := Fake(epoch)
	later := epoch.Add(time.Hour)
	c.Set(later)
	if !c.Now().Equal(later) {
		t.Errorf("Now() = %v, want %v", c.Now(), later)
	}

	defer func() {
		if recover() == nil {
			t.Error("Set to an earlier time should panic")
		}
	}()
	c.Set(epoch)
}

func TestFakeAdvanceNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative Advance should panic")
		}
	}()
	Fake(epoch).Advance(-time.Second)
}

func TestFakeConcurrentAdvance(t *testing.T) {
	c := Fake(epoch)
	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			c.Advance(time.Second)
		})
	}
	wg.Wait()
	if got := Since(c, epoch); got != 10*time.Second {
		t.Errorf("Since() = %v, want 10s", got)
	}
}

func TestRealNow(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	if got.Before(before) {
		t.Errorf("Real().Now() = %v is before %v", got, before)
	}
}
