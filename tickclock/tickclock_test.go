// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tickclock

import (
	"testing"
	"time"
)

func TestTickRollsSecondsIntoMinutes(t *testing.T) {
	c := &Counter{seconds: 59, minutes: 3}
	c.Tick()
	if sec, min := c.Snapshot(); sec != 0 || min != 4 {
		t.Errorf("after tick got %02d:%02d, want 04:00", min, sec)
	}
}

func TestTickWrapsAtTop(t *testing.T) {
	c := &Counter{seconds: 59, minutes: 99}
	c.Tick()
	if sec, min := c.Snapshot(); sec != 0 || min != 0 {
		t.Errorf("after tick got %02d:%02d, want 00:00", min, sec)
	}
}

func TestTickPlain(t *testing.T) {
	c := &Counter{}
	for i := 0; i < 61; i++ {
		c.Tick()
	}
	if sec, min := c.Snapshot(); sec != 1 || min != 1 {
		t.Errorf("after 61 ticks got %02d:%02d, want 01:01", min, sec)
	}
}

func TestReset(t *testing.T) {
	c := &Counter{seconds: 42, minutes: 87}
	c.Reset()
	if sec, min := c.Snapshot(); sec != 0 || min != 0 {
		t.Errorf("after reset got %02d:%02d, want 00:00", min, sec)
	}
}

func TestValue(t *testing.T) {
	c := &Counter{seconds: 30, minutes: 5}
	if got := c.Value(); got != 530 {
		t.Errorf("Value() = %d, want 530", got)
	}
}

func TestTickerStartStop(t *testing.T) {
	c := &Counter{}
	tk := NewTicker(c, time.Millisecond)
	tk.Start()
	// Not enough wall time accrues for a Tick; this only proves the
	// goroutine runs and shuts down cleanly.
	time.Sleep(10 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		tk.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestNewTickerClampsInterval(t *testing.T) {
	tk := NewTicker(&Counter{}, -5)
	if tk.interval <= 0 || tk.interval > time.Second {
		t.Errorf("interval = %s, want something in (0, 1s]", tk.interval)
	}
}
