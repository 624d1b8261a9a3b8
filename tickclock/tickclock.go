// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tickclock keeps the shield's MM:SS counter.
//
// The counter is written by a ticker goroutine and read and reset by the
// main loop, so every access goes through one mutex; a read always sees a
// consistent seconds/minutes pair.
package tickclock

import (
	"sync"
	"time"
)

// Counter is a bounded seconds/minutes pair: seconds in [0,60), minutes in
// [0,100). It starts at zero and only moves through Tick and Reset.
type Counter struct {
	mu      sync.Mutex
	seconds int
	minutes int
}

// Tick advances the counter by one second. Seconds roll into minutes at 60
// and the whole counter wraps to 00:00 after 99:59.
func (c *Counter) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seconds++
	if c.seconds >= 60 {
		c.seconds = 0
		c.minutes++
		if c.minutes >= 100 {
			c.minutes = 0
		}
	}
}

// Reset returns the counter to 00:00.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seconds = 0
	c.minutes = 0
}

// Snapshot returns both fields read under the same lock.
func (c *Counter) Snapshot() (seconds, minutes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seconds, c.minutes
}

// Value returns the counter packed for a 4-digit display: minutes in the
// two left digits, seconds in the two right ones (05:30 becomes 530).
func (c *Counter) Value() int {
	seconds, minutes := c.Snapshot()
	return minutes*100 + seconds
}

// Ticker advances a Counter from a periodic sub-second tick. The tick
// handler only does arithmetic; it never touches a pin, those belong to the
// display loop.
type Ticker struct {
	counter  *Counter
	interval time.Duration
	ticker   *time.Ticker

	askDone chan bool
	done    chan bool
}

// NewTicker returns a runner advancing c once per second of accrued ticks.
// The interval must divide into a second evenly enough for taste; anything
// in (0, 1s] works, shorter just wakes up more often.
func NewTicker(c *Counter, interval time.Duration) *Ticker {
	if interval <= 0 || interval > time.Second {
		interval = 100 * time.Millisecond
	}
	return &Ticker{
		counter:  c,
		interval: interval,
		askDone:  make(chan bool),
		done:     make(chan bool),
	}
}

// Start launches the tick goroutine.
func (t *Ticker) Start() {
	t.ticker = time.NewTicker(t.interval)
	go func() {
		var accrued time.Duration
		for loop := true; loop; {
			select {
			case <-t.ticker.C:
				accrued += t.interval
				for accrued >= time.Second {
					accrued -= time.Second
					t.counter.Tick()
				}
			case <-t.askDone:
				loop = false
			}
		}
		t.done <- true
	}()
}

// Stop halts the tick goroutine and waits for it to exit.
func (t *Ticker) Stop() {
	t.ticker.Stop()
	t.askDone <- true
	<-t.done
}
