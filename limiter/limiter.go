// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a way of limiting events to a fixed rate. It is
// used to pace the presentation of frames at the refresh rate of the LCD.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(limiter.RefreshRate)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// RefreshRate is the number of frames per second produced by the hardware.
const RefreshRate = 4194304.0 / 70224.0

// how often the actual rate is measured
const measurementPeriod = time.Second

// Limiter will trigger at a fixed number of times per second.
type Limiter struct {
	ticker *time.Ticker

	// the most recent measurement of the rate of calls to Wait(). stored as
	// the bits of a float64
	actual atomic.Uint64

	count      int
	countStart time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate float64) (*Limiter, error) {
	d, err := period(rate)
	if err != nil {
		return nil, err
	}

	lim := &Limiter{
		ticker:     time.NewTicker(d),
		countStart: time.Now(),
	}
	lim.actual.Store(math.Float64bits(rate))

	return lim, nil
}

func period(rate float64) (time.Duration, error) {
	if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		return 0, fmt.Errorf("limiter: invalid rate (%f)", rate)
	}
	return time.Duration(float64(time.Second) / rate), nil
}

// SetRate changes the rate at which Wait() triggers.
func (lim *Limiter) SetRate(rate float64) error {
	d, err := period(rate)
	if err != nil {
		return err
	}
	lim.ticker.Reset(d)
	return nil
}

// Wait blocks until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
	lim.measure()
}

// HasWaited returns true if the trigger has already happened. It never
// blocks.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		lim.measure()
		return true
	default:
		return false
	}
}

func (lim *Limiter) measure() {
	lim.count++
	if el := time.Since(lim.countStart); el >= measurementPeriod {
		lim.actual.Store(math.Float64bits(float64(lim.count) / el.Seconds()))
		lim.count = 0
		lim.countStart = time.Now()
	}
}

// Actual returns the measured rate of triggers. Safe to call from any
// goroutine.
func (lim *Limiter) Actual() float64 {
	return math.Float64frombits(lim.actual.Load())
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
