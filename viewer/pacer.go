package viewer

import (
	"math"
	"time"
)

// PacerConfig configures a Pacer.
type PacerConfig struct {
	// TargetRate is the maximum number of ticks per second.
	TargetRate float64

	// AveragingPeriod is the span of recent frame times the estimate covers.
	AveragingPeriod time.Duration

	// UpdatePeriod is the minimum time between two published estimates.
	UpdatePeriod time.Duration
}

// Pacer limits the loop to a target rate and estimates the achieved rate.
//
// Frame times are kept in a ring of round(TargetRate × AveragingPeriod)
// samples. The estimate walks back from the newest sample until the summed
// durations reach the averaging period and divides the sample count by
// that sum.
//
// A Pacer is driven by the caller's clock; it never reads the wall time.
type Pacer struct {
	interval     time.Duration
	period       time.Duration
	updatePeriod time.Duration

	samples []time.Duration
	next    int

	last       time.Time
	lastUpdate time.Time

	rate      float64
	statusDue bool
}

// NewPacer returns a pacer whose first tick interval starts at now. The
// ring starts filled with samples of exactly one target interval, so the
// first estimate equals the target rate.
func NewPacer(cfg PacerConfig, now time.Time) *Pacer {
	interval := time.Duration(float64(time.Second) / cfg.TargetRate)
	size := max(int(math.Round(cfg.TargetRate*cfg.AveragingPeriod.Seconds())), 1)

	p := &Pacer{
		interval:     interval,
		period:       cfg.AveragingPeriod,
		updatePeriod: cfg.UpdatePeriod,
		samples:      make([]time.Duration, size),
		last:         now,
		lastUpdate:   now,
		rate:         cfg.TargetRate,
	}
	for i := range p.samples {
		p.samples[i] = interval
	}
	return p
}

// Tick reports whether more than one target interval has passed since the
// previous tick. On a tick the elapsed time is recorded and, once every
// UpdatePeriod, a fresh estimate is published (see StatusDue).
func (p *Pacer) Tick(now time.Time) bool {
	elapsed := now.Sub(p.last)
	if elapsed <= p.interval {
		p.statusDue = false
		return false
	}

	p.samples[p.next] = elapsed
	p.next = (p.next + 1) % len(p.samples)
	p.last = now

	p.statusDue = now.Sub(p.lastUpdate) >= p.updatePeriod
	if p.statusDue {
		p.rate = p.Estimate()
		p.lastUpdate = now
	}
	return true
}

// StatusDue reports whether the last Tick published a new estimate.
func (p *Pacer) StatusDue() bool {
	return p.statusDue
}

// Estimate returns the frame rate over the most recent samples covering
// the averaging period, or all samples if the ring is shorter.
func (p *Pacer) Estimate() float64 {
	var sum time.Duration
	count := 0
	for i := range p.samples {
		if sum >= p.period {
			break
		}
		idx := (p.next - 1 - i + len(p.samples)) % len(p.samples)
		sum += p.samples[idx]
		count++
	}
	if sum <= 0 {
		return 0
	}
	return float64(count) / sum.Seconds()
}

// Rate returns the last published estimate.
func (p *Pacer) Rate() float64 {
	return p.rate
}

// Interval returns the minimum time between ticks.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait returns how long to sleep from now until Tick will fire. It is zero
// once a tick is already due.
func (p *Pacer) Wait(now time.Time) time.Duration {
	d := p.interval - now.Sub(p.last)
	if d < 0 {
		return 0
	}
	// Tick needs strictly more than one interval.
	return d + time.Nanosecond
}
