package types

import (
	"fmt"
	"time"
)

// Stats counts the work done by one extraction run.
type Stats struct {
	RecordsBound        int64         `yaml:"records_bound" json:"records_bound"`
	Invocations         int64         `yaml:"invocations" json:"invocations"`
	CrossReferenceCalls int64         `yaml:"cross_reference_calls" json:"cross_reference_calls"`
	Synthesized         int64         `yaml:"synthesized" json:"synthesized"`
	Duration            time.Duration `yaml:"duration" json:"duration"`
}

// Add returns the sum of s and o. Durations are summed as well.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		RecordsBound:        s.RecordsBound + o.RecordsBound,
		Invocations:         s.Invocations + o.Invocations,
		CrossReferenceCalls: s.CrossReferenceCalls + o.CrossReferenceCalls,
		Synthesized:         s.Synthesized + o.Synthesized,
		Duration:            s.Duration + o.Duration,
	}
}

// RecordsPerSecond returns the binding throughput, or 0 before any time elapsed.
func (s Stats) RecordsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.RecordsBound) / s.Duration.Seconds()
}

func (s Stats) String() string {
	return fmt.Sprintf("records=%d invocations=%d cross_refs=%d synthesized=%d duration=%s",
		s.RecordsBound, s.Invocations, s.CrossReferenceCalls, s.Synthesized, s.Duration.Round(time.Millisecond))
}
