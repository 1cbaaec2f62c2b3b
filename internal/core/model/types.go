package model

// MetricRecord is one decomposed "<entity>-<phase>" metric
type MetricRecord struct {
	Entity   string  `json:"entity"`
	Phase    string  `json:"phase"`
	RawValue float64 `json:"rawValue"`
}

// ResolvedRecord is a MetricRecord whose value has been resolved to an absolute
// offset from navigation start. For relative phases it also carries the
// predecessor phase and that phase's absolute value, so renderers can compute
// segment geometry without resolving again.
type ResolvedRecord struct {
	Entity           string  `json:"entity"`
	Phase            string  `json:"phase"`
	RawValue         float64 `json:"rawValue"`
	AbsoluteValue    float64 `json:"absoluteValue"`
	Relative         bool    `json:"relative"`
	Predecessor      string  `json:"predecessor,omitempty"`
	PredecessorValue float64 `json:"predecessorValue,omitempty"`
	Color            string  `json:"color,omitempty"`
}

// Duration returns the span covered by a relative phase. Absolute phases are points.
func (r ResolvedRecord) Duration() float64 {
	if !r.Relative {
		return 0
	}
	return r.AbsoluteValue - r.PredecessorValue
}

// Timeline is the resolved records of one entity, ascending by absolute value
type Timeline struct {
	Entity  string           `json:"entity"`
	Records []ResolvedRecord `json:"records"`
}

// Start returns the smallest absolute value in the timeline
func (t Timeline) Start() float64 {
	if len(t.Records) == 0 {
		return 0
	}
	return t.Records[0].AbsoluteValue
}

// End returns the largest absolute value in the timeline
func (t Timeline) End() float64 {
	if len(t.Records) == 0 {
		return 0
	}
	return t.Records[len(t.Records)-1].AbsoluteValue
}

// Lookup finds the record for a phase
func (t Timeline) Lookup(phase string) (ResolvedRecord, bool) {
	for _, rec := range t.Records {
		if rec.Phase == phase {
			return rec, true
		}
	}
	return ResolvedRecord{}, false
}

// TimelineSet is the assembled, render-ready result for one snapshot
type TimelineSet struct {
	Timelines []Timeline `json:"timelines"`
	MaxValue  float64    `json:"maxValue"`
	Warnings  []Warning  `json:"warnings,omitempty"`
}

// HasData reports whether the set can be normalized against MaxValue
func (s *TimelineSet) HasData() bool {
	return s != nil && len(s.Timelines) > 0 && s.MaxValue > 0
}

// Len returns the number of timelines
func (s *TimelineSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Timelines)
}

// RecordCount returns the number of resolved records across all timelines
func (s *TimelineSet) RecordCount() int {
	if s == nil {
		return 0
	}
	count := 0
	for _, tl := range s.Timelines {
		count += len(tl.Records)
	}
	return count
}

// Entities returns entity names in render order
func (s *TimelineSet) Entities() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Timelines))
	for _, tl := range s.Timelines {
		names = append(names, tl.Entity)
	}
	return names
}

// WarningKind classifies data-quality warnings
type WarningKind string

const (
	WarningDuplicatePhase WarningKind = "duplicate_phase"
)

// Warning is a non-fatal data-quality problem found while assembling
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Entity  string      `json:"entity"`
	Phase   string      `json:"phase"`
	Message string      `json:"message"`
}
