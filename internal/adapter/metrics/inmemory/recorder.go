package inmemory

import (
	"sync"

	"petbowl/internal/domain/watering"
)

type Snapshot struct {
	DayStartTotal   uint64            `json:"day_start_total"`
	DayStartSuccess uint64            `json:"day_start_success"`
	DayStartFailure uint64            `json:"day_start_failure"`
	RainSkipped     uint64            `json:"rain_skipped"`
	BowlsEvaluated  uint64            `json:"bowls_evaluated"`
	BowlsFilled     uint64            `json:"bowls_filled"`
	ByReason        map[string]uint64 `json:"by_reason"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	failure  uint64
	rain     uint64
	bowls    uint64
	filled   uint64
	byReason map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byReason: map[string]uint64{},
	}
}

func (r *Recorder) RecordEvaluation(result watering.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	if result.Skipped {
		r.rain++
	}
	for _, o := range result.Outcomes {
		r.bowls++
		if o.Filled {
			r.filled++
		}
		r.byReason[string(o.Reason)]++
	}
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		DayStartSuccess: r.success,
		DayStartFailure: r.failure,
		DayStartTotal:   r.success + r.failure,
		RainSkipped:     r.rain,
		BowlsEvaluated:  r.bowls,
		BowlsFilled:     r.filled,
		ByReason:        make(map[string]uint64, len(r.byReason)),
	}
	for k, v := range r.byReason {
		out.ByReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
