package tracestore

import (
	"time"

	"gorm.io/gorm"
)

// Record inserts a single block trace row.
func (s *Store) Record(trace *BlockTrace) error {
	if trace.ProcessedAt.IsZero() {
		trace.ProcessedAt = time.Now()
	}
	return s.db.Create(trace).Error
}

// RunSummary aggregates every block trace recorded for runID.
func (s *Store) RunSummary(runID string) (RunSummary, error) {
	summary := RunSummary{RunID: runID}

	var traces []BlockTrace
	if err := s.db.Where("run_id = ?", runID).Find(&traces).Error; err != nil {
		return summary, err
	}

	summary.Blocks = uint64(len(traces))
	for _, t := range traces {
		summary.TotalCorrected += uint64(t.CorrectedErrors)
		if t.Uncorrectable {
			summary.UncorrectableRuns++
		}
		if !t.CRCPass {
			summary.CRCFailures++
		}
	}
	return summary, nil
}

// RecentRuns returns the distinct run IDs seen, most recent first by
// processed_at, limited to limit entries. Run IDs are random UUIDs
// with no time ordering of their own, so recency is determined by the
// latest processed_at within each run, not by the id itself.
func (s *Store) RecentRuns(limit int) ([]string, error) {
	var runIDs []string
	err := s.db.Model(&BlockTrace{}).
		Select("run_id").
		Group("run_id").
		Order("MAX(processed_at) desc").
		Limit(limit).
		Pluck("run_id", &runIDs).Error
	return runIDs, err
}

// ErrNotFound is returned by lookups with no matching row.
var ErrNotFound = gorm.ErrRecordNotFound
