package tracestore

import "time"

// BlockTrace records the outcome of decoding a single 128-word block
// within one run. RunID groups every block of a single encode/decode
// session together.
type BlockTrace struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	RunID           string    `gorm:"index;size:36" json:"run_id"`
	Sequence        uint64    `gorm:"index" json:"sequence"`
	CorrectedErrors uint8     `json:"corrected_errors"`
	Uncorrectable   bool      `json:"uncorrectable"`
	CRCPass         bool      `json:"crc_pass"`
	ProcessedAt     time.Time `json:"processed_at"`
}

// TableName specifies the table name for GORM.
func (BlockTrace) TableName() string {
	return "block_traces"
}

// RunSummary aggregates the block traces recorded for a single run.
type RunSummary struct {
	RunID             string
	Blocks            uint64
	TotalCorrected    uint64
	UncorrectableRuns uint64
	CRCFailures       uint64
}
