package usecase

import "context"

// RetentionResult counts what one cleanup pass removed
type RetentionResult struct {
	LocationRecords int64 `json:"location_records"`
	Trips           int64 `json:"trips"`
	CacheEntries    int   `json:"cache_entries"`
}

// RetentionUsecase prunes local history on a fixed schedule
type RetentionUsecase interface {
	// Start schedules periodic cleanup
	Start()

	Stop()

	// RunOnce runs a single cleanup pass immediately
	RunOnce(ctx context.Context) (RetentionResult, error)
}
