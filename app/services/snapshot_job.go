package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// SnapshotJob materializes the live stats computation into the persisted
// daily record once per day at a fixed wall-clock time. It drives the
// aggregator exclusively through its public API. Not distributed-safe: two
// processes running the job can race on the same day's record.
type SnapshotJob struct {
	stats *StatsService
	cron  *cron.Cron
	spec  string
}

// NewSnapshotJob builds the job with a cron spec (e.g. "59 23 * * *") in
// the given timezone ("Local" for the system zone).
func NewSnapshotJob(stats *StatsService, spec, timezone string) (*SnapshotJob, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, err
		}
	}

	return &SnapshotJob{
		stats: stats,
		cron:  cron.New(cron.WithLocation(loc)),
		spec:  spec,
	}, nil
}

func (j *SnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("Stats snapshot job scheduled (%s)", j.spec)
	return nil
}

func (j *SnapshotJob) Stop() {
	j.cron.Stop()
}

// Run takes one snapshot: compute the live stats, make sure today's record
// exists, then overwrite its totals.
func (j *SnapshotJob) Run() {
	ctx := context.Background()
	now := time.Now()

	current, err := j.stats.GetCurrentStats(ctx)
	if err != nil {
		log.Printf("Snapshot job: failed to compute current stats: %v", err)
		return
	}

	// Read-repair ensures the day's record exists before the overwrite.
	if _, err := j.stats.GetStatsByDate(ctx, now); err != nil {
		log.Printf("Snapshot job: failed to load today's stats record: %v", err)
		return
	}

	profit := decimal.NewFromFloat(current.TotalProfit)
	patch := StatsPatch{
		TotalProfit:   &profit,
		TotalOrders:   &current.TotalOrders,
		TotalRepairs:  &current.TotalRepairs,
		TotalProducts: &current.TotalProducts,
	}

	if _, err := j.stats.UpdateStats(ctx, patch, now); err != nil {
		log.Printf("Snapshot job: failed to persist snapshot: %v", err)
		return
	}

	log.Printf("Stats snapshot persisted for %s", now.Format("2006-01-02"))
}
