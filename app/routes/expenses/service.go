package expenses

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/HussainIjaz209/OKS-sub001/app/database"
	"github.com/HussainIjaz209/OKS-sub001/app/ledger"
	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

const (
	statsCacheKey = "expense_stats"
	statsCacheTTL = 2 * time.Minute
	statsTopN     = 5
)

// Service loads ledger snapshots and executes dispatched mutations.
type Service struct {
	db    *sql.DB
	synth ledger.Synthesizer
	stats *cache.Cache
}

func NewService(db *sql.DB, synth ledger.Synthesizer) *Service {
	return &Service{
		db:    db,
		synth: synth,
		stats: cache.New(statsCacheTTL, 10*time.Minute),
	}
}

// Snapshot is one consistent refresh cycle of the merged ledger.
type Snapshot struct {
	Entries      []*models.Expense
	PendingTotal int64
}

// LoadSnapshot fetches expenses and the teacher roster concurrently,
// then synthesizes and merges. Both fetches share one errgroup context:
// if the expense query fails, the roster fetch is cancelled with it, and
// a superseded request cancels the whole cycle through ctx. A roster
// failure alone only skips salary synthesis.
func (s *Service) LoadSnapshot(ctx context.Context, f ledger.Filter, now time.Time) (*Snapshot, error) {
	var (
		persisted []*models.Expense
		roster    []*models.Teacher
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persisted, err = QueryExpenses(gctx, s.db, f)
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = database.GetActiveTeachers(gctx, s.db)
		if err != nil {
			// Salary synthesis is a convenience; degrade to an empty
			// roster instead of failing the whole view.
			log.Printf("teacher roster unavailable, skipping salary synthesis: %v", err)
			roster = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	virtual := s.synth.Synthesize(persisted, roster, f, now)
	merged := ledger.Merge(persisted, virtual)

	return &Snapshot{
		Entries:      merged,
		PendingTotal: ledger.PendingTotal(merged),
	}, nil
}

// Execute runs a planned operation against storage and invalidates the
// stats cache. Rejections (such as deleting a virtual row) happen in
// ledger.Dispatch before this point, so every operation here maps to
// exactly one storage call.
func (s *Service) Execute(op ledger.Operation) (*models.Expense, error) {
	defer s.stats.Delete(statsCacheKey)

	switch op.Kind {
	case ledger.OpCreate:
		return InsertExpense(s.db, *op.Payload)
	case ledger.OpUpdate:
		return UpdateExpense(s.db, op.ID, *op.Payload)
	case ledger.OpDelete:
		return nil, DeleteExpense(s.db, op.ID)
	}
	return nil, ledger.ErrUnknownAction
}

// Stats returns the persisted-rows aggregate, cached for a short TTL.
func (s *Service) Stats() (*models.ExpenseStats, error) {
	if v, ok := s.stats.Get(statsCacheKey); ok {
		return v.(*models.ExpenseStats), nil
	}
	stats, err := QueryExpenseStats(s.db, statsTopN)
	if err != nil {
		return nil, err
	}
	s.stats.Set(statsCacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
