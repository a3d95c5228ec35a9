package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zikim/zikim/internal/database"
	"github.com/zikim/zikim/internal/database/repository"
	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/report"
)

// IssueService finalizes a successful issuance: it persists the report row
// and, for a ticket-funded issuance, consumes the ticket. Both happen in the
// same call so the screen observes one transition; a failed issuance never
// reaches this code, which is why a failure leaves the ticket balance alone.
type IssueService struct {
	DB      *sql.DB
	Reports *repository.ReportRepo
	Log     *zap.Logger
}

// Complete records the issued report derived from the current draft and
// returns the stored row. The ticket decrement (floor 0) is applied to the
// store only when the draft's plan is ticket.
func (s *IssueService) Complete(ctx context.Context, store *draft.Store) (repository.Report, error) {
	d := store.Get()
	rep := repository.Report{
		ID:            uuid.NewString(),
		RoadAddress:   d.AddressSelected,
		UnitDong:      d.UnitDong,
		UnitHo:        d.UnitHo,
		Purpose:       string(d.Purpose),
		PriceLine:     report.PriceLine(d),
		ContractYears: d.ContractYears(),
		Plan:          string(d.PaymentPlan),
		Status:        "done",
		IssuedAt:      database.Now(),
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		return s.Reports.InsertTx(ctx, tx, rep)
	})
	if err != nil {
		return repository.Report{}, fmt.Errorf("store report: %w", err)
	}

	if d.PaymentPlan == draft.PlanTicket {
		store.Patch(draft.ConsumeTicket)
	}
	if s.Log != nil {
		s.Log.Info("report issued",
			zap.String("id", rep.ID),
			zap.String("purpose", rep.Purpose),
			zap.String("plan", rep.Plan))
	}
	return rep, nil
}

// HistoryService lists previously issued reports.
type HistoryService struct {
	Reports *repository.ReportRepo
}

// Recent returns issued reports newest-first.
func (s *HistoryService) Recent(ctx context.Context) ([]repository.Report, error) {
	return s.Reports.ListRecent(ctx, 50)
}
