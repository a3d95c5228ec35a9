package repository

import (
	"context"
	"database/sql"
	"time"
)

const sqliteTime = "2006-01-02 15:04:05"

// ReportRepo stores issued reports.
type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

func (r *ReportRepo) Insert(ctx context.Context, rep Report) error {
	return insertReport(ctx, r.db, rep)
}

// InsertTx writes the report inside an existing transaction.
func (r *ReportRepo) InsertTx(ctx context.Context, tx *sql.Tx, rep Report) error {
	return insertReport(ctx, tx, rep)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertReport(ctx context.Context, ex execer, rep Report) error {
	_, err := ex.ExecContext(ctx, `
	INSERT INTO reports(id, road_address, unit_dong, unit_ho, purpose, price_line, contract_years, plan, status, issued_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.RoadAddress, rep.UnitDong, rep.UnitHo, rep.Purpose, rep.PriceLine,
		rep.ContractYears, rep.Plan, rep.Status, rep.IssuedAt.UTC().Format(sqliteTime))
	return err
}

// ListRecent returns reports newest-first.
func (r *ReportRepo) ListRecent(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, road_address, unit_dong, unit_ho, purpose, price_line, contract_years, plan, status, issued_at
	FROM reports ORDER BY issued_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *ReportRepo) Get(ctx context.Context, id string) (*Report, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, road_address, unit_dong, unit_ho, purpose, price_line, contract_years, plan, status, issued_at
	FROM reports WHERE id = ?`, id)
	rep, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (Report, error) {
	var rep Report
	var issued string
	err := s.Scan(&rep.ID, &rep.RoadAddress, &rep.UnitDong, &rep.UnitHo, &rep.Purpose,
		&rep.PriceLine, &rep.ContractYears, &rep.Plan, &rep.Status, &issued)
	if err != nil {
		return Report{}, err
	}
	if t, perr := time.Parse(sqliteTime, issued); perr == nil {
		rep.IssuedAt = t.UTC()
	}
	return rep, nil
}
