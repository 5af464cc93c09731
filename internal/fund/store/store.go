package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/fund"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateFund(ctx context.Context, f *fund.Fund) error {
	query := `
		INSERT INTO funds (name, type, target, current, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, f.Name, f.Type, f.Target, f.Current, f.Icon).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("creating fund: %w", err)
	}

	return nil
}

func (s *Store) GetFund(ctx context.Context, id uuid.UUID) (*fund.Fund, error) {
	query := `SELECT id, name, type, target, current, icon FROM funds WHERE id = $1`

	var f fund.Fund

	var typeStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &typeStr, &f.Target, &f.Current, &f.Icon)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fund.ErrNotFound
		}

		return nil, fmt.Errorf("getting fund: %w", err)
	}

	f.Type = fund.Type(typeStr)

	movements, err := s.loadMovements(ctx, &id)
	if err != nil {
		return nil, err
	}

	f.History = movements[f.ID]

	return &f, nil
}

func (s *Store) ListFunds(ctx context.Context) ([]*fund.Fund, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, target, current, icon FROM funds ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing funds: %w", err)
	}
	defer rows.Close()

	var funds []*fund.Fund

	for rows.Next() {
		var f fund.Fund

		var typeStr string

		if err := rows.Scan(&f.ID, &f.Name, &typeStr, &f.Target, &f.Current, &f.Icon); err != nil {
			return nil, fmt.Errorf("scanning fund: %w", err)
		}

		f.Type = fund.Type(typeStr)
		funds = append(funds, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fund rows: %w", err)
	}

	movements, err := s.loadMovements(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, f := range funds {
		f.History = movements[f.ID]
	}

	return funds, nil
}

// loadMovements returns histories keyed by fund id, in insertion order.
// With a nil id it loads every fund's history in one query.
func (s *Store) loadMovements(ctx context.Context, id *uuid.UUID) (map[uuid.UUID][]fund.Movement, error) {
	query := `SELECT fund_id, date, amount, note, direction FROM fund_movements`

	var args []any

	if id != nil {
		query += ` WHERE fund_id = $1`

		args = append(args, *id)
	}

	query += ` ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fund movements: %w", err)
	}
	defer rows.Close()

	movements := make(map[uuid.UUID][]fund.Movement)

	for rows.Next() {
		var fundID uuid.UUID

		var mv fund.Movement

		var dirStr string

		if err := rows.Scan(&fundID, &mv.Date, &mv.Amount, &mv.Note, &dirStr); err != nil {
			return nil, fmt.Errorf("scanning fund movement: %w", err)
		}

		mv.Direction = fund.Direction(dirStr)
		movements[fundID] = append(movements[fundID], mv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movement rows: %w", err)
	}

	return movements, nil
}

// UpdateFund writes the descriptive fields only. Balance and history change
// exclusively through the reconcile committer.
func (s *Store) UpdateFund(ctx context.Context, f *fund.Fund) error {
	query := `UPDATE funds SET name = $1, type = $2, target = $3, icon = $4 WHERE id = $5`

	res, err := s.db.ExecContext(ctx, query, f.Name, f.Type, f.Target, f.Icon, f.ID)
	if err != nil {
		return fmt.Errorf("updating fund: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating fund: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteFund(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fund_movements WHERE fund_id = $1`, id); err != nil {
		return fmt.Errorf("deleting fund movements: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM funds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting fund: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting fund: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

func (s *Store) CreateGoal(ctx context.Context, g *fund.Goal) error {
	query := `INSERT INTO goals (name, target) VALUES ($1, $2) RETURNING id`

	err := s.db.QueryRowContext(ctx, query, g.Name, g.Target).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*fund.Goal, error) {
	var g fund.Goal

	err := s.db.QueryRowContext(ctx, `SELECT id, name, target FROM goals WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.Target)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fund.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	members, err := s.loadMembers(ctx, &id)
	if err != nil {
		return nil, err
	}

	g.Members = members[g.ID]

	return &g, nil
}

func (s *Store) ListGoals(ctx context.Context) ([]*fund.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, target FROM goals ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*fund.Goal

	for rows.Next() {
		var g fund.Goal

		if err := rows.Scan(&g.ID, &g.Name, &g.Target); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal rows: %w", err)
	}

	members, err := s.loadMembers(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, g := range goals {
		g.Members = members[g.ID]
	}

	return goals, nil
}

func (s *Store) loadMembers(ctx context.Context, id *uuid.UUID) (map[uuid.UUID][]fund.Member, error) {
	query := `SELECT goal_id, name, contribution FROM goal_members`

	var args []any

	if id != nil {
		query += ` WHERE goal_id = $1`

		args = append(args, *id)
	}

	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goal members: %w", err)
	}
	defer rows.Close()

	members := make(map[uuid.UUID][]fund.Member)

	for rows.Next() {
		var goalID uuid.UUID

		var m fund.Member

		if err := rows.Scan(&goalID, &m.Name, &m.Contribution); err != nil {
			return nil, fmt.Errorf("scanning goal member: %w", err)
		}

		members[goalID] = append(members[goalID], m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return members, nil
}

// UpdateGoal rewrites the goal and its member list in one transaction.
func (s *Store) UpdateGoal(ctx context.Context, g *fund.Goal) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE goals SET name = $1, target = $2 WHERE id = $3`, g.Name, g.Target, g.ID)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM goal_members WHERE goal_id = $1`, g.ID); err != nil {
		return fmt.Errorf("clearing goal members: %w", err)
	}

	for _, m := range g.Members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO goal_members (goal_id, name, contribution) VALUES ($1, $2, $3)`,
			g.ID, m.Name, m.Contribution,
		); err != nil {
			return fmt.Errorf("inserting goal member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing goal update: %w", err)
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM goal_members WHERE goal_id = $1`, id); err != nil {
		return fmt.Errorf("deleting goal members: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}
