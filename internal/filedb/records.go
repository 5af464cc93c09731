package filedb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

// flexID accepts both the legacy app's integer ids and uuid strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or integer")
	}

	*f = flexID(strconv.FormatInt(n, 10))

	return nil
}

// toUUID parses a uuid id; legacy integer ids are re-keyed to fresh uuids
// on migration.
func (f flexID) toUUID() uuid.UUID {
	if id, err := uuid.Parse(string(f)); err == nil {
		return id
	}

	return uuid.New()
}

type sourceRecord struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type transactionRecord struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Category    string        `json:"category"`
	Amount      float64       `json:"amount"`
	Type        string        `json:"type"`
	Role        string        `json:"role"`
	Description string        `json:"description"`
	ExpiryDate  string        `json:"expiry_date"`
	IsRecurring bool          `json:"is_recurring"`
	Cycle       string        `json:"cycle"`
	Source      *sourceRecord `json:"source,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
}

type debtRecord struct {
	ID           flexID  `json:"id"`
	Counterparty string  `json:"counterparty"`
	Side         string  `json:"side"`
	Amount       float64 `json:"amount"` // legacy field name for principal
	PaidBack     float64 `json:"paid_back"`
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
	StartDate    string  `json:"start_date"`
	DueDate      *string `json:"due_date"`
	Purpose      string  `json:"purpose"`
	Compound     bool    `json:"compound"`
}

type movementRecord struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
	Type   string  `json:"type"` // legacy field name for direction
}

type fundRecord struct {
	ID      flexID           `json:"id"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Target  float64          `json:"target"`
	Current float64          `json:"current"`
	Icon    string           `json:"icon"`
	History []movementRecord `json:"history"`
}

type memberRecord struct {
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
}

type goalRecord struct {
	ID      flexID         `json:"id"`
	Name    string         `json:"name"`
	Target  float64        `json:"target"`
	Members []memberRecord `json:"members"`
}

func recordToTransaction(r transactionRecord) (*transaction.Transaction, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("transaction id %q: %v", r.ID, err)
	}

	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	if r.Type != string(transaction.TypeIncome) && r.Type != string(transaction.TypeExpense) {
		return nil, fmt.Errorf("transaction %s: unknown type %q", r.ID, r.Type)
	}

	if r.Amount < 0 {
		return nil, fmt.Errorf("transaction %s: negative amount", r.ID)
	}

	tx := &transaction.Transaction{
		ID:          id,
		Date:        date,
		Category:    r.Category,
		Amount:      r.Amount,
		Type:        transaction.Type(r.Type),
		Role:        r.Role,
		Description: r.Description,
		IsRecurring: r.IsRecurring,
		Cycle:       r.Cycle,
	}

	if r.ExpiryDate != "" {
		exp, err := parseDate(r.ExpiryDate)
		if err != nil {
			return nil, err
		}

		tx.ExpiryDate = &exp
	}

	if r.Source != nil {
		srcID, err := uuid.Parse(r.Source.ID)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: source id %q: %v", r.ID, r.Source.ID, err)
		}

		kind := transaction.SourceKind(r.Source.Kind)
		if kind != transaction.SourceDebt && kind != transaction.SourceFund {
			return nil, fmt.Errorf("transaction %s: unknown source kind %q", r.ID, r.Source.Kind)
		}

		tx.Source = &transaction.SourceRef{Kind: kind, ID: srcID}
	}

	if r.CreatedAt != "" {
		created, err := parseDate(r.CreatedAt)
		if err != nil {
			return nil, err
		}

		tx.CreatedAt = created
	}

	if r.UpdatedAt != "" {
		updated, err := parseDate(r.UpdatedAt)
		if err != nil {
			return nil, err
		}

		tx.UpdatedAt = &updated
	}

	return tx, nil
}

func transactionToRecord(tx *transaction.Transaction) transactionRecord {
	r := transactionRecord{
		ID:          tx.ID.String(),
		Date:        tx.Date.Format(time.RFC3339),
		Category:    tx.Category,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Role:        tx.Role,
		Description: tx.Description,
		IsRecurring: tx.IsRecurring,
		Cycle:       tx.Cycle,
	}

	if tx.ExpiryDate != nil {
		r.ExpiryDate = tx.ExpiryDate.Format(time.RFC3339)
	}

	if tx.Source != nil {
		r.Source = &sourceRecord{Kind: string(tx.Source.Kind), ID: tx.Source.ID.String()}
	}

	if !tx.CreatedAt.IsZero() {
		r.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}

	if tx.UpdatedAt != nil {
		r.UpdatedAt = tx.UpdatedAt.Format(time.RFC3339)
	}

	return r
}

// sideFromRecord maps both the legacy IOWE/THEY_OWE values and the current
// ones.
func sideFromRecord(s string) (debt.Side, error) {
	switch s {
	case "IOWE", string(debt.SidePayable):
		return debt.SidePayable, nil
	case "THEY_OWE", string(debt.SideReceivable):
		return debt.SideReceivable, nil
	default:
		return "", fmt.Errorf("unknown debt side %q", s)
	}
}

func recordToDebt(r debtRecord) (*debt.Debt, error) {
	side, err := sideFromRecord(r.Side)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	if r.Amount < 0 || r.PaidBack < 0 {
		return nil, fmt.Errorf("debt %s: negative amount", r.ID)
	}

	d := &debt.Debt{
		ID:           r.ID.toUUID(),
		Counterparty: r.Counterparty,
		Side:         side,
		Principal:    r.Amount,
		PaidBack:     r.PaidBack,
		InterestRate: r.InterestRate,
		TermMonths:   r.TermMonths,
		StartDate:    start,
		Purpose:      r.Purpose,
		Compound:     r.Compound,
	}

	if r.DueDate != nil && *r.DueDate != "" {
		due, err := parseDate(*r.DueDate)
		if err != nil {
			return nil, err
		}

		d.DueDate = &due
	}

	return d, nil
}

func debtToRecord(d *debt.Debt) debtRecord {
	r := debtRecord{
		ID:           flexID(d.ID.String()),
		Counterparty: d.Counterparty,
		Side:         string(d.Side),
		Amount:       d.Principal,
		PaidBack:     d.PaidBack,
		InterestRate: d.InterestRate,
		TermMonths:   d.TermMonths,
		StartDate:    d.StartDate.Format(time.RFC3339),
		Purpose:      d.Purpose,
		Compound:     d.Compound,
	}

	if d.DueDate != nil {
		due := d.DueDate.Format(time.RFC3339)
		r.DueDate = &due
	}

	return r
}

func recordToFund(r fundRecord) (*fund.Fund, error) {
	ftype := fund.Type(r.Type)
	if ftype != fund.TypeGoal && ftype != fund.TypeMonthly && ftype != fund.TypePool {
		return nil, fmt.Errorf("fund %s: unknown type %q", r.ID, r.Type)
	}

	f := &fund.Fund{
		ID:      r.ID.toUUID(),
		Name:    r.Name,
		Type:    ftype,
		Target:  r.Target,
		Current: r.Current,
		Icon:    r.Icon,
		History: make([]fund.Movement, 0, len(r.History)),
	}

	for _, mv := range r.History {
		date, err := parseDate(mv.Date)
		if err != nil {
			return nil, err
		}

		dir := fund.Direction(mv.Type)
		if dir != fund.DirectionIn && dir != fund.DirectionOut {
			return nil, fmt.Errorf("fund %s: unknown movement direction %q", r.ID, mv.Type)
		}

		f.History = append(f.History, fund.Movement{
			Date:      date,
			Amount:    mv.Amount,
			Note:      mv.Note,
			Direction: dir,
		})
	}

	// The balance invariant is enforced at the engine boundary: a fund
	// whose stored balance disagrees with its history is corrupt data.
	if err := f.Verify(); err != nil {
		return nil, err
	}

	return f, nil
}

func fundToRecord(f *fund.Fund) fundRecord {
	r := fundRecord{
		ID:      flexID(f.ID.String()),
		Name:    f.Name,
		Type:    string(f.Type),
		Target:  f.Target,
		Current: f.Current,
		Icon:    f.Icon,
		History: make([]movementRecord, 0, len(f.History)),
	}

	for _, mv := range f.History {
		r.History = append(r.History, movementRecord{
			Date:   mv.Date.Format(time.RFC3339),
			Amount: mv.Amount,
			Note:   mv.Note,
			Type:   string(mv.Direction),
		})
	}

	return r
}

func recordToGoal(r goalRecord) (*fund.Goal, error) {
	g := &fund.Goal{
		ID:      r.ID.toUUID(),
		Name:    r.Name,
		Target:  r.Target,
		Members: make([]fund.Member, 0, len(r.Members)),
	}

	for _, m := range r.Members {
		if m.Contribution < 0 {
			return nil, fmt.Errorf("goal %s: negative contribution for %q", r.ID, m.Name)
		}

		g.Members = append(g.Members, fund.Member{Name: m.Name, Contribution: m.Contribution})
	}

	return g, nil
}

func goalToRecord(g *fund.Goal) goalRecord {
	r := goalRecord{
		ID:      flexID(g.ID.String()),
		Name:    g.Name,
		Target:  g.Target,
		Members: make([]memberRecord, 0, len(g.Members)),
	}

	for _, m := range g.Members {
		r.Members = append(r.Members, memberRecord{Name: m.Name, Contribution: m.Contribution})
	}

	return r
}
