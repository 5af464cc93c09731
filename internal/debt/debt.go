package debt

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Side represents which direction a debt runs.
type Side string

const (
	SidePayable    Side = "payable"    // we owe the counterparty
	SideReceivable Side = "receivable" // the counterparty owes us
)

// SchedulePolicy selects how amortization due dates are stepped.
//
// The original ledger stepped installments by a fixed 30 days rather than
// calendar months; that stays the default until product says otherwise.
type SchedulePolicy string

const (
	StepFixed30       SchedulePolicy = "fixed30"
	StepCalendarMonth SchedulePolicy = "calendar"
)

const (
	daysPerYear = 365

	// scheduleEpsilon absorbs float drift when comparing cumulative
	// scheduled amounts against paid_back.
	scheduleEpsilon = 1e-5
)

// Debt represents a payable or receivable loan.
type Debt struct {
	ID           uuid.UUID
	Counterparty string
	Side         Side
	Principal    float64
	PaidBack     float64
	InterestRate float64 // percent per year
	TermMonths   int
	StartDate    time.Time
	DueDate      *time.Time
	Purpose      string
	Compound     bool
}

// Outstanding is the unpaid principal, floored at zero. Overpaid debts
// (PaidBack > Principal) therefore report zero rather than a negative value.
func (d *Debt) Outstanding() float64 {
	return math.Max(d.Principal-d.PaidBack, 0)
}

// IsOverdue reports whether the debt has a due date in the past and money
// still outstanding as of the given day.
func (d *Debt) IsOverdue(asOf time.Time) bool {
	if d.DueDate == nil {
		return false
	}

	return d.DueDate.Before(asOf) && d.Outstanding() > 0
}

// AccruedInterest computes interest accumulated between StartDate and asOf.
// Settled debts, zero rates, and dates before the start all yield zero.
func (d *Debt) AccruedInterest(asOf time.Time) float64 {
	if d.Outstanding() <= 0 || d.InterestRate <= 0 {
		return 0
	}

	days := asOf.Sub(d.StartDate).Hours() / 24
	if days < 0 {
		return 0
	}

	rate := d.InterestRate / 100
	if d.Compound {
		return d.Principal * (math.Pow(1+rate, days/daysPerYear) - 1)
	}

	return d.Principal * rate * (days / daysPerYear)
}

// TotalRepayable is principal plus interest over the full term, using the
// compound or simple formula depending on the debt's terms.
func (d *Debt) TotalRepayable() float64 {
	years := float64(d.TermMonths) / 12

	rate := d.InterestRate / 100
	if d.Compound {
		return d.Principal * math.Pow(1+rate, years)
	}

	return d.Principal * (1 + rate*years)
}

// Installment is a single entry of an amortization schedule.
type Installment struct {
	Date   time.Time
	Amount float64
	Paid   bool
}

// RepaymentSchedule builds the amortization schedule for the debt.
//
// Debts with no term or no principal degenerate to a single installment at
// the due date (or start date when no due date is set). Otherwise the total
// repayable is split into equal installments whose due dates are stepped
// per the given policy. An installment counts as paid once PaidBack covers
// the cumulative scheduled amount, within scheduleEpsilon.
func (d *Debt) RepaymentSchedule(policy SchedulePolicy) []Installment {
	if d.TermMonths <= 0 || d.Principal <= 0 {
		due := d.StartDate
		if d.DueDate != nil {
			due = *d.DueDate
		}

		return []Installment{{
			Date:   due,
			Amount: d.Principal,
			Paid:   d.PaidBack >= d.Principal,
		}}
	}

	monthly := d.TotalRepayable() / float64(d.TermMonths)

	schedule := make([]Installment, 0, d.TermMonths)

	var cumulative float64

	for i := 1; i <= d.TermMonths; i++ {
		var due time.Time
		if policy == StepCalendarMonth {
			due = d.StartDate.AddDate(0, i, 0)
		} else {
			due = d.StartDate.AddDate(0, 0, 30*i)
		}

		cumulative += monthly

		schedule = append(schedule, Installment{
			Date:   due,
			Amount: monthly,
			Paid:   d.PaidBack >= cumulative-scheduleEpsilon,
		})
	}

	return schedule
}
