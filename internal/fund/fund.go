package fund

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Type classifies a savings fund.
type Type string

const (
	TypeGoal    Type = "goal"    // saving toward a fixed target
	TypeMonthly Type = "monthly" // refilled every month
	TypePool    Type = "pool"    // open-ended jar
)

// Direction of a fund movement.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// balanceEpsilon tolerates float drift when checking Current against the
// movement history.
const balanceEpsilon = 1e-5

// Movement is one timestamped deposit or withdrawal in a fund's history.
type Movement struct {
	Date      time.Time
	Amount    float64
	Note      string
	Direction Direction
}

// Fund is a named savings bucket. Current must always equal the sum of the
// history; Apply is the only way it is allowed to change.
type Fund struct {
	ID      uuid.UUID
	Name    string
	Type    Type
	Target  float64
	Current float64
	Icon    string
	History []Movement
}

// Apply records a movement and adjusts the balance accordingly.
func (f *Fund) Apply(mv Movement) {
	switch mv.Direction {
	case DirectionIn:
		f.Current += mv.Amount
	case DirectionOut:
		f.Current -= mv.Amount
	}

	f.History = append(f.History, mv)
}

// Verify recomputes the balance from history and reports any divergence.
// Funds start at zero, so the history alone must account for Current.
func (f *Fund) Verify() error {
	var total float64

	for _, mv := range f.History {
		switch mv.Direction {
		case DirectionIn:
			total += mv.Amount
		case DirectionOut:
			total -= mv.Amount
		default:
			return fmt.Errorf("%w: fund %s has movement with direction %q", ErrInconsistentHistory, f.ID, mv.Direction)
		}
	}

	if math.Abs(total-f.Current) > balanceEpsilon {
		return fmt.Errorf("%w: fund %s balance %.2f does not match history total %.2f",
			ErrInconsistentHistory, f.ID, f.Current, total)
	}

	return nil
}

// Member is a contributor to a group goal.
type Member struct {
	Name         string
	Contribution float64
}

// Goal is a shared savings target funded by several members. Contributions
// are outside the family cash ledger, so goals never mirror transactions.
type Goal struct {
	ID      uuid.UUID
	Name    string
	Target  float64
	Members []Member
}

// Saved is the total contributed by all members.
func (g *Goal) Saved() float64 {
	var total float64
	for _, m := range g.Members {
		total += m.Contribution
	}

	return total
}
