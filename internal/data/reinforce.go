package data

import (
	"fmt"

	"github.com/udisondev/arcalc/internal/model"
)

// Reinforce — таблица роста оружия по уровням заточки (ReinforceParamWeapon).
// AttackRate multiplies base attack; ScalingRate multiplies scaling coefficients.
type Reinforce struct {
	ID          string
	AttackRate  []float64
	ScalingRate []float64
}

// Rows returns the number of upgrade rows in the table.
func (r *Reinforce) Rows() int {
	return len(r.AttackRate)
}

const (
	ReinforceStandard = "standard"
	ReinforceSomber   = "somber"
	ReinforceStaff    = "staff"
)

var reinforceTables = map[string]*Reinforce{
	ReinforceStandard: linearReinforce(ReinforceStandard, model.MaxRegularUpgradeLevel, 0.058, 0.012),
	ReinforceSomber:   linearReinforce(ReinforceSomber, model.MaxSpecialUpgradeLevel, 0.145, 0.03),
	ReinforceStaff:    linearReinforce(ReinforceStaff, model.MaxRegularUpgradeLevel, 0.04, 0.05),
}

func linearReinforce(id string, maxLevel int, attackStep, scalingStep float64) *Reinforce {
	r := &Reinforce{
		ID:          id,
		AttackRate:  make([]float64, maxLevel+1),
		ScalingRate: make([]float64, maxLevel+1),
	}
	for level := 0; level <= maxLevel; level++ {
		r.AttackRate[level] = 1 + attackStep*float64(level)
		r.ScalingRate[level] = 1 + scalingStep*float64(level)
	}
	return r
}

// GetReinforce returns a reinforcement table by id.
func GetReinforce(id string) (*Reinforce, error) {
	r, ok := reinforceTables[id]
	if !ok {
		return nil, fmt.Errorf("unknown reinforce table %q", id)
	}
	return r, nil
}
