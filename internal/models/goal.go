// ABOUTME: Weight and goal record models over the append-only goals log.
// ABOUTME: Each row sets at most one field; reads use most-recent-non-null-wins.
package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalField names the single field a goal log row carries.
type GoalField string

const (
	GoalCurrentWeight GoalField = "current_weight"
	GoalTargetWeight  GoalField = "target_weight"
	GoalDailyCalories GoalField = "daily_calorie_goal"
	GoalLossTimeframe GoalField = "weight_loss_timeframe"
)

// WeightEntry is one row of the weight history (current-weight rows only),
// used by the progress view and its edit/delete operations.
type WeightEntry struct {
	ID     uuid.UUID
	Weight float64
	Date   time.Time
}

// Goals is the resolved current value of every goal field. Nil means the
// field has never been set.
type Goals struct {
	CurrentWeight    *float64
	TargetWeight     *float64
	DailyCalorieGoal *float64
	LossTimeframe    *float64
}

// WeightDelta returns current minus target weight when both are known.
func (g *Goals) WeightDelta() (float64, bool) {
	if g.CurrentWeight == nil || g.TargetWeight == nil {
		return 0, false
	}
	return *g.CurrentWeight - *g.TargetWeight, true
}
