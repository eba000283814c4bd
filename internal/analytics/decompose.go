// ABOUTME: Three-way stacked decomposition of daily intake vs burned calories.
// ABOUTME: Burn plots negative; burn exceeding intake is peeled into an overburn band.
package analytics

// Decomposition holds aligned per-day stacked-bar bands. Burn is negated
// for stacking below zero. On days where more was burned than eaten the
// deficit moves into Overburn and Burn is reduced by the same amount, so
// Intake+Burn+Overburn stacks to exactly zero on those days. Net carries
// intake minus burn for goal comparison by the caller.
type Decomposition struct {
	Intake   []float64
	Burn     []float64
	Overburn []float64
	Net      []float64
}

// DecomposeCalories derives the stacked bands from parallel intake/burn
// daily series. Inputs must be aligned to the same day index; the shorter
// length wins when they differ.
func DecomposeCalories(intake, burn []float64) *Decomposition {
	n := len(intake)
	if len(burn) < n {
		n = len(burn)
	}

	d := &Decomposition{
		Intake:   make([]float64, n),
		Burn:     make([]float64, n),
		Overburn: make([]float64, n),
		Net:      make([]float64, n),
	}

	for i := 0; i < n; i++ {
		d.Intake[i] = intake[i]
		d.Burn[i] = -burn[i]
		net := d.Intake[i] + d.Burn[i]
		d.Net[i] = net
		if net < 0 {
			d.Overburn[i] = net
			d.Burn[i] -= net
		}
	}
	return d
}
