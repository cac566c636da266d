// Package workout defines exercise records and workout sessions
package workout

// oneRepMaxDivisor is the repetition divisor of the Epley estimate.
const oneRepMaxDivisor = 30.0

// Exercise is one performed movement within a session.
type Exercise struct {
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscle_group"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
}

// Volume returns the workload of the exercise: sets x reps x weight.
func (e Exercise) Volume() float64 {
	return float64(e.Sets) * float64(e.Reps) * e.Weight
}

// OneRepMax returns the estimated one-rep max, weight x (1 + reps/30).
func (e Exercise) OneRepMax() float64 {
	return e.Weight * (1 + float64(e.Reps)/oneRepMaxDivisor)
}

// PerformanceMetric is the value personal records are measured by.
func (e Exercise) PerformanceMetric() float64 {
	return e.OneRepMax()
}
