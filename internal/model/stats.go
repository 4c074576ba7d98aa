package model

import "math"

// Stats summarizes completion progress across a task collection.
type Stats struct {
	Total     int
	Completed int
	// Rate is the completion percentage rounded to the nearest whole
	// percent, 0 for an empty collection.
	Rate int
}

func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Rate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
