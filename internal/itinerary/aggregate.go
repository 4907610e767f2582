package itinerary

import "github.com/nvats/travelog/internal/domain"

// TotalCost sums the cost of every activity across all days. Activities
// without a cost count as zero; an empty tour totals zero.
func TotalCost(tour domain.Tour) float64 {
	var total float64
	for _, d := range tour.Days {
		for _, a := range d.Activities {
			if a.Cost != nil {
				total += *a.Cost
			}
		}
	}
	return total
}

// ActivityCount returns the number of activities across all days.
func ActivityCount(tour domain.Tour) int {
	var n int
	for _, d := range tour.Days {
		n += len(d.Activities)
	}
	return n
}

// DayCost sums the cost of one day's activities, nil costs counting as zero.
func DayCost(day domain.TourDay) float64 {
	var total float64
	for _, a := range day.Activities {
		if a.Cost != nil {
			total += *a.Cost
		}
	}
	return total
}
