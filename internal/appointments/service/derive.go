package service

import "salon_backoffice_backend/internal/appointments/repository"

// deriveTotals sums duration and price over the resolved services.
// These are the only authoritative values for an appointment's duration
// and price; clients never set them directly.
func deriveTotals(services []repository.CatalogService) (duration int, price float64) {
	for _, sv := range services {
		duration += sv.Duration
		price += sv.Price
	}
	return duration, price
}
