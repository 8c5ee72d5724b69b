package dealer

import (
	"strconv"
	"strings"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
)

// GlobalSearch matches a case-insensitive substring query against a fixed
// set of fields per entity type. An empty or whitespace query returns empty
// result sets, never the whole store.
func (s *Service) GlobalSearch(query string) domain.SearchResults {
	results := domain.SearchResults{
		Vehicles:     []domain.Vehicle{},
		Customers:    []domain.Customer{},
		Transactions: []domain.Transaction{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.state.Vehicles {
		if anyContains(q, v.VIN, v.Make, v.Model, v.Category, v.Condition, strconv.Itoa(v.Year)) {
			results.Vehicles = append(results.Vehicles, v)
		}
	}
	for _, c := range s.state.Customers {
		if anyContains(q, c.First, c.Middle, c.Last, c.License, c.Phone1, c.Phone2, c.Address) {
			results.Customers = append(results.Customers, c)
		}
	}
	for _, tx := range s.state.Transactions {
		if anyContains(q, tx.ID, tx.InvoiceNo, tx.Salesperson, tx.Date, tx.Type, tx.VehicleVIN) {
			results.Transactions = append(results.Transactions, tx)
		}
	}

	return results
}

func anyContains(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
