package dealer

import (
	"sort"
	"strings"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
)

// CommissionRateForMonthlySales is the tiered rate table. Lower boundaries
// are inclusive: exactly 100,000 pays 5%, exactly 200,000 pays 7%.
func CommissionRateForMonthlySales(totalSalesUSD float64) float64 {
	switch {
	case totalSalesUSD <= 100000:
		return 0.05
	case totalSalesUSD <= 200000:
		return 0.07
	default:
		return 0.10
	}
}

// MonthlySalesForUser sums final purchase amounts over transactions where
// the salesperson matches exactly and the date starts with the given
// YYYY-MM prefix.
func (s *Service) MonthlySalesForUser(username, yearMonth string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, tx := range s.state.Transactions {
		if tx.Salesperson == username && strings.HasPrefix(tx.Date, yearMonth) {
			total += tx.FinalPurchaseUSD
		}
	}
	return total
}

// CalculateCommission reports a salesperson's month: total sales, the tier
// rate those sales land in, and the commission owed. No rounding is applied;
// callers format for display.
func (s *Service) CalculateCommission(username, yearMonth string) domain.CommissionReport {
	total := s.MonthlySalesForUser(username, yearMonth)
	rate := CommissionRateForMonthlySales(total)
	return domain.CommissionReport{
		Username:      username,
		YearMonth:     yearMonth,
		TotalSalesUSD: total,
		Rate:          rate,
		CommissionUSD: total * rate,
	}
}

// SalesOverview groups all-time transactions by salesperson and sorts the
// totals descending. Ties keep first-seen order.
func (s *Service) SalesOverview() domain.SalesOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := map[string]float64{}
	var order []string
	var grand float64
	for _, tx := range s.state.Transactions {
		if _, seen := totals[tx.Salesperson]; !seen {
			order = append(order, tx.Salesperson)
		}
		totals[tx.Salesperson] += tx.FinalPurchaseUSD
		grand += tx.FinalPurchaseUSD
	}

	rows := make([]domain.SalespersonTotal, 0, len(order))
	for _, name := range order {
		rows = append(rows, domain.SalespersonTotal{Salesperson: name, TotalUSD: totals[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalUSD > rows[j].TotalUSD })

	return domain.SalesOverview{GrandTotalUSD: grand, BySalesperson: rows}
}

// InventoryHealth lists the vehicles closest to running out, ascending by
// stock, capped at the lowest 12.
func (s *Service) InventoryHealth() []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Vehicle, len(s.state.Vehicles))
	copy(out, s.state.Vehicles)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })

	if len(out) > 12 {
		out = out[:12]
	}
	return out
}
