package dealer

import (
	"context"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/xid"
)

// LoadDemoData replaces the store contents with a small seed lot: three
// vehicles, two customers, no transactions, and the default discount rule.
// The active session is kept.
func (s *Service) LoadDemoData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Vehicles = []domain.Vehicle{
		{ID: xid.New("veh"), VIN: "VIN-TOY-2024-CAMRY", Make: "Toyota", Model: "Camry", Year: 2024, Category: "family", Condition: domain.ConditionNew, Mileage: 0, PriceUSD: 32000, Stock: 3},
		{ID: xid.New("veh"), VIN: "VIN-FRD-2021-MUSTANG", Make: "Ford", Model: "Mustang", Year: 2021, Category: "sport", Condition: domain.ConditionUsed, Mileage: 22000, PriceUSD: 38000, Stock: 1},
		{ID: xid.New("veh"), VIN: "VIN-JEP-2020-WRANGLR", Make: "Jeep", Model: "Wrangler", Year: 2020, Category: "recreational", Condition: domain.ConditionUsed, Mileage: 41000, PriceUSD: 36000, Stock: 2},
	}
	s.state.Customers = []domain.Customer{
		{ID: xid.New("cus"), First: "Amina", Middle: "K", Last: "Hassan", Address: "123 Main St, Columbia, SC", Phone1: "+1 555 111 2222", License: "DL1234567", CreditScore: 720, TxHistory: []domain.HistoryEntry{}},
		{ID: xid.New("cus"), First: "Zaid", Last: "Mohamed", Address: "45 King Rd, Florence, SC", Phone1: "+1 555 333 4444", Phone2: "+1 555 444 5555", License: "DL7654321", CreditScore: 690, TxHistory: []domain.HistoryEntry{}},
	}
	s.state.Transactions = []domain.Transaction{}
	s.state.Invoices = map[string]string{}
	s.state.Settings = domain.Settings{DiscountRule: domain.DefaultDiscountRule()}

	return s.persist(ctx)
}

// ResetAll wipes every collection, the settings, and the session.
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = emptySnapshot()
	return s.persist(ctx)
}
