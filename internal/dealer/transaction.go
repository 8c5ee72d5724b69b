package dealer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/xid"
)

// CreateTransaction runs a purchase end to end: it validates the request,
// computes pricing with the trade-in offset, records the transaction at the
// head of the list, decrements stock, takes the traded vehicle into
// inventory, appends the customer's history entry, generates the invoice,
// and flushes the store as one unit.
//
// Steps are ordered so that every validation failure happens before the
// first mutation. A returned error means the store is untouched.
func (s *Service) CreateTransaction(ctx context.Context, req domain.TransactionRequest) (domain.Transaction, error) {
	now := time.Now().UTC()

	req.Type = strings.TrimSpace(req.Type)
	if req.Type != domain.TxTypeStandard && req.Type != domain.TxTypeTradeIn {
		return domain.Transaction{}, fmt.Errorf("%w: transaction type must be %q or %q", ErrValidation, domain.TxTypeStandard, domain.TxTypeTradeIn)
	}
	if strings.TrimSpace(req.Salesperson) == "" {
		return domain.Transaction{}, fmt.Errorf("%w: salesperson is required", ErrValidation)
	}
	if req.Date == "" {
		req.Date = now.Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.findCustomerByID(req.CustomerID)
	if customer == nil {
		return domain.Transaction{}, fmt.Errorf("%w: customer %s", ErrNotFound, req.CustomerID)
	}
	vehicle := s.findVehicleByVIN(req.VehicleVIN)
	if vehicle == nil {
		return domain.Transaction{}, fmt.Errorf("%w: vehicle %s", ErrNotFound, req.VehicleVIN)
	}

	if len(strings.TrimSpace(customer.License)) < 3 {
		return domain.Transaction{}, fmt.Errorf("%w: customer must have a valid driver's license to purchase", ErrValidation)
	}
	if vehicle.Stock <= 0 {
		return domain.Transaction{}, fmt.Errorf("%w: vehicle %s", ErrOutOfStock, vehicle.VIN)
	}

	price := vehicle.PriceUSD
	if req.PriceOverrideUSD != nil {
		price = *req.PriceOverrideUSD
	}
	tradeInValue := 0.0
	if req.Type == domain.TxTypeTradeIn {
		tradeInValue = req.TradeInValueUSD
	}
	// A trade-in worth more than the vehicle floors the purchase at zero.
	// The surplus is not refunded; this mirrors how the lot actually deals.
	final := price - tradeInValue
	if final < 0 {
		final = 0
	}

	tx := domain.Transaction{
		ID:               xid.New("tx"),
		Type:             req.Type,
		Date:             req.Date,
		CustomerID:       customer.ID,
		Salesperson:      req.Salesperson,
		VehicleVIN:       vehicle.VIN,
		VehiclePriceUSD:  price,
		TradeInValueUSD:  tradeInValue,
		FinalPurchaseUSD: final,
		InvoiceNo:        s.uniqueInvoiceNo(now),
	}
	if req.Type == domain.TxTypeTradeIn {
		tx.TradeIn = req.TradeIn
	}

	s.state.Transactions = append([]domain.Transaction{tx}, s.state.Transactions...)

	vehicle.Stock--

	if tx.Type == domain.TxTypeTradeIn && req.TradeIn != nil {
		traded := tradeInVehicle(*req.TradeIn, now)
		traded.VIN = s.uniqueTradeVIN(now)
		s.state.Vehicles = append([]domain.Vehicle{traded}, s.state.Vehicles...)
	}

	entry := domain.HistoryEntry{
		TxID:      tx.ID,
		Date:      tx.Date,
		Type:      tx.Type,
		AmountUSD: tx.FinalPurchaseUSD,
	}
	customer.TxHistory = append([]domain.HistoryEntry{entry}, customer.TxHistory...)

	// Referents were just resolved above, so the first render cannot fail.
	s.state.Invoices[tx.ID] = renderInvoice(tx, *customer, s.vehicleForInvoice(tx.VehicleVIN), s.state.Settings.DiscountRule)

	if err := s.persist(ctx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

// vehicleForInvoice returns the post-decrement vehicle record for rendering.
func (s *Service) vehicleForInvoice(vin string) domain.Vehicle {
	if v := s.findVehicleByVIN(vin); v != nil {
		return *v
	}
	return domain.Vehicle{VIN: vin}
}

func tradeInVehicle(in domain.TradeIn, now time.Time) domain.Vehicle {
	v := domain.Vehicle{
		ID:        xid.New("veh"),
		Make:      in.Make,
		Model:     in.Model,
		Year:      in.Year,
		Category:  domain.DefaultTradeInCategory,
		Condition: domain.ConditionTradeIn,
		Mileage:   in.Mileage,
		PriceUSD:  in.EstimatedResaleUSD,
		Stock:     1,
	}
	if v.Make == "" {
		v.Make = "Unknown"
	}
	if v.Model == "" {
		v.Model = "Unknown"
	}
	if v.Year == 0 {
		v.Year = now.Year()
	}
	return v
}

// uniqueTradeVIN generates a TRADE- prefixed VIN, suffixing a counter in the
// unlikely case two trade-ins land on the same millisecond.
func (s *Service) uniqueTradeVIN(now time.Time) string {
	vin := xid.TradeVIN(now)
	for n := 2; s.findVehicleByVIN(vin) != nil; n++ {
		vin = fmt.Sprintf("%s-%d", xid.TradeVIN(now), n)
	}
	return vin
}

// uniqueInvoiceNo applies the same same-millisecond guard to invoice numbers.
func (s *Service) uniqueInvoiceNo(now time.Time) string {
	no := xid.InvoiceNo(now)
	for n := 2; s.invoiceNoTaken(no); n++ {
		no = fmt.Sprintf("%s-%d", xid.InvoiceNo(now), n)
	}
	return no
}

func (s *Service) invoiceNoTaken(no string) bool {
	for i := range s.state.Transactions {
		if s.state.Transactions[i].InvoiceNo == no {
			return true
		}
	}
	return false
}

// DeleteTransaction removes the transaction and its invoice. It does not
// restore stock or rewrite customer history; deletion is one-way, not a
// compensating rollback.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Transactions {
		if s.state.Transactions[i].ID == id {
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			delete(s.state.Invoices, id)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Service) findCustomerByID(id string) *domain.Customer {
	for i := range s.state.Customers {
		if s.state.Customers[i].ID == id {
			return &s.state.Customers[i]
		}
	}
	return nil
}

func (s *Service) findVehicleByVIN(vin string) *domain.Vehicle {
	for i := range s.state.Vehicles {
		if s.state.Vehicles[i].VIN == vin {
			return &s.state.Vehicles[i]
		}
	}
	return nil
}
