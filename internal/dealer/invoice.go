package dealer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/usd"
)

// renderInvoice produces the invoice document for a transaction. Pure
// function over its inputs; the caller supplies freshly resolved referents.
func renderInvoice(tx domain.Transaction, customer domain.Customer, vehicle domain.Vehicle, rule domain.DiscountRule) string {
	name := customer.First + " "
	if customer.Middle != "" {
		name += customer.Middle + ". "
	}
	name += customer.Last

	phone := customer.Phone1
	if customer.Phone2 != "" {
		phone += " | " + customer.Phone2
	}

	lines := []string{
		"MR. TUCKER'S CAR DEALERSHIP",
		"INVOICE",
		strings.Repeat("-", 60),
		fmt.Sprintf("Invoice #: %s", tx.InvoiceNo),
		fmt.Sprintf("Date:      %s", tx.Date),
		fmt.Sprintf("Type:      %s", strings.ToUpper(tx.Type)),
		fmt.Sprintf("Salesperson: %s", tx.Salesperson),
		"",
		"CUSTOMER",
		fmt.Sprintf("Name: %s", name),
		fmt.Sprintf("Address: %s", customer.Address),
		fmt.Sprintf("Phone: %s", phone),
		fmt.Sprintf("Driver's License: %s", customer.License),
		"",
		"VEHICLE",
		fmt.Sprintf("%d %s %s (%s)", vehicle.Year, vehicle.Make, vehicle.Model, vehicle.Condition),
		fmt.Sprintf("VIN: %s", vehicle.VIN),
		fmt.Sprintf("Mileage: %d", vehicle.Mileage),
		"",
		"PAYMENT SUMMARY",
	}

	if tx.Type == domain.TxTypeTradeIn {
		lines = append(lines,
			fmt.Sprintf("Vehicle price:       %s", usd.Format(tx.VehiclePriceUSD)),
			fmt.Sprintf("Trade-in value:     -%s", usd.Format(tx.TradeInValueUSD)),
			strings.Repeat("-", 40),
		)
	}
	lines = append(lines, fmt.Sprintf("Final purchase:      %s", usd.Format(tx.FinalPurchaseUSD)))

	if tx.FinalPurchaseUSD >= rule.ThresholdUSD {
		lines = append(lines, "", "DISCOUNTS / PERKS", "- "+rule.PerkText)
	}

	lines = append(lines, "", "Thank you for your business!")
	return strings.Join(lines, "\n")
}

// BuildInvoiceText regenerates the invoice for an existing transaction from
// the current store contents. Invoices are not immutable snapshots: if the
// referenced customer or vehicle was deleted after the sale, regeneration
// fails with ErrIntegrity rather than inventing placeholder data.
func (s *Service) BuildInvoiceText(txID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tx *domain.Transaction
	for i := range s.state.Transactions {
		if s.state.Transactions[i].ID == txID {
			tx = &s.state.Transactions[i]
			break
		}
	}
	if tx == nil {
		return "", fmt.Errorf("%w: transaction %s", ErrNotFound, txID)
	}

	customer := s.findCustomerByID(tx.CustomerID)
	if customer == nil {
		return "", fmt.Errorf("%w: customer missing", ErrIntegrity)
	}
	vehicle := s.findVehicleByVIN(tx.VehicleVIN)
	if vehicle == nil {
		return "", fmt.Errorf("%w: vehicle missing", ErrIntegrity)
	}

	return renderInvoice(*tx, *customer, *vehicle, s.state.Settings.DiscountRule), nil
}

// RegenerateInvoice rebuilds and re-stores the invoice document for a
// transaction, picking up the current discount rule.
func (s *Service) RegenerateInvoice(ctx context.Context, txID string) (string, error) {
	text, err := s.BuildInvoiceText(txID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Invoices[txID] = text
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return text, nil
}

// InvoiceText returns the stored invoice document for a transaction.
func (s *Service) InvoiceText(txID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.state.Invoices[txID]
	if !ok {
		return "", fmt.Errorf("%w: invoice for transaction %s", ErrNotFound, txID)
	}
	return text, nil
}

// Invoices returns a copy of the stored invoice documents keyed by
// transaction id.
func (s *Service) Invoices() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.state.Invoices))
	for k, v := range s.state.Invoices {
		out[k] = v
	}
	return out
}

// ClearInvoices drops every stored invoice document. Transactions keep their
// invoice numbers; documents can be regenerated while referents survive.
func (s *Service) ClearInvoices(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Invoices = map[string]string{}
	return s.persist(ctx)
}
