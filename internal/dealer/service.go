// Package dealer implements the dealership record store and its operations:
// vehicle/customer catalog upkeep, the purchase transaction engine, invoice
// generation, sales and commission reporting, and global search.
//
// A single Service owns every collection. All mutation funnels through its
// methods, and each mutating operation flushes the whole store through the
// persistence boundary before returning.
package dealer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store"
)

type Service struct {
	mu    sync.RWMutex
	store store.Store
	state domain.StoreSnapshot
}

// New loads the last snapshot from the persistence boundary. Loading is
// permissive: a missing snapshot or any malformed field falls back to its
// default rather than failing the whole load.
func New(ctx context.Context, st store.Store) (*Service, error) {
	s := &Service{store: st}

	raw, err := st.Load(ctx)
	switch {
	case err == nil:
		s.state = decodeSnapshot(raw)
	case err == store.ErrNoSnapshot:
		s.state = emptySnapshot()
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return s, nil
}

func emptySnapshot() domain.StoreSnapshot {
	return domain.StoreSnapshot{
		Vehicles:     []domain.Vehicle{},
		Customers:    []domain.Customer{},
		Transactions: []domain.Transaction{},
		Invoices:     map[string]string{},
		Settings:     domain.Settings{DiscountRule: domain.DefaultDiscountRule()},
	}
}

// decodeSnapshot unmarshals each snapshot field independently so one corrupt
// field cannot take the rest of the store down with it.
func decodeSnapshot(raw []byte) domain.StoreSnapshot {
	state := emptySnapshot()

	var parts struct {
		Session      json.RawMessage `json:"session"`
		Vehicles     json.RawMessage `json:"vehicles"`
		Customers    json.RawMessage `json:"customers"`
		Transactions json.RawMessage `json:"transactions"`
		Invoices     json.RawMessage `json:"invoices"`
		Settings     json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(raw, &parts); err != nil {
		zap.S().Warnw("snapshot unreadable, starting empty", "error", err)
		return state
	}

	decodeField(parts.Session, &state.Session, "session")
	decodeField(parts.Vehicles, &state.Vehicles, "vehicles")
	decodeField(parts.Customers, &state.Customers, "customers")
	decodeField(parts.Transactions, &state.Transactions, "transactions")
	decodeField(parts.Invoices, &state.Invoices, "invoices")
	decodeField(parts.Settings, &state.Settings, "settings")

	normalizeSnapshot(&state)
	return state
}

func decodeField(raw json.RawMessage, dest any, name string) {
	if len(raw) == 0 || string(raw) == "null" {
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		zap.S().Warnw("snapshot field malformed, using default", "field", name, "error", err)
	}
}

// normalizeSnapshot repairs whatever a decode may have left nil or invalid so
// the rest of the package can rely on non-nil collections and a usable
// discount rule.
func normalizeSnapshot(state *domain.StoreSnapshot) {
	if state.Vehicles == nil {
		state.Vehicles = []domain.Vehicle{}
	}
	if state.Customers == nil {
		state.Customers = []domain.Customer{}
	}
	if state.Transactions == nil {
		state.Transactions = []domain.Transaction{}
	}
	if state.Invoices == nil {
		state.Invoices = map[string]string{}
	}
	for i := range state.Customers {
		if state.Customers[i].TxHistory == nil {
			state.Customers[i].TxHistory = []domain.HistoryEntry{}
		}
	}
	if !validDiscountRule(state.Settings.DiscountRule) {
		state.Settings.DiscountRule = domain.DefaultDiscountRule()
	}
}

func validDiscountRule(rule domain.DiscountRule) bool {
	if math.IsNaN(rule.ThresholdUSD) || math.IsInf(rule.ThresholdUSD, 0) || rule.ThresholdUSD < 0 {
		return false
	}
	return strings.TrimSpace(rule.PerkText) != ""
}

// persist flushes the whole store as one unit. Callers hold the write lock
// and have already applied their in-memory mutation.
func (s *Service) persist(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Save(ctx, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Service) Vehicles() []domain.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Vehicle, len(s.state.Vehicles))
	copy(out, s.state.Vehicles)
	return out
}

func (s *Service) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, len(s.state.Customers))
	copy(out, s.state.Customers)
	return out
}

func (s *Service) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

func (s *Service) DiscountRule() domain.DiscountRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Settings.DiscountRule
}

// SetDiscountRule overwrites the single active rule wholesale. Unlike the
// loader, it rejects invalid rules instead of defaulting them, so a bad rule
// can never reach invoice generation.
func (s *Service) SetDiscountRule(ctx context.Context, rule domain.DiscountRule) error {
	rule.PerkText = strings.TrimSpace(rule.PerkText)
	if !validDiscountRule(rule) {
		return fmt.Errorf("%w: discount rule needs a non-negative threshold and perk text", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Settings.DiscountRule = rule
	return s.persist(ctx)
}

func (s *Service) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Session == nil {
		return nil
	}
	copied := *s.state.Session
	return &copied
}

func (s *Service) SetSession(ctx context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Session = &session
	return s.persist(ctx)
}

func (s *Service) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Session = nil
	return s.persist(ctx)
}
