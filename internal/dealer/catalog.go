package dealer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/xid"
)

// UpsertVehicle adds a vehicle or overwrites the record with the same VIN
// in place. The VIN is the natural key; overwriting keeps the original ID so
// references from transactions stay valid.
func (s *Service) UpsertVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	v.VIN = strings.TrimSpace(v.VIN)
	if v.VIN == "" {
		return domain.Vehicle{}, fmt.Errorf("%w: vehicle VIN is required", ErrValidation)
	}
	if v.PriceUSD < 0 {
		return domain.Vehicle{}, fmt.Errorf("%w: vehicle price cannot be negative", ErrValidation)
	}
	if v.Stock < 0 {
		return domain.Vehicle{}, fmt.Errorf("%w: vehicle stock cannot be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Vehicles {
		if s.state.Vehicles[i].VIN == v.VIN {
			v.ID = s.state.Vehicles[i].ID
			s.state.Vehicles[i] = v
			if err := s.persist(ctx); err != nil {
				return domain.Vehicle{}, err
			}
			return v, nil
		}
	}

	if v.ID == "" {
		v.ID = xid.New("veh")
	}
	s.state.Vehicles = append(s.state.Vehicles, v)
	if err := s.persist(ctx); err != nil {
		return domain.Vehicle{}, err
	}
	return v, nil
}

// VehicleByVIN looks a vehicle up by its exact VIN.
func (s *Service) VehicleByVIN(vin string) (domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.state.Vehicles {
		if v.VIN == vin {
			return v, nil
		}
	}
	return domain.Vehicle{}, fmt.Errorf("%w: vehicle %s", ErrNotFound, vin)
}

// DeleteVehicle removes every vehicle with the given VIN. Duplicate VINs can
// only enter through a backup import, which parses but does not cross-check
// keys; delete still clears all of them. Deleting a VIN that is not present
// is not an error.
func (s *Service) DeleteVehicle(ctx context.Context, vin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Vehicles[:0]
	for _, v := range s.state.Vehicles {
		if v.VIN != vin {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(s.state.Vehicles) {
		return nil
	}
	s.state.Vehicles = kept
	return s.persist(ctx)
}

// UpsertCustomer adds a customer or overwrites the record holding the same
// driver's license number. Overwriting keeps the original ID and the
// accumulated transaction history.
func (s *Service) UpsertCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	c.License = strings.TrimSpace(c.License)
	if c.License == "" {
		return domain.Customer{}, fmt.Errorf("%w: customer license is required", ErrValidation)
	}
	if strings.TrimSpace(c.First) == "" || strings.TrimSpace(c.Last) == "" {
		return domain.Customer{}, fmt.Errorf("%w: customer first and last name are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Customers {
		if s.state.Customers[i].License == c.License {
			c.ID = s.state.Customers[i].ID
			c.TxHistory = s.state.Customers[i].TxHistory
			s.state.Customers[i] = c
			if err := s.persist(ctx); err != nil {
				return domain.Customer{}, err
			}
			return c, nil
		}
	}

	if c.ID == "" {
		c.ID = xid.New("cus")
	}
	if c.TxHistory == nil {
		c.TxHistory = []domain.HistoryEntry{}
	}
	s.state.Customers = append(s.state.Customers, c)
	if err := s.persist(ctx); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// CustomerByLicense looks a customer up by exact driver's license number.
func (s *Service) CustomerByLicense(license string) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.state.Customers {
		if c.License == license {
			return c, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("%w: customer %s", ErrNotFound, license)
}

// DeleteCustomer removes every customer with the given license number. Their
// past transactions remain on record.
func (s *Service) DeleteCustomer(ctx context.Context, license string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Customers[:0]
	for _, c := range s.state.Customers {
		if c.License != license {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.state.Customers) {
		return nil
	}
	s.state.Customers = kept
	return s.persist(ctx)
}
