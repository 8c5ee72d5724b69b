package dealer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/domain"
)

// ExportBackup serializes the whole store as indented JSON suitable for a
// download. The format is the same document the persistence boundary saves.
func (s *Service) ExportBackup() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// ImportBackup replaces the entire store with the uploaded document. Unlike
// startup loading, import is strict: a document that does not parse as a
// whole is rejected and the current store is left untouched.
func (s *Service) ImportBackup(ctx context.Context, data []byte) error {
	var incoming domain.StoreSnapshot
	if err := json.Unmarshal(data, &incoming); err != nil {
		return fmt.Errorf("%w: backup file is not valid: %v", ErrValidation, err)
	}
	normalizeSnapshot(&incoming)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = incoming
	return s.persist(ctx)
}
