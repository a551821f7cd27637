package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Gayatri-ch/UniPay/internal/domain"
)

type SelectionRepository interface {
	Save(bank domain.Bank) error
	Current() (domain.Bank, bool, error)
}

type selectionRepository struct {
	kv KeyValueStore
}

func NewSelectionRepository(kv KeyValueStore) SelectionRepository {
	return &selectionRepository{kv: kv}
}

func (s *selectionRepository) Save(bank domain.Bank) error {
	b, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("encode selected bank: %w", err)
	}
	return s.kv.Write(KeySelectedBank, b)
}

func (s *selectionRepository) Current() (domain.Bank, bool, error) {
	raw, ok, err := s.kv.Read(KeySelectedBank)
	if err != nil || !ok {
		return domain.Bank{}, false, err
	}
	var bank domain.Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return domain.Bank{}, false, fmt.Errorf("decode selected bank: %w", err)
	}
	return bank, bank.Code != "", nil
}
