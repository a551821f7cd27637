package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Gayatri-ch/UniPay/internal/domain"
)

// LinkRepository is the append-only store of linked accounts. Duplicate
// (bank, account) pairs are kept.
type LinkRepository interface {
	Append(account domain.LinkedAccount) error
	ListAll() ([]domain.LinkedAccount, error)
}

type linkRepository struct {
	kv KeyValueStore
}

func NewLinkRepository(kv KeyValueStore) LinkRepository {
	return &linkRepository{kv: kv}
}

func (r *linkRepository) Append(account domain.LinkedAccount) error {
	list, err := r.ListAll()
	if err != nil {
		return err
	}
	list = append(list, account)

	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode linked banks: %w", err)
	}
	return r.kv.Write(KeyLinkedBanks, b)
}

func (r *linkRepository) ListAll() ([]domain.LinkedAccount, error) {
	raw, ok, err := r.kv.Read(KeyLinkedBanks)
	if err != nil {
		return nil, err
	}
	out := []domain.LinkedAccount{}
	if !ok || len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode linked banks: %w", err)
	}
	return out, nil
}
