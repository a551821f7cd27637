package repository

import (
	"encoding/json"
	"fmt"
)

// ConsentRepository is the consent gate of one session: Ungranted until
// Grant, then Granted for the rest of the session.
type ConsentRepository interface {
	Grant() error
	IsGranted() (bool, error)
	Reset() error
}

type consentRepository struct {
	kv KeyValueStore
}

func NewConsentRepository(kv KeyValueStore) ConsentRepository {
	return &consentRepository{kv: kv}
}

func (c *consentRepository) Grant() error {
	return c.write(true)
}

func (c *consentRepository) IsGranted() (bool, error) {
	raw, ok, err := c.kv.Read(KeyBankConsent)
	if err != nil || !ok {
		return false, err
	}
	var granted bool
	if err := json.Unmarshal(raw, &granted); err != nil {
		return false, fmt.Errorf("decode consent: %w", err)
	}
	return granted, nil
}

// Reset is called when a session starts.
func (c *consentRepository) Reset() error {
	return c.write(false)
}

func (c *consentRepository) write(v bool) error {
	b, _ := json.Marshal(v)
	return c.kv.Write(KeyBankConsent, b)
}
