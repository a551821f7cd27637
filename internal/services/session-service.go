package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/repository"
	"github.com/shopspring/decimal"
)

// Session is the state of one logged-in user: consent gate, bank selection,
// linked accounts, the last branch suggestion and the wallet. Operations on a
// session are serialised through mu.
type Session struct {
	UniqueID string

	mu        sync.Mutex
	consent   repository.ConsentRepository
	selection repository.SelectionRepository
	links     repository.LinkRepository
	ledger    *Ledger

	// last suggestion shown, with the sanitized suffix it was computed for
	branch       string
	branchSuffix string

	pinAttempts    int
	pinLockedUntil time.Time
}

func (s *Session) Ledger() *Ledger {
	return s.ledger
}

type SessionManager struct {
	mu       sync.RWMutex
	kv       repository.KVRepository
	initial  decimal.Decimal
	sessions map[string]*Session
}

func NewSessionManager(kv repository.KVRepository, initialBalance decimal.Decimal) *SessionManager {
	return &SessionManager{
		kv:       kv,
		initial:  initialBalance,
		sessions: make(map[string]*Session),
	}
}

// Start opens a fresh session for uniqueID, replacing any previous one.
// Consent is reset; linked accounts persist across sessions.
func (m *SessionManager) Start(uniqueID string) (*Session, error) {
	store := m.kv.Namespace(uniqueID)
	s := &Session{
		UniqueID:  uniqueID,
		consent:   repository.NewConsentRepository(store),
		selection: repository.NewSelectionRepository(store),
		links:     repository.NewLinkRepository(store),
		ledger:    NewLedger(m.initial),
	}
	if err := s.consent.Reset(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	m.mu.Lock()
	m.sessions[uniqueID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *SessionManager) Get(uniqueID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[uniqueID]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return s, nil
}

func (m *SessionManager) End(uniqueID string) {
	m.mu.Lock()
	delete(m.sessions, uniqueID)
	m.mu.Unlock()
}
