package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/internal/helper"
	"github.com/Gayatri-ch/UniPay/internal/interfaces"
)

type LinkService interface {
	Banks() []domain.Bank
	GrantConsent(s *Session) error
	ConsentStatus(s *Session) (bool, error)
	SelectBank(s *Session, code string) (domain.Bank, error)
	SuffixInput(s *Session, raw string) (dto.SuffixSuggestion, error)
	Submit(s *Session, req domain.LinkRequest) (domain.LinkedAccount, error)
	Accounts(s *Session) ([]domain.LinkedAccount, error)
}

type linkService struct {
	catalog  *domain.Catalog
	producer interfaces.ProducerHandler
	now      func() time.Time
}

func NewLinkService(catalog *domain.Catalog, producer interfaces.ProducerHandler) LinkService {
	return &linkService{
		catalog:  catalog,
		producer: producer,
		now:      time.Now,
	}
}

func (l *linkService) Banks() []domain.Bank {
	return l.catalog.List()
}

func (l *linkService) GrantConsent(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consent.Grant()
}

func (l *linkService) ConsentStatus(s *Session) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consent.IsGranted()
}

// requireConsent must be called with s.mu held.
func requireConsent(s *Session) error {
	ok, err := s.consent.IsGranted()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrConsentRequired
	}
	return nil
}

// selectedBank must be called with s.mu held.
func selectedBank(s *Session) (domain.Bank, error) {
	bank, ok, err := s.selection.Current()
	if err != nil {
		return domain.Bank{}, err
	}
	if !ok {
		return domain.Bank{}, domain.ErrNoBankSelected
	}
	return bank, nil
}

func (l *linkService) SelectBank(s *Session, code string) (domain.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireConsent(s); err != nil {
		return domain.Bank{}, err
	}
	bank, ok := l.catalog.Lookup(code)
	if !ok {
		return domain.Bank{}, domain.ErrUnknownBank
	}
	if err := s.selection.Save(bank); err != nil {
		return domain.Bank{}, err
	}
	s.branch, s.branchSuffix = "", ""
	return bank, nil
}

func (l *linkService) SuffixInput(s *Session, raw string) (dto.SuffixSuggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireConsent(s); err != nil {
		return dto.SuffixSuggestion{}, err
	}
	bank, err := selectedBank(s)
	if err != nil {
		return dto.SuffixSuggestion{}, err
	}

	suffix := helper.SanitizeSuffix(raw)
	branch, _ := helper.SuggestBranch(bank, raw)
	s.branch, s.branchSuffix = branch, suffix

	return dto.SuffixSuggestion{
		Suffix: suffix,
		IFSC:   bank.IFSCPrefix + suffix,
		Branch: branch,
	}, nil
}

func (l *linkService) Submit(s *Session, req domain.LinkRequest) (domain.LinkedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireConsent(s); err != nil {
		return domain.LinkedAccount{}, err
	}
	bank, err := selectedBank(s)
	if err != nil {
		return domain.LinkedAccount{}, err
	}
	req.BankCode = bank.Code

	account, err := helper.ValidateLink(bank, req, branchFor(s, bank, req.IFSCSuffix), l.now())
	if err != nil {
		return domain.LinkedAccount{}, err
	}
	if err := s.links.Append(account); err != nil {
		return domain.LinkedAccount{}, err
	}

	l.publish(s.UniqueID, account)
	return account, nil
}

// branchFor returns the suggestion last shown for this suffix, deriving it
// when the user never saw one for it. Must be called with s.mu held.
func branchFor(s *Session, bank domain.Bank, raw string) string {
	if suffix := helper.NormalizeSuffix(raw); suffix != "" && suffix == s.branchSuffix {
		return s.branch
	}
	branch, _ := helper.SuggestBranch(bank, raw)
	return branch
}

func (l *linkService) Accounts(s *Session) ([]domain.LinkedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.links.ListAll()
}

func (l *linkService) publish(uniqueID string, account domain.LinkedAccount) {
	if l.producer == nil {
		return
	}
	payload, err := json.Marshal(dto.BankLinkedEvent{
		Type:          dto.EventBankLinked,
		UniqueID:      uniqueID,
		BankCode:      account.BankCode,
		AccountNumber: account.AccountNumber,
		IFSC:          account.IFSC,
		LinkedOn:      account.LinkedOn,
	})
	if err != nil {
		log.Printf("encode link event: %v", err)
		return
	}
	if err := l.producer.PublishMessage([]byte(dto.EventBankLinked), payload); err != nil {
		log.Printf("publish link event: %v", err)
	}
}
