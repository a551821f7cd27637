package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/internal/repository"
)

type NotifyService struct {
	audit repository.AuditRepository
	now   func() time.Time
}

func NewNotifyService(audit repository.AuditRepository) *NotifyService {
	return &NotifyService{audit: audit, now: time.Now}
}

func (s *NotifyService) BankLinked(event dto.BankLinkedEvent) error {
	note := fmt.Sprintf("%s account %s linked (IFSC %s)",
		event.BankCode, maskAccount(event.AccountNumber), event.IFSC)

	log.Printf("[NOTIFY] %s: %s", event.UniqueID, note)
	return s.record(event.UniqueID, dto.EventBankLinked, "linked_account", event.IFSC, note)
}

func (s *NotifyService) WalletPayment(event dto.WalletPaymentEvent) error {
	note := fmt.Sprintf("payment of %s to %s: %s", event.Amount, event.Receiver, event.Status)

	log.Printf("[NOTIFY] %s: %s", event.UniqueID, note)
	return s.record(event.UniqueID, dto.EventWalletPayment, "transaction", event.TransactionID, note)
}

func (s *NotifyService) record(actorID, action, entity, entityID, note string) error {
	return s.audit.Create(&domain.AuditLog{
		ActorID:   actorID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Note:      &note,
		CreatedAt: s.now(),
	})
}

// maskAccount keeps the last 4 digits.
func maskAccount(n string) string {
	if len(n) <= 4 {
		return n
	}
	return "XXXX" + n[len(n)-4:]
}
