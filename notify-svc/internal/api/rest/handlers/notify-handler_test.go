package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/notify-svc/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAudit struct {
	entries []domain.AuditLog
}

func (f *fakeAudit) Create(entry *domain.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAudit) ListByActor(actorID string, limit int) ([]domain.AuditLog, error) {
	return f.entries, nil
}

func encode(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestHandleBankLinked(t *testing.T) {
	audit := &fakeAudit{}
	h := NewNotifyHandler(services.NewNotifyService(audit))

	err := h.HandleMessage(encode(t, dto.BankLinkedEvent{
		Type:          dto.EventBankLinked,
		UniqueID:      "alice01",
		BankCode:      "SBI",
		AccountNumber: "1234567890",
		IFSC:          "SBIN0001234",
		LinkedOn:      time.Now(),
	}))
	require.NoError(t, err)

	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, "alice01", entry.ActorID)
	assert.Equal(t, dto.EventBankLinked, entry.Action)
	assert.Equal(t, "SBIN0001234", entry.EntityID)
	require.NotNil(t, entry.Note)
	assert.Contains(t, *entry.Note, "XXXX7890")
	assert.NotContains(t, *entry.Note, "1234567890")
}

func TestHandleWalletPayment(t *testing.T) {
	audit := &fakeAudit{}
	h := NewNotifyHandler(services.NewNotifyService(audit))

	err := h.HandleMessage(encode(t, dto.WalletPaymentEvent{
		Type:          dto.EventWalletPayment,
		UniqueID:      "alice01",
		TransactionID: "tx-1",
		Receiver:      "Bob",
		Amount:        "900.00",
		Status:        "Failed",
	}))
	require.NoError(t, err)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "tx-1", audit.entries[0].EntityID)
	assert.Contains(t, *audit.entries[0].Note, "Failed")
}

func TestHandleBadMessages(t *testing.T) {
	audit := &fakeAudit{}
	h := NewNotifyHandler(services.NewNotifyService(audit))

	assert.Error(t, h.HandleMessage("{not json"))
	assert.Error(t, h.HandleMessage(`{"type":"something.else"}`))
	assert.Empty(t, audit.entries)
}
