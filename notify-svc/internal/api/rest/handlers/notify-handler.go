package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/notify-svc/internal/services"
)

type NotifyHandler struct {
	NotifyService *services.NotifyService
}

func NewNotifyHandler(ns *services.NotifyService) *NotifyHandler {
	return &NotifyHandler{NotifyService: ns}
}

func (h *NotifyHandler) HandleMessage(message string) error {
	var envelope dto.EventEnvelope
	if err := json.Unmarshal([]byte(message), &envelope); err != nil {
		log.Printf("invalid event payload: %s\n", message)
		return err
	}

	switch envelope.Type {
	case dto.EventBankLinked:
		var event dto.BankLinkedEvent
		if err := json.Unmarshal([]byte(message), &event); err != nil {
			return err
		}
		return h.NotifyService.BankLinked(event)

	case dto.EventWalletPayment:
		var event dto.WalletPaymentEvent
		if err := json.Unmarshal([]byte(message), &event); err != nil {
			return err
		}
		return h.NotifyService.WalletPayment(event)

	default:
		return fmt.Errorf("unknown event type %q", envelope.Type)
	}
}
