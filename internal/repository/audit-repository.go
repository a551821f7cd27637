package repository

import (
	"github.com/Gayatri-ch/UniPay/internal/domain"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(entry *domain.AuditLog) error
	ListByActor(actorID string, limit int) ([]domain.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (a *auditRepository) Create(entry *domain.AuditLog) error {
	return a.db.Create(entry).Error
}

// ListByActor returns the newest entries first.
func (a *auditRepository) ListByActor(actorID string, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []domain.AuditLog
	if err := a.db.Where("actor_id = ?", actorID).Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
