package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetTableName is the store table holding budget ledger lines.
const BudgetTableName = "municipal_budget"

// BudgetRecord is one ledger line for a department or zone.
type BudgetRecord struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Account         string              `gorm:"column:account;type:varchar(255);not null;index" json:"account"`
	GLCode          string              `gorm:"column:glcode;type:varchar(100);not null" json:"glcode"`
	CategoryLabel   string              `gorm:"column:account_budget_a;type:varchar(255);not null" json:"account_budget_a"`
	UsedAmount      decimal.Decimal     `gorm:"column:used_amt;type:decimal(18,2);not null;default:0" json:"used_amt"`
	RemainingAmount decimal.Decimal     `gorm:"column:remaining_amt;type:decimal(18,2);not null;default:0" json:"remaining_amt"`
	AllocatedAmount decimal.NullDecimal `gorm:"column:budget_a;type:decimal(18,2)" json:"budget_a"`
	CreatedAt       *time.Time          `gorm:"column:created_at" json:"created_at,omitempty"`
}

func (BudgetRecord) TableName() string {
	return BudgetTableName
}

// BeforeCreate hook for BudgetRecord
func (b *BudgetRecord) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.CreatedAt == nil {
		now := time.Now().UTC()
		b.CreatedAt = &now
	}

	return nil
}

// IsValid reports whether the record belongs to the valid record set:
// a positive used amount and a non-empty category label.
func (b *BudgetRecord) IsValid() bool {
	return b.UsedAmount.IsPositive() && strings.TrimSpace(b.CategoryLabel) != ""
}
