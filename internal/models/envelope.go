package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope is a named spending category within a budget with an allocated
// amount. The spent and remaining sums are always derived from the
// transactions, never stored.
type Envelope struct {
	DefaultModel
	Budget          Budget `json:"-"`
	BudgetID        uuid.UUID
	Name            string
	AllocatedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrEnvelopeNameEmpty          = errors.New("the envelope name must not be empty")
	ErrEnvelopeAllocationNegative = errors.New("the allocated amount of an envelope must not be negative")
)

// BeforeSave validates the envelope.
//
// It trims whitespace from the name.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return ErrEnvelopeNameEmpty
	}

	if e.AllocatedAmount.IsNegative() {
		return ErrEnvelopeAllocationNegative
	}

	return nil
}

func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Envelope)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the envelope before
// committing an update to the database.
//
// On updates, gorm runs the hooks on the loaded model, so the update
// payload has to be validated here via tx.Statement.Dest.
func (e *Envelope) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Envelope)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Name") {
		name := strings.TrimSpace(toSave.Name)
		if name == "" {
			return ErrEnvelopeNameEmpty
		}
		tx.Statement.SetColumn("Name", name)
	}

	if tx.Statement.Changed("AllocatedAmount") && toSave.AllocatedAmount.IsNegative() {
		return ErrEnvelopeAllocationNegative
	}

	if tx.Statement.Changed("BudgetID") {
		return e.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Envelope) checkIntegrity(tx *gorm.DB, toSave Envelope) error {
	return tx.First(&Budget{}, "id = ?", toSave.BudgetID).Error
}

// Spent returns the sum of all expense transactions for the envelope.
func (e Envelope) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var spent decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Where(&Transaction{EnvelopeID: e.ID, Type: TransactionTypeExpense}).
		Select("SUM(amount)").
		Row().
		Scan(&spent)
	if err != nil {
		return decimal.Zero, err
	}

	return spent.Decimal, nil
}

// EnvelopeSummary is an envelope with its derived spending figures and the
// owner of the budget it belongs to, so that callers can recognize shared
// envelopes.
type EnvelopeSummary struct {
	Envelope
	Spent         decimal.Decimal
	Remaining     decimal.Decimal
	BudgetOwnerID uuid.UUID
}

// EnvelopesWithSummary returns all envelopes of the budgets the user has
// access to, in creation order, each with its derived spent and remaining
// sums recomputed from the expense transactions.
func EnvelopesWithSummary(db *gorm.DB, userID uuid.UUID) ([]EnvelopeSummary, error) {
	budgetIDs, err := AccessibleBudgetIDs(db, userID)
	if err != nil {
		return nil, err
	}

	if len(budgetIDs) == 0 {
		return []EnvelopeSummary{}, nil
	}

	var envelopes []Envelope
	err = db.Preload("Budget").
		Where("budget_id IN ?", budgetIDs).
		Order("datetime(created_at) ASC, id ASC").
		Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	// One grouped query for the spent sums of all envelopes
	rows := []struct {
		EnvelopeID uuid.UUID
		Total      decimal.Decimal
	}{}

	err = db.Model(&Transaction{}).
		Select("envelope_id, SUM(amount) AS total").
		Where("budget_id IN ?", budgetIDs).
		Where("type = ?", TransactionTypeExpense).
		Group("envelope_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		spent[row.EnvelopeID] = row.Total
	}

	summaries := make([]EnvelopeSummary, 0, len(envelopes))
	for _, envelope := range envelopes {
		summaries = append(summaries, EnvelopeSummary{
			Envelope:      envelope,
			Spent:         spent[envelope.ID],
			Remaining:     envelope.AllocatedAmount.Sub(spent[envelope.ID]),
			BudgetOwnerID: envelope.Budget.OwnerID,
		})
	}

	return summaries, nil
}
