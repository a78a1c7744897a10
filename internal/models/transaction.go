package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType is the effect a transaction has on a budget.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction is a dated monetary movement against one envelope.
//
// The BudgetID is always copied from the envelope at creation time so that
// a transaction is never orphaned from its budget.
type Transaction struct {
	DefaultModel
	Budget      Budget `json:"-"`
	BudgetID    uuid.UUID
	Envelope    Envelope `json:"-"`
	EnvelopeID  uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type        TransactionType
}

var (
	ErrTransactionDescriptionEmpty    = errors.New("the transaction description must not be empty")
	ErrTransactionAmountNotPositive   = errors.New("the transaction amount must be positive")
	ErrTransactionTypeInvalid         = errors.New("the transaction type must be INCOME or EXPENSE")
	ErrTransactionEnvelopeWrongBudget = errors.New("the envelope must belong to the same budget as the transaction")
)

// BeforeSave validates the transaction and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return ErrTransactionDescriptionEmpty
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if !slices.Contains([]TransactionType{TransactionTypeIncome, TransactionTypeExpense}, t.Type) {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, toSave.EnvelopeID, toSave.BudgetID)
}

// BeforeUpdate validates the update payload.
//
// On updates, gorm runs the hooks on the loaded model, so the payload has
// to be checked here via tx.Statement.Dest. An envelope change must keep
// the transaction within its budget.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Description") {
		description := strings.TrimSpace(toSave.Description)
		if description == "" {
			return ErrTransactionDescriptionEmpty
		}
		tx.Statement.SetColumn("Description", description)
	}

	if tx.Statement.Changed("Amount") && !toSave.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if tx.Statement.Changed("Type") && !slices.Contains([]TransactionType{TransactionTypeIncome, TransactionTypeExpense}, toSave.Type) {
		return ErrTransactionTypeInvalid
	}

	if tx.Statement.Changed("EnvelopeID") {
		return t.checkIntegrity(tx, toSave.EnvelopeID, t.BudgetID)
	}

	return nil
}

// checkIntegrity verifies that the envelope exists and belongs to the
// transaction's budget.
func (t *Transaction) checkIntegrity(tx *gorm.DB, envelopeID, budgetID uuid.UUID) error {
	var envelope Envelope
	err := tx.First(&envelope, "id = ?", envelopeID).Error
	if err != nil {
		return err
	}

	if envelope.BudgetID != budgetID {
		return ErrTransactionEnvelopeWrongBudget
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// AccessibleTransactions returns all transactions of the budgets the user
// has access to, newest first, each with its envelope preloaded.
func AccessibleTransactions(db *gorm.DB, userID uuid.UUID) ([]Transaction, error) {
	budgetIDs, err := AccessibleBudgetIDs(db, userID)
	if err != nil {
		return nil, err
	}

	if len(budgetIDs) == 0 {
		return []Transaction{}, nil
	}

	var transactions []Transaction
	err = db.Preload("Envelope").
		Where("budget_id IN ?", budgetIDs).
		Order("datetime(date) DESC, datetime(created_at) DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
