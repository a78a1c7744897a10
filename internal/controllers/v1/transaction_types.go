package v1

import (
	"errors"
	"time"

	"github.com/commonpurse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date        time.Time              `json:"date" example:"2026-02-06T07:02:59.772932Z"`                // Date of the transaction. Defaults to the creation time.
	Description string                 `json:"description" example:"Weekly groceries" default:""`         // Description of the transaction
	Amount      decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.00000001"`               // Amount of the transaction, always positive
	Type        models.TransactionType `json:"type" example:"EXPENSE" enums:"INCOME,EXPENSE"`             // Effect of the transaction on the budget
	EnvelopeID  uuid.UUID              `json:"envelopeId" example:"2f1b6ccb-c262-4f04-92fd-0ad5a69e0f75"` // ID of the envelope the transaction books against
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
		Type:        editable.Type,
		EnvelopeID:  editable.EnvelopeID,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable

	// These fields are computed
	BudgetID     uuid.UUID `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Budget the transaction belongs to, always the envelope's budget
	EnvelopeName string    `json:"envelopeName" example:"Groceries"`                        // Name of the envelope, "Unknown Envelope" if it has been deleted
}

func newTransaction(db *gorm.DB, model models.Transaction) (Transaction, error) {
	envelopeName := model.Envelope.Name

	// The envelope is not always preloaded. It may also have been deleted
	// since the transaction was created.
	if model.Envelope.ID != model.EnvelopeID {
		var envelope models.Envelope
		err := db.First(&envelope, model.EnvelopeID).Error
		if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
			return Transaction{}, err
		}
		envelopeName = envelope.Name
	}

	if envelopeName == "" {
		envelopeName = models.UnknownEnvelopeName
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Description: model.Description,
			Amount:      model.Amount,
			Type:        model.Type,
			EnvelopeID:  model.EnvelopeID,
		},
		BudgetID:     model.BudgetID,
		EnvelopeName: envelopeName,
	}, nil
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of Transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
