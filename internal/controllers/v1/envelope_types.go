package v1

import (
	"github.com/commonpurse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EnvelopeEditable represents all user configurable parameters
type EnvelopeEditable struct {
	Name            string          `json:"name" example:"Groceries" default:""`                      // Name of the envelope
	BudgetID        uuid.UUID       `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`  // ID of the budget the envelope belongs to
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"180.62" default:"0" minimum:"0"` // Amount allocated to the envelope
}

func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		BudgetID:        editable.BudgetID,
		Name:            editable.Name,
		AllocatedAmount: editable.AllocatedAmount,
	}
}

type Envelope struct {
	models.DefaultModel
	EnvelopeEditable

	// These fields are computed
	Spent         decimal.Decimal `json:"spent" example:"73.12"`                                        // Sum of all expense transactions for the envelope
	Remaining     decimal.Decimal `json:"remaining" example:"107.50"`                                   // Allocated amount minus spent
	BudgetOwnerID uuid.UUID       `json:"budgetOwnerId" example:"6b40dbb1-951b-4bd5-a1cd-4c29f16e0b15"` // Owner of the budget the envelope belongs to
}

func newEnvelope(db *gorm.DB, model models.Envelope) (Envelope, error) {
	spent, err := model.Spent(db)
	if err != nil {
		return Envelope{}, err
	}

	var budget models.Budget
	err = db.First(&budget, model.BudgetID).Error
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			BudgetID:        model.BudgetID,
			Name:            model.Name,
			AllocatedAmount: model.AllocatedAmount,
		},
		Spent:         spent,
		Remaining:     model.AllocatedAmount.Sub(spent),
		BudgetOwnerID: budget.OwnerID,
	}, nil
}

func newEnvelopeFromSummary(summary models.EnvelopeSummary) Envelope {
	return Envelope{
		DefaultModel: summary.Envelope.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			BudgetID:        summary.Envelope.BudgetID,
			Name:            summary.Envelope.Name,
			AllocatedAmount: summary.Envelope.AllocatedAmount,
		},
		Spent:         summary.Spent,
		Remaining:     summary.Remaining,
		BudgetOwnerID: summary.BudgetOwnerID,
	}
}

type EnvelopeListResponse struct {
	Data  []Envelope `json:"data"`                                                          // List of Envelopes
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the Envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
