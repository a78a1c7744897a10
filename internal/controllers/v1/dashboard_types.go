package v1

import (
	"github.com/commonpurse/backend/internal/models"
	"github.com/commonpurse/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Dashboard struct {
	Month   types.Month     `json:"month" example:"2026-08-01T00:00:00Z"` // Month the totals are for
	Income  decimal.Decimal `json:"income" example:"2317.34"`             // Sum of all income transactions in the month
	Expense decimal.Decimal `json:"expense" example:"1592.01"`            // Sum of all expense transactions in the month
}

type EnvelopeSpending struct {
	Name  string          `json:"name" example:"Groceries"` // Name of the envelope, "Unknown Envelope" if it has been deleted
	Total decimal.Decimal `json:"total" example:"214.52"`   // Sum of the month's expenses against the envelope
}

func newEnvelopeSpending(model models.EnvelopeSpending) EnvelopeSpending {
	return EnvelopeSpending{
		Name:  model.Name,
		Total: model.Total,
	}
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                          // The month's totals
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeSpendingResponse struct {
	Data  []EnvelopeSpending `json:"data"`                                                          // Spending per envelope, highest first
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
