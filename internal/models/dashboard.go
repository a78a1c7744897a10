package models

import (
	"github.com/commonpurse/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnknownEnvelopeName is reported for spending whose envelope no longer
// exists.
const UnknownEnvelopeName = "Unknown Envelope"

// MonthTotals are the income and expense sums of one month.
type MonthTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// EnvelopeSpending is the expense sum of one envelope in a month.
type EnvelopeSpending struct {
	Name  string
	Total decimal.Decimal
}

// DashboardTotals sums all transactions of the budgets within the month,
// split by type.
func DashboardTotals(db *gorm.DB, budgetIDs []uuid.UUID, month types.Month) (MonthTotals, error) {
	if len(budgetIDs) == 0 {
		return MonthTotals{}, nil
	}

	rows := []struct {
		Type  TransactionType
		Total decimal.Decimal
	}{}

	err := db.Model(&Transaction{}).
		Select("type, SUM(amount) AS total").
		Where("budget_id IN ?", budgetIDs).
		Where("date >= ? AND date < ?", month.Start(), month.AddDate(0, 1).Start()).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return MonthTotals{}, err
	}

	var totals MonthTotals
	for _, row := range rows {
		switch row.Type {
		case TransactionTypeIncome:
			totals.Income = row.Total
		case TransactionTypeExpense:
			totals.Expense = row.Total
		}
	}

	return totals, nil
}

// SpendingByEnvelope groups the month's expense transactions of the budgets
// by envelope and sums their amounts. Spending against an envelope that has
// been deleted since is reported under UnknownEnvelopeName.
func SpendingByEnvelope(db *gorm.DB, budgetIDs []uuid.UUID, month types.Month) ([]EnvelopeSpending, error) {
	if len(budgetIDs) == 0 {
		return []EnvelopeSpending{}, nil
	}

	rows := []struct {
		EnvelopeID uuid.UUID
		Total      decimal.Decimal
	}{}

	err := db.Model(&Transaction{}).
		Select("envelope_id, SUM(amount) AS total").
		Where("budget_id IN ?", budgetIDs).
		Where("type = ?", TransactionTypeExpense).
		Where("date >= ? AND date < ?", month.Start(), month.AddDate(0, 1).Start()).
		Group("envelope_id").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []EnvelopeSpending{}, nil
	}

	envelopeIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		envelopeIDs = append(envelopeIDs, row.EnvelopeID)
	}

	var envelopes []Envelope
	err = db.Where("id IN ?", envelopeIDs).Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(envelopes))
	for _, envelope := range envelopes {
		names[envelope.ID] = envelope.Name
	}

	spending := make([]EnvelopeSpending, 0, len(rows))
	for _, row := range rows {
		name, ok := names[row.EnvelopeID]
		if !ok {
			name = UnknownEnvelopeName
		}

		spending = append(spending, EnvelopeSpending{
			Name:  name,
			Total: row.Total,
		})
	}

	return spending, nil
}
