package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
)

func usd(amount string) models.Money {
	return models.NewMoney(decimal.RequireFromString(amount), "USD")
}

func reportItem(id, name string) models.WishlistItem {
	return models.WishlistItem{
		ID:        id,
		Name:      name,
		Price:     usd("500"),
		Priority:  models.PriorityHigh,
		Category:  "Electronics",
		CreatedAt: time.Now(),
	}
}

func TestRowsJoinItemsWithPlans(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	estimated := time.Date(2027, time.January, 26, 0, 0, 0, 0, time.UTC)

	items := []models.WishlistItem{reportItem("a", "Camera"), reportItem("b", "Unplanned")}
	plans := map[string]models.PurchasePlan{
		"a": {
			ItemID:                "a",
			AmountOwed:            usd("400"),
			MonthlyContribution:   usd("80"),
			Projection:            models.Reachable(5),
			EstimatedPurchaseDate: &estimated,
		},
	}

	rows := g.Rows(items, plans)
	require.Len(t, rows, 2)

	assert.Equal(t, "400.00", rows[0].AmountOwed)
	assert.Equal(t, "5 months", rows[0].MonthsNeeded)
	assert.Equal(t, "2027-01-26", rows[0].EstimatedDate)

	assert.Empty(t, rows[1].MonthsNeeded)
	assert.Equal(t, "500.00", rows[1].Price)
}

func TestRowsIncludeFinancingColumns(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	now := time.Now()

	plans := map[string]models.PurchasePlan{
		"a": {
			ItemID:                "a",
			AmountOwed:            usd("500"),
			MonthlyContribution:   usd("0"),
			Projection:            models.Reachable(0),
			EstimatedPurchaseDate: &now,
			Financing: &models.FinancingOption{
				Name: "store card", Type: models.FinancingInstallment,
				AnnualRate: decimal.NewFromInt(24), TermMonths: 12,
			},
			Calculation: &models.FinancingCalculation{
				MonthlyPayment: usd("47.28"),
				TotalInterest:  usd("67.36"),
				TotalPaid:      usd("567.36"),
			},
		},
	}

	rows := g.Rows([]models.WishlistItem{reportItem("a", "Camera")}, plans)
	require.Len(t, rows, 1)
	assert.Equal(t, "store card", rows[0].FinancingName)
	assert.Equal(t, "47.28", rows[0].MonthlyPayment)
	assert.Equal(t, "67.36", rows[0].TotalInterest)
}

func TestWriteCSV(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	rows := g.Rows([]models.WishlistItem{reportItem("a", "Camera")}, nil)

	var buf bytes.Buffer
	require.NoError(t, g.WriteCSV(rows, &buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "item_id")
	assert.Contains(t, lines[1], "Camera")
}

func TestSummaryJSON(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	summary := models.WishlistSummary{
		TotalValue:  usd("750"),
		Completion:  models.Unreachable(),
		ActiveCount: 3,
	}

	data, err := g.SummaryJSON(summary)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	completion, ok := decoded["completion"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, completion["reachable"])
}
