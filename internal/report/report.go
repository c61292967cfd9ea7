// Package report renders purchase plans and wishlist summaries for export:
// CSV rows for spreadsheets and indented JSON for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"fjacquet/wishplan/internal/dateutils"
	"fjacquet/wishplan/internal/fileutils"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
)

// PlanRow is one exported CSV line: an item joined with its computed plan.
type PlanRow struct {
	ItemID          string `csv:"item_id"`
	Name            string `csv:"name"`
	Category        string `csv:"category"`
	Priority        string `csv:"priority"`
	Price           string `csv:"price"`
	Currency        string `csv:"currency"`
	AmountOwed      string `csv:"amount_owed"`
	Monthly         string `csv:"monthly_contribution"`
	MonthsNeeded    string `csv:"months_needed"`
	EstimatedDate   string `csv:"estimated_purchase_date"`
	FinancingName   string `csv:"financing,omitempty"`
	MonthlyPayment  string `csv:"monthly_payment,omitempty"`
	TotalInterest   string `csv:"total_interest,omitempty"`
}

// Generator renders plan reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Rows joins items with their plans into exportable rows. Items without a
// plan get an empty projection column set.
func (g *Generator) Rows(items []models.WishlistItem, plans map[string]models.PurchasePlan) []PlanRow {
	rows := make([]PlanRow, 0, len(items))
	for _, item := range items {
		row := PlanRow{
			ItemID:   item.ID,
			Name:     item.Name,
			Category: item.Category,
			Priority: string(item.Priority),
			Price:    item.Price.Amount.StringFixed(2),
			Currency: item.Price.Currency,
		}

		if plan, ok := plans[item.ID]; ok {
			row.AmountOwed = plan.AmountOwed.Amount.StringFixed(2)
			row.Monthly = plan.MonthlyContribution.Amount.StringFixed(2)
			row.MonthsNeeded = plan.Projection.String()
			if plan.EstimatedPurchaseDate != nil {
				row.EstimatedDate = dateutils.ToISODate(*plan.EstimatedPurchaseDate)
			}
			if plan.Financed() {
				row.FinancingName = plan.Financing.Name
				row.MonthlyPayment = plan.Calculation.MonthlyPayment.Amount.StringFixed(2)
				row.TotalInterest = plan.Calculation.TotalInterest.Amount.StringFixed(2)
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes plan rows as CSV to w.
func (g *Generator) WriteCSV(rows []PlanRow, w io.Writer) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("error writing plan CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes plan rows to a CSV file, creating parent directories
// as needed.
func (g *Generator) WriteCSVFile(rows []PlanRow, path string) error {
	if err := fileutils.EnsureParentDir(path); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("failed to close output file")
		}
	}()

	if err := g.WriteCSV(rows, f); err != nil {
		return err
	}

	g.logger.Info("wrote plan report",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

// SummaryJSON renders a wishlist summary as indented JSON.
func (g *Generator) SummaryJSON(summary models.WishlistSummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling summary: %w", err)
	}
	return data, nil
}
