// Package plan handles purchase plan computation for a single item.
package plan

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fjacquet/wishplan/cmd/common"
	"fjacquet/wishplan/cmd/root"
	"fjacquet/wishplan/internal/dateutils"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
)

var (
	saved       string
	monthly     string
	financeName string
	financeType string
	financeAPR  string
	financeTerm int
	asJSON      bool
)

// Cmd represents the plan command
var Cmd = &cobra.Command{
	Use:   "plan <item-id-or-name>",
	Short: "Project when an item becomes affordable",
	Long: `Project when a wishlist item becomes affordable from monthly savings,
or compute the amortization cost of buying it now with a financing offer.`,
	Args: cobra.ExactArgs(1),
	Run:  planFunc,
}

func init() {
	Cmd.Flags().StringVarP(&saved, "saved", "s", "", "Amount already saved toward the item")
	Cmd.Flags().StringVarP(&monthly, "monthly", "m", "", "Monthly contribution, defaults to the configured amount")
	Cmd.Flags().StringVar(&financeName, "finance-name", "", "Name of the financing offer")
	Cmd.Flags().StringVar(&financeType, "finance-type", string(models.FinancingInstallment), "Financing type: installment, credit-card or bnpl")
	Cmd.Flags().StringVar(&financeAPR, "finance-apr", "", "Annual percentage rate of the offer, e.g. 24 for 24%")
	Cmd.Flags().IntVar(&financeTerm, "finance-term", 0, "Financing term in months")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
}

func planFunc(cmd *cobra.Command, args []string) {
	item, err := common.ResolveItem(root.App.Wishlist(), args[0])
	if err != nil {
		root.Log.Fatalf("Error resolving item: %v", err)
	}
	currency := item.Price.Currency

	savedMoney, err := common.MoneyFlag(saved, currency, "saved")
	if err != nil {
		root.Log.Fatalf("Invalid --saved value: %v", err)
	}

	monthlyMoney := root.App.DefaultMonthlySavings()
	if monthly != "" {
		monthlyMoney, err = common.MoneyFlag(monthly, currency, "monthly")
		if err != nil {
			root.Log.Fatalf("Invalid --monthly value: %v", err)
		}
	}

	financing, err := financingFromFlags()
	if err != nil {
		root.Log.Fatalf("Invalid financing offer: %v", err)
	}

	purchasePlan, err := root.App.Planner().ComputePlan(item, savedMoney, monthlyMoney, financing)
	if err != nil {
		root.Log.Fatalf("Error computing plan: %v", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(purchasePlan, "", "  ")
		if err != nil {
			root.Log.Fatalf("Error encoding plan: %v", err)
		}
		fmt.Println(string(data))
		return
	}
	printPlan(item, purchasePlan)
}

// financingFromFlags builds a FinancingOption from the finance-* flags, or
// returns nil when no offer was requested. Setting a term is what opts in.
func financingFromFlags() (*models.FinancingOption, error) {
	if financeTerm == 0 && financeAPR == "" && financeName == "" {
		return nil, nil
	}

	ftype, err := models.ParseFinancingType(financeType)
	if err != nil {
		return nil, err
	}

	rate := decimal.Zero
	if financeAPR != "" {
		rate, err = decimal.NewFromString(financeAPR)
		if err != nil {
			return nil, planerror.NewInvalidInput("finance_apr", financeAPR, "must be a decimal percentage")
		}
	}

	opt := &models.FinancingOption{
		Name:       financeName,
		Type:       ftype,
		AnnualRate: rate,
		TermMonths: financeTerm,
	}
	return opt, opt.Validate()
}

func printPlan(item models.WishlistItem, p models.PurchasePlan) {
	fmt.Printf("Item:         %s (%s)\n", item.Name, item.ID)
	fmt.Printf("Price:        %s\n", item.Price.String())
	fmt.Printf("Amount owed:  %s\n", p.AmountOwed.String())

	if p.Financed() {
		fmt.Printf("Financing:    %s (%s, %s%% APR, %d months)\n",
			p.Financing.Name, p.Financing.Type, p.Financing.AnnualRate.String(), p.Financing.TermMonths)
		fmt.Printf("Monthly pay:  %s\n", p.Calculation.MonthlyPayment.String())
		fmt.Printf("Interest:     %s\n", p.Calculation.TotalInterest.String())
		fmt.Printf("Total paid:   %s\n", p.Calculation.TotalPaid.String())
		fmt.Println("Purchase:     now")
		return
	}

	fmt.Printf("Monthly:      %s\n", p.MonthlyContribution.String())
	fmt.Printf("Projection:   %s\n", p.Projection.String())
	if p.EstimatedPurchaseDate != nil {
		fmt.Printf("Afford by:    %s\n", dateutils.ToISODate(*p.EstimatedPurchaseDate))
	}
}
