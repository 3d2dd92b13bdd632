package calc

import (
	"strconv"

	"github.com/prop-tools/report-atlas/pkg/money"
)

// Metric is a labelled display value for a highlight box or summary bar.
type Metric struct {
	Label string
	Value string
}

// Row is one label/value line in a breakdown column.
type Row struct {
	Label string
	Value string
	Bold  bool
}

// Section is the variant-shaped display model for one investment page:
// three highlight boxes, two breakdown columns and three summary bars.
type Section struct {
	Title    string
	Boxes    [3]Metric
	Costs    []Row
	Expenses []Row
	Summary  [3]Metric
}

// DisplayName returns the human title for a calculator variant.
func DisplayName(typ Type) string {
	switch typ {
	case TypeBRR:
		return "Buy, Refurbish, Refinance"
	case TypeFlip:
		return "Flip"
	case TypeHolidayLet:
		return "Holiday Let"
	case TypeRentToHMO:
		return "Rent-to-Rent HMO"
	case TypeRentToServiced:
		return "Rent-to-Rent Serviced Accommodation"
	default:
		return "Standard Buy-to-Let"
	}
}

// BuildSection shapes a computed result into the investment-page display
// model for its variant.
func BuildSection(typ Type, r Result) Section {
	cur := money.FormatCurrency
	pct := money.FormatPercent

	s := Section{Title: DisplayName(typ)}

	switch typ {
	case TypeFlip:
		s.Boxes = [3]Metric{
			{"Purchase Price", cur(r["purchasePrice"])},
			{"Sale Price", cur(r["salePrice"])},
			{"Return on Investment", pct(r["roi"])},
		}
		s.Costs = []Row{
			{Label: "Purchase price", Value: cur(r["purchasePrice"])},
			{Label: "Refurbishment", Value: cur(r["refurbCost"])},
			{Label: "Purchase costs", Value: cur(r["purchaseCosts"])},
			{Label: "Finance", Value: cur(r["financeCost"])},
			{Label: "Total investment", Value: cur(r["totalInvestment"]), Bold: true},
		}
		s.Expenses = []Row{
			{Label: "Sale price", Value: cur(r["salePrice"])},
			{Label: "Sale costs", Value: cur(r["totalSaleCosts"])},
			{Label: "Gross profit", Value: cur(r["grossProfit"]), Bold: true},
		}
		s.Summary = [3]Metric{
			{"Gross Profit", cur(r["grossProfit"])},
			{"Monthly ROI", pct(r["monthlyRoi"])},
			{"ROI", pct(r["roi"])},
		}

	case TypeRentToHMO:
		s.Boxes = [3]Metric{
			{"Monthly Rent Paid", cur(r["monthlyRentPaid"])},
			{"Monthly Income", cur(r["monthlyIncome"])},
			{"Return on Investment", pct(r["roi"])},
		}
		s.Costs = []Row{
			{Label: "Rent per room", Value: cur(r["rentPerRoom"])},
			{Label: "Occupied rooms", Value: strconv.FormatFloat(r["occupiedRooms"], 'f', 0, 64)},
			{Label: "Annual income", Value: cur(r["annualIncome"]), Bold: true},
		}
		s.Expenses = []Row{
			{Label: "Annual rent paid", Value: cur(r["annualRentPaid"])},
			{Label: "Annual bills", Value: cur(r["annualBills"])},
			{Label: "Total expenses", Value: cur(r["totalAnnualExpenses"]), Bold: true},
		}
		s.Summary = summaryBars(r)

	case TypeRentToServiced:
		s.Boxes = [3]Metric{
			{"Monthly Rent Paid", cur(r["monthlyRentPaid"])},
			{"Nightly Rate", cur(r["nightlyRate"])},
			{"Return on Investment", pct(r["roi"])},
		}
		s.Costs = []Row{
			{Label: "Annual income", Value: cur(r["annualIncome"])},
			{Label: "Management fee", Value: cur(r["managementFee"])},
			{Label: "Cleaning", Value: cur(r["annualCleaning"])},
		}
		s.Expenses = []Row{
			{Label: "Annual rent paid", Value: cur(r["annualRentPaid"])},
			{Label: "Annual bills", Value: cur(r["annualBills"])},
			{Label: "Total expenses", Value: cur(r["totalAnnualExpenses"]), Bold: true},
		}
		s.Summary = summaryBars(r)

	case TypeHolidayLet:
		s.Boxes = [3]Metric{
			{"Purchase Price", cur(r["purchasePrice"])},
			{"Weekly Rent", cur(r["weeklyRent"])},
			{"Rental Yield", pct(r["rentalYield"])},
		}
		s.Costs = []Row{
			{Label: "Deposit", Value: cur(r["depositAmount"])},
			{Label: "Mortgage", Value: cur(r["mortgageAmount"])},
			{Label: "Annual rent", Value: cur(r["annualRent"]), Bold: true},
		}
		s.Expenses = []Row{
			{Label: "Mortgage interest", Value: cur(r["annualMortgageInterest"])},
			{Label: "Management fee", Value: cur(r["managementFee"])},
			{Label: "Cleaning", Value: cur(r["cleaningFees"])},
			{Label: "Total expenses", Value: cur(r["totalAnnualExpenses"]), Bold: true},
		}
		s.Summary = summaryBars(r)

	case TypeBRR:
		s.Boxes = [3]Metric{
			{"Purchase Price", cur(r["purchasePrice"])},
			{"Monthly Rent", cur(r["monthlyRent"])},
			{"Rental Yield", pct(r["rentalYield"])},
		}
		s.Costs = []Row{
			{Label: "Deposit", Value: cur(r["depositAmount"])},
			{Label: "Refurbishment", Value: cur(r["refurbCost"])},
			{Label: "Refinance amount", Value: cur(r["refinanceAmount"])},
			{Label: "Money back", Value: cur(r["moneyBack"])},
			{Label: "Net investment", Value: cur(r["netInvestment"]), Bold: true},
		}
		s.Expenses = []Row{
			{Label: "Mortgage interest", Value: cur(r["annualMortgageInterest"])},
			{Label: "Annual rent", Value: cur(r["annualRent"])},
			{Label: "Total expenses", Value: cur(r["totalAnnualExpenses"]), Bold: true},
		}
		s.Summary = summaryBars(r)

	default: // standard BTL
		s.Boxes = [3]Metric{
			{"Purchase Price", cur(r["purchasePrice"])},
			{"Monthly Rent", cur(r["monthlyRent"])},
			{"Rental Yield", pct(r["rentalYield"])},
		}
		s.Costs = []Row{
			{Label: "Deposit", Value: cur(r["depositAmount"])},
			{Label: "Mortgage", Value: cur(r["mortgageAmount"])},
			{Label: "Purchase costs", Value: cur(r["purchaseCosts"])},
			{Label: "Total cash required", Value: cur(r["totalCashRequired"]), Bold: true},
		}
		s.Expenses = []Row{
			{Label: "Mortgage interest", Value: cur(r["annualMortgageInterest"])},
			{Label: "Running costs", Value: cur(r["totalAnnualExpenses"] - r["annualMortgageInterest"])},
			{Label: "Total expenses", Value: cur(r["totalAnnualExpenses"]), Bold: true},
		}
		s.Summary = summaryBars(r)
	}

	return s
}

func summaryBars(r Result) [3]Metric {
	return [3]Metric{
		{"Monthly Profit", money.FormatCurrency(r["monthlyProfit"])},
		{"Annual Profit", money.FormatCurrency(r["annualProfit"])},
		{"Return on Investment", money.FormatPercent(r["roi"])},
	}
}
