package calc

// rentToServiced models rent-to-rent serviced accommodation sold by the
// night. Like the HMO variant it deploys no deposit, so ROI is measured
// against the annual rent paid to the landlord.
var rentToServiced = calculator{
	spec: specTable{
		"monthly_rent_paid":      {currency, 0},
		"nightly_rate":           {currency, 0},
		"occupancy_rate":         {rate, 65},
		"management_fee_percent": {rate, 15},
		"cleaning_per_month":     {currency, 0},
		"monthly_bills":          {currency, 0},
	},
	compute: func(v map[string]float64) Result {
		occupiedDays := 365 * v["occupancy_rate"] / 100
		annualIncome := v["nightly_rate"] * occupiedDays
		managementFee := annualIncome * v["management_fee_percent"] / 100
		annualRentPaid := v["monthly_rent_paid"] * 12
		annualBills := v["monthly_bills"] * 12
		annualCleaning := v["cleaning_per_month"] * 12

		expenses := annualRentPaid + managementFee + annualBills + annualCleaning
		profit := annualIncome - expenses

		return Result{
			"monthlyRentPaid":     v["monthly_rent_paid"],
			"nightlyRate":         v["nightly_rate"],
			"occupiedDays":        occupiedDays,
			"annualIncome":        annualIncome,
			"managementFee":       managementFee,
			"annualRentPaid":      annualRentPaid,
			"annualBills":         annualBills,
			"annualCleaning":      annualCleaning,
			"totalAnnualExpenses": expenses,
			"annualProfit":        profit,
			"monthlyProfit":       profit / 12,
			"roi":                 ratio(profit, annualRentPaid),
		}
	},
}
