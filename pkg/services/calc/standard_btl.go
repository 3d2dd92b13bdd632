package calc

// standardBTL is the default buy-to-let model: rent covers the interest-only
// mortgage plus running costs, ROI is measured against cash in.
var standardBTL = calculator{
	spec: specTable{
		"purchase_price":      {currency, 0},
		"deposit_percent":     {rate, 20},
		"monthly_rent":        {currency, 0},
		"mortgage_rate":       {rate, 5.8},
		"purchase_costs":      {currency, 0},
		"council_tax":         {currency, 0},
		"repairs_maintenance": {currency, 0},
		"utilities":           {currency, 0},
		"water":               {currency, 0},
		"broadband_tv":        {currency, 0},
		"insurance":           {currency, 0},
	},
	compute: func(v map[string]float64) Result {
		price := v["purchase_price"]
		deposit := price * v["deposit_percent"] / 100
		mortgage := price - deposit
		annualRent := v["monthly_rent"] * 12
		interest := mortgage * v["mortgage_rate"] / 100
		expenses := interest + v["council_tax"] + v["repairs_maintenance"] +
			v["utilities"] + v["water"] + v["broadband_tv"] + v["insurance"]
		profit := annualRent - expenses

		return Result{
			"purchasePrice":          price,
			"monthlyRent":            v["monthly_rent"],
			"depositAmount":          deposit,
			"mortgageAmount":         mortgage,
			"purchaseCosts":          v["purchase_costs"],
			"totalCashRequired":      deposit + v["purchase_costs"],
			"annualRent":             annualRent,
			"rentalYield":            ratio(annualRent, price),
			"annualMortgageInterest": interest,
			"totalAnnualExpenses":    expenses,
			"annualProfit":           profit,
			"monthlyProfit":          profit / 12,
			"roi":                    ratio(profit, deposit+v["purchase_costs"]),
		}
	},
}
