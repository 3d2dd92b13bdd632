package calc

// brr models buy-refurbish-refinance: the refinance against the uplifted
// valuation releases capital, so ROI is measured against the net money left
// in the deal.
var brr = calculator{
	spec: specTable{
		"purchase_price":      {currency, 0},
		"deposit_percent":     {rate, 20},
		"refurb_cost":         {currency, 0},
		"after_refurb_value":  {currency, 0},
		"refinance_ltv":       {rate, 75},
		"monthly_rent":        {currency, 0},
		"mortgage_rate":       {rate, 5.8},
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
		initialMortgage := price - deposit
		arv := v["after_refurb_value"]
		refinanceAmount := arv * v["refinance_ltv"] / 100
		moneyBack := refinanceAmount - initialMortgage
		netInvestment := deposit + v["refurb_cost"] - moneyBack

		annualRent := v["monthly_rent"] * 12
		interest := refinanceAmount * v["mortgage_rate"] / 100
		expenses := interest + v["council_tax"] + v["repairs_maintenance"] +
			v["utilities"] + v["water"] + v["broadband_tv"] + v["insurance"]
		profit := annualRent - expenses

		return Result{
			"purchasePrice":          price,
			"monthlyRent":            v["monthly_rent"],
			"depositAmount":          deposit,
			"initialMortgage":        initialMortgage,
			"refurbCost":             v["refurb_cost"],
			"afterRefurbValue":       arv,
			"refinanceAmount":        refinanceAmount,
			"moneyBack":              moneyBack,
			"netInvestment":          netInvestment,
			"annualRent":             annualRent,
			"rentalYield":            ratio(annualRent, arv),
			"annualMortgageInterest": interest,
			"totalAnnualExpenses":    expenses,
			"annualProfit":           profit,
			"monthlyProfit":          profit / 12,
			"roi":                    ratio(profit, netInvestment),
		}
	},
}
