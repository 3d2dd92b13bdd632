package calc

// holidayLet prices short stays by the week; management and cleaning scale
// with occupied weeks and ROI is measured against the deposit.
var holidayLet = calculator{
	spec: specTable{
		"purchase_price":         {currency, 0},
		"deposit_percent":        {rate, 25},
		"weekly_rent":            {currency, 0},
		"occupancy_rate":         {rate, 70},
		"management_fee_percent": {rate, 20},
		"cleaning_per_stay":      {currency, 0},
		"mortgage_rate":          {rate, 5.8},
		"council_tax":            {currency, 0},
		"utilities":              {currency, 0},
		"broadband_tv":           {currency, 0},
		"insurance":              {currency, 0},
	},
	compute: func(v map[string]float64) Result {
		price := v["purchase_price"]
		deposit := price * v["deposit_percent"] / 100
		mortgage := price - deposit

		occupiedWeeks := 52 * v["occupancy_rate"] / 100
		annualRent := v["weekly_rent"] * occupiedWeeks
		managementFee := annualRent * v["management_fee_percent"] / 100
		cleaningFees := v["cleaning_per_stay"] * occupiedWeeks
		interest := mortgage * v["mortgage_rate"] / 100

		expenses := interest + managementFee + cleaningFees +
			v["council_tax"] + v["utilities"] + v["broadband_tv"] + v["insurance"]
		profit := annualRent - expenses

		return Result{
			"purchasePrice":          price,
			"weeklyRent":             v["weekly_rent"],
			"depositAmount":          deposit,
			"mortgageAmount":         mortgage,
			"occupiedWeeks":          occupiedWeeks,
			"annualRent":             annualRent,
			"rentalYield":            ratio(annualRent, price),
			"managementFee":          managementFee,
			"cleaningFees":           cleaningFees,
			"annualMortgageInterest": interest,
			"totalAnnualExpenses":    expenses,
			"annualProfit":           profit,
			"monthlyProfit":          profit / 12,
			"roi":                    ratio(profit, deposit),
		}
	},
}
