package calc

// flip buys, refurbishes and sells inside a short holding period; ROI is
// measured against total money deployed and annualization is left to the
// monthly figure.
var flip = calculator{
	spec: specTable{
		"purchase_price":    {currency, 0},
		"refurb_cost":       {currency, 0},
		"stamp_duty":        {currency, 0},
		"survey_cost":       {currency, 0},
		"legal_fees":        {currency, 0},
		"finance_cost":      {currency, 0},
		"sale_price":        {currency, 0},
		"legal_fees_sale":   {currency, 0},
		"estate_agent_fees": {currency, 0},
		"holding_period":    {rate, 6},
	},
	compute: func(v map[string]float64) Result {
		purchaseCosts := v["stamp_duty"] + v["survey_cost"] + v["legal_fees"]
		totalInvestment := v["purchase_price"] + v["refurb_cost"] + purchaseCosts + v["finance_cost"]
		saleCosts := v["legal_fees_sale"] + v["estate_agent_fees"]
		grossProfit := v["sale_price"] - totalInvestment - saleCosts
		roi := ratio(grossProfit, totalInvestment)

		monthlyRoi := 0.0
		if v["holding_period"] > 0 {
			monthlyRoi = roi / v["holding_period"]
		}

		return Result{
			"purchasePrice":   v["purchase_price"],
			"refurbCost":      v["refurb_cost"],
			"purchaseCosts":   purchaseCosts,
			"financeCost":     v["finance_cost"],
			"totalInvestment": totalInvestment,
			"salePrice":       v["sale_price"],
			"totalSaleCosts":  saleCosts,
			"grossProfit":     grossProfit,
			"holdingPeriod":   v["holding_period"],
			"roi":             roi,
			"monthlyRoi":      monthlyRoi,
		}
	},
}
