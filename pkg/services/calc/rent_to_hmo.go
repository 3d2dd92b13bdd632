package calc

import "math"

// rentToHMO models rent-to-rent on a room-by-room basis. The operator leases
// the whole property and re-lets rooms; there is no deposit, so ROI is
// measured against the annual rent the operator pays the landlord.
var rentToHMO = calculator{
	spec: specTable{
		"monthly_rent_paid": {currency, 0},
		"number_of_rooms":   {rate, 4},
		"rent_per_room":     {currency, 0},
		"occupancy_rate":    {rate, 90},
		"monthly_bills":     {currency, 0},
	},
	compute: func(v map[string]float64) Result {
		occupiedRooms := math.Floor(v["number_of_rooms"] * v["occupancy_rate"] / 100)
		monthlyIncome := v["rent_per_room"] * occupiedRooms
		annualIncome := monthlyIncome * 12
		annualRentPaid := v["monthly_rent_paid"] * 12
		annualBills := v["monthly_bills"] * 12

		expenses := annualRentPaid + annualBills
		profit := annualIncome - expenses

		return Result{
			"monthlyRentPaid":     v["monthly_rent_paid"],
			"rentPerRoom":         v["rent_per_room"],
			"occupiedRooms":       occupiedRooms,
			"monthlyIncome":       monthlyIncome,
			"annualIncome":        annualIncome,
			"annualRentPaid":      annualRentPaid,
			"annualBills":         annualBills,
			"totalAnnualExpenses": expenses,
			"annualProfit":        profit,
			"monthlyProfit":       profit / 12,
			"roi":                 ratio(profit, annualRentPaid),
		}
	},
}
