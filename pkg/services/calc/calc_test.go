package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBTLWorkedExample(t *testing.T) {
	res := Compute(TypeStandardBTL, Fields{
		"purchase_price":      "£200,000",
		"deposit_percent":     25,
		"monthly_rent":        "£1,200",
		"mortgage_rate":       5,
		"council_tax":         150,
		"repairs_maintenance": 50,
		"utilities":           40,
		"water":               20,
		"broadband_tv":        30,
		"insurance":           25,
	})

	assert.InDelta(t, 50000, res["depositAmount"], 0.001)
	assert.InDelta(t, 150000, res["mortgageAmount"], 0.001)
	assert.InDelta(t, 14400, res["annualRent"], 0.001)
	assert.InDelta(t, 7.2, res["rentalYield"], 0.001)
	assert.InDelta(t, 7500, res["annualMortgageInterest"], 0.001)
	assert.InDelta(t, 7815, res["totalAnnualExpenses"], 0.001)
	assert.InDelta(t, 6585, res["annualProfit"], 0.001)
	assert.InDelta(t, 13.17, res["roi"], 0.001)
}

func TestFlipWorkedExample(t *testing.T) {
	res := Compute(TypeFlip, Fields{
		"purchase_price":    100000,
		"refurb_cost":       20000,
		"sale_price":        180000,
		"stamp_duty":        3000,
		"survey_cost":       500,
		"legal_fees":        1000,
		"legal_fees_sale":   1000,
		"estate_agent_fees": 3000,
		"finance_cost":      2000,
		"holding_period":    6,
	})

	assert.InDelta(t, 126500, res["totalInvestment"], 0.001)
	assert.InDelta(t, 4000, res["totalSaleCosts"], 0.001)
	assert.InDelta(t, 49500, res["grossProfit"], 0.001)
	assert.InDelta(t, 39.13, res["roi"], 0.01)
	assert.InDelta(t, 6.52, res["monthlyRoi"], 0.01)
}

// Every calculator must survive an empty input: all metrics finite, ROI 0
// when its basis is zero, and documented defaults applied.
func TestEmptyInputTotality(t *testing.T) {
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			res := Compute(typ, Fields{})
			require.NotEmpty(t, res)
			for name, v := range res {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
					"metric %s is not finite", name)
			}
			assert.Zero(t, res["roi"])
		})
	}
}

func TestDefaultsApplied(t *testing.T) {
	// deposit_percent defaults to 20 for the standard model.
	res := Compute(TypeStandardBTL, Fields{"purchase_price": 100000})
	assert.InDelta(t, 20000, res["depositAmount"], 0.001)

	// mortgage_rate defaults to 5.8 on the 80000 mortgage.
	assert.InDelta(t, 4640, res["annualMortgageInterest"], 0.001)

	// A non-numeric rate also falls back to the default, never to zero.
	res = Compute(TypeStandardBTL, Fields{
		"purchase_price":  100000,
		"deposit_percent": "not a number",
	})
	assert.InDelta(t, 20000, res["depositAmount"], 0.001)
}

func TestRentToRentROIBasis(t *testing.T) {
	res := Compute(TypeRentToHMO, Fields{
		"monthly_rent_paid": 1000,
		"number_of_rooms":   5,
		"rent_per_room":     600,
		"occupancy_rate":    80,
	})

	// floor(5 * 0.8) = 4 occupied rooms
	assert.InDelta(t, 4, res["occupiedRooms"], 0.001)
	assert.InDelta(t, 2400, res["monthlyIncome"], 0.001)
	assert.InDelta(t, 12000, res["annualRentPaid"], 0.001)

	// ROI basis is the operator's own lease cost, not capital invested.
	profit := res["annualProfit"]
	assert.InDelta(t, profit/12000*100, res["roi"], 0.001)
}

func TestROIGuards(t *testing.T) {
	// Negative net investment in a BRR deal must not blow up the ratio.
	res := Compute(TypeBRR, Fields{
		"purchase_price":     100000,
		"deposit_percent":    20,
		"refurb_cost":        5000,
		"after_refurb_value": 200000,
		"refinance_ltv":      75,
		"monthly_rent":       800,
	})
	// moneyBack = 150000 - 80000 = 70000 > deposit+refurb = 25000
	assert.Less(t, res["netInvestment"], 0.0)
	assert.Zero(t, res["roi"])
}

func TestParseType(t *testing.T) {
	assert.Equal(t, TypeStandardBTL, ParseType("purchase"))
	assert.Equal(t, TypeStandardBTL, ParseType("standard-btl"))
	assert.Equal(t, TypeStandardBTL, ParseType("definitely-not-a-thing"))
	assert.Equal(t, TypeFlip, ParseType(" Flip "))
	assert.Equal(t, TypeRentToServiced, ParseType("rent-to-serviced"))
}

func TestResolveSelected(t *testing.T) {
	tests := []struct {
		name     string
		fields   Fields
		expected []Type
	}{
		{"default", Fields{}, []Type{TypeStandardBTL}},
		{
			"list",
			Fields{"selected_calculators": []interface{}{"brr", "flip"}},
			[]Type{TypeBRR, TypeFlip},
		},
		{
			"comma string",
			Fields{"selected_calculators": "holiday-let, rent-to-hmo"},
			[]Type{TypeHolidayLet, TypeRentToHMO},
		},
		{
			"bare scalar",
			Fields{"calculator_type": "brr"},
			[]Type{TypeBRR},
		},
		{
			"duplicates collapse",
			Fields{"selected_calculators": "flip,flip,purchase"},
			[]Type{TypeFlip, TypeStandardBTL},
		},
		{
			"empty list falls back to calculator_type",
			Fields{"selected_calculators": []interface{}{}, "calculator_type": "flip"},
			[]Type{TypeFlip},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveSelected(tt.fields))
		})
	}
}

func TestMergeOverrides(t *testing.T) {
	fields := Fields{
		"purchase_price": 100000,
		"monthly_rent":   800,
		"calculator_brr": map[string]interface{}{
			"monthly_rent": 950,
		},
	}

	merged := MergeOverrides(fields, TypeBRR)
	assert.Equal(t, 950, merged["monthly_rent"])
	assert.Equal(t, 100000, merged["purchase_price"])

	// Other types see the untouched mapping.
	same := MergeOverrides(fields, TypeFlip)
	assert.Equal(t, 800, same["monthly_rent"])
}

func TestBuildSectionShapes(t *testing.T) {
	for _, typ := range Types() {
		s := BuildSection(typ, Compute(typ, Fields{"purchase_price": 100000}))
		assert.NotEmpty(t, s.Title)
		for _, b := range s.Boxes {
			assert.NotEmpty(t, b.Label)
			assert.NotEmpty(t, b.Value)
		}
		assert.NotEmpty(t, s.Costs)
		assert.NotEmpty(t, s.Expenses)
		assert.True(t, s.Costs[len(s.Costs)-1].Bold || s.Expenses[len(s.Expenses)-1].Bold)
	}
}
