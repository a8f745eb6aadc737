package vat

// Rates holds the VAT percentages of a single country. Optional rates are nil
// when the country does not apply them.
type Rates struct {
	Name         string    `json:"name"                    yaml:"name"`
	SuperReduced *float64  `json:"super_reduced,omitempty" yaml:"super_reduced,omitempty"`
	Reduced      []float64 `json:"reduced,omitempty"       yaml:"reduced,omitempty"`
	Standard     float64   `json:"standard"                yaml:"standard"`
	Parking      *float64  `json:"parking,omitempty"       yaml:"parking,omitempty"`
}

// CountryRate is a Rates record together with its country code.
type CountryRate struct {
	Code string `json:"code" yaml:"code"`
	Rates
}

// Categories lists the rate categories the country has a value for.
func (c CountryRate) Categories() []RateCategory {
	var cats []RateCategory
	if c.SuperReduced != nil {
		cats = append(cats, SuperReduced)
	}
	if len(c.Reduced) > 0 {
		cats = append(cats, Reduced)
	}
	if len(c.Reduced) > 1 {
		cats = append(cats, Reduced2)
	}
	cats = append(cats, Standard)
	if c.Parking != nil {
		cats = append(cats, Parking)
	}
	return cats
}

func (r Rates) clone() Rates {
	out := r
	if r.SuperReduced != nil {
		v := *r.SuperReduced
		out.SuperReduced = &v
	}
	if r.Parking != nil {
		v := *r.Parking
		out.Parking = &v
	}
	if r.Reduced != nil {
		out.Reduced = append([]float64(nil), r.Reduced...)
	}
	return out
}

func pct(v float64) *float64 { return &v }

// table is ordered the way rates are published: alphabetically by code.
var table = []CountryRate{
	{Code: "AT", Rates: Rates{Name: "Austria", Reduced: []float64{10, 13}, Standard: 20, Parking: pct(13)}},
	{Code: "BE", Rates: Rates{Name: "Belgium", Reduced: []float64{6, 12}, Standard: 21, Parking: pct(12)}},
	{Code: "BG", Rates: Rates{Name: "Bulgaria", Reduced: []float64{9}, Standard: 20}},
	{Code: "CY", Rates: Rates{Name: "Cyprus", Reduced: []float64{5, 9}, Standard: 19}},
	{Code: "CZ", Rates: Rates{Name: "Czech Republic", Reduced: []float64{10, 15}, Standard: 21}},
	{Code: "DE", Rates: Rates{Name: "Germany", Reduced: []float64{7}, Standard: 19}},
	{Code: "DK", Rates: Rates{Name: "Denmark", Standard: 25}},
	{Code: "EE", Rates: Rates{Name: "Estonia", Reduced: []float64{9}, Standard: 20}},
	{Code: "EL", Rates: Rates{Name: "Greece", Reduced: []float64{6, 13}, Standard: 24}},
	{Code: "ES", Rates: Rates{Name: "Spain", SuperReduced: pct(4), Reduced: []float64{10}, Standard: 21}},
	{Code: "FI", Rates: Rates{Name: "Finland", Reduced: []float64{10, 14}, Standard: 24}},
	{Code: "FR", Rates: Rates{Name: "France", SuperReduced: pct(2.1), Reduced: []float64{5.5, 10}, Standard: 20}},
	{Code: "HU", Rates: Rates{Name: "Hungary", Reduced: []float64{5, 18}, Standard: 27}},
	{Code: "IE", Rates: Rates{Name: "Ireland", SuperReduced: pct(4.8), Reduced: []float64{9, 13.5}, Standard: 23, Parking: pct(13.5)}},
	{Code: "IT", Rates: Rates{Name: "Italy", SuperReduced: pct(4), Reduced: []float64{5, 10}, Standard: 22}},
	{Code: "LT", Rates: Rates{Name: "Lithuania", Reduced: []float64{5, 9}, Standard: 21}},
	{Code: "LU", Rates: Rates{Name: "Luxembourg", SuperReduced: pct(3), Reduced: []float64{8}, Standard: 17, Parking: pct(14)}},
	{Code: "LV", Rates: Rates{Name: "Latvia", Reduced: []float64{12}, Standard: 21}},
	{Code: "MT", Rates: Rates{Name: "Malta", Reduced: []float64{5, 7}, Standard: 18}},
	{Code: "NL", Rates: Rates{Name: "Netherlands", Reduced: []float64{6}, Standard: 21}},
	{Code: "PL", Rates: Rates{Name: "Poland", Reduced: []float64{5, 8}, Standard: 23}},
	{Code: "PT", Rates: Rates{Name: "Portugal", Reduced: []float64{6, 13}, Standard: 23, Parking: pct(13)}},
	{Code: "RO", Rates: Rates{Name: "Romania", Reduced: []float64{5, 9}, Standard: 20}},
	{Code: "SE", Rates: Rates{Name: "Sweden", Reduced: []float64{6, 12}, Standard: 25}},
	{Code: "SI", Rates: Rates{Name: "Slovenia", Reduced: []float64{9.5}, Standard: 22}},
	{Code: "SK", Rates: Rates{Name: "Slovakia", Reduced: []float64{10}, Standard: 20}},
	{Code: "UK", Rates: Rates{Name: "United Kingdom", Reduced: []float64{5}, Standard: 20}},
}

var index = buildIndex(table)

func buildIndex(rows []CountryRate) map[string]int {
	idx := make(map[string]int, len(rows))
	for i, row := range rows {
		idx[row.Code] = i
	}
	return idx
}
