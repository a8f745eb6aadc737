package domain

import (
	"time"

	"github.com/euvat/euvat/vat"
)

// Operation names the direction of a calculation.
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
)

// CalculationRequest is the input of a calculation before defaults are applied.
type CalculationRequest struct {
	Amount   float64 `json:"amount"`
	Country  string  `json:"country,omitempty"   validate:"omitempty,len=2,alpha"`
	Category string  `json:"category,omitempty"  validate:"omitempty,max=32"`
}

// Calculation is a completed add or subtract. Net and Gross are both filled
// regardless of direction.
type Calculation struct {
	Operation Operation        `json:"operation"`
	Country   string           `json:"country"`
	Category  vat.RateCategory `json:"category"`
	Amount    float64          `json:"amount"`
	TaxRate   float64          `json:"tax_rate"`
	TaxAmount float64          `json:"tax_amount"`
	Net       float64          `json:"net"`
	Gross     float64          `json:"gross"`
}

// FromTaxResult builds the Calculation of an add operation.
func FromTaxResult(country string, category vat.RateCategory, net float64, r vat.TaxResult) Calculation {
	return Calculation{
		Operation: OperationAdd,
		Country:   country,
		Category:  category,
		Amount:    net,
		TaxRate:   r.TaxRate,
		TaxAmount: r.TaxAmount,
		Net:       net,
		Gross:     r.Total,
	}
}

// FromNetResult builds the Calculation of a subtract operation.
func FromNetResult(country string, category vat.RateCategory, gross float64, r vat.NetResult) Calculation {
	return Calculation{
		Operation: OperationSubtract,
		Country:   country,
		Category:  category,
		Amount:    gross,
		TaxRate:   r.TaxRate,
		TaxAmount: r.TaxAmount,
		Net:       r.NetAmount,
		Gross:     gross,
	}
}

// Result is the amount the operation produced: gross for add, net for subtract.
func (c Calculation) Result() float64 {
	if c.Operation == OperationSubtract {
		return c.Net
	}
	return c.Gross
}

// CalculationEntry is one line of the calculation history.
type CalculationEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Calculation
}
