// Package spreadsheet reads and writes item records and the tax policy as
// XLSX workbooks.
package spreadsheet

// InvestmentRecord is the serialized form of a one-time investment item.
type InvestmentRecord struct {
	Tag         string
	Description string
	Quantity    float64
	UnitPrice   float64
	Month       int
}

// CostRecord is the serialized form of a recurring cost item.
type CostRecord struct {
	Tag         string
	Description string
	Quantity    float64
	UnitPrice   float64
	Recurrent   bool
	StartMonth  int
	EndMonth    int
}

// RevenueRecord is the serialized form of a recurring revenue item.
type RevenueRecord struct {
	Tag         string
	Description string
	Quantity    float64
	UnitPrice   float64
	Recurrent   bool
	StartMonth  int
	EndMonth    int
	GrowthRate  float64
}

// PolicyRecord is the serialized form of the tax policy.
type PolicyRecord struct {
	TMA  float64
	IR   float64
	CSLL float64
}
