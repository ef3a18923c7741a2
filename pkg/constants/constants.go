// Package constants provides shared constants for the capital-viability application.
package constants

// Horizon constants
const (
	// MonthsInHorizon is the fixed projection horizon in months
	MonthsInHorizon = 12

	// MinMonth is the first month of the horizon
	MinMonth = 1

	// MaxMonth is the last month of the horizon
	MaxMonth = 12
)

// Rate constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MinGrowthRate is the lower clamp for monthly revenue growth
	MinGrowthRate = 0.0

	// MaxGrowthRate is the upper clamp for monthly revenue growth
	MaxGrowthRate = 100.0
)

// Solver constants for the IRR root-finder
const (
	// IRRTolerance is the convergence tolerance on the monthly rate
	IRRTolerance = 1e-7

	// IRRMaxIterations bounds the Newton/bisection iteration count
	IRRMaxIterations = 100
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the spreadsheet output format
	OutputFormatXLSX = "xlsx"

	// OutputFormatPDF is the PDF report output format
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultProjectsDir is the default directory holding project folders
	DefaultProjectsDir = "projects"
)
