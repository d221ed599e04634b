// Package automator adds binary indicator columns to MAUDE adverse-event
// spreadsheets while preserving the original cell styling.
package automator

// Options configures a processing run.
type Options struct {
	// SheetName is the worksheet read and rewritten.
	SheetName string
	// GreenColor is the fill applied to binary cells holding 1.
	GreenColor string
	// RedColor is the fill applied to binary cells holding 0.
	RedColor string
}

// DefaultOptions returns the options used when no flags override them.
func DefaultOptions() Options {
	return Options{
		SheetName:  "Events",
		GreenColor: "90EE90",
		RedColor:   "FFB6C1",
	}
}
