// Package status maps status texts to display categories.
package status

import "github.com/Veraticus/logistics-pro/internal/model"

// Category is the visual classification of a status.
type Category string

const (
	Neutral   Category = "neutral"
	Warning   Category = "warning"
	Info      Category = "info"
	Accent    Category = "accent"
	Highlight Category = "highlight"
	Success   Category = "success"
)

// Default is returned for any status without a table entry.
const Default = Neutral

var table = map[string]Category{
	string(model.StatusLaunched):             Neutral,
	string(model.StatusAwaitingDeposit):      Warning,
	string(model.StatusInProgress):           Info,
	string(model.StatusAwaitingConfirmation): Accent,
	string(model.StatusAtChinaWarehouse):     Highlight,
	string(model.StatusReadyToShip):          Success,
	string(model.StatusActive):               Success,
}

// Categories returns every category.
func Categories() []Category {
	return []Category{Neutral, Warning, Info, Accent, Highlight, Success}
}

// Classify returns the category for s using an exact, case-sensitive match.
func Classify(s string) Category {
	if c, ok := table[s]; ok {
		return c
	}
	return Default
}

// Of classifies a typed status.
func Of(s model.Status) Category {
	return Classify(string(s))
}
