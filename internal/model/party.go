// Package model holds the dashboard entities and their closed enumerations.
package model

import "github.com/shopspring/decimal"

// Client is a customer the business buys or ships goods for.
type Client struct {
	ID          string
	Name        string
	City        string
	Theme       string // Business category, e.g. electronics or textile
	LegalType   LegalType
	Company     string // Set only for organizations
	ServiceType ServiceType
	Status      Status
	Manager     string
	Commission  decimal.Decimal // Percent, 0-100
}

// IsOrganization reports whether the client is a registered company.
func (c Client) IsOrganization() bool {
	return c.LegalType == LegalTypeOrganization
}

// Supplier is a factory or trading company goods are sourced from.
type Supplier struct {
	ID           string
	Name         string
	Country      string
	Category     SupplierCategory
	Contact      string
	PaymentTerms PaymentTerms
	Status       Status
	Rating       float64 // 1.0-5.0
}
