package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item.
type Product struct {
	ID       string
	SKU      string
	Name     string
	Unit     string
	Material string
	Glyph    string
	Price    decimal.Decimal // Home currency
	Weight   float64         // Kilograms
}

// OrderLine is the quantity of one product inside an order.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// Order is a client purchase or shipment.
type Order struct {
	Date       time.Time
	ID         string
	ClientID   string
	SupplierID string // Empty for logistics-only orders
	Status     Status
	Shipping   ShippingMethod
	Service    ServiceType
	Lines      []OrderLine
	Total      decimal.Decimal // Home currency
	Items      int
}

// HasSupplier reports whether the order references a supplier.
func (o Order) HasSupplier() bool {
	return o.SupplierID != ""
}

// LineQuantity returns the sum of all line quantities.
func (o Order) LineQuantity() int {
	total := 0
	for _, line := range o.Lines {
		total += line.Quantity
	}
	return total
}

// Payment is money received or awaited from a client.
type Payment struct {
	Date     time.Time
	ID       string
	ClientID string
	OrderID  string
	Status   PaymentStatus
	Amount   decimal.Decimal // Home currency
}

// MonthlyMetric is one point of the order and revenue history.
type MonthlyMetric struct {
	Month   string // YYYY-MM
	Revenue decimal.Decimal
	Orders  int
}

// ServiceShare is the reported share of one service type.
type ServiceShare struct {
	Service ServiceType
	Percent float64
}
