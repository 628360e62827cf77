package model

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is wrapped by every Parse function when the input is outside the closed set.
var ErrUnknownValue = errors.New("value outside closed set")

// LegalType distinguishes private individuals from registered organizations.
type LegalType string

const (
	// LegalTypeIndividual is a private person.
	LegalTypeIndividual LegalType = "individual"
	// LegalTypeOrganization is a registered company; such clients carry a company name.
	LegalTypeOrganization LegalType = "organization"
)

// LegalTypes returns the closed set in menu order.
func LegalTypes() []LegalType {
	return []LegalType{LegalTypeIndividual, LegalTypeOrganization}
}

// ParseLegalType validates a raw legal type.
func ParseLegalType(s string) (LegalType, error) {
	for _, v := range LegalTypes() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: legal type %q", ErrUnknownValue, s)
}

// ServiceType is the kind of service the business provides to a client.
type ServiceType string

const (
	// ServicePurchase covers sourcing and buying goods.
	ServicePurchase ServiceType = "purchase"
	// ServiceLogistics covers shipping only.
	ServiceLogistics ServiceType = "logistics"
	// ServiceBoth covers purchase and logistics.
	ServiceBoth ServiceType = "both"
)

// ServiceTypes returns the closed set in menu order.
func ServiceTypes() []ServiceType {
	return []ServiceType{ServicePurchase, ServiceLogistics, ServiceBoth}
}

// ParseServiceType validates a raw service type.
func ParseServiceType(s string) (ServiceType, error) {
	for _, v := range ServiceTypes() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: service type %q", ErrUnknownValue, s)
}

// ShippingMethod is how an order travels.
type ShippingMethod string

const (
	ShippingAuto      ShippingMethod = "auto"
	ShippingRail      ShippingMethod = "rail"
	ShippingSea       ShippingMethod = "sea"
	ShippingContainer ShippingMethod = "container"
)

// ShippingMethods returns the closed set in menu order.
func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{ShippingAuto, ShippingRail, ShippingSea, ShippingContainer}
}

// ParseShippingMethod validates a raw shipping method.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	for _, v := range ShippingMethods() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: shipping method %q", ErrUnknownValue, s)
}

// Status is the lifecycle state shown next to orders, clients and suppliers.
// Values are the canonical English status texts.
type Status string

const (
	StatusLaunched             Status = "Launched"
	StatusAwaitingDeposit      Status = "Awaiting deposit"
	StatusInProgress           Status = "In progress"
	StatusAwaitingConfirmation Status = "Awaiting confirmation"
	StatusAtChinaWarehouse     Status = "At China warehouse"
	StatusReadyToShip          Status = "Ready to ship"
	StatusInTransit            Status = "In transit"
	StatusReadyForPickup       Status = "Ready for pickup"
	StatusActive               Status = "Active"
	StatusInactive             Status = "Inactive"
)

// OrderStatuses returns the statuses an order can hold, in lifecycle order.
func OrderStatuses() []Status {
	return []Status{
		StatusLaunched,
		StatusAwaitingDeposit,
		StatusInProgress,
		StatusAwaitingConfirmation,
		StatusAtChinaWarehouse,
		StatusReadyToShip,
		StatusInTransit,
		StatusReadyForPickup,
	}
}

// PartyStatuses returns the statuses a client or supplier can hold.
func PartyStatuses() []Status {
	return []Status{StatusActive, StatusInactive}
}

// ParseOrderStatus validates a raw order status.
func ParseOrderStatus(s string) (Status, error) {
	for _, v := range OrderStatuses() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: order status %q", ErrUnknownValue, s)
}

// ParsePartyStatus validates a raw client or supplier status.
func ParsePartyStatus(s string) (Status, error) {
	for _, v := range PartyStatuses() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: party status %q", ErrUnknownValue, s)
}

// SupplierCategory is the product family a supplier serves.
type SupplierCategory string

const (
	CategoryElectronics SupplierCategory = "electronics"
	CategoryTextile     SupplierCategory = "textile"
	CategoryEquipment   SupplierCategory = "equipment"
	CategoryHousehold   SupplierCategory = "household"
)

// SupplierCategories returns the closed set in menu order.
func SupplierCategories() []SupplierCategory {
	return []SupplierCategory{CategoryElectronics, CategoryTextile, CategoryEquipment, CategoryHousehold}
}

// ParseSupplierCategory validates a raw supplier category.
func ParseSupplierCategory(s string) (SupplierCategory, error) {
	for _, v := range SupplierCategories() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: supplier category %q", ErrUnknownValue, s)
}

// PaymentTerms is the negotiated payment schedule with a supplier.
type PaymentTerms string

const (
	TermsPrepay        PaymentTerms = "prepay"
	TermsFiftyFifty    PaymentTerms = "fifty-fifty"
	TermsThirtySeventy PaymentTerms = "thirty-seventy"
	TermsCustom        PaymentTerms = "custom"
)

// PaymentTermsMenu returns the closed set in menu order.
func PaymentTermsMenu() []PaymentTerms {
	return []PaymentTerms{TermsPrepay, TermsFiftyFifty, TermsThirtySeventy, TermsCustom}
}

// ParsePaymentTerms validates raw payment terms.
func ParsePaymentTerms(s string) (PaymentTerms, error) {
	for _, v := range PaymentTermsMenu() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: payment terms %q", ErrUnknownValue, s)
}

// PaymentStatus tracks whether a client payment has arrived.
type PaymentStatus string

const (
	PaymentReceived PaymentStatus = "received"
	PaymentExpected PaymentStatus = "expected"
	PaymentOverdue  PaymentStatus = "overdue"
)

// PaymentStatuses returns the closed set.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentReceived, PaymentExpected, PaymentOverdue}
}

// ParsePaymentStatus validates a raw payment status.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, v := range PaymentStatuses() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: payment status %q", ErrUnknownValue, s)
}
