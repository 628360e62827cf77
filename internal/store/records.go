package store

import (
	"fmt"
	"time"

	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/shopspring/decimal"
)

// Fixture files, one per collection, at the root of the fixture filesystem.
const (
	clientsFile   = "clients.yaml"
	suppliersFile = "suppliers.yaml"
	productsFile  = "products.yaml"
	ordersFile    = "orders.yaml"
	seriesFile    = "series.yaml"
	paymentsFile  = "payments.yaml"
)

const dateLayout = "2006-01-02"

type clientsDoc struct {
	Clients []clientRecord `yaml:"clients" validate:"dive"`
}

type clientRecord struct {
	ID          string  `yaml:"id" validate:"required"`
	Name        string  `yaml:"name" validate:"required"`
	City        string  `yaml:"city" validate:"required"`
	Theme       string  `yaml:"theme"`
	LegalType   string  `yaml:"legal_type" validate:"required"`
	Company     string  `yaml:"company" validate:"required_if=LegalType organization"`
	ServiceType string  `yaml:"service_type" validate:"required"`
	Status      string  `yaml:"status" validate:"required"`
	Manager     string  `yaml:"manager" validate:"required"`
	Commission  float64 `yaml:"commission" validate:"gte=0,lte=100"`
}

func (r clientRecord) toModel() (model.Client, error) {
	legal, err := model.ParseLegalType(r.LegalType)
	if err != nil {
		return model.Client{}, err
	}
	service, err := model.ParseServiceType(r.ServiceType)
	if err != nil {
		return model.Client{}, err
	}
	status, err := model.ParsePartyStatus(r.Status)
	if err != nil {
		return model.Client{}, err
	}
	if legal == model.LegalTypeIndividual && r.Company != "" {
		return model.Client{}, fmt.Errorf("company %q set on an individual", r.Company)
	}
	return model.Client{
		ID:          r.ID,
		Name:        r.Name,
		City:        r.City,
		Theme:       r.Theme,
		LegalType:   legal,
		Company:     r.Company,
		ServiceType: service,
		Status:      status,
		Manager:     r.Manager,
		Commission:  decimal.NewFromFloat(r.Commission),
	}, nil
}

type suppliersDoc struct {
	Suppliers []supplierRecord `yaml:"suppliers" validate:"dive"`
}

type supplierRecord struct {
	ID           string  `yaml:"id" validate:"required"`
	Name         string  `yaml:"name" validate:"required"`
	Country      string  `yaml:"country" validate:"required"`
	Category     string  `yaml:"category" validate:"required"`
	Contact      string  `yaml:"contact" validate:"required"`
	PaymentTerms string  `yaml:"payment_terms" validate:"required"`
	Status       string  `yaml:"status" validate:"required"`
	Rating       float64 `yaml:"rating" validate:"gte=1,lte=5"`
}

func (r supplierRecord) toModel() (model.Supplier, error) {
	category, err := model.ParseSupplierCategory(r.Category)
	if err != nil {
		return model.Supplier{}, err
	}
	terms, err := model.ParsePaymentTerms(r.PaymentTerms)
	if err != nil {
		return model.Supplier{}, err
	}
	status, err := model.ParsePartyStatus(r.Status)
	if err != nil {
		return model.Supplier{}, err
	}
	return model.Supplier{
		ID:           r.ID,
		Name:         r.Name,
		Country:      r.Country,
		Category:     category,
		Contact:      r.Contact,
		PaymentTerms: terms,
		Status:       status,
		Rating:       r.Rating,
	}, nil
}

type productsDoc struct {
	Products []productRecord `yaml:"products" validate:"dive"`
}

type productRecord struct {
	ID       string  `yaml:"id" validate:"required"`
	SKU      string  `yaml:"sku" validate:"required"`
	Name     string  `yaml:"name" validate:"required"`
	Price    string  `yaml:"price" validate:"required,money"`
	Unit     string  `yaml:"unit" validate:"required"`
	Weight   float64 `yaml:"weight" validate:"gte=0"`
	Material string  `yaml:"material"`
	Glyph    string  `yaml:"glyph"`
}

func (r productRecord) toModel() (model.Product, error) {
	return model.Product{
		ID:       r.ID,
		SKU:      r.SKU,
		Name:     r.Name,
		Unit:     r.Unit,
		Material: r.Material,
		Glyph:    r.Glyph,
		Price:    decimal.RequireFromString(r.Price),
		Weight:   r.Weight,
	}, nil
}

type ordersDoc struct {
	Orders []orderRecord `yaml:"orders" validate:"dive"`
}

type orderRecord struct {
	ID         string       `yaml:"id" validate:"required,order_id"`
	ClientID   string       `yaml:"client_id" validate:"required"`
	SupplierID string       `yaml:"supplier_id"`
	Status     string       `yaml:"status" validate:"required"`
	Total      string       `yaml:"total" validate:"required,money"`
	Date       string       `yaml:"date" validate:"required,datetime=2006-01-02"`
	Shipping   string       `yaml:"shipping" validate:"required"`
	Service    string       `yaml:"service" validate:"required"`
	Lines      []lineRecord `yaml:"lines" validate:"dive"`
	Items      int          `yaml:"items" validate:"gte=0"`
}

type lineRecord struct {
	ProductID string `yaml:"product_id" validate:"required"`
	Quantity  int    `yaml:"quantity" validate:"gt=0"`
}

func (r orderRecord) toModel() (model.Order, error) {
	status, err := model.ParseOrderStatus(r.Status)
	if err != nil {
		return model.Order{}, err
	}
	shipping, err := model.ParseShippingMethod(r.Shipping)
	if err != nil {
		return model.Order{}, err
	}
	service, err := model.ParseServiceType(r.Service)
	if err != nil {
		return model.Order{}, err
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.Order{}, err
	}

	var lines []model.OrderLine
	for _, l := range r.Lines {
		lines = append(lines, model.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	order := model.Order{
		Date:       date,
		ID:         r.ID,
		ClientID:   r.ClientID,
		SupplierID: r.SupplierID,
		Status:     status,
		Shipping:   shipping,
		Service:    service,
		Lines:      lines,
		Total:      decimal.RequireFromString(r.Total),
		Items:      r.Items,
	}
	if len(lines) > 0 && order.LineQuantity() != order.Items {
		return model.Order{}, fmt.Errorf("lines sum to %d, items is %d", order.LineQuantity(), order.Items)
	}
	return order, nil
}

type seriesDoc struct {
	Monthly []metricRecord `yaml:"monthly" validate:"dive"`
	Shares  []shareRecord  `yaml:"service_shares" validate:"dive"`
}

type metricRecord struct {
	Month   string `yaml:"month" validate:"required,datetime=2006-01"`
	Revenue string `yaml:"revenue" validate:"required,money"`
	Orders  int    `yaml:"orders" validate:"gte=0"`
}

func (r metricRecord) toModel() (model.MonthlyMetric, error) {
	return model.MonthlyMetric{
		Month:   r.Month,
		Revenue: decimal.RequireFromString(r.Revenue),
		Orders:  r.Orders,
	}, nil
}

type shareRecord struct {
	Service string  `yaml:"service" validate:"required"`
	Percent float64 `yaml:"percent" validate:"gte=0,lte=100"`
}

func (r shareRecord) toModel() (model.ServiceShare, error) {
	service, err := model.ParseServiceType(r.Service)
	if err != nil {
		return model.ServiceShare{}, err
	}
	return model.ServiceShare{Service: service, Percent: r.Percent}, nil
}

type paymentsDoc struct {
	Payments []paymentRecord `yaml:"payments" validate:"dive"`
}

type paymentRecord struct {
	ID       string `yaml:"id" validate:"required"`
	ClientID string `yaml:"client_id" validate:"required"`
	OrderID  string `yaml:"order_id"`
	Amount   string `yaml:"amount" validate:"required,money"`
	Date     string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Status   string `yaml:"status" validate:"required"`
}

func (r paymentRecord) toModel() (model.Payment, error) {
	status, err := model.ParsePaymentStatus(r.Status)
	if err != nil {
		return model.Payment{}, err
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.Payment{}, err
	}
	return model.Payment{
		Date:     date,
		ID:       r.ID,
		ClientID: r.ClientID,
		OrderID:  r.OrderID,
		Status:   status,
		Amount:   decimal.RequireFromString(r.Amount),
	}, nil
}
