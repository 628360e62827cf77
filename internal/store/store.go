// Package store holds the read-only dashboard collections loaded from fixtures.
package store

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var embedded embed.FS

// Snapshot is a copy of every collection in fixture order.
type Snapshot struct {
	Clients        []model.Client
	Suppliers      []model.Supplier
	Products       []model.Product
	Orders         []model.Order
	MonthlyMetrics []model.MonthlyMetric
	ServiceShares  []model.ServiceShare
	Payments       []model.Payment
}

func (s Snapshot) clone() Snapshot {
	orders := slices.Clone(s.Orders)
	for i := range orders {
		orders[i].Lines = slices.Clone(orders[i].Lines)
	}
	return Snapshot{
		Clients:        slices.Clone(s.Clients),
		Suppliers:      slices.Clone(s.Suppliers),
		Products:       slices.Clone(s.Products),
		Orders:         orders,
		MonthlyMetrics: slices.Clone(s.MonthlyMetrics),
		ServiceShares:  slices.Clone(s.ServiceShares),
		Payments:       slices.Clone(s.Payments),
	}
}

// Store serves the loaded collections. It is never mutated after loading and
// is safe for concurrent readers.
type Store struct {
	data      Snapshot
	clients   map[string]int
	suppliers map[string]int
	products  map[string]int
}

// Load reads the fixtures embedded in the binary.
func Load() (*Store, error) {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		return nil, fmt.Errorf("open embedded fixtures: %w", err)
	}
	return LoadFrom(sub)
}

// LoadFrom reads the six fixture files from the root of fsys.
func LoadFrom(fsys fs.FS) (*Store, error) {
	v := newValidator()

	var (
		clients   clientsDoc
		suppliers suppliersDoc
		products  productsDoc
		orders    ordersDoc
		series    seriesDoc
		payments  paymentsDoc
	)
	docs := []struct {
		file string
		out  any
	}{
		{clientsFile, &clients},
		{suppliersFile, &suppliers},
		{productsFile, &products},
		{ordersFile, &orders},
		{seriesFile, &series},
		{paymentsFile, &payments},
	}
	for _, d := range docs {
		if err := decodeFile(fsys, d.file, d.out, v); err != nil {
			return nil, err
		}
	}

	var (
		snap Snapshot
		err  error
	)
	if snap.Clients, err = convert[model.Client](clientsFile, clients.Clients); err != nil {
		return nil, err
	}
	if snap.Suppliers, err = convert[model.Supplier](suppliersFile, suppliers.Suppliers); err != nil {
		return nil, err
	}
	if snap.Products, err = convert[model.Product](productsFile, products.Products); err != nil {
		return nil, err
	}
	if snap.Orders, err = convert[model.Order](ordersFile, orders.Orders); err != nil {
		return nil, err
	}
	if snap.MonthlyMetrics, err = convert[model.MonthlyMetric](seriesFile, series.Monthly); err != nil {
		return nil, err
	}
	if snap.ServiceShares, err = convert[model.ServiceShare](seriesFile, series.Shares); err != nil {
		return nil, err
	}
	if snap.Payments, err = convert[model.Payment](paymentsFile, payments.Payments); err != nil {
		return nil, err
	}
	if err := checkSnapshot(snap); err != nil {
		return nil, err
	}

	return newStore(snap), nil
}

func newStore(snap Snapshot) *Store {
	s := &Store{
		data:      snap,
		clients:   make(map[string]int, len(snap.Clients)),
		suppliers: make(map[string]int, len(snap.Suppliers)),
		products:  make(map[string]int, len(snap.Products)),
	}
	for i, c := range snap.Clients {
		s.clients[c.ID] = i
	}
	for i, sup := range snap.Suppliers {
		s.suppliers[sup.ID] = i
	}
	for i, p := range snap.Products {
		s.products[p.ID] = i
	}
	return s
}

func decodeFile(fsys fs.FS, file string, out any, v *validator.Validate) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrInvalidFixture, file, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", common.ErrInvalidFixture, file, err)
	}
	if err := v.Struct(out); err != nil {
		return invalid(file, "%s", describe(err))
	}
	return nil
}

type record[M any] interface {
	toModel() (M, error)
}

func convert[M any, R record[M]](file string, records []R) ([]M, error) {
	out := make([]M, 0, len(records))
	for i, r := range records {
		m, err := r.toModel()
		if err != nil {
			return nil, invalid(file, "record %d: %v", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() Snapshot {
	return s.data.clone()
}

// Clients returns all clients.
func (s *Store) Clients() []model.Client { return slices.Clone(s.data.Clients) }

// Suppliers returns all suppliers.
func (s *Store) Suppliers() []model.Supplier { return slices.Clone(s.data.Suppliers) }

// Products returns all products.
func (s *Store) Products() []model.Product { return slices.Clone(s.data.Products) }

// Orders returns all orders.
func (s *Store) Orders() []model.Order { return s.data.clone().Orders }

// MonthlyMetrics returns the revenue history, oldest first.
func (s *Store) MonthlyMetrics() []model.MonthlyMetric { return slices.Clone(s.data.MonthlyMetrics) }

// ServiceShares returns the reported service distribution.
func (s *Store) ServiceShares() []model.ServiceShare { return slices.Clone(s.data.ServiceShares) }

// Payments returns all payments.
func (s *Store) Payments() []model.Payment { return slices.Clone(s.data.Payments) }

// Client looks up a client by id.
func (s *Store) Client(id string) (model.Client, bool) {
	i, ok := s.clients[id]
	if !ok {
		return model.Client{}, false
	}
	return s.data.Clients[i], true
}

// Supplier looks up a supplier by id.
func (s *Store) Supplier(id string) (model.Supplier, bool) {
	i, ok := s.suppliers[id]
	if !ok {
		return model.Supplier{}, false
	}
	return s.data.Suppliers[i], true
}

// Product looks up a product by id.
func (s *Store) Product(id string) (model.Product, bool) {
	i, ok := s.products[id]
	if !ok {
		return model.Product{}, false
	}
	return s.data.Products[i], true
}

// ByStatus returns the orders whose status is one of statuses, keeping their
// relative order. No statuses yields an empty result.
func ByStatus(orders []model.Order, statuses ...model.Status) []model.Order {
	out := make([]model.Order, 0)
	for _, o := range orders {
		if slices.Contains(statuses, o.Status) {
			out = append(out, o)
		}
	}
	return out
}
