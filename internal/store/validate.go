package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{4}-\d{3,}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("order_id", validateOrderID)
	return v
}

// validateMoney accepts non-negative decimal strings.
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

func validateOrderID(fl validator.FieldLevel) bool {
	return orderIDPattern.MatchString(fl.Field().String())
}

// describe flattens validator errors into one line per failing field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s fails %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s fails %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func invalid(file string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", common.ErrInvalidFixture, file, fmt.Sprintf(format, args...))
}

// checkUnique fails on the first repeated key.
func checkUnique[T any](file, field string, items []T, key func(T) string) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		k := key(item)
		if prev, ok := seen[k]; ok {
			return invalid(file, "duplicate %s %q at %d and %d", field, k, prev, i)
		}
		seen[k] = i
	}
	return nil
}

// checkSnapshot runs the cross-record rules a single record cannot express.
func checkSnapshot(s Snapshot) error {
	if err := checkUnique(clientsFile, "id", s.Clients, func(c model.Client) string { return c.ID }); err != nil {
		return err
	}
	if err := checkUnique(suppliersFile, "id", s.Suppliers, func(c model.Supplier) string { return c.ID }); err != nil {
		return err
	}
	if err := checkUnique(productsFile, "id", s.Products, func(p model.Product) string { return p.ID }); err != nil {
		return err
	}
	if err := checkUnique(productsFile, "sku", s.Products, func(p model.Product) string { return p.SKU }); err != nil {
		return err
	}
	if err := checkUnique(ordersFile, "id", s.Orders, func(o model.Order) string { return o.ID }); err != nil {
		return err
	}
	if err := checkUnique(paymentsFile, "id", s.Payments, func(p model.Payment) string { return p.ID }); err != nil {
		return err
	}
	if err := checkUnique(seriesFile, "service", s.ServiceShares, func(sh model.ServiceShare) string { return string(sh.Service) }); err != nil {
		return err
	}

	// Months must be strictly chronological so the latest point is last.
	for i := 1; i < len(s.MonthlyMetrics); i++ {
		prev, cur := s.MonthlyMetrics[i-1].Month, s.MonthlyMetrics[i].Month
		if cur <= prev {
			return invalid(seriesFile, "month %s does not follow %s", cur, prev)
		}
	}
	return nil
}
