// Package i18n resolves pre-composed display text for the supported locales.
package i18n

import (
	"fmt"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/model"
	"golang.org/x/text/language"
)

// Locale is one of the supported display languages.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// DefaultLocale is used when no valid preference exists.
const DefaultLocale = LocaleRU

var tables = map[Locale]map[Key]string{
	LocaleRU: ru,
	LocaleEN: en,
	LocaleZH: zh,
}

var selectorLabels = map[Locale]string{
	LocaleRU: "🇷🇺 Русский",
	LocaleEN: "🇬🇧 English",
	LocaleZH: "🇨🇳 中文",
}

// Locales returns the supported locales in selector order.
func Locales() []Locale {
	return []Locale{LocaleRU, LocaleEN, LocaleZH}
}

// ParseLocale validates a stored or requested locale code. Case and
// surrounding space are ignored.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tables[l]; ok {
		return l, nil
	}
	return DefaultLocale, fmt.Errorf("%w: %q", common.ErrUnknownLocale, s)
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	_, ok := tables[l]
	return ok
}

// Tag returns the language tag used for number formatting.
func (l Locale) Tag() language.Tag {
	switch l {
	case LocaleEN:
		return language.English
	case LocaleZH:
		return language.Chinese
	default:
		return language.Russian
	}
}

// SelectorLabel returns the flag and native name shown in the language selector.
func (l Locale) SelectorLabel() string {
	if label, ok := selectorLabels[l]; ok {
		return label
	}
	return selectorLabels[DefaultLocale]
}

// Resolve returns the text for key in locale l. Unknown locales resolve
// against the default table; unknown keys return the key itself.
func Resolve(l Locale, k Key) string {
	table, ok := tables[l]
	if !ok {
		table = tables[DefaultLocale]
	}
	if text, ok := table[k]; ok {
		return text
	}
	return string(k)
}

// Table returns a copy of the full text table for l.
func Table(l Locale) map[Key]string {
	table, ok := tables[l]
	if !ok {
		table = tables[DefaultLocale]
	}
	out := make(map[Key]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Translator binds a locale so callers can resolve keys without repeating it.
type Translator struct {
	locale Locale
}

// For returns a translator for l, falling back to the default locale.
func For(l Locale) Translator {
	if !l.Valid() {
		l = DefaultLocale
	}
	return Translator{locale: l}
}

// Locale returns the bound locale.
func (t Translator) Locale() Locale {
	return t.locale
}

// T resolves k in the bound locale.
func (t Translator) T(k Key) string {
	return Resolve(t.locale, k)
}

var statusKeys = map[model.Status]Key{
	model.StatusLaunched:             KeyStatusLaunched,
	model.StatusAwaitingDeposit:      KeyStatusAwaitingDeposit,
	model.StatusInProgress:           KeyStatusInProgress,
	model.StatusAwaitingConfirmation: KeyStatusAwaitingConfirmation,
	model.StatusAtChinaWarehouse:     KeyStatusAtChinaWarehouse,
	model.StatusReadyToShip:          KeyStatusReadyToShip,
	model.StatusInTransit:            KeyStatusInTransit,
	model.StatusReadyForPickup:       KeyStatusReadyForPickup,
	model.StatusActive:               KeyStatusActive,
	model.StatusInactive:             KeyStatusInactive,
}

// Status returns the localized status label; unknown statuses are shown raw.
func (t Translator) Status(s model.Status) string {
	if k, ok := statusKeys[s]; ok {
		return t.T(k)
	}
	return string(s)
}

var serviceKeys = map[model.ServiceType]Key{
	model.ServicePurchase:  KeyServicePurchase,
	model.ServiceLogistics: KeyServiceLogistics,
	model.ServiceBoth:      KeyServiceBoth,
}

// Service returns the localized service type label.
func (t Translator) Service(s model.ServiceType) string {
	if k, ok := serviceKeys[s]; ok {
		return t.T(k)
	}
	return string(s)
}

var shippingKeys = map[model.ShippingMethod]Key{
	model.ShippingAuto:      KeyShippingAuto,
	model.ShippingRail:      KeyShippingRail,
	model.ShippingSea:       KeyShippingSea,
	model.ShippingContainer: KeyShippingContainer,
}

// Shipping returns the localized shipping method label.
func (t Translator) Shipping(s model.ShippingMethod) string {
	if k, ok := shippingKeys[s]; ok {
		return t.T(k)
	}
	return string(s)
}

// LegalType returns the localized legal type label.
func (t Translator) LegalType(lt model.LegalType) string {
	switch lt {
	case model.LegalTypeIndividual:
		return t.T(KeyLegalIndividual)
	case model.LegalTypeOrganization:
		return t.T(KeyLegalOrganization)
	default:
		return string(lt)
	}
}

var termsKeys = map[model.PaymentTerms]Key{
	model.TermsPrepay:        KeyTermsPrepay,
	model.TermsFiftyFifty:    KeyTermsFiftyFifty,
	model.TermsThirtySeventy: KeyTermsThirtySeventy,
	model.TermsCustom:        KeyTermsCustom,
}

// PaymentTerms returns the localized payment terms label.
func (t Translator) PaymentTerms(p model.PaymentTerms) string {
	if k, ok := termsKeys[p]; ok {
		return t.T(k)
	}
	return string(p)
}

var categoryKeys = map[model.SupplierCategory]Key{
	model.CategoryElectronics: KeyCategoryElectronics,
	model.CategoryTextile:     KeyCategoryTextile,
	model.CategoryEquipment:   KeyCategoryEquipment,
	model.CategoryHousehold:   KeyCategoryHousehold,
}

// SupplierCategory returns the localized supplier category label.
func (t Translator) SupplierCategory(c model.SupplierCategory) string {
	if k, ok := categoryKeys[c]; ok {
		return t.T(k)
	}
	return string(c)
}

var paymentKeys = map[model.PaymentStatus]Key{
	model.PaymentReceived: KeyPaymentReceived,
	model.PaymentExpected: KeyPaymentExpected,
	model.PaymentOverdue:  KeyPaymentOverdue,
}

// PaymentStatus returns the localized payment status label.
func (t Translator) PaymentStatus(p model.PaymentStatus) string {
	if k, ok := paymentKeys[p]; ok {
		return t.T(k)
	}
	return string(p)
}

// Month renders a YYYY-MM month as its localized name. Malformed input is returned unchanged.
func (t Translator) Month(month string) string {
	if len(month) != 7 || month[4] != '-' {
		return month
	}
	k := Key("month." + month[5:])
	if _, ok := tables[t.locale][k]; !ok {
		return month
	}
	return t.T(k)
}
