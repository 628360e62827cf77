package dashboard

import (
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
)

func (r renderer) dialogs() []viewmodel.DialogView {
	var out []viewmodel.DialogView
	for _, k := range r.state.Dialogs.Open() {
		switch k {
		case DialogClient:
			out = append(out, r.clientDialog())
		case DialogSupplier:
			out = append(out, r.supplierDialog())
		case DialogOrder:
			out = append(out, r.orderDialog())
		}
	}
	return out
}

func (r renderer) field(k i18n.Key, kind viewmodel.FieldKind) viewmodel.Field {
	return viewmodel.Field{Label: r.tr.T(k), Kind: kind}
}

func (r renderer) menu(k i18n.Key, options []viewmodel.Option) viewmodel.Field {
	return viewmodel.Field{Label: r.tr.T(k), Kind: viewmodel.FieldSelect, Options: options}
}

// options builds a closed menu from values and their localized labels.
func options[T ~string](values []T, label func(T) string) []viewmodel.Option {
	out := make([]viewmodel.Option, 0, len(values))
	for _, v := range values {
		out = append(out, viewmodel.Option{Value: string(v), Label: label(v)})
	}
	return out
}

func (r renderer) clientDialog() viewmodel.DialogView {
	return viewmodel.DialogView{
		Kind:  string(DialogClient),
		Title: r.tr.T(i18n.KeyNewClient),
		Hint:  r.tr.T(i18n.KeyNewClientHint),
		Fields: []viewmodel.Field{
			r.field(i18n.KeyColName, viewmodel.FieldText),
			r.field(i18n.KeyColCity, viewmodel.FieldText),
			r.field(i18n.KeyColTheme, viewmodel.FieldText),
			r.menu(i18n.KeyColLegalType, options(model.LegalTypes(), r.tr.LegalType)),
			r.field(i18n.KeyColCompany, viewmodel.FieldText),
			r.menu(i18n.KeyColService, options(model.ServiceTypes(), r.tr.Service)),
			r.field(i18n.KeyColCommission, viewmodel.FieldNumber),
			r.field(i18n.KeyColManager, viewmodel.FieldText),
			r.menu(i18n.KeyColStatus, options(model.PartyStatuses(), r.tr.Status)),
		},
		Submit: r.tr.T(i18n.KeyAddClient),
	}
}

func (r renderer) supplierDialog() viewmodel.DialogView {
	return viewmodel.DialogView{
		Kind:  string(DialogSupplier),
		Title: r.tr.T(i18n.KeyNewSupplier),
		Hint:  r.tr.T(i18n.KeyNewSupplierHint),
		Fields: []viewmodel.Field{
			r.field(i18n.KeyColName, viewmodel.FieldText),
			r.field(i18n.KeyColCountry, viewmodel.FieldText),
			r.menu(i18n.KeyColCategory, options(model.SupplierCategories(), r.tr.SupplierCategory)),
			r.field(i18n.KeyColContact, viewmodel.FieldText),
			r.field(i18n.KeyColRating, viewmodel.FieldNumber),
			r.menu(i18n.KeyColPaymentTerms, options(model.PaymentTermsMenu(), r.tr.PaymentTerms)),
			r.field(i18n.KeyColComment, viewmodel.FieldNote),
		},
		Submit: r.tr.T(i18n.KeyAddSupplier),
	}
}

func (r renderer) orderDialog() viewmodel.DialogView {
	clients := make([]viewmodel.Option, 0, len(r.snap.Clients))
	for _, c := range r.snap.Clients {
		clients = append(clients, viewmodel.Option{Value: c.ID, Label: c.Name})
	}
	suppliers := make([]viewmodel.Option, 0, len(r.snap.Suppliers))
	for _, s := range r.snap.Suppliers {
		suppliers = append(suppliers, viewmodel.Option{Value: s.ID, Label: s.Name})
	}

	return viewmodel.DialogView{
		Kind:  string(DialogOrder),
		Title: r.tr.T(i18n.KeyNewOrder),
		Hint:  r.tr.T(i18n.KeyNewOrderHint),
		Fields: []viewmodel.Field{
			r.menu(i18n.KeyColClient, clients),
			r.menu(i18n.KeyColSupplier, suppliers),
			r.menu(i18n.KeyColShipping, options(model.ShippingMethods(), r.tr.Shipping)),
			r.menu(i18n.KeyColService, options(model.ServiceTypes(), r.tr.Service)),
			r.field(i18n.KeyColItems, viewmodel.FieldNumber),
			r.field(i18n.KeyColAmount, viewmodel.FieldNumber),
			r.field(i18n.KeyColDate, viewmodel.FieldDate),
			r.field(i18n.KeyColOperator, viewmodel.FieldText),
			r.field(i18n.KeyColComment, viewmodel.FieldNote),
		},
		Submit: r.tr.T(i18n.KeyCreateOrder),
	}
}
