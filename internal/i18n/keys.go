package i18n

// Key identifies one piece of pre-composed display text.
type Key string

// Navigation and section headers.
const (
	KeyAppSubtitle Key = "appSubtitle"
	KeyLanguage    Key = "language"
	KeyCurrency    Key = "currency"

	KeyDashboard Key = "dashboard"
	KeyClients   Key = "clients"
	KeySuppliers Key = "suppliers"
	KeyOrders    Key = "orders"
	KeyProducts  Key = "products"
	KeyLogistics Key = "logistics"
	KeyFinance   Key = "finance"
	KeyAnalytics Key = "analytics"

	KeyOverview            Key = "overview"
	KeyClientManagement    Key = "clientManagement"
	KeySupplierManagement  Key = "supplierManagement"
	KeyOrderManagement     Key = "orderManagement"
	KeyProductCatalog      Key = "productCatalog"
	KeyLogisticsManagement Key = "logisticsManagement"
	KeyFinancialAnalytics  Key = "financialAnalytics"
	KeyDetailedAnalytics   Key = "detailedAnalytics"
)

// Dashboard cards and charts.
const (
	KeyActiveOrders        Key = "activeOrders"
	KeyTotalClients        Key = "totalClients"
	KeyMonthRevenue        Key = "monthRevenue"
	KeyWarehouseChina      Key = "warehouseChina"
	KeyOrderDynamics       Key = "orderDynamics"
	KeyLastSixMonths       Key = "lastSixMonths"
	KeyServiceDistribution Key = "serviceDistribution"
	KeyServiceTypesOffered Key = "serviceTypesOffered"
	KeyRecentOrders        Key = "recentOrders"
	KeyOrdersInWork        Key = "ordersInWork"
)

// Actions.
const (
	KeyAddClient   Key = "addClient"
	KeyAddSupplier Key = "addSupplier"
	KeyCreateOrder Key = "createOrder"
	KeyAddProduct  Key = "addProduct"
	KeyDetails     Key = "details"
	KeyEdit        Key = "edit"
	KeyDispatch    Key = "dispatch"
)

// Logistics, finance and analytics cards.
const (
	KeyAtWarehouse        Key = "atWarehouse"
	KeyInTransit          Key = "inTransit"
	KeyReadyForPickup     Key = "readyForPickup"
	KeyLogisticsOrders    Key = "logisticsOrders"
	KeyReadyToShipOrders  Key = "readyToShipOrders"
	KeyTotalRevenue       Key = "totalRevenue"
	KeyPendingPayments    Key = "pendingPayments"
	KeyPaidThisMonth      Key = "paidThisMonth"
	KeyDebts              Key = "debts"
	KeyRevenueByMonth     Key = "revenueByMonth"
	KeyIncomeDynamics     Key = "incomeDynamics"
	KeyRecentPayments     Key = "recentPayments"
	KeyPaymentHistory     Key = "paymentHistory"
	KeyTopClients         Key = "topClients"
	KeyLastMonth          Key = "lastMonth"
	KeyPopularProducts    Key = "popularProducts"
	KeyMostOrdered        Key = "mostOrdered"
	KeyManagerPerformance Key = "managerPerformance"
	KeyTeamStats          Key = "teamStats"
)

// Column and field labels.
const (
	KeyColOrder        Key = "colOrder"
	KeyColClient       Key = "colClient"
	KeyColSupplier     Key = "colSupplier"
	KeyColStatus       Key = "colStatus"
	KeyColAmount       Key = "colAmount"
	KeyColItems        Key = "colItems"
	KeyColDate         Key = "colDate"
	KeyColShipping     Key = "colShipping"
	KeyColService      Key = "colService"
	KeyColCity         Key = "colCity"
	KeyColTheme        Key = "colTheme"
	KeyColLegalType    Key = "colLegalType"
	KeyColCompany      Key = "colCompany"
	KeyColCommission   Key = "colCommission"
	KeyColManager      Key = "colManager"
	KeyColCountry      Key = "colCountry"
	KeyColCategory     Key = "colCategory"
	KeyColContact      Key = "colContact"
	KeyColRating       Key = "colRating"
	KeyColPaymentTerms Key = "colPaymentTerms"
	KeyColSKU          Key = "colSku"
	KeyColPrice        Key = "colPrice"
	KeyColUnit         Key = "colUnit"
	KeyColWeight       Key = "colWeight"
	KeyColMaterial     Key = "colMaterial"
	KeyColOrderCount   Key = "colOrderCount"
	KeyColRevenue      Key = "colRevenue"
	KeyColClientCount  Key = "colClientCount"
	KeyColName         Key = "colName"
	KeyColOperator     Key = "colOperator"
	KeyColComment      Key = "colComment"
	KeyUnresolved      Key = "unresolved"
)

// Dialogs.
const (
	KeyNewClient       Key = "newClient"
	KeyNewClientHint   Key = "newClientHint"
	KeyNewSupplier     Key = "newSupplier"
	KeyNewSupplierHint Key = "newSupplierHint"
	KeyNewOrder        Key = "newOrder"
	KeyNewOrderHint    Key = "newOrderHint"
)

// Closed enumeration labels.
const (
	KeyStatusLaunched             Key = "status.launched"
	KeyStatusAwaitingDeposit      Key = "status.awaitingDeposit"
	KeyStatusInProgress           Key = "status.inProgress"
	KeyStatusAwaitingConfirmation Key = "status.awaitingConfirmation"
	KeyStatusAtChinaWarehouse     Key = "status.atChinaWarehouse"
	KeyStatusReadyToShip          Key = "status.readyToShip"
	KeyStatusInTransit            Key = "status.inTransit"
	KeyStatusReadyForPickup       Key = "status.readyForPickup"
	KeyStatusActive               Key = "status.active"
	KeyStatusInactive             Key = "status.inactive"

	KeyServicePurchase  Key = "service.purchase"
	KeyServiceLogistics Key = "service.logistics"
	KeyServiceBoth      Key = "service.both"

	KeyShippingAuto      Key = "shipping.auto"
	KeyShippingRail      Key = "shipping.rail"
	KeyShippingSea       Key = "shipping.sea"
	KeyShippingContainer Key = "shipping.container"

	KeyLegalIndividual   Key = "legal.individual"
	KeyLegalOrganization Key = "legal.organization"

	KeyTermsPrepay        Key = "terms.prepay"
	KeyTermsFiftyFifty    Key = "terms.fiftyFifty"
	KeyTermsThirtySeventy Key = "terms.thirtySeventy"
	KeyTermsCustom        Key = "terms.custom"

	KeyCategoryElectronics Key = "category.electronics"
	KeyCategoryTextile     Key = "category.textile"
	KeyCategoryEquipment   Key = "category.equipment"
	KeyCategoryHousehold   Key = "category.household"

	KeyPaymentReceived Key = "payment.received"
	KeyPaymentExpected Key = "payment.expected"
	KeyPaymentOverdue  Key = "payment.overdue"

	KeyMonth01 Key = "month.01"
	KeyMonth02 Key = "month.02"
	KeyMonth03 Key = "month.03"
	KeyMonth04 Key = "month.04"
	KeyMonth05 Key = "month.05"
	KeyMonth06 Key = "month.06"
	KeyMonth07 Key = "month.07"
	KeyMonth08 Key = "month.08"
	KeyMonth09 Key = "month.09"
	KeyMonth10 Key = "month.10"
	KeyMonth11 Key = "month.11"
	KeyMonth12 Key = "month.12"
)

var allKeys = []Key{
	KeyAppSubtitle, KeyLanguage, KeyCurrency,
	KeyDashboard, KeyClients, KeySuppliers, KeyOrders, KeyProducts, KeyLogistics, KeyFinance, KeyAnalytics,
	KeyOverview, KeyClientManagement, KeySupplierManagement, KeyOrderManagement, KeyProductCatalog,
	KeyLogisticsManagement, KeyFinancialAnalytics, KeyDetailedAnalytics,

	KeyActiveOrders, KeyTotalClients, KeyMonthRevenue, KeyWarehouseChina,
	KeyOrderDynamics, KeyLastSixMonths, KeyServiceDistribution, KeyServiceTypesOffered, KeyRecentOrders, KeyOrdersInWork,

	KeyAddClient, KeyAddSupplier, KeyCreateOrder, KeyAddProduct, KeyDetails, KeyEdit, KeyDispatch,

	KeyAtWarehouse, KeyInTransit, KeyReadyForPickup, KeyLogisticsOrders, KeyReadyToShipOrders,
	KeyTotalRevenue, KeyPendingPayments, KeyPaidThisMonth, KeyDebts, KeyRevenueByMonth, KeyIncomeDynamics,
	KeyRecentPayments, KeyPaymentHistory, KeyTopClients, KeyLastMonth, KeyPopularProducts, KeyMostOrdered,
	KeyManagerPerformance, KeyTeamStats,

	KeyColOrder, KeyColClient, KeyColSupplier, KeyColStatus, KeyColAmount, KeyColItems, KeyColDate,
	KeyColShipping, KeyColService, KeyColCity, KeyColTheme, KeyColLegalType, KeyColCompany, KeyColCommission,
	KeyColManager, KeyColCountry, KeyColCategory, KeyColContact, KeyColRating, KeyColPaymentTerms, KeyColSKU,
	KeyColPrice, KeyColUnit, KeyColWeight, KeyColMaterial, KeyColOrderCount, KeyColRevenue, KeyColClientCount,
	KeyColName, KeyColOperator, KeyColComment, KeyUnresolved,

	KeyNewClient, KeyNewClientHint, KeyNewSupplier, KeyNewSupplierHint, KeyNewOrder, KeyNewOrderHint,

	KeyStatusLaunched, KeyStatusAwaitingDeposit, KeyStatusInProgress, KeyStatusAwaitingConfirmation,
	KeyStatusAtChinaWarehouse, KeyStatusReadyToShip, KeyStatusInTransit, KeyStatusReadyForPickup,
	KeyStatusActive, KeyStatusInactive,
	KeyServicePurchase, KeyServiceLogistics, KeyServiceBoth,
	KeyShippingAuto, KeyShippingRail, KeyShippingSea, KeyShippingContainer,
	KeyLegalIndividual, KeyLegalOrganization,
	KeyTermsPrepay, KeyTermsFiftyFifty, KeyTermsThirtySeventy, KeyTermsCustom,
	KeyCategoryElectronics, KeyCategoryTextile, KeyCategoryEquipment, KeyCategoryHousehold,
	KeyPaymentReceived, KeyPaymentExpected, KeyPaymentOverdue,
	KeyMonth01, KeyMonth02, KeyMonth03, KeyMonth04, KeyMonth05, KeyMonth06,
	KeyMonth07, KeyMonth08, KeyMonth09, KeyMonth10, KeyMonth11, KeyMonth12,
}

// Keys returns every defined key in declaration order.
func Keys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}
