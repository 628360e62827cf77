package i18n

var en = map[Key]string{
	KeyAppSubtitle: "Procurement management",
	KeyLanguage:    "Language",
	KeyCurrency:    "Currency",

	KeyDashboard: "Dashboard",
	KeyClients:   "Clients",
	KeySuppliers: "Suppliers",
	KeyOrders:    "Orders",
	KeyProducts:  "Products",
	KeyLogistics: "Logistics",
	KeyFinance:   "Finance",
	KeyAnalytics: "Analytics",

	KeyOverview:            "Overview of key metrics and analytics",
	KeyClientManagement:    "Client database management",
	KeySupplierManagement:  "Supplier management",
	KeyOrderManagement:     "Client order management",
	KeyProductCatalog:      "Product nomenclature",
	KeyLogisticsManagement: "Shipping and delivery management",
	KeyFinancialAnalytics:  "Financial analytics and payments",
	KeyDetailedAnalytics:   "Detailed analytics and reports",

	KeyActiveOrders:        "Active Orders",
	KeyTotalClients:        "Total Clients",
	KeyMonthRevenue:        "Revenue (Month)",
	KeyWarehouseChina:      "China Warehouse",
	KeyOrderDynamics:       "Orders and revenue dynamics",
	KeyLastSixMonths:       "Last 6 months",
	KeyServiceDistribution: "Service distribution",
	KeyServiceTypesOffered: "Types of services provided",
	KeyRecentOrders:        "Recent orders",
	KeyOrdersInWork:        "Current orders in progress",

	KeyAddClient:   "Add Client",
	KeyAddSupplier: "Add Supplier",
	KeyCreateOrder: "Create Order",
	KeyAddProduct:  "Add Product",
	KeyDetails:     "Details",
	KeyEdit:        "Edit",
	KeyDispatch:    "Dispatch",

	KeyAtWarehouse:        "At China warehouse",
	KeyInTransit:          "In transit",
	KeyReadyForPickup:     "Ready for pickup",
	KeyLogisticsOrders:    "Orders for logistics",
	KeyReadyToShipOrders:  "Orders ready to ship",
	KeyTotalRevenue:       "Total revenue",
	KeyPendingPayments:    "Pending payments",
	KeyPaidThisMonth:      "Paid (month)",
	KeyDebts:              "Overdue debts",
	KeyRevenueByMonth:     "Revenue by month",
	KeyIncomeDynamics:     "Income dynamics",
	KeyRecentPayments:     "Recent payments",
	KeyPaymentHistory:     "Client payment history",
	KeyTopClients:         "Top clients by revenue",
	KeyLastMonth:          "For the last month",
	KeyPopularProducts:    "Popular products",
	KeyMostOrdered:        "Most ordered items",
	KeyManagerPerformance: "Manager performance",
	KeyTeamStats:          "Team statistics",

	KeyColOrder:        "Order",
	KeyColClient:       "Client",
	KeyColSupplier:     "Supplier",
	KeyColStatus:       "Status",
	KeyColAmount:       "Amount",
	KeyColItems:        "Items",
	KeyColDate:         "Date",
	KeyColShipping:     "Shipping",
	KeyColService:      "Service",
	KeyColCity:         "City",
	KeyColTheme:        "Theme",
	KeyColLegalType:    "Client type",
	KeyColCompany:      "Company",
	KeyColCommission:   "Commission",
	KeyColManager:      "Manager",
	KeyColCountry:      "Country",
	KeyColCategory:     "Category",
	KeyColContact:      "Contact",
	KeyColRating:       "Rating",
	KeyColPaymentTerms: "Payment terms",
	KeyColSKU:          "SKU",
	KeyColPrice:        "Price",
	KeyColUnit:         "Unit",
	KeyColWeight:       "Weight",
	KeyColMaterial:     "Material",
	KeyColOrderCount:   "Orders",
	KeyColRevenue:      "Revenue",
	KeyColClientCount:  "Clients",
	KeyColName:         "Name",
	KeyColOperator:     "Order operator",
	KeyColComment:      "Comment",
	KeyUnresolved:      "Unknown record",

	KeyNewClient:       "New client",
	KeyNewClientHint:   "Fill in the client information",
	KeyNewSupplier:     "New supplier",
	KeyNewSupplierHint: "Fill in the supplier information",
	KeyNewOrder:        "New order",
	KeyNewOrderHint:    "Create an order for a client",

	KeyStatusLaunched:             "Launched",
	KeyStatusAwaitingDeposit:      "Awaiting deposit",
	KeyStatusInProgress:           "In progress",
	KeyStatusAwaitingConfirmation: "Awaiting confirmation",
	KeyStatusAtChinaWarehouse:     "At China warehouse",
	KeyStatusReadyToShip:          "Ready to ship",
	KeyStatusInTransit:            "In transit",
	KeyStatusReadyForPickup:       "Ready for pickup",
	KeyStatusActive:               "Active",
	KeyStatusInactive:             "Inactive",

	KeyServicePurchase:  "Purchase",
	KeyServiceLogistics: "Logistics",
	KeyServiceBoth:      "Purchase + Logistics",

	KeyShippingAuto:      "Truck",
	KeyShippingRail:      "Rail",
	KeyShippingSea:       "Sea",
	KeyShippingContainer: "Container",

	KeyLegalIndividual:   "Individual",
	KeyLegalOrganization: "Organization",

	KeyTermsPrepay:        "100% prepayment",
	KeyTermsFiftyFifty:    "50/50",
	KeyTermsThirtySeventy: "30% deposit, 70% on completion",
	KeyTermsCustom:        "Custom",

	KeyCategoryElectronics: "Electronics",
	KeyCategoryTextile:     "Textile",
	KeyCategoryEquipment:   "Equipment",
	KeyCategoryHousehold:   "Household goods",

	KeyPaymentReceived: "Received",
	KeyPaymentExpected: "Expected",
	KeyPaymentOverdue:  "Overdue",

	KeyMonth01: "January",
	KeyMonth02: "February",
	KeyMonth03: "March",
	KeyMonth04: "April",
	KeyMonth05: "May",
	KeyMonth06: "June",
	KeyMonth07: "July",
	KeyMonth08: "August",
	KeyMonth09: "September",
	KeyMonth10: "October",
	KeyMonth11: "November",
	KeyMonth12: "December",
}
