package i18n

var ru = map[Key]string{
	KeyAppSubtitle: "Управление закупками",
	KeyLanguage:    "Язык",
	KeyCurrency:    "Валюта",

	KeyDashboard: "Дашборд",
	KeyClients:   "Клиенты",
	KeySuppliers: "Поставщики",
	KeyOrders:    "Заказы",
	KeyProducts:  "Товары",
	KeyLogistics: "Логистика",
	KeyFinance:   "Финансы",
	KeyAnalytics: "Аналитика",

	KeyOverview:            "Обзор ключевых метрик и аналитики",
	KeyClientManagement:    "Управление базой клиентов",
	KeySupplierManagement:  "Управление поставщиками",
	KeyOrderManagement:     "Управление заказами клиентов",
	KeyProductCatalog:      "Номенклатура товаров",
	KeyLogisticsManagement: "Управление отправками и доставками",
	KeyFinancialAnalytics:  "Финансовая аналитика и платежи",
	KeyDetailedAnalytics:   "Детальная аналитика и отчёты",

	KeyActiveOrders:        "Активные заказы",
	KeyTotalClients:        "Всего клиентов",
	KeyMonthRevenue:        "Выручка (месяц)",
	KeyWarehouseChina:      "На складе в КНР",
	KeyOrderDynamics:       "Динамика заказов и выручки",
	KeyLastSixMonths:       "За последние 6 месяцев",
	KeyServiceDistribution: "Распределение услуг",
	KeyServiceTypesOffered: "Типы оказываемых услуг",
	KeyRecentOrders:        "Последние заказы",
	KeyOrdersInWork:        "Актуальные заказы в работе",

	KeyAddClient:   "Добавить клиента",
	KeyAddSupplier: "Добавить поставщика",
	KeyCreateOrder: "Создать заказ",
	KeyAddProduct:  "Добавить товар",
	KeyDetails:     "Подробнее",
	KeyEdit:        "Редактировать",
	KeyDispatch:    "Отправить",

	KeyAtWarehouse:        "На складе в КНР",
	KeyInTransit:          "В пути",
	KeyReadyForPickup:     "Готово к выдаче",
	KeyLogisticsOrders:    "Заказы для логистики",
	KeyReadyToShipOrders:  "Заказы готовые к отправке",
	KeyTotalRevenue:       "Общая выручка",
	KeyPendingPayments:    "Ожидается оплат",
	KeyPaidThisMonth:      "Оплачено (месяц)",
	KeyDebts:              "Задолженности",
	KeyRevenueByMonth:     "Выручка по месяцам",
	KeyIncomeDynamics:     "Динамика поступлений",
	KeyRecentPayments:     "Последние платежи",
	KeyPaymentHistory:     "История поступлений от клиентов",
	KeyTopClients:         "Топ клиентов по выручке",
	KeyLastMonth:          "За последний месяц",
	KeyPopularProducts:    "Популярные товары",
	KeyMostOrdered:        "Наиболее заказываемые позиции",
	KeyManagerPerformance: "Эффективность менеджеров",
	KeyTeamStats:          "Статистика работы команды",

	KeyColOrder:        "Заказ",
	KeyColClient:       "Клиент",
	KeyColSupplier:     "Поставщик",
	KeyColStatus:       "Статус",
	KeyColAmount:       "Сумма",
	KeyColItems:        "Позиций",
	KeyColDate:         "Дата",
	KeyColShipping:     "Доставка",
	KeyColService:      "Услуга",
	KeyColCity:         "Город",
	KeyColTheme:        "Тематика",
	KeyColLegalType:    "Тип клиента",
	KeyColCompany:      "Компания",
	KeyColCommission:   "Комиссия",
	KeyColManager:      "Менеджер",
	KeyColCountry:      "Страна",
	KeyColCategory:     "Категория",
	KeyColContact:      "Контакт",
	KeyColRating:       "Рейтинг",
	KeyColPaymentTerms: "Условия оплаты",
	KeyColSKU:          "Артикул",
	KeyColPrice:        "Цена",
	KeyColUnit:         "Ед. изм.",
	KeyColWeight:       "Вес",
	KeyColMaterial:     "Материал",
	KeyColOrderCount:   "Заказов",
	KeyColRevenue:      "Выручка",
	KeyColClientCount:  "Клиентов",
	KeyColName:         "Название",
	KeyColOperator:     "Оператор заказа",
	KeyColComment:      "Комментарий",
	KeyUnresolved:      "Неизвестная запись",

	KeyNewClient:       "Новый клиент",
	KeyNewClientHint:   "Заполните информацию о клиенте",
	KeyNewSupplier:     "Новый поставщик",
	KeyNewSupplierHint: "Заполните информацию о поставщике",
	KeyNewOrder:        "Новый заказ",
	KeyNewOrderHint:    "Создание заказа для клиента",

	KeyStatusLaunched:             "Запущен",
	KeyStatusAwaitingDeposit:      "Ожидает депозита",
	KeyStatusInProgress:           "В процессе",
	KeyStatusAwaitingConfirmation: "Ждёт подтверждения",
	KeyStatusAtChinaWarehouse:     "На складе в Китае",
	KeyStatusReadyToShip:          "Готов к отправке",
	KeyStatusInTransit:            "В пути",
	KeyStatusReadyForPickup:       "Готов к выдаче",
	KeyStatusActive:               "Активный",
	KeyStatusInactive:             "Неактивный",

	KeyServicePurchase:  "Закуп",
	KeyServiceLogistics: "Логистика",
	KeyServiceBoth:      "Закуп + Логистика",

	KeyShippingAuto:      "Авто",
	KeyShippingRail:      "ЖД",
	KeyShippingSea:       "Море",
	KeyShippingContainer: "Контейнер",

	KeyLegalIndividual:   "Физическое лицо",
	KeyLegalOrganization: "Юридическое лицо",

	KeyTermsPrepay:        "Предоплата 100%",
	KeyTermsFiftyFifty:    "50/50",
	KeyTermsThirtySeventy: "30% аванс, 70% по готовности",
	KeyTermsCustom:        "Индивидуальные",

	KeyCategoryElectronics: "Электроника",
	KeyCategoryTextile:     "Текстиль",
	KeyCategoryEquipment:   "Оборудование",
	KeyCategoryHousehold:   "Товары для дома",

	KeyPaymentReceived: "Получено",
	KeyPaymentExpected: "Ожидается",
	KeyPaymentOverdue:  "Просрочено",

	KeyMonth01: "Январь",
	KeyMonth02: "Февраль",
	KeyMonth03: "Март",
	KeyMonth04: "Апрель",
	KeyMonth05: "Май",
	KeyMonth06: "Июнь",
	KeyMonth07: "Июль",
	KeyMonth08: "Август",
	KeyMonth09: "Сентябрь",
	KeyMonth10: "Октябрь",
	KeyMonth11: "Ноябрь",
	KeyMonth12: "Декабрь",
}
