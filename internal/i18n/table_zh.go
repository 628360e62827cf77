package i18n

var zh = map[Key]string{
	KeyAppSubtitle: "采购管理",
	KeyLanguage:    "语言",
	KeyCurrency:    "货币",

	KeyDashboard: "仪表板",
	KeyClients:   "客户",
	KeySuppliers: "供应商",
	KeyOrders:    "订单",
	KeyProducts:  "产品",
	KeyLogistics: "物流",
	KeyFinance:   "财务",
	KeyAnalytics: "分析",

	KeyOverview:            "关键指标和分析概览",
	KeyClientManagement:    "客户数据库管理",
	KeySupplierManagement:  "供应商管理",
	KeyOrderManagement:     "客户订单管理",
	KeyProductCatalog:      "产品目录",
	KeyLogisticsManagement: "运输和交付管理",
	KeyFinancialAnalytics:  "财务分析和付款",
	KeyDetailedAnalytics:   "详细分析和报告",

	KeyActiveOrders:        "活跃订单",
	KeyTotalClients:        "客户总数",
	KeyMonthRevenue:        "月收入",
	KeyWarehouseChina:      "中国仓库",
	KeyOrderDynamics:       "订单和收入动态",
	KeyLastSixMonths:       "最近6个月",
	KeyServiceDistribution: "服务分布",
	KeyServiceTypesOffered: "提供的服务类型",
	KeyRecentOrders:        "最近订单",
	KeyOrdersInWork:        "正在处理的订单",

	KeyAddClient:   "添加客户",
	KeyAddSupplier: "添加供应商",
	KeyCreateOrder: "创建订单",
	KeyAddProduct:  "添加产品",
	KeyDetails:     "详情",
	KeyEdit:        "编辑",
	KeyDispatch:    "发货",

	KeyAtWarehouse:        "在中国仓库",
	KeyInTransit:          "运输中",
	KeyReadyForPickup:     "待提货",
	KeyLogisticsOrders:    "物流订单",
	KeyReadyToShipOrders:  "待发货订单",
	KeyTotalRevenue:       "总收入",
	KeyPendingPayments:    "待收款",
	KeyPaidThisMonth:      "已付款（本月）",
	KeyDebts:              "欠款",
	KeyRevenueByMonth:     "月度收入",
	KeyIncomeDynamics:     "收入动态",
	KeyRecentPayments:     "最近付款",
	KeyPaymentHistory:     "客户付款记录",
	KeyTopClients:         "收入最高的客户",
	KeyLastMonth:          "上个月",
	KeyPopularProducts:    "热门产品",
	KeyMostOrdered:        "订购最多的商品",
	KeyManagerPerformance: "经理绩效",
	KeyTeamStats:          "团队统计",

	KeyColOrder:        "订单",
	KeyColClient:       "客户",
	KeyColSupplier:     "供应商",
	KeyColStatus:       "状态",
	KeyColAmount:       "金额",
	KeyColItems:        "件数",
	KeyColDate:         "日期",
	KeyColShipping:     "运输方式",
	KeyColService:      "服务",
	KeyColCity:         "城市",
	KeyColTheme:        "主题",
	KeyColLegalType:    "客户类型",
	KeyColCompany:      "公司",
	KeyColCommission:   "佣金",
	KeyColManager:      "经理",
	KeyColCountry:      "国家",
	KeyColCategory:     "类别",
	KeyColContact:      "联系方式",
	KeyColRating:       "评分",
	KeyColPaymentTerms: "付款条件",
	KeyColSKU:          "货号",
	KeyColPrice:        "价格",
	KeyColUnit:         "单位",
	KeyColWeight:       "重量",
	KeyColMaterial:     "材料",
	KeyColOrderCount:   "订单数",
	KeyColRevenue:      "收入",
	KeyColClientCount:  "客户数",
	KeyColName:         "名称",
	KeyColOperator:     "订单操作员",
	KeyColComment:      "备注",
	KeyUnresolved:      "未知记录",

	KeyNewClient:       "新客户",
	KeyNewClientHint:   "填写客户信息",
	KeyNewSupplier:     "新供应商",
	KeyNewSupplierHint: "填写供应商信息",
	KeyNewOrder:        "新订单",
	KeyNewOrderHint:    "为客户创建订单",

	KeyStatusLaunched:             "已启动",
	KeyStatusAwaitingDeposit:      "等待定金",
	KeyStatusInProgress:           "进行中",
	KeyStatusAwaitingConfirmation: "等待确认",
	KeyStatusAtChinaWarehouse:     "在中国仓库",
	KeyStatusReadyToShip:          "准备发货",
	KeyStatusInTransit:            "运输中",
	KeyStatusReadyForPickup:       "待提货",
	KeyStatusActive:               "活跃",
	KeyStatusInactive:             "不活跃",

	KeyServicePurchase:  "采购",
	KeyServiceLogistics: "物流",
	KeyServiceBoth:      "采购 + 物流",

	KeyShippingAuto:      "汽运",
	KeyShippingRail:      "铁路",
	KeyShippingSea:       "海运",
	KeyShippingContainer: "集装箱",

	KeyLegalIndividual:   "个人",
	KeyLegalOrganization: "法人",

	KeyTermsPrepay:        "100%预付",
	KeyTermsFiftyFifty:    "50/50",
	KeyTermsThirtySeventy: "30%定金，70%完工付款",
	KeyTermsCustom:        "个别条件",

	KeyCategoryElectronics: "电子产品",
	KeyCategoryTextile:     "纺织品",
	KeyCategoryEquipment:   "设备",
	KeyCategoryHousehold:   "家居用品",

	KeyPaymentReceived: "已收到",
	KeyPaymentExpected: "待收",
	KeyPaymentOverdue:  "逾期",

	KeyMonth01: "一月",
	KeyMonth02: "二月",
	KeyMonth03: "三月",
	KeyMonth04: "四月",
	KeyMonth05: "五月",
	KeyMonth06: "六月",
	KeyMonth07: "七月",
	KeyMonth08: "八月",
	KeyMonth09: "九月",
	KeyMonth10: "十月",
	KeyMonth11: "十一月",
	KeyMonth12: "十二月",
}
