package consts

type OrderStatus string

const OrderStatusNew OrderStatus = "new"
const OrderStatusPreparing OrderStatus = "preparing"
const OrderStatusReady OrderStatus = "ready"
const OrderStatusDelivered OrderStatus = "delivered"
const OrderStatusCancelled OrderStatus = "cancelled"

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type PixKeyType string

const (
	PixKeyTypeCPF    PixKeyType = "cpf"
	PixKeyTypeCNPJ   PixKeyType = "cnpj"
	PixKeyTypeEmail  PixKeyType = "email"
	PixKeyTypePhone  PixKeyType = "phone"
	PixKeyTypeRandom PixKeyType = "random"
)

type AnalyticsPeriod string

const (
	Period7d  AnalyticsPeriod = "7d"
	Period30d AnalyticsPeriod = "30d"
	Period90d AnalyticsPeriod = "90d"
)

// PeriodDays maps a period parameter to its day count, defaulting to 30.
func PeriodDays(p string) int {
	switch AnalyticsPeriod(p) {
	case Period7d:
		return 7
	case Period90d:
		return 90
	default:
		return 30
	}
}
