package domain

// OrderStatus é o status de um pedido, como devolvido pelo backend.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipping   OrderStatus = "shipping"
	OrderDelivered  OrderStatus = "delivered"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
	OrderDispute    OrderStatus = "dispute"
	OrderReturn     OrderStatus = "return"
	OrderRating     OrderStatus = "rating"
)

// ViewVariant identifica o cartão de status que a página de pedido deve renderizar.
type ViewVariant string

const (
	ViewPending    ViewVariant = "pending_card"
	ViewProcessing ViewVariant = "processing_card"
	ViewShipping   ViewVariant = "shipping_card"
	ViewDelivered  ViewVariant = "delivered_card"
	ViewCompleted  ViewVariant = "completed_card"
	ViewCancelled  ViewVariant = "cancelled_card"
	ViewDispute    ViewVariant = "dispute_card"
	ViewReturn     ViewVariant = "return_card"
	ViewRating     ViewVariant = "rating_card"
)

// OrderView descreve a visão somente leitura escolhida para um status.
type OrderView struct {
	Status     OrderStatus `json:"status"`
	Variant    ViewVariant `json:"variant"`
	Title      string      `json:"title"`
	Step       int         `json:"step"` // Posição na linha do tempo; 0 para estados fora do fluxo normal
	Actionable bool        `json:"actionable"`
}
