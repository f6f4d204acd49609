package orderservice

import (
	"fmt"
	"strings"

	"storefront/internal/domain"
	apperror "storefront/internal/errors"
)

// views é a tabela status -> visão. Step segue a linha do tempo normal do pedido;
// estados fora dela (cancelado, disputa, devolução) ficam com step 0.
var views = map[domain.OrderStatus]domain.OrderView{
	domain.OrderPending:    {Variant: domain.ViewPending, Title: "Aguardando confirmação", Step: 1, Actionable: true},
	domain.OrderProcessing: {Variant: domain.ViewProcessing, Title: "Em preparação", Step: 2},
	domain.OrderShipping:   {Variant: domain.ViewShipping, Title: "A caminho", Step: 3},
	domain.OrderDelivered:  {Variant: domain.ViewDelivered, Title: "Entregue", Step: 4, Actionable: true},
	domain.OrderRating:     {Variant: domain.ViewRating, Title: "Avalie seu pedido", Step: 5, Actionable: true},
	domain.OrderCompleted:  {Variant: domain.ViewCompleted, Title: "Concluído", Step: 6},
	domain.OrderCancelled:  {Variant: domain.ViewCancelled, Title: "Cancelado"},
	domain.OrderDispute:    {Variant: domain.ViewDispute, Title: "Em disputa", Actionable: true},
	domain.OrderReturn:     {Variant: domain.ViewReturn, Title: "Devolução solicitada"},
}

// Service escolhe a visão somente leitura de um pedido a partir do seu status.
type Service struct{}

// NewService cria o despachante de visões.
func NewService() *Service {
	return &Service{}
}

// ViewFor devolve a visão para o status (sem diferenciar maiúsculas). Status desconhecido
// é um erro de validação.
func (s *Service) ViewFor(status string) (domain.OrderView, error) {
	key := domain.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	view, ok := views[key]
	if !ok {
		return domain.OrderView{}, apperror.NewValidationError(fmt.Sprintf("status de pedido desconhecido: %q", status))
	}
	view.Status = key
	return view, nil
}

// Statuses lista os status conhecidos, na ordem da linha do tempo.
func Statuses() []domain.OrderStatus {
	return []domain.OrderStatus{
		domain.OrderPending, domain.OrderProcessing, domain.OrderShipping, domain.OrderDelivered,
		domain.OrderRating, domain.OrderCompleted, domain.OrderCancelled, domain.OrderDispute, domain.OrderReturn,
	}
}
