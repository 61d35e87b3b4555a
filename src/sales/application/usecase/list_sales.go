package usecase

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/sales/application/response"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para el historial de ventas
type ListSalesUseCase struct {
	sales port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(sales port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{sales: sales}
}

// Execute retorna las ventas de la más reciente a la más vieja
func (uc *ListSalesUseCase) Execute(ctx context.Context) ([]response.SaleListItem, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.SaleListItem, 0, len(sales))
	for _, sale := range sales {
		items = append(items, response.SaleListItem{
			SaleID:       sale.ID,
			Date:         sale.Date,
			Total:        sale.Total,
			CustomerType: string(sale.CustomerType),
			AppliedPromo: sale.AppliedPromo,
			PromotionID:  sale.PromotionID,
			ItemCount:    len(sale.Items),
		})
	}

	return items, nil
}
