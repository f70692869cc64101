package queries

import (
	"context"

	"dashboard/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// GetOverviewQueryHandler fetches all four counts concurrently.
// Any failing fetch fails the whole overview and cancels the others.
//
// Example:
//
//	handler := NewGetOverviewQueryHandler(orderGateway, catalogGateway)
//	overview, err := handler.Handle(ctx, NewGetOverviewQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders, %d foods\n", overview.Orders, overview.Foods)
type GetOverviewQueryHandler struct {
	orders  ports.OrderGateway
	catalog ports.CatalogGateway
}

func NewGetOverviewQueryHandler(orders ports.OrderGateway, catalog ports.CatalogGateway) GetOverviewQueryHandler {
	return GetOverviewQueryHandler{orders: orders, catalog: catalog}
}

func (h GetOverviewQueryHandler) Handle(ctx context.Context, query GetOverviewQuery) (GetOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOverviewQueryResponse{}, err
	}

	var out GetOverviewQueryResponse
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := h.orders.ListOrders(ctx)
		if err != nil {
			return err
		}
		out.Orders = len(orders)
		return nil
	})
	g.Go(func() (err error) {
		out.Categories, err = h.catalog.CountCategories(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Foods, err = h.catalog.CountFoods(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Users, err = h.catalog.CountUsers(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return GetOverviewQueryResponse{}, err
	}
	return out, nil
}
