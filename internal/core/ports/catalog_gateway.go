package ports

import "context"

// CatalogGateway counts the platform resources shown on the overview.
type CatalogGateway interface {
	CountCategories(ctx context.Context) (int, error)
	CountFoods(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
}
