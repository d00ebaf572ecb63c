// Package news persists content items. The core treats news as read-only;
// rows are created out of band (see cmd/cli).
package news

import (
	"context"

	"github.com/dmitrijs2005/newsgate/internal/server/models"
)

type Repository interface {
	// GetByID returns the item with its allow-lists, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.News, error)

	// ListRecent returns up to limit items, newest id first, title only.
	ListRecent(ctx context.Context, limit int) ([]models.NewsTitle, error)

	// Bounds returns the global minimum and maximum item ids.
	// Returns common.ErrorNotFound when the table is empty.
	Bounds(ctx context.Context) (minID, maxID int64, err error)

	// Create inserts an item and fills in the generated id.
	Create(ctx context.Context, item *models.News) (*models.News, error)
}
