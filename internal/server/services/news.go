package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/newsgate/internal/server/auth"
	"github.com/dmitrijs2005/newsgate/internal/server/models"
	"github.com/dmitrijs2005/newsgate/internal/server/repositories/repomanager"
)

// DeniedText replaces the title and content of an item the caller may not
// read. The item itself still comes back with a success status; denial is
// soft by design.
const DeniedText = "권한이 없습니다"

// listLimit caps the news list at the most recent items.
const listLimit = 30

// NewsItemView is what callers see of a single item. Allow-lists are never
// exposed.
type NewsItemView struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewsView is the single-item response: the (possibly redacted) item plus
// the global id bounds used for prev/next navigation. The bounds are not
// filtered by the caller's access.
type NewsView struct {
	News  NewsItemView `json:"news"`
	MinID int64        `json:"minId"`
	MaxID int64        `json:"maxId"`
}

// NewsService serves the news list and per-item reads with allow-list
// evaluation.
type NewsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNewsService(db *sql.DB, m repomanager.RepositoryManager) *NewsService {
	return &NewsService{db: db, repomanager: m}
}

// List returns up to 30 most recent items, newest first, titles only.
// No per-item access evaluation happens here; titles are list-public.
func (s *NewsService) List(ctx context.Context) ([]models.NewsTitle, error) {
	repo := s.repomanager.News(s.db)

	items, err := repo.ListRecent(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing news: %w", err)
	}

	return items, nil
}

// Get returns the item for id, evaluated against the caller's session.
// A caller outside both allow-lists receives the item with title and
// content replaced by DeniedText; the id and the navigation bounds stay
// intact. A missing item returns common.ErrorNotFound.
func (s *NewsService) Get(ctx context.Context, id int64, sess *auth.Session) (*NewsView, error) {
	repo := s.repomanager.News(s.db)

	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	minID, maxID, err := repo.Bounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading news bounds: %w", err)
	}

	view := &NewsView{
		News:  NewsItemView{ID: item.ID, Title: item.Title, Content: item.Content},
		MinID: minID,
		MaxID: maxID,
	}

	allowed := sess != nil && item.VisibleTo(sess.UserID, sess.Role)
	if !allowed {
		view.News.Title = DeniedText
		view.News.Content = DeniedText
	}

	return view, nil
}
