package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/newsgate/internal/common"
	"github.com/dmitrijs2005/newsgate/internal/server/auth"
	"github.com/dmitrijs2005/newsgate/internal/server/models"
)

func restrictedItem() *models.News {
	return &models.News{
		ID:             43,
		Title:          "quarterly report",
		Content:        "numbers",
		AllowedRoles:   []string{"admin"},
		AllowedUserIDs: []int64{},
	}
}

func TestGet_AllowedByRole(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeNewsRepo{getOut: restrictedItem(), minID: 1, maxID: 99}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	view, err := svc.Get(context.Background(), 43, &auth.Session{UserID: 1, Role: "admin"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if view.News.Title != "quarterly report" || view.News.Content != "numbers" {
		t.Fatalf("expected full item, got %+v", view.News)
	}
	if view.MinID != 1 || view.MaxID != 99 {
		t.Fatalf("unexpected bounds: %+v", view)
	}
}

func TestGet_AllowedByUserID(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	item := restrictedItem()
	item.AllowedUserIDs = []int64{7}

	repo := &fakeNewsRepo{getOut: item, minID: 1, maxID: 99}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	view, err := svc.Get(context.Background(), 43, &auth.Session{UserID: 7, Role: "user"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if view.News.Title != "quarterly report" {
		t.Fatalf("user on the allow-list must see the full item, got %+v", view.News)
	}
}

func TestGet_DeniedIsRedactedNotAnError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeNewsRepo{getOut: restrictedItem(), minID: 1, maxID: 99}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	view, err := svc.Get(context.Background(), 43, &auth.Session{UserID: 7, Role: "user"})
	if err != nil {
		t.Fatalf("soft deny must not be an error, got %v", err)
	}
	if view.News.ID != 43 {
		t.Fatalf("id must survive redaction, got %+v", view.News)
	}
	if view.News.Title != DeniedText || view.News.Content != DeniedText {
		t.Fatalf("expected redacted item, got %+v", view.News)
	}
	// navigation bounds stay unfiltered by access
	if view.MinID != 1 || view.MaxID != 99 {
		t.Fatalf("bounds must not depend on access, got %+v", view)
	}
}

func TestGet_EmptyAllowListsDenyEveryone(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	item := &models.News{ID: 5, Title: "t", Content: "c"}
	repo := &fakeNewsRepo{getOut: item, minID: 5, maxID: 5}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	view, err := svc.Get(context.Background(), 5, &auth.Session{UserID: 1, Role: "admin"})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if view.News.Title != DeniedText {
		t.Fatalf("item without allow-lists must be redacted for everyone, got %+v", view.News)
	}
}

func TestGet_NilSessionIsDenied(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeNewsRepo{getOut: restrictedItem(), minID: 1, maxID: 99}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	view, err := svc.Get(context.Background(), 43, nil)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if view.News.Title != DeniedText {
		t.Fatalf("anonymous caller must get the redacted item, got %+v", view.News)
	}
}

func TestGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeNewsRepo{getErr: common.ErrorNotFound}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	_, err := svc.Get(context.Background(), 999, &auth.Session{UserID: 1, Role: "admin"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestGet_BoundsFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeNewsRepo{getOut: restrictedItem(), boundsErr: errors.New("db down")}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	_, err := svc.Get(context.Background(), 43, &auth.Session{UserID: 1, Role: "admin"})
	if err == nil {
		t.Fatalf("expected error when bounds query fails")
	}
}

func TestList(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeNewsRepo{listOut: []models.NewsTitle{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}}
	svc := NewNewsService(db, &fakeRepoManager{n: repo})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 2 || items[0].ID != 2 {
		t.Fatalf("unexpected list: %+v", items)
	}
}
