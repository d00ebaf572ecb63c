// Package cli is the operator tool: it creates accounts and seeds news
// items directly in the database. News has no authoring endpoint on the
// HTTP surface, so this is the only write path for content.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/newsgate/internal/server/config"
	"github.com/dmitrijs2005/newsgate/internal/server/models"
	"github.com/dmitrijs2005/newsgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/newsgate/internal/server/services"
)

type App struct {
	db     *sql.DB
	m      repomanager.RepositoryManager
	users  *services.UserService
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &App{
		db:     db,
		m:      m,
		users:  services.NewUserService(db, m, cfg),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run dispatches a subcommand: adduser or addnews.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "adduser":
		return a.AddUser(ctx)
	case "addnews":
		return a.AddNews(ctx)
	default:
		return fmt.Errorf("unknown command %q (expected adduser or addnews)", command)
	}
}

// AddUser prompts for account details and registers the account through the
// same service the HTTP surface uses, so the credential format and the
// unique-email rule hold here too.
func (a *App) AddUser(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Role (user/admin)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.users.Register(ctx, name, email, string(password), role)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created user %d (%s)\n", user.ID, user.Email)
	return nil
}

// AddNews prompts for an item and its allow-lists and inserts it. Leaving
// both lists empty creates an item nobody can read.
func (a *App) AddNews(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	rolesLine, err := GetSimpleText(a.reader, "Allowed roles (comma-separated, may be empty)", a.out)
	if err != nil {
		return err
	}
	idsLine, err := GetSimpleText(a.reader, "Allowed user ids (comma-separated, may be empty)", a.out)
	if err != nil {
		return err
	}

	userIDs, err := ParseIDList(idsLine)
	if err != nil {
		return err
	}

	item, err := a.m.News(a.db).Create(ctx, &models.News{
		Title:          title,
		Content:        content,
		AllowedRoles:   SplitList(rolesLine),
		AllowedUserIDs: userIDs,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created news item %d\n", item.ID)
	return nil
}
