package news

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/newsgate/internal/common"
	"github.com/dmitrijs2005/newsgate/internal/dbx"
	"github.com/dmitrijs2005/newsgate/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	query :=
		`SELECT id, title, content, allowed_roles, allowed_user_ids FROM news
		 WHERE id = $1
		 `

	item := &models.News{}
	var rolesRaw, userIDsRaw []byte

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Title, &item.Content, &rolesRaw, &userIDsRaw)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	// NULL allow-lists stay nil, which admits nobody.
	if len(rolesRaw) > 0 {
		if err := json.Unmarshal(rolesRaw, &item.AllowedRoles); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}
	if len(userIDsRaw) > 0 {
		if err := json.Unmarshal(userIDsRaw, &item.AllowedUserIDs); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	return item, nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]models.NewsTitle, error) {
	query :=
		`SELECT id, title FROM news
		 ORDER BY id DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := make([]models.NewsTitle, 0, limit)
	for rows.Next() {
		var item models.NewsTitle
		if err := rows.Scan(&item.ID, &item.Title); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Bounds(ctx context.Context) (int64, int64, error) {
	query :=
		`SELECT MIN(id), MAX(id) FROM news
		 `

	var minID, maxID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query).Scan(&minID, &maxID)
	if err != nil {
		return 0, 0, fmt.Errorf("db error: %w", err)
	}

	// MIN/MAX over an empty table come back NULL.
	if !minID.Valid || !maxID.Valid {
		return 0, 0, common.ErrorNotFound
	}

	return minID.Int64, maxID.Int64, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.News) (*models.News, error) {
	rolesRaw, err := json.Marshal(item.AllowedRoles)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	userIDsRaw, err := json.Marshal(item.AllowedUserIDs)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	query :=
		`INSERT INTO news (title, content, allowed_roles, allowed_user_ids)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		item.Title, item.Content, rolesRaw, userIDsRaw).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}
