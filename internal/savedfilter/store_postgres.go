package savedfilter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guestradar/guestradar/internal/platform/database/schema"
	"github.com/guestradar/guestradar/internal/platform/dberr"
)

// PostgresRepository stores saved filters with the criteria object in a
// JSONB column, scanned straight into [candidate.Criteria] by pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func filterColumns() string {
	return strings.Join(schema.RefSavedFilter.Columns(), ", ")
}

func scanFilter(row pgx.Row) (*SavedFilter, error) {
	f := &SavedFilter{}
	err := row.Scan(&f.ID, &f.Name, &f.Criteria, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func wrapDB(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return dberr.Wrap(err, action)
}

func (repository *PostgresRepository) ListFilters(context context.Context) ([]*SavedFilter, error) {
	ref := schema.RefSavedFilter
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC", filterColumns(), ref.Table, ref.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, wrapDB(err, "list_saved_filters")
	}
	defer rows.Close()

	filters := []*SavedFilter{}
	for rows.Next() {
		f, err := scanFilter(rows)
		if err != nil {
			return nil, wrapDB(err, "scan_saved_filter")
		}
		filters = append(filters, f)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDB(err, "iterate_saved_filters")
	}
	return filters, nil
}

func (repository *PostgresRepository) GetFilter(context context.Context, id int) (*SavedFilter, error) {
	ref := schema.RefSavedFilter
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", filterColumns(), ref.Table, ref.ID)

	f, err := scanFilter(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, wrapDB(err, "get_saved_filter")
	}
	return f, nil
}

func (repository *PostgresRepository) CreateFilter(context context.Context, f *SavedFilter) error {
	ref := schema.RefSavedFilter
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s`,
		ref.Table, ref.Name, ref.Criteria, ref.CreatedAt, ref.UpdatedAt,
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, f.Name, f.Criteria).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return wrapDB(err, "create_saved_filter")
	}
	return nil
}

func (repository *PostgresRepository) UpdateFilter(context context.Context, id int, input Input) (*SavedFilter, error) {
	ref := schema.RefSavedFilter
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s`,
		ref.Table, ref.Name, ref.Criteria, ref.UpdatedAt,
		ref.ID, filterColumns(),
	)

	f, err := scanFilter(repository.db.QueryRow(context, query, input.Name, input.Criteria, id))
	if err != nil {
		return nil, wrapDB(err, "update_saved_filter")
	}
	return f, nil
}

func (repository *PostgresRepository) DeleteFilter(context context.Context, id int) error {
	ref := schema.RefSavedFilter
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ref.Table, ref.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return wrapDB(err, "delete_saved_filter")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
