package candidate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guestradar/guestradar/internal/platform/database/schema"
	"github.com/guestradar/guestradar/internal/platform/dberr"
	"github.com/guestradar/guestradar/pkg/pagination"
)

// PostgresRepository stores candidates in a relational table. It compiles the
// engine's predicate to SQL; parity with [MemoryRepository] is pinned by the
// shared bucket table and the explicit id tie-break on every ORDER BY.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// columnList is the canonical SELECT/RETURNING column order, matching scanRow.
func columnList() string {
	return strings.Join(schema.RefCandidate.Columns(), ", ")
}

// scanRow reads one candidate in columnList order.
func scanRow(row pgx.Row) (*Candidate, error) {
	c := &Candidate{}
	err := row.Scan(
		&c.ID, &c.Name, &c.SocialHandle, &c.Platform, &c.AdditionalPlatforms,
		&c.FollowerCount, &c.Region, &c.Topics, &c.Description, &c.ImageURL,
		&c.IsRecommended, &c.IsFavorite, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// wrapDB maps pgx errors onto the store contract.
func wrapDB(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return dberr.Wrap(err, action)
}

// buildWhere compiles the filter predicate into a WHERE clause with
// positional args. Semantics mirror [Matches] exactly.
func buildWhere(f Filter) (string, []any) {
	ref := schema.RefCandidate
	conditions := []string{}
	args := []any{}

	if f.Platform != "" {
		args = append(args, f.Platform)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", ref.Platform, len(args)))
	}

	if f.Region != "" {
		args = append(args, f.Region)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", ref.Region, len(args)))
	}

	if f.Topic != "" {
		args = append(args, f.Topic)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(%s)", len(args), ref.Topics))
	}

	if f.FollowerRange != "" {
		if bucket, ok := followerBuckets[f.FollowerRange]; ok {
			args = append(args, bucket.Min)
			cond := fmt.Sprintf("%s >= $%d", ref.FollowerCount, len(args))
			if bucket.Max > 0 {
				args = append(args, bucket.Max)
				cond += fmt.Sprintf(" AND %s < $%d", ref.FollowerCount, len(args))
			}
			conditions = append(conditions, "("+cond+")")
		}
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		args = append(args, "%"+term+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d)",
			ref.Name, n, ref.SocialHandle, n, ref.Description, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// orderBy maps a sort key to an ORDER BY clause. Every ordering carries a
// secondary id ASC so ties resolve in primary-key order, matching the
// engine's stable sort over insertion order.
func orderBy(key string) string {
	ref := schema.RefCandidate

	switch key {
	case SortFollowersAsc:
		return fmt.Sprintf("%s ASC, %s ASC", ref.FollowerCount, ref.ID)
	case SortNameAsc:
		return fmt.Sprintf("%s ASC, %s ASC", ref.Name, ref.ID)
	case SortNameDesc:
		return fmt.Sprintf("%s DESC, %s ASC", ref.Name, ref.ID)
	case SortDateAdded:
		return fmt.Sprintf("%s DESC, %s ASC", ref.CreatedAt, ref.ID)
	default:
		return fmt.Sprintf("%s DESC, %s ASC", ref.FollowerCount, ref.ID)
	}
}

func (repository *PostgresRepository) ListCandidates(context context.Context, f Filter, params pagination.Params) ([]*Candidate, int, error) {
	ref := schema.RefCandidate
	whereSQL, args := buildWhere(f)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, ref.Table, whereSQL)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, wrapDB(err, "count_candidates")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columnList(), ref.Table, whereSQL, orderBy(f.Sort), len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, wrapDB(err, "list_candidates")
	}
	defer rows.Close()

	candidates := make([]*Candidate, 0)
	for rows.Next() {
		c, err := scanRow(rows)
		if err != nil {
			return nil, 0, wrapDB(err, "scan_candidate")
		}
		candidates = append(candidates, c)
	}

	return candidates, total, rows.Err()
}

func (repository *PostgresRepository) AllCandidates(context context.Context) ([]*Candidate, error) {
	ref := schema.RefCandidate
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, columnList(), ref.Table, ref.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, wrapDB(err, "all_candidates")
	}
	defer rows.Close()

	candidates := make([]*Candidate, 0)
	for rows.Next() {
		c, err := scanRow(rows)
		if err != nil {
			return nil, wrapDB(err, "scan_candidate")
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func (repository *PostgresRepository) GetCandidate(context context.Context, id int) (*Candidate, error) {
	ref := schema.RefCandidate
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnList(), ref.Table, ref.ID)

	c, err := scanRow(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, wrapDB(err, "get_candidate")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCandidate(context context.Context, c *Candidate) error {
	ref := schema.RefCandidate

	if c.AdditionalPlatforms == nil {
		c.AdditionalPlatforms = []string{}
	}
	if c.Topics == nil {
		c.Topics = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING %s, %s
	`,
		ref.Table, ref.Name, ref.SocialHandle, ref.Platform, ref.AdditionalPlatforms,
		ref.FollowerCount, ref.Region, ref.Topics, ref.Description, ref.ImageURL,
		ref.IsRecommended, ref.IsFavorite, ref.CreatedAt,
		ref.ID, ref.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.Name, c.SocialHandle, c.Platform, c.AdditionalPlatforms,
		c.FollowerCount, c.Region, c.Topics, c.Description, c.ImageURL,
		c.IsRecommended, c.IsFavorite,
	).Scan(&c.ID, &c.CreatedAt)

	return wrapDB(err, "create_candidate")
}

func (repository *PostgresRepository) UpdateCandidate(context context.Context, id int, patch Patch) (*Candidate, error) {
	// An empty patch is a no-op read, not an error.
	if patch.isEmpty() {
		return repository.GetCandidate(context, id)
	}

	ref := schema.RefCandidate
	sets := []string{}
	args := []any{id}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		addSet(ref.Name, *patch.Name)
	}
	if patch.SocialHandle != nil {
		addSet(ref.SocialHandle, *patch.SocialHandle)
	}
	if patch.Platform != nil {
		addSet(ref.Platform, *patch.Platform)
	}
	if patch.AdditionalPlatforms != nil {
		addSet(ref.AdditionalPlatforms, *patch.AdditionalPlatforms)
	}
	if patch.FollowerCount != nil {
		addSet(ref.FollowerCount, *patch.FollowerCount)
	}
	if patch.Region != nil {
		addSet(ref.Region, *patch.Region)
	}
	if patch.Topics != nil {
		addSet(ref.Topics, *patch.Topics)
	}
	if patch.Description != nil {
		addSet(ref.Description, *patch.Description)
	}
	if patch.ImageURL != nil {
		addSet(ref.ImageURL, *patch.ImageURL)
	}
	if patch.IsRecommended != nil {
		addSet(ref.IsRecommended, *patch.IsRecommended)
	}
	if patch.IsFavorite != nil {
		addSet(ref.IsFavorite, *patch.IsFavorite)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		ref.Table, strings.Join(sets, ", "), ref.ID, columnList())

	c, err := scanRow(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, wrapDB(err, "update_candidate")
	}
	return c, nil
}

func (repository *PostgresRepository) DeleteCandidate(context context.Context, id int) error {
	ref := schema.RefCandidate
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, ref.Table, ref.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return wrapDB(err, "delete_candidate")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ToggleFavorite(context context.Context, id int) (*Candidate, error) {
	ref := schema.RefCandidate

	// Single-statement read-modify-write: atomic per row, no explicit
	// transaction or lock needed.
	query := fmt.Sprintf(`UPDATE %s SET %s = NOT %s WHERE %s = $1 RETURNING %s`,
		ref.Table, ref.IsFavorite, ref.IsFavorite, ref.ID, columnList())

	c, err := scanRow(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, wrapDB(err, "toggle_favorite")
	}
	return c, nil
}
