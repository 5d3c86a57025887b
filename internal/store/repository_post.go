package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
)

const postsTable = "posts"

var postColumns = []string{"id", "user_id", "title", "body"}

// postRepository is the database/sql implementation of [PostRepository].
type postRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// List returns posts ordered by id, optionally only those of one author.
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder().Select(postColumns...).From(postsTable).OrderBy("id")
	if filter.UserID > 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body); err != nil {
			log.Err(err).Str("func", "*postRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	query, args, err := r.db.builder().
		Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*postRepository.Get", query, args)
}

// Create inserts draft and returns it with the id assigned by the database.
func (r *postRepository) Create(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	query, args, err := r.db.builder().
		Insert(postsTable).
		Columns("user_id", "title", "body").
		Values(draft.UserID, draft.Title, draft.Body).
		Suffix("RETURNING id, user_id, title, body").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*postRepository.Create", query, args)
}

func (r *postRepository) Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, id)
	}

	builder := r.db.builder().Update(postsTable).Where(sq.Eq{"id": id})
	if patch.UserID != nil {
		builder = builder.Set("user_id", *patch.UserID)
	}
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Body != nil {
		builder = builder.Set("body", *patch.Body)
	}

	query, args, err := builder.Suffix("RETURNING id, user_id, title, body").ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*postRepository.Update", query, args)
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().Delete(postsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Delete").Int64("id", id).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// scanOne runs a statement that yields exactly one post row.
func (r *postRepository) scanOne(ctx context.Context, fn, query string, args []any) (models.Post, error) {
	log := logger.FromContext(ctx)

	var p models.Post
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.UserID, &p.Title, &p.Body)
	if err == nil {
		return p, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}

	log.Err(err).Str("func", fn).Msg("error executing query")
	switch r.db.classify(err) {
	case KindForeignKey:
		return models.Post{}, ErrUnknownAuthor
	case KindNotNull:
		return models.Post{}, ErrInvalidPost
	default:
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
