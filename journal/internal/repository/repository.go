package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-console/journal/internal/errs"
	"github.com/Astemirdum/library-console/journal/internal/model"
)

type Repository interface {
	Record(ctx context.Context, entry model.Entry) error
	List(ctx context.Context, filter model.Filter) ([]model.Entry, error)
	Counts(ctx context.Context) ([]model.TypeCount, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	journalTableName = `journal`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{
	"id", "type", "user_id", "book_id", "borrow_id", "reservation_id",
	"amount", "method", "request_id", "timestamp", "recorded_at",
}

// Record inserts the entry; a second delivery of the same id is ErrDuplicate.
func (r *repository) Record(ctx context.Context, e model.Entry) error {
	q, args, err := qb.Insert(journalTableName).
		Columns("id", "type", "user_id", "book_id", "borrow_id", "reservation_id",
			"amount", "method", "request_id", "timestamp").
		Values(e.ID, e.Type, e.UserID, e.BookID, e.BorrowID, e.ReservationID,
			e.Amount, e.Method, e.RequestID, e.Timestamp).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build insert")
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicate
		}
		return errors.Wrap(err, "insert journal entry")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) List(ctx context.Context, f model.Filter) ([]model.Entry, error) {
	b := qb.Select(entryColumns...).
		From(journalTableName).
		OrderBy("timestamp desc", "recorded_at desc").
		Limit(uint64(f.Limit))
	if f.Type != "" {
		b = b.Where(sq.Eq{"type": f.Type})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select")
	}
	items := make([]model.Entry, 0, f.Limit)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "select journal")
	}
	return items, nil
}

func (r *repository) Counts(ctx context.Context) ([]model.TypeCount, error) {
	q, args, err := qb.Select("type", "count(*) as cnt", "max(timestamp) as last").
		From(journalTableName).
		GroupBy("type").
		OrderBy("type").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build counts")
	}
	var counts []model.TypeCount
	if err := r.db.SelectContext(ctx, &counts, q, args...); err != nil {
		return nil, errors.Wrap(err, "select counts")
	}
	return counts, nil
}
