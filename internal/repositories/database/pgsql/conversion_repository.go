package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_conversion_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_conversion_app/internal/models"
	"github.com/SscSPs/currency_conversion_app/internal/utils/mapping"
	"github.com/SscSPs/currency_conversion_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const conversionColumns = `
	id, transaction_id, original_amount, from_currency, to_currency,
	rate, converted_amount, date_time`

// PgxConversionRepository implements portsrepo.ConversionRepositoryFacade using pgxpool.
type PgxConversionRepository struct {
	BaseRepository
}

func newPgxConversionRepository(db *pgxpool.Pool) *PgxConversionRepository {
	return &PgxConversionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveConversion inserts a conversion and returns it as stored.
func (r *PgxConversionRepository) SaveConversion(ctx context.Context, conversion domain.ConversionTransaction) (*domain.ConversionTransaction, error) {
	m := mapping.ToModelConversion(conversion)

	query := `
		INSERT INTO conversions (
			transaction_id, original_amount, from_currency, to_currency,
			rate, converted_amount, date_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.TransactionID, m.OriginalAmount, m.FromCurrency, m.ToCurrency,
		m.Rate, m.ConvertedAmount, m.DateTime,
	).Scan(&m.ID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to insert conversion", err)
	}

	saved := mapping.ToDomainConversion(m)
	return &saved, nil
}

// FindConversionByTransactionID returns (nil, nil) when no row has the given transaction ID.
func (r *PgxConversionRepository) FindConversionByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.ConversionTransaction, error) {
	query := `SELECT` + conversionColumns + `
		FROM conversions
		WHERE transaction_id = $1;
	`

	m, err := scanConversion(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError("failed to find conversion", err)
	}

	conversion := mapping.ToDomainConversion(m)
	return &conversion, nil
}

// FindConversionsByDateRange returns one page of the conversions with start <= date_time < end,
// newest first. The count and the page are read from the same snapshot.
func (r *PgxConversionRepository) FindConversionsByDateRange(ctx context.Context, start, end time.Time, page, size int) (*domain.Page[domain.ConversionTransaction], error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	// No-op once the snapshot is committed
	defer func() { _ = r.Rollback(ctx, tx) }()

	var total int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM conversions WHERE date_time >= $1 AND date_time < $2`,
		start, end,
	).Scan(&total)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to count conversions", err)
	}

	result := &domain.Page[domain.ConversionTransaction]{
		Items:         []domain.ConversionTransaction{},
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
	}
	if total == 0 || size <= 0 {
		return result, r.Commit(ctx, tx)
	}

	query := `SELECT` + conversionColumns + `
		FROM conversions
		WHERE date_time >= $1 AND date_time < $2
		ORDER BY date_time DESC, id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := tx.Query(ctx, query, start, end, size, pagination.Offset(page, size))
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to list conversions", err)
	}
	defer rows.Close()

	var found []models.Conversion
	for rows.Next() {
		m, err := scanConversion(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("failed to scan conversion", err)
		}
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("error iterating conversions", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result.Items = mapping.ToDomainConversions(found)
	return result, nil
}

func scanConversion(row pgx.Row) (models.Conversion, error) {
	var m models.Conversion
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.OriginalAmount, &m.FromCurrency, &m.ToCurrency,
		&m.Rate, &m.ConvertedAmount, &m.DateTime,
	)
	return m, err
}

var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)
