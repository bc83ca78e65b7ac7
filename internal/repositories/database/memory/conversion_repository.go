// Package memory keeps conversions in process memory. Data is lost on restart.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_conversion_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_conversion_app/internal/models"
	"github.com/SscSPs/currency_conversion_app/internal/utils/mapping"
	"github.com/SscSPs/currency_conversion_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// ConversionRepository is a thread-safe in-memory portsrepo.ConversionRepositoryFacade.
type ConversionRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []models.Conversion
	byTxID map[uuid.UUID]int // index into rows
}

func NewConversionRepository() *ConversionRepository {
	return &ConversionRepository{
		rows:   make([]models.Conversion, 0),
		byTxID: make(map[uuid.UUID]int),
	}
}

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConversionRepo: NewConversionRepository(),
	}
}

func (r *ConversionRepository) SaveConversion(ctx context.Context, conversion domain.ConversionTransaction) (*domain.ConversionTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("failed to insert conversion", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTxID[conversion.TransactionID]; exists {
		return nil, apperrors.NewPersistenceError("failed to insert conversion",
			fmt.Errorf("duplicate transaction_id %s", conversion.TransactionID))
	}

	r.nextID++
	m := mapping.ToModelConversion(conversion)
	m.ID = r.nextID
	r.byTxID[m.TransactionID] = len(r.rows)
	r.rows = append(r.rows, m)

	saved := mapping.ToDomainConversion(m)
	return &saved, nil
}

// FindConversionByTransactionID returns (nil, nil) when nothing was saved under transactionID.
func (r *ConversionRepository) FindConversionByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.ConversionTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("failed to find conversion", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byTxID[transactionID]
	if !ok {
		return nil, nil
	}
	conversion := mapping.ToDomainConversion(r.rows[idx])
	return &conversion, nil
}

// FindConversionsByDateRange pages over conversions with start <= DateTime < end,
// newest first, later inserts first on equal timestamps.
func (r *ConversionRepository) FindConversionsByDateRange(ctx context.Context, start, end time.Time, page, size int) (*domain.Page[domain.ConversionTransaction], error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("failed to list conversions", err)
	}

	r.mu.RLock()
	matched := make([]models.Conversion, 0)
	for _, m := range r.rows {
		if !m.DateTime.Before(start) && m.DateTime.Before(end) {
			matched = append(matched, m)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b models.Conversion) int {
		if c := b.DateTime.Compare(a.DateTime); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	from, to := pagination.Bounds(len(matched), page, size)
	return &domain.Page[domain.ConversionTransaction]{
		Items:         mapping.ToDomainConversions(matched[from:to]),
		PageNumber:    page,
		PageSize:      size,
		TotalElements: int64(len(matched)),
	}, nil
}

var _ portsrepo.ConversionRepositoryFacade = (*ConversionRepository)(nil)
