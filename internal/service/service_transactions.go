package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/monarch"
	"github.com/kazijehangir/monarch-bridge/models"
)

const (
	// defaultWindowDays is the listing window when the caller does not
	// supply one.
	defaultWindowDays = 30

	// maxTransactions caps a single listing request.
	maxTransactions = 1000

	dateLayout = "2006-01-02"
)

type transactionService struct {
	client monarch.Client

	logger *logger.Logger
}

// NewTransactionService constructs a TransactionService over the given
// client.
func NewTransactionService(client monarch.Client, logger *logger.Logger) TransactionService {
	return &transactionService{client: client, logger: logger}
}

func (t *transactionService) List(ctx context.Context, days int) (json.RawMessage, error) {
	if days <= 0 {
		days = defaultWindowDays
	}

	now := time.Now()
	filters := models.TransactionFilters{
		Limit:     maxTransactions,
		StartDate: now.AddDate(0, 0, -days).Format(dateLayout),
		EndDate:   now.Format(dateLayout),
	}

	payload, err := t.client.GetTransactions(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	t.logger.Debug().
		Str("start_date", filters.StartDate).
		Str("end_date", filters.EndDate).
		Msg("fetched transactions")

	return payload, nil
}

func (t *transactionService) Update(ctx context.Context, transactionID string, update models.TransactionUpdate) (bool, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		t.logger.Debug().Str("transaction_id", transactionID).Msg("empty update, skipping remote call")
		return false, nil
	}

	if err := t.client.UpdateTransaction(ctx, transactionID, fields); err != nil {
		return false, fmt.Errorf("update transaction: %w", err)
	}

	t.logger.Info().Str("transaction_id", transactionID).Int("fields", len(fields)).Msg("transaction updated")
	return true, nil
}
