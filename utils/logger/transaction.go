package logger

import (
	"context"
	"log/slog"

	"auth-gate/internal/domain"
)

// TransactionLogger emits the paired "Request"/"Response" entries that
// bracket every inbound call. Begin and End must each run exactly once
// per call, in that order, on every exit path.
type TransactionLogger struct {
	logger *slog.Logger
}

// NewTransactionLogger creates a transaction logger. A nil logger
// falls back to slog.Default.
func NewTransactionLogger(logger *slog.Logger) *TransactionLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionLogger{logger: logger}
}

// Begin logs the Request entry and returns the freshly created
// transaction that correlates everything the call emits.
func (t *TransactionLogger) Begin(ctx context.Context, component string, payload any) domain.Transaction {
	txn := domain.NewTransaction(component)
	t.logger.InfoContext(ctx, "Request",
		"component", component,
		"transactionId", txn.ID,
		"payload", payload)
	return txn
}

// End logs the Response entry for txn with the final status code and
// response payload.
func (t *TransactionLogger) End(ctx context.Context, txn domain.Transaction, returnCode int, payload any) {
	t.logger.InfoContext(ctx, "Response",
		"component", txn.Component,
		"transactionId", txn.ID,
		"returnCode", returnCode,
		"payload", payload)
}
