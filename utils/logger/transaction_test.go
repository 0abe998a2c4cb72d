package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionLogger_PairSharesTransactionID(t *testing.T) {
	buf := &bytes.Buffer{}
	txlog := NewTransactionLogger(slog.New(slog.NewJSONHandler(buf, nil)))
	ctx := context.Background()

	txn := txlog.Begin(ctx, "authenticate", map[string]any{"userId": "u1"})
	require.NotEmpty(t, txn.ID)
	assert.Equal(t, "authenticate", txn.Component)

	txlog.End(ctx, txn, 200, map[string]any{"userId": "u1", "tier": "gold"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var request, response map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &request))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &response))

	assert.Equal(t, "Request", request["msg"])
	assert.Equal(t, "authenticate", request["component"])
	assert.Equal(t, txn.ID, request["transactionId"])
	assert.NotNil(t, request["payload"])

	assert.Equal(t, "Response", response["msg"])
	assert.Equal(t, "authenticate", response["component"])
	assert.Equal(t, txn.ID, response["transactionId"])
	assert.Equal(t, float64(200), response["returnCode"])
}

func TestTransactionLogger_DistinctCallsGetDistinctIDs(t *testing.T) {
	txlog := NewTransactionLogger(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	ctx := context.Background()

	a := txlog.Begin(ctx, "authenticate", nil)
	b := txlog.Begin(ctx, "authenticate", nil)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestTransactionLogger_NilLoggerFallsBack(t *testing.T) {
	txlog := NewTransactionLogger(nil)

	txn := txlog.Begin(context.Background(), "authenticate", nil)
	assert.NotEmpty(t, txn.ID)
	txlog.End(context.Background(), txn, 401, nil)
}
