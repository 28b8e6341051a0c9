package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	mockRepo "farmhub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the transaction manager run its callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// requireAppError asserts err is of the given kind and surfaces the given HTTP status.
func requireAppError(t *testing.T, err error, kind *domainerrors.BaseError, httpCode int) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, httpCode, appErr.HTTPCode())

	return appErr
}
