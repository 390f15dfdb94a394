package postgres

import (
	"context"
	"testing"

	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	errCommit := errors.New("could not serialize access")

	t.Run("commit failure is a storage failure", func(t *testing.T) {
		db, _ := openStubDB(t, stubConnPool{commitErr: errCommit}, false)
		tm := NewTransactionManager(db)

		called := false
		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			called = true

			return nil
		})

		require.Error(t, err)
		assert.True(t, called)
		assert.True(t, domainerrors.IsStorageFailure(err))
		assert.ErrorIs(t, err, errCommit)
	})

	t.Run("callback error is returned untouched", func(t *testing.T) {
		db, _ := openStubDB(t, stubConnPool{commitErr: errCommit}, false)
		tm := NewTransactionManager(db)

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			return domainerrors.ErrConversationNotFound
		})

		assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
		assert.False(t, domainerrors.IsStorageFailure(err))
	})

	t.Run("commit succeeds", func(t *testing.T) {
		db, _ := openStubDB(t, stubConnPool{}, false)
		tm := NewTransactionManager(db)

		err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			assert.NotNil(t, factory.ConversationRepo())
			assert.NotNil(t, factory.MessageRepo())

			return nil
		})

		assert.NoError(t, err)
	})
}
