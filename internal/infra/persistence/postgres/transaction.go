// Package postgres stores the marketplace in PostgreSQL through GORM.
package postgres

import (
	"context"

	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories binds every repository to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(r.tx)
}

func (r txRepositories) CredentialRepo() repository.CredentialRepository {
	return NewCredentialRepository(r.tx)
}

func (r txRepositories) ConversationRepo() repository.ConversationRepository {
	return NewConversationRepository(r.tx)
}

func (r txRepositories) MessageRepo() repository.MessageRepository {
	return NewMessageRepository(r.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a gorm transaction. gorm rolls back when fn returns
// an error or panics, the error from fn is returned untouched so domain
// errors keep their codes. Begin and commit failures surface as storage failures.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return domainerrors.NewDatabaseExecuteError(err, "failed to run transaction")
	default:
		return nil
	}
}
