package repository

import "context"

// TransactionManager runs multi-step writes atomically: sign-up stores the
// profile with its credential, and a sent message updates its conversation
// summary in the same unit.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	CredentialRepo() CredentialRepository
	ConversationRepo() ConversationRepository
	MessageRepo() MessageRepository
}
