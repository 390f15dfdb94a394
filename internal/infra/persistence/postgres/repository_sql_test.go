package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConversationRepository_SQL(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("create if absent ignores the existing triple", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewConversationRepository(db)

		_, err := repo.CreateIfAbsent(ctx, &entity.Conversation{
			ProductID: uuid.New(),
			BuyerID:   userID,
			SellerID:  uuid.New(),
		})
		require.NoError(t, err)

		stmt := rec.last(t)
		assert.Contains(t, stmt, `INSERT INTO "conversations"`)
		assert.Contains(t, stmt, `ON CONFLICT ("product_id","buyer_id","seller_id") DO NOTHING`)
	})

	t.Run("participant listing is newest activity first", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewConversationRepository(db)

		_, err := repo.FindByParticipant(ctx, userID)
		require.NoError(t, err)

		stmt := rec.last(t)
		assert.Contains(t, stmt, fmt.Sprintf(`buyer_id = '%s' OR seller_id = '%s'`, userID, userID))
		assert.Contains(t, stmt, "ORDER BY updated_at DESC")
	})

	t.Run("summary update touches one row", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewConversationRepository(db)
		id := uuid.New()

		// Nothing is affected without a server.
		err := repo.UpdateSummary(ctx, id, "Toujours dispo ?", time.Now())
		assert.ErrorIs(t, err, repository.ErrConversationNotFound)

		stmt := rec.last(t)
		assert.Contains(t, stmt, `UPDATE "conversations" SET`)
		assert.Contains(t, stmt, `"last_message"='Toujours dispo ?'`)
		assert.Contains(t, stmt, fmt.Sprintf(`WHERE id = '%s'`, id))
	})
}

func TestMessageRepository_SQL(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewMessageRepository(db)
	conversationID := uuid.New()

	_, err := repo.FindByConversation(context.Background(), conversationID)
	require.NoError(t, err)

	stmt := rec.last(t)
	assert.Contains(t, stmt, fmt.Sprintf(`WHERE conversation_id = '%s'`, conversationID))
	assert.Contains(t, stmt, "ORDER BY created_at ASC,id ASC")
}

func TestFavoriteRepository_SQL(t *testing.T) {
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	t.Run("add ignores an existing pair", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewFavoriteRepository(db)

		_, err := repo.AddIfAbsent(ctx, &entity.Favorite{UserID: userID, ProductID: productID, CreatedAt: time.Now()})
		require.NoError(t, err)

		stmt := rec.last(t)
		assert.Contains(t, stmt, `INSERT INTO "favorites"`)
		assert.Contains(t, stmt, "ON CONFLICT DO NOTHING")
	})

	t.Run("remove is a single delete", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewFavoriteRepository(db)

		removed, err := repo.Remove(ctx, userID, productID)
		require.NoError(t, err)
		assert.False(t, removed)

		require.Len(t, rec.statements, 1)
		assert.Contains(t, rec.last(t),
			fmt.Sprintf(`DELETE FROM "favorites" WHERE user_id = '%s' AND product_id = '%s'`, userID, productID))
	})

	t.Run("listing is most recent first", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		repo := NewFavoriteRepository(db)

		_, err := repo.FindByUser(ctx, userID)
		require.NoError(t, err)

		stmt := rec.last(t)
		assert.Contains(t, stmt, fmt.Sprintf(`WHERE user_id = '%s'`, userID))
		assert.Contains(t, stmt, "ORDER BY created_at DESC")
	})
}

func TestProductRepository_ListSQL(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name    string
		filter  repository.ProductFilter
		want    []string
		notWant []string
	}{
		{
			name:    "no criteria",
			filter:  repository.ProductFilter{},
			want:    []string{`SELECT * FROM "products"`, "ORDER BY created_at DESC,id DESC"},
			notWant: []string{"WHERE"},
		},
		{
			name:   "active only",
			filter: repository.ProductFilter{ActiveOnly: true},
			want:   []string{"WHERE is_active = true"},
		},
		{
			name:   "wildcards in text match literally",
			filter: repository.ProductFilter{Text: " 50%_off "},
			want:   []string{`(title ILIKE '%50\%\_off%' OR description ILIKE '%50\%\_off%')`},
		},
		{
			name:   "criteria are conjunctive",
			filter: repository.ProductFilter{CategoryID: &categoryID, City: "Lyon"},
			want:   []string{fmt.Sprintf(`category_id = '%s' AND city = 'Lyon'`, categoryID)},
		},
		{
			name:    "blank city is ignored",
			filter:  repository.ProductFilter{City: "   "},
			notWant: []string{"city ="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := newDryRunDB(t)
			repo := NewProductRepository(db)

			products, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Empty(t, products)

			stmt := rec.last(t)
			for _, want := range tt.want {
				assert.Contains(t, stmt, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, stmt, notWant)
			}
		})
	}
}

func TestRepositories_ForeignKeyViolations(t *testing.T) {
	ctx := context.Background()
	fkError := func(constraint string) stubConnPool {
		return stubConnPool{stmtErr: &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraint}}
	}

	tests := []struct {
		name       string
		constraint string
		run        func(db *gorm.DB) error
		wantErr    error
	}{
		{
			name:       "favorite of a missing product",
			constraint: "fk_favorites_product",
			run: func(db *gorm.DB) error {
				_, err := NewFavoriteRepository(db).AddIfAbsent(ctx, &entity.Favorite{UserID: uuid.New(), ProductID: uuid.New()})
				return err
			},
			wantErr: repository.ErrProductNotFound,
		},
		{
			name:       "favorite of a missing profile",
			constraint: fkFavoritesUser,
			run: func(db *gorm.DB) error {
				_, err := NewFavoriteRepository(db).AddIfAbsent(ctx, &entity.Favorite{UserID: uuid.New(), ProductID: uuid.New()})
				return err
			},
			wantErr: repository.ErrProfileNotFound,
		},
		{
			name:       "listing in a missing category",
			constraint: "fk_products_category",
			run: func(db *gorm.DB) error {
				return NewProductRepository(db).Create(ctx, &entity.Product{SellerID: uuid.New(), CategoryID: uuid.New()})
			},
			wantErr: repository.ErrCategoryNotFound,
		},
		{
			name:       "listing by a missing seller",
			constraint: fkProductsSeller,
			run: func(db *gorm.DB) error {
				return NewProductRepository(db).Create(ctx, &entity.Product{SellerID: uuid.New(), CategoryID: uuid.New()})
			},
			wantErr: repository.ErrProfileNotFound,
		},
		{
			name:       "conversation about a missing product",
			constraint: "fk_conversations_product",
			run: func(db *gorm.DB) error {
				_, err := NewConversationRepository(db).CreateIfAbsent(ctx, &entity.Conversation{ProductID: uuid.New()})
				return err
			},
			wantErr: repository.ErrProductNotFound,
		},
		{
			name:       "conversation with a missing buyer",
			constraint: fkConversationsBuyer,
			run: func(db *gorm.DB) error {
				_, err := NewConversationRepository(db).CreateIfAbsent(ctx, &entity.Conversation{ProductID: uuid.New()})
				return err
			},
			wantErr: repository.ErrProfileNotFound,
		},
		{
			name:       "message in a missing conversation",
			constraint: "fk_messages_conversation",
			run: func(db *gorm.DB) error {
				return NewMessageRepository(db).Create(ctx, &entity.Message{ConversationID: uuid.New(), Content: "Bonjour"})
			},
			wantErr: repository.ErrConversationNotFound,
		},
		{
			name:       "message from a missing sender",
			constraint: fkMessagesSender,
			run: func(db *gorm.DB) error {
				return NewMessageRepository(db).Create(ctx, &entity.Message{ConversationID: uuid.New(), Content: "Bonjour"})
			},
			wantErr: repository.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := openStubDB(t, fkError(tt.constraint), false)

			assert.ErrorIs(t, tt.run(db), tt.wantErr)
		})
	}
}

func TestRepositories_OtherFailuresAreStorageFailures(t *testing.T) {
	db, _ := openStubDB(t, stubConnPool{}, false)

	_, err := NewFavoriteRepository(db).AddIfAbsent(context.Background(), &entity.Favorite{UserID: uuid.New(), ProductID: uuid.New()})

	assert.True(t, domainerrors.IsStorageFailure(err))
	assert.ErrorIs(t, err, errNoServer)
}
