package postgres

import (
	"context"
	"time"

	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateIfAbsent inserts the conversation unless its triple already exists.
// A racing insert that still reports a uniqueness violation is treated as "already exists".
func (repo *conversationRepository) CreateIfAbsent(ctx context.Context, conversation *entity.Conversation) (bool, error) {
	conversationM := fromConversationDomain(conversation)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "buyer_id"}, {Name: "seller_id"}},
			DoNothing: true,
		}).
		Create(conversationM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}
		if isForeignKeyConstraintViolation(result.Error) {
			switch violatedConstraint(result.Error) {
			case fkConversationsBuyer, fkConversationsSeller:
				return false, repository.ErrProfileNotFound
			default:
				return false, repository.ErrProductNotFound
			}
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create conversation")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	conversation.ID = conversationM.ID
	conversation.CreatedAt = conversationM.CreatedAt
	conversation.UpdatedAt = conversationM.UpdatedAt

	return true, nil
}

// FindByTriple retrieves the conversation for a (product, buyer, seller) triple.
// Reads go to the primary so the row of a racing CreateIfAbsent is visible.
func (repo *conversationRepository) FindByTriple(ctx context.Context, productID, buyerID, sellerID uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("product_id = ? AND buyer_id = ? AND seller_id = ?", productID, buyerID, sellerID).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find conversation by triple")
	}

	return toConversationDomain(&conversationM), nil
}

// FindByID retrieves a conversation by its ID.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// FindByParticipant returns the user's conversations, most recently updated first.
func (repo *conversationRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel
	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find conversations by participant")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// UpdateSummary sets the last-message snippet and update time.
func (repo *conversationRepository) UpdateSummary(ctx context.Context, id uuid.UUID, lastMessage string, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_message": lastMessage,
			"updated_at":   updatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update conversation summary")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatedConstraint(err) == fkMessagesSender {
				return repository.ErrProfileNotFound
			}

			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByConversation returns the messages of a conversation in ascending creation order.
func (repo *messageRepository) FindByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find messages by conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.Message{
			ID:             messageM.ID,
			ConversationID: messageM.ConversationID,
			SenderID:       messageM.SenderID,
			Content:        messageM.Content,
			CreatedAt:      messageM.CreatedAt,
		})
	}

	return messages, nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:          data.ID,
		ProductID:   data.ProductID,
		BuyerID:     data.BuyerID,
		SellerID:    data.SellerID,
		LastMessage: data.LastMessage,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	return &model.ConversationModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		BuyerID:     data.BuyerID,
		SellerID:    data.SellerID,
		LastMessage: data.LastMessage,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
