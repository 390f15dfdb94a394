package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/domain/service"
	"teka/internal/errors"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// conversationService implements the ConversationUsecase interface.
type conversationService struct {
	txManager        repository.TransactionManager
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	productRepo      repository.ProductRepository
	profileRepo      repository.ProfileRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	ProductRepo      repository.ProductRepository
	ProfileRepo      repository.ProfileRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		txManager:        params.TxManager,
		conversationRepo: params.ConversationRepo,
		messageRepo:      params.MessageRepo,
		productRepo:      params.ProductRepo,
		profileRepo:      params.ProfileRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenOrCreateConversation returns the conversation of the triple, creating it at most once.
func (srv *conversationService) OpenOrCreateConversation(
	ctx context.Context,
	principal *entity.Principal,
	productID, sellerID uuid.UUID,
) (*entity.Conversation, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	if principal.ID == sellerID {
		return nil, errors.WithStack(domainerrors.ErrSelfContactForbidden)
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.SellerID != sellerID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("seller does not own this product")
	}

	return srv.openOrCreate(ctx, principal.ID, product)
}

// ContactSeller opens the conversation with the seller of productID.
func (srv *conversationService) ContactSeller(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*entity.Conversation, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.IsOwnedBy(principal.ID) {
		return nil, errors.WithStack(domainerrors.ErrSelfContactForbidden)
	}

	return srv.openOrCreate(ctx, principal.ID, product)
}

func (srv *conversationService) openOrCreate(ctx context.Context, buyerID uuid.UUID, product *entity.Product) (*entity.Conversation, error) {
	now := srv.now().UTC()
	conversation := &entity.Conversation{
		ID:        newID(),
		ProductID: product.ID,
		BuyerID:   buyerID,
		SellerID:  product.SellerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := srv.conversationRepo.CreateIfAbsent(ctx, conversation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	if created {
		srv.log(ctx).Info("Conversation created",
			slog.String("conversationID", conversation.ID.String()),
			slog.String("productID", product.ID.String()),
		)

		return conversation, nil
	}

	existing, err := srv.conversationRepo.FindByTriple(ctx, product.ID, buyerID, product.SellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load existing conversation")
	}

	return existing, nil
}

// SendMessage stores the message and refreshes the conversation summary in one transaction.
func (srv *conversationService) SendMessage(
	ctx context.Context,
	principal *entity.Principal,
	conversationID uuid.UUID,
	content string,
) (*entity.Message, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
	}

	message := &entity.Message{
		ID:             newID(),
		ConversationID: conversationID,
		SenderID:       principal.ID,
		Content:        content,
		CreatedAt:      srv.now().UTC(),
	}

	var conversation *entity.Conversation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := participantConversation(ctx, repoFactory.ConversationRepo(), principal.ID, conversationID)
		if err != nil {
			return err
		}
		conversation = found

		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			if errors.Is(err, repository.ErrConversationNotFound) {
				return errors.WithStack(domainerrors.ErrConversationNotFound)
			}

			return errors.Wrap(err, "failed to create message")
		}

		if err := repoFactory.ConversationRepo().UpdateSummary(ctx, conversationID, entity.SnippetOf(content), message.CreatedAt); err != nil {
			return errors.Wrap(err, "failed to update conversation summary")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketplaceEvent{
		Type:           service.EventMessageSent,
		ActorID:        principal.ID.String(),
		RecipientID:    conversation.Counterpart(principal.ID).String(),
		ProductID:      conversation.ProductID.String(),
		ConversationID: conversation.ID.String(),
		MessageID:      message.ID.String(),
		Snippet:        entity.SnippetOf(content),
		OccurredAt:     message.CreatedAt,
	})

	return message, nil
}

// ListMessages returns the conversation's messages, oldest first.
func (srv *conversationService) ListMessages(ctx context.Context, principal *entity.Principal, conversationID uuid.UUID) ([]*entity.Message, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	if _, err := participantConversation(ctx, srv.conversationRepo, principal.ID, conversationID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindByConversation(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// GetConversation returns one of the principal's conversations with its listing and participants.
func (srv *conversationService) GetConversation(ctx context.Context, principal *entity.Principal, conversationID uuid.UUID) (*usecase.ConversationView, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	conversation, err := participantConversation(ctx, srv.conversationRepo, principal.ID, conversationID)
	if err != nil {
		return nil, err
	}

	views, err := srv.buildViews(ctx, []*entity.Conversation{conversation})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// ListConversations returns the principal's conversations, most recently updated first.
func (srv *conversationService) ListConversations(ctx context.Context, principal *entity.Principal) ([]*usecase.ConversationView, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	conversations, err := srv.conversationRepo.FindByParticipant(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return srv.buildViews(ctx, conversations)
}

// buildViews batch-loads the listings and profiles referenced by conversations.
func (srv *conversationService) buildViews(ctx context.Context, conversations []*entity.Conversation) ([]*usecase.ConversationView, error) {
	views := make([]*usecase.ConversationView, 0, len(conversations))
	if len(conversations) == 0 {
		return views, nil
	}

	productIDs := make([]uuid.UUID, 0, len(conversations))
	profileIDs := make([]uuid.UUID, 0, 2*len(conversations))
	for _, conversation := range conversations {
		productIDs = append(productIDs, conversation.ProductID)
		profileIDs = append(profileIDs, conversation.BuyerID, conversation.SellerID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation products")
	}

	profiles, err := srv.profileRepo.FindByIDs(ctx, profileIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation participants")
	}

	productByID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	profileByID := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		profileByID[profile.ID] = profile
	}

	for _, conversation := range conversations {
		view := &usecase.ConversationView{Conversation: conversation}

		if product, ok := productByID[conversation.ProductID]; ok {
			view.Product = &usecase.ProductSummary{
				ID:         product.ID,
				Title:      product.Title,
				CoverPhoto: product.CoverPhoto(),
				IsActive:   product.IsActive,
			}
		}

		if buyer, ok := profileByID[conversation.BuyerID]; ok {
			view.Buyer = buyer.Public()
		}

		if seller, ok := profileByID[conversation.SellerID]; ok {
			view.Seller = seller.Public()
		}

		views = append(views, view)
	}

	return views, nil
}

// participantConversation loads the conversation and checks that userID takes part in it.
func participantConversation(
	ctx context.Context,
	conversationRepo repository.ConversationRepository,
	userID, conversationID uuid.UUID,
) (*entity.Conversation, error) {
	conversation, err := conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.WithStack(domainerrors.ErrConversationNotFound)
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if !conversation.HasParticipant(userID) {
		return nil, errors.WithStack(domainerrors.ErrNotConversationParticipant)
	}

	return conversation, nil
}
