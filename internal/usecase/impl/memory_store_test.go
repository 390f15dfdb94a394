package impl

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"teka/internal/domain/entity"
	"teka/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-process stand-in for the relational store. Each
// repository call is atomic and enforces the same keys and foreign keys as the
// schema: (user_id, product_id) for favorites and the conversation triple.
type memoryStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	profiles      map[uuid.UUID]*entity.Profile
	credentials   map[string]*entity.Credential
	products      map[uuid.UUID]*entity.Product
	categories    map[uuid.UUID]*entity.Category
	favorites     []*entity.Favorite
	conversations map[uuid.UUID]*entity.Conversation
	messages      []*entity.Message
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		profiles:      make(map[uuid.UUID]*entity.Profile),
		credentials:   make(map[string]*entity.Credential),
		products:      make(map[uuid.UUID]*entity.Product),
		categories:    make(map[uuid.UUID]*entity.Category),
		conversations: make(map[uuid.UUID]*entity.Conversation),
	}
}

func clone[T any](v *T) *T {
	c := *v

	return &c
}

func (s *memoryStore) conversationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.conversations)
}

func (s *memoryStore) messageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.messages)
}

func (s *memoryStore) ProfileRepo() repository.ProfileRepository {
	return memoryProfileRepo{s}
}

func (s *memoryStore) CredentialRepo() repository.CredentialRepository {
	return memoryCredentialRepo{s}
}

func (s *memoryStore) ConversationRepo() repository.ConversationRepository {
	return memoryConversationRepo{s}
}

func (s *memoryStore) MessageRepo() repository.MessageRepository {
	return memoryMessageRepo{s}
}

// Execute serializes transactions and restores the previous state when fn fails.
func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	profiles := maps.Clone(s.profiles)
	credentials := maps.Clone(s.credentials)
	conversations := maps.Clone(s.conversations)
	messages := slices.Clone(s.messages)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.profiles = profiles
		s.credentials = credentials
		s.conversations = conversations
		s.messages = messages
		s.mu.Unlock()

		return err
	}

	return nil
}

type memoryProfileRepo struct{ s *memoryStore }

func (r memoryProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.profiles[profile.ID] = clone(profile)

	return nil
}

func (r memoryProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return clone(profile), nil
}

func (r memoryProfileRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Profile
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if profile, ok := r.s.profiles[id]; ok && !seen[id] {
			seen[id] = true
			result = append(result, clone(profile))
		}
	}

	return result, nil
}

func (r memoryProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[profile.ID]; !ok {
		return repository.ErrProfileNotFound
	}
	r.s.profiles[profile.ID] = clone(profile)

	return nil
}

type memoryCredentialRepo struct{ s *memoryStore }

func (r memoryCredentialRepo) Create(_ context.Context, credential *entity.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(credential.Email))
	if _, ok := r.s.credentials[email]; ok {
		return repository.ErrDuplicateEmail
	}
	r.s.credentials[email] = clone(credential)

	return nil
}

func (r memoryCredentialRepo) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	credential, ok := r.s.credentials[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return clone(credential), nil
}

type memoryProductRepo struct{ s *memoryStore }

func (r memoryProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.products[product.ID] = clone(product)

	return nil
}

func (r memoryProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return clone(product), nil
}

func (r memoryProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Product
	for _, id := range ids {
		if product, ok := r.s.products[id]; ok {
			result = append(result, clone(product))
		}
	}

	return result, nil
}

func (r memoryProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	text := strings.ToLower(filter.Text)
	var result []*entity.Product
	for _, product := range r.s.products {
		switch {
		case filter.ActiveOnly && !product.IsActive:
			continue
		case filter.CategoryID != nil && product.CategoryID != *filter.CategoryID:
			continue
		case filter.SellerID != nil && product.SellerID != *filter.SellerID:
			continue
		case filter.City != "" && product.City != filter.City:
			continue
		case text != "" &&
			!strings.Contains(strings.ToLower(product.Title), text) &&
			!strings.Contains(strings.ToLower(product.Description), text):
			continue
		}
		result = append(result, clone(product))
	}

	slices.SortFunc(result, func(a, b *entity.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(b.ID.String(), a.ID.String())
	})

	return result, nil
}

func (r memoryProductRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	updated := clone(product)
	updated.IsActive = active
	r.s.products[id] = updated

	return nil
}

type memoryCategoryRepo struct{ s *memoryStore }

func (r memoryCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*entity.Category, 0, len(r.s.categories))
	for _, category := range r.s.categories {
		result = append(result, clone(category))
	}
	slices.SortFunc(result, func(a, b *entity.Category) int { return strings.Compare(a.Name, b.Name) })

	return result, nil
}

func (r memoryCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	category, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return clone(category), nil
}

type memoryFavoriteRepo struct{ s *memoryStore }

func (r memoryFavoriteRepo) Remove(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	before := len(r.s.favorites)
	r.s.favorites = slices.DeleteFunc(r.s.favorites, func(f *entity.Favorite) bool {
		return f.UserID == userID && f.ProductID == productID
	})

	return len(r.s.favorites) < before, nil
}

func (r memoryFavoriteRepo) AddIfAbsent(_ context.Context, favorite *entity.Favorite) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[favorite.ProductID]; !ok {
		return false, repository.ErrProductNotFound
	}

	for _, f := range r.s.favorites {
		if f.UserID == favorite.UserID && f.ProductID == favorite.ProductID {
			return false, nil
		}
	}
	r.s.favorites = append(r.s.favorites, clone(favorite))

	return true, nil
}

func (r memoryFavoriteRepo) Exists(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.ContainsFunc(r.s.favorites, func(f *entity.Favorite) bool {
		return f.UserID == userID && f.ProductID == productID
	}), nil
}

func (r memoryFavoriteRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Favorite
	for i := len(r.s.favorites) - 1; i >= 0; i-- {
		if r.s.favorites[i].UserID == userID {
			result = append(result, clone(r.s.favorites[i]))
		}
	}

	return result, nil
}

type memoryConversationRepo struct{ s *memoryStore }

func (r memoryConversationRepo) CreateIfAbsent(_ context.Context, conversation *entity.Conversation) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.conversations {
		if c.ProductID == conversation.ProductID && c.BuyerID == conversation.BuyerID && c.SellerID == conversation.SellerID {
			return false, nil
		}
	}
	r.s.conversations[conversation.ID] = clone(conversation)

	return true, nil
}

func (r memoryConversationRepo) FindByTriple(_ context.Context, productID, buyerID, sellerID uuid.UUID) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.conversations {
		if c.ProductID == productID && c.BuyerID == buyerID && c.SellerID == sellerID {
			return clone(c), nil
		}
	}

	return nil, repository.ErrConversationNotFound
}

func (r memoryConversationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	conversation, ok := r.s.conversations[id]
	if !ok {
		return nil, repository.ErrConversationNotFound
	}

	return clone(conversation), nil
}

func (r memoryConversationRepo) FindByParticipant(_ context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Conversation
	for _, c := range r.s.conversations {
		if c.HasParticipant(userID) {
			result = append(result, clone(c))
		}
	}
	slices.SortFunc(result, func(a, b *entity.Conversation) int { return b.UpdatedAt.Compare(a.UpdatedAt) })

	return result, nil
}

func (r memoryConversationRepo) UpdateSummary(_ context.Context, id uuid.UUID, lastMessage string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	conversation, ok := r.s.conversations[id]
	if !ok {
		return repository.ErrConversationNotFound
	}
	updated := clone(conversation)
	updated.LastMessage = &lastMessage
	updated.UpdatedAt = updatedAt
	r.s.conversations[id] = updated

	return nil
}

type memoryMessageRepo struct{ s *memoryStore }

func (r memoryMessageRepo) Create(_ context.Context, message *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.conversations[message.ConversationID]; !ok {
		return repository.ErrConversationNotFound
	}
	r.s.messages = append(r.s.messages, clone(message))

	return nil
}

func (r memoryMessageRepo) FindByConversation(_ context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Message
	for _, m := range r.s.messages {
		if m.ConversationID == conversationID {
			result = append(result, clone(m))
		}
	}
	slices.SortStableFunc(result, func(a, b *entity.Message) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return result, nil
}
