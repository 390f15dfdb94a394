package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/router/handler"
	"teka/internal/delivery/api/validator"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	mockUC "teka/internal/mocks/usecase"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const memberToken = "member-token"

type testServer struct {
	echo           *echo.Echo
	member         *entity.Principal
	accountUC      *mockUC.MockAccountUsecase
	catalogUC      *mockUC.MockCatalogUsecase
	favoriteUC     *mockUC.MockFavoriteUsecase
	conversationUC *mockUC.MockConversationUsecase
	profileUC      *mockUC.MockProfileUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		echo:           echo.New(),
		member:         &entity.Principal{ID: uuid.New()},
		accountUC:      mockUC.NewMockAccountUsecase(t),
		catalogUC:      mockUC.NewMockCatalogUsecase(t),
		favoriteUC:     mockUC.NewMockFavoriteUsecase(t),
		conversationUC: mockUC.NewMockConversationUsecase(t),
		profileUC:      mockUC.NewMockProfileUsecase(t),
	}

	s.accountUC.EXPECT().Authenticate(mock.Anything, memberToken).Return(s.member, nil).Maybe()

	s.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	s.echo.Validator = validator.New()

	r := NewRouter(RouterParams{
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
		AccountHandler:      handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: s.accountUC, Logger: logger}),
		CatalogHandler:      handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: s.catalogUC, Logger: logger}),
		FavoriteHandler:     handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: s.favoriteUC, Logger: logger}),
		ConversationHandler: handler.NewConversationHandler(handler.ConversationHandlerParams{ConversationUC: s.conversationUC, Logger: logger}),
		ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: s.profileUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AccountUC: s.accountUC}),
	})
	r.RegisterRoutes(s.echo)

	return s
}

func (s *testServer) do(method, target, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) doJSON(method, target, token, body string) *httptest.ResponseRecorder {
	return s.do(method, target, token, strings.NewReader(body), echo.MIMEApplicationJSON)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := s.do(http.MethodGet, path, "", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_SignUp(t *testing.T) {
	s := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		s.accountUC.EXPECT().
			SignUp(mock.Anything, mock.MatchedBy(func(in *usecase.SignUpInput) bool {
				return in.Email == "amani@example.cd" && in.FullName == "Amani Kasongo"
			})).
			Return(&usecase.AuthOutput{AccessToken: "tok", TokenType: "Bearer"}, nil).Once()

		rec := s.doJSON(http.MethodPost, "/api/v1/auth/signup", "",
			`{"full_name":"Amani Kasongo","email":"amani@example.cd","password":"secret123"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"access_token":"tok"`)
	})

	t.Run("invalid email never reaches the usecase", func(t *testing.T) {
		rec := s.doJSON(http.MethodPost, "/api/v1/auth/signup", "",
			`{"full_name":"Amani Kasongo","email":"not-an-email","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email")
	})

	t.Run("duplicate email", func(t *testing.T) {
		s.accountUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyRegistered).Once()

		rec := s.doJSON(http.MethodPost, "/api/v1/auth/signup", "",
			`{"full_name":"Amani Kasongo","email":"amani@example.cd","password":"secret123"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_SignIn_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.accountUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec := s.doJSON(http.MethodPost, "/api/v1/auth/signin", "", `{"email":"amani@example.cd","password":"wrong-one"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestRouter_ListProducts(t *testing.T) {
	s := newTestServer(t)
	categoryID := uuid.New()

	s.catalogUC.EXPECT().
		ListProducts(mock.Anything, &usecase.ProductQuery{CategoryID: &categoryID, City: "Goma", Text: "velo"}).
		Return([]*entity.Product{{ID: uuid.New(), Title: "Vélo"}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/products?category="+categoryID.String()+"&city=Goma&q=velo", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/products?category=electronics", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CATEGORY", decode(t, rec).Error.Code)
}

func TestRouter_GetProduct_OptionalPrincipal(t *testing.T) {
	s := newTestServer(t)
	productID := uuid.New()
	detail := &usecase.ProductDetail{Product: &entity.Product{ID: productID}}

	s.catalogUC.EXPECT().GetProduct(mock.Anything, (*entity.Principal)(nil), productID).Return(detail, nil).Once()
	s.catalogUC.EXPECT().GetProduct(mock.Anything, s.member, productID).Return(detail, nil).Once()

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/products/"+productID.String(), "", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/products/"+productID.String(), memberToken, nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/products/42", "", nil, "").Code)
}

func multipartListing(t *testing.T, fields map[string]string, photos map[string]string) (io.Reader, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for filename, content := range photos {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="photos"; filename="`+filename+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestRouter_CreateProduct(t *testing.T) {
	categoryID := uuid.New()
	fields := map[string]string{
		"title":       "Téléphone Tecno",
		"description": "Très bon état, vendu avec chargeur",
		"price":       "150000,50",
		"currency":    "cdf",
		"category_id": categoryID.String(),
		"city":        "Kinshasa",
		"condition":   "good",
	}

	t.Run("multipart with photos", func(t *testing.T) {
		s := newTestServer(t)
		body, contentType := multipartListing(t, fields, map[string]string{"front.jpg": "jpeg-bytes"})

		s.catalogUC.EXPECT().
			CreateProduct(mock.Anything, s.member, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ *entity.Principal, in *usecase.CreateProductInput, photos []usecase.PhotoUpload) (*usecase.CreateProductOutput, error) {
				assert.InDelta(t, 150000.50, in.Price, 0.001)
				assert.Equal(t, entity.CurrencyCDF, in.Currency)
				assert.Equal(t, categoryID, in.CategoryID)
				require.Len(t, photos, 1)
				assert.Equal(t, "front.jpg", photos[0].Filename)
				assert.Equal(t, "image/jpeg", photos[0].ContentType)
				content, err := io.ReadAll(photos[0].Content)
				require.NoError(t, err)
				assert.Equal(t, "jpeg-bytes", string(content))

				return &usecase.CreateProductOutput{Product: &entity.Product{ID: uuid.New()}}, nil
			}).Once()

		rec := s.do(http.MethodPost, "/api/v1/products", memberToken, body, contentType)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("non numeric price", func(t *testing.T) {
		s := newTestServer(t)
		bad := map[string]string{}
		for k, v := range fields {
			bad[k] = v
		}
		bad["price"] = "gratuit"
		body, contentType := multipartListing(t, bad, nil)

		rec := s.do(http.MethodPost, "/api/v1/products", memberToken, body, contentType)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		s := newTestServer(t)
		body, contentType := multipartListing(t, fields, nil)

		rec := s.do(http.MethodPost, "/api/v1/products", "", body, contentType)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_DeactivateProduct(t *testing.T) {
	s := newTestServer(t)
	productID := uuid.New()

	s.catalogUC.EXPECT().DeactivateProduct(mock.Anything, s.member, productID).Return(nil).Once()
	rec := s.do(http.MethodDelete, "/api/v1/products/"+productID.String(), memberToken, nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	s.catalogUC.EXPECT().DeactivateProduct(mock.Anything, s.member, productID).Return(domainerrors.ErrProductOwnershipViolation).Once()
	rec = s.do(http.MethodDelete, "/api/v1/products/"+productID.String(), memberToken, nil, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ProductQRAndPhoto(t *testing.T) {
	s := newTestServer(t)
	productID := uuid.New()

	s.catalogUC.EXPECT().ProductShareQR(mock.Anything, productID).Return([]byte("\x89PNG"), nil).Once()
	rec := s.do(http.MethodGet, "/api/v1/products/"+productID.String()+"/qr", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	s.catalogUC.EXPECT().OpenPhoto(mock.Anything, "seller/photo.jpg").
		Return(io.NopCloser(strings.NewReader("jpeg")), "image/jpeg", nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/photos/seller/photo.jpg", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpeg", rec.Body.String())

	s.catalogUC.EXPECT().OpenPhoto(mock.Anything, "seller/missing.jpg").Return(nil, "", domainerrors.ErrNotFound).Once()
	rec = s.do(http.MethodGet, "/api/v1/photos/seller/missing.jpg", "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Favorites(t *testing.T) {
	s := newTestServer(t)
	productID := uuid.New()

	s.favoriteUC.EXPECT().ToggleFavorite(mock.Anything, s.member, productID).Return(entity.FavoriteStateFavorited, nil).Once()
	rec := s.do(http.MethodPost, "/api/v1/favorites/"+productID.String()+"/toggle", memberToken, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"favorited"}`, string(decode(t, rec).Data))

	s.favoriteUC.EXPECT().IsFavorite(mock.Anything, s.member, productID).Return(true, nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/favorites/"+productID.String(), memberToken, nil, "")
	assert.JSONEq(t, `{"is_favorite":true}`, string(decode(t, rec).Data))

	s.favoriteUC.EXPECT().ListFavorites(mock.Anything, s.member).Return([]*entity.Product{}, nil).Once()
	rec = s.do(http.MethodGet, "/api/v1/favorites", memberToken, nil, "")
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/favorites", "", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/favorites/abc/toggle", memberToken, nil, "").Code)
}

func TestRouter_Conversations(t *testing.T) {
	s := newTestServer(t)
	productID, sellerID, conversationID := uuid.New(), uuid.New(), uuid.New()
	conversation := &entity.Conversation{ID: conversationID, ProductID: productID, BuyerID: s.member.ID, SellerID: sellerID}

	t.Run("contact seller", func(t *testing.T) {
		s.conversationUC.EXPECT().ContactSeller(mock.Anything, s.member, productID).Return(conversation, nil).Once()

		rec := s.do(http.MethodPost, "/api/v1/products/"+productID.String()+"/contact", memberToken, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), conversationID.String())
	})

	t.Run("open with explicit seller", func(t *testing.T) {
		s.conversationUC.EXPECT().OpenOrCreateConversation(mock.Anything, s.member, productID, sellerID).Return(conversation, nil).Once()

		rec := s.doJSON(http.MethodPost, "/api/v1/conversations", memberToken,
			`{"product_id":"`+productID.String()+`","seller_id":"`+sellerID.String()+`"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("self contact", func(t *testing.T) {
		s.conversationUC.EXPECT().ContactSeller(mock.Anything, s.member, productID).Return(nil, domainerrors.ErrSelfContactForbidden).Once()

		rec := s.do(http.MethodPost, "/api/v1/products/"+productID.String()+"/contact", memberToken, nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SELF_CONTACT_FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("send message", func(t *testing.T) {
		s.conversationUC.EXPECT().SendMessage(mock.Anything, s.member, conversationID, "Bonjour, toujours dispo ?").
			Return(&entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: s.member.ID}, nil).Once()

		rec := s.doJSON(http.MethodPost, "/api/v1/conversations/"+conversationID.String()+"/messages", memberToken,
			`{"content":"Bonjour, toujours dispo ?"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("message too long", func(t *testing.T) {
		rec := s.doJSON(http.MethodPost, "/api/v1/conversations/"+conversationID.String()+"/messages", memberToken,
			`{"content":"`+strings.Repeat("a", 2001)+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stranger reads messages", func(t *testing.T) {
		s.conversationUC.EXPECT().ListMessages(mock.Anything, s.member, conversationID).Return(nil, domainerrors.ErrNotConversationParticipant).Once()

		rec := s.do(http.MethodGet, "/api/v1/conversations/"+conversationID.String()+"/messages", memberToken, nil, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		s.conversationUC.EXPECT().ListConversations(mock.Anything, s.member).
			Return([]*usecase.ConversationView{{Conversation: conversation}}, nil).Once()

		rec := s.do(http.MethodGet, "/api/v1/conversations", memberToken, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Profiles(t *testing.T) {
	s := newTestServer(t)
	sellerID := uuid.New()
	view := &usecase.SellerView{Profile: &entity.PublicProfile{ID: sellerID}, Products: []*entity.Product{}}

	s.profileUC.EXPECT().GetSellerPublicView(mock.Anything, sellerID, true).Return(view, nil).Once()
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/sellers/"+sellerID.String(), "", nil, "").Code)

	s.profileUC.EXPECT().GetSellerPublicView(mock.Anything, sellerID, false).Return(view, nil).Once()
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/sellers/"+sellerID.String()+"?active=false", "", nil, "").Code)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/sellers/"+sellerID.String()+"?active=peut-etre", "", nil, "").Code)

	s.profileUC.EXPECT().
		UpdateMyProfile(mock.Anything, s.member, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.City != nil && *in.City == "Lubumbashi" && in.FullName == nil
		})).
		Return(&entity.Profile{ID: s.member.ID}, nil).Once()
	rec := s.doJSON(http.MethodPatch, "/api/v1/me", memberToken, `{"city":"Lubumbashi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, s.doJSON(http.MethodPatch, "/api/v1/me", "", `{"city":"Goma"}`).Code)
}
