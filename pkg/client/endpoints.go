package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"teka/internal/errors"
	"teka/pkg/session"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// SignUp opens an account and signs the session in.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*Profile, error) {
	out, err := call[*authResult](ctx, c, http.MethodPost, "/auth/signup", func(r *resty.Request) {
		r.SetBody(req)
	})
	if err != nil {
		return nil, err
	}

	return c.signIn(out, req.Email), nil
}

// SignIn authenticates with email and password and signs the session in.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Profile, error) {
	out, err := call[*authResult](ctx, c, http.MethodPost, "/auth/signin", func(r *resty.Request) {
		r.SetBody(map[string]string{"email": email, "password": password})
	})
	if err != nil {
		return nil, err
	}

	return c.signIn(out, email), nil
}

// SignOut forgets the token. Tokens are stateless so the server is not called.
func (c *Client) SignOut() {
	c.session.SignOut()
}

func (c *Client) signIn(out *authResult, email string) *Profile {
	principal := &session.Principal{Email: email}
	if out.Profile != nil {
		principal.ID = out.Profile.ID
		principal.FullName = out.Profile.FullName
	}

	var expiresAt time.Time
	if out.ExpiresIn > 0 {
		expiresAt = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	c.session.SignIn(principal, out.AccessToken, expiresAt)

	return out.Profile
}

// ListCategories returns the categories by name.
func (c *Client) ListCategories(ctx context.Context) ([]*Category, error) {
	return call[[]*Category](ctx, c, http.MethodGet, "/categories", nil)
}

// ListCities returns the cities offered by the listing form.
func (c *Client) ListCities(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, c, http.MethodGet, "/cities", nil)
}

// ListProducts returns active listings matching filter, newest first.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	return call[[]*Product](ctx, c, http.MethodGet, "/products", func(r *resty.Request) {
		if filter.CategoryID != uuid.Nil {
			r.SetQueryParam("category", filter.CategoryID.String())
		}
		if filter.City != "" {
			r.SetQueryParam("city", filter.City)
		}
		if filter.Text != "" {
			r.SetQueryParam("q", filter.Text)
		}
	})
}

// GetProduct returns the product page.
func (c *Client) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetail, error) {
	return call[*ProductDetail](ctx, c, http.MethodGet, "/products/"+productID.String(), nil)
}

// CreateProduct publishes a listing with its photos.
func (c *Client) CreateProduct(ctx context.Context, product NewProduct) (*CreatedProduct, error) {
	if _, err := c.session.Require(); err != nil {
		return nil, err
	}

	return call[*CreatedProduct](ctx, c, http.MethodPost, "/products", func(r *resty.Request) {
		r.SetMultipartFormData(map[string]string{
			"title":       product.Title,
			"description": product.Description,
			"price":       strconv.FormatFloat(product.Price, 'f', -1, 64),
			"currency":    product.Currency,
			"category_id": product.CategoryID.String(),
			"city":        product.City,
			"condition":   product.Condition,
		})
		for _, photo := range product.Photos {
			r.SetMultipartField("photos", photo.Filename, photo.ContentType, photo.Content)
		}
	})
}

// DeactivateProduct withdraws one of the member's listings.
func (c *Client) DeactivateProduct(ctx context.Context, productID uuid.UUID) error {
	_, err := call[struct{}](ctx, c, http.MethodDelete, "/products/"+productID.String(), nil)

	return err
}

// ProductQR returns the PNG share code of a listing.
func (c *Client) ProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	path := "/products/" + productID.String() + "/qr"
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&errorEnvelope{}).
		SetHeader("Accept", "image/png").
		Get(apiPrefix + path)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}

	if resp.IsError() {
		return nil, apiError(resp)
	}

	return resp.Body(), nil
}

// ToggleFavorite flips the favorite flag and reports whether the product is now a favorite.
func (c *Client) ToggleFavorite(ctx context.Context, productID uuid.UUID) (bool, error) {
	if _, err := c.session.Require(); err != nil {
		return false, err
	}

	out, err := call[struct {
		State string `json:"state"`
	}](ctx, c, http.MethodPost, "/favorites/"+productID.String()+"/toggle", nil)
	if err != nil {
		return false, err
	}

	return out.State == "favorited", nil
}

// ListFavorites returns the member's favorite products, most recent first.
func (c *Client) ListFavorites(ctx context.Context) ([]*Product, error) {
	return call[[]*Product](ctx, c, http.MethodGet, "/favorites", nil)
}

// ContactSeller opens, or reopens, the conversation about a product.
func (c *Client) ContactSeller(ctx context.Context, productID uuid.UUID) (*Conversation, error) {
	if _, err := c.session.Require(); err != nil {
		return nil, err
	}

	return call[*Conversation](ctx, c, http.MethodPost, "/products/"+productID.String()+"/contact", nil)
}

// ListConversations returns the member's conversations, latest activity first.
func (c *Client) ListConversations(ctx context.Context) ([]*ConversationView, error) {
	return call[[]*ConversationView](ctx, c, http.MethodGet, "/conversations", nil)
}

// ListMessages returns a conversation's messages, oldest first.
func (c *Client) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*Message, error) {
	return call[[]*Message](ctx, c, http.MethodGet, "/conversations/"+conversationID.String()+"/messages", nil)
}

// SendMessage posts a message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID uuid.UUID, content string) (*Message, error) {
	if _, err := c.session.Require(); err != nil {
		return nil, err
	}

	return call[*Message](ctx, c, http.MethodPost, "/conversations/"+conversationID.String()+"/messages", func(r *resty.Request) {
		r.SetBody(map[string]string{"content": content})
	})
}

// GetSeller returns a seller's store. With activeOnly false, withdrawn listings are included.
func (c *Client) GetSeller(ctx context.Context, sellerID uuid.UUID, activeOnly bool) (*SellerView, error) {
	return call[*SellerView](ctx, c, http.MethodGet, "/sellers/"+sellerID.String(), func(r *resty.Request) {
		r.SetQueryParam("active", strconv.FormatBool(activeOnly))
	})
}

// Me returns the member's own profile.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	return call[*Profile](ctx, c, http.MethodGet, "/me", nil)
}

// UpdateMe applies a partial profile update.
func (c *Client) UpdateMe(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	return call[*Profile](ctx, c, http.MethodPatch, "/me", func(r *resty.Request) {
		r.SetBody(update)
	})
}
