package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"storefront-app/internal/domain/catalog"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/site"
	"storefront-app/internal/domain/users"
)

// Account is a user as the API returns it, with resolved capabilities.
type Account struct {
	users.User
	Capabilities []string `json:"capabilities"`
}

// LoginResult is the response of POST /login.
type LoginResult struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

// NewUser is the body of POST /users.
type NewUser struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// ErrEmptyDocument is returned when a site-config response carries no document.
var ErrEmptyDocument = errors.New("store api: empty site config document")

func (c *Client) GetSiteConfig(ctx context.Context) (*site.SiteConfig, error) {
	return c.siteConfig(ctx, http.MethodGet, nil)
}

func (c *Client) ReplaceSiteConfig(ctx context.Context, cfg *site.SiteConfig) (*site.SiteConfig, error) {
	return c.siteConfig(ctx, http.MethodPut, cfg)
}

func (c *Client) PatchSiteConfig(ctx context.Context, u site.Update) (*site.SiteConfig, error) {
	return c.siteConfig(ctx, http.MethodPatch, u)
}

// siteConfig only heals a document the server actually sent. A blank or null
// body is an error, never the default document.
func (c *Client) siteConfig(ctx context.Context, method string, in interface{}) (*site.SiteConfig, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, "/site-config", in, &raw); err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%s /site-config: %w", method, ErrEmptyDocument)
	}
	return site.DecodeConfig(raw)
}

func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProductsInCategory(ctx context.Context, categoryID uint) ([]catalog.Product, error) {
	q := url.Values{"categoryId": {strconv.FormatUint(uint64(categoryID), 10)}}
	var out []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (*catalog.Product, error) {
	var out catalog.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (*catalog.Product, error) {
	var out catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, p catalog.Product) (*catalog.Product, error) {
	var out catalog.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// SetLiked increments (liked) or decrements the product's like counter and
// returns the product with the server's counter.
func (c *Client) SetLiked(ctx context.Context, id uint, liked bool) (*catalog.Product, error) {
	var out catalog.Product
	body := map[string]bool{"liked": liked}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/like", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat catalog.Category) (*catalog.Category, error) {
	var out catalog.Category
	if err := c.do(ctx, http.MethodPost, "/categories", cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, cat catalog.Category) (*catalog.Category, error) {
	var out catalog.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", cat.ID), cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, o *orders.Order) (*orders.Order, error) {
	var out orders.Order
	if err := c.do(ctx, http.MethodPost, "/orders", o, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]orders.Order, error) {
	var out []orders.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status orders.Status) (*orders.Order, error) {
	var out orders.Order
	body := map[string]orders.Status{"status": status}
	if err := c.do(ctx, http.MethodPut, "/orders/"+id.String()+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and, on success, keeps the returned token for later
// requests.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*Account, error) {
	var out Account
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, u NewUser) (*Account, error) {
	var out Account
	if err := c.do(ctx, http.MethodPost, "/users", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
