// Package storefront wires the client components into one Session. A Session
// is created at start-up, passed to whatever needs it and closed on exit.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/orders"
	"storefront-app/internal/domain/site"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/storefront/cart"
	"storefront-app/internal/storefront/catalogcache"
	"storefront-app/internal/storefront/checkout"
	"storefront-app/internal/storefront/configstore"
	"storefront-app/internal/storefront/gate"
	"storefront-app/internal/storefront/layout"
	"storefront-app/internal/storefront/remote"
	"storefront-app/internal/storefront/theme"
	"storefront-app/internal/storefront/wishlist"
)

type Options struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	// WishlistStorage defaults to an in-memory store.
	WishlistStorage wishlist.Storage
	// ThemeTarget defaults to a MapTarget.
	ThemeTarget theme.Target
	// Clock defaults to time.Now.
	Clock func() time.Time

	Logger *zap.Logger
}

type Session struct {
	Remote   *remote.Client
	Config   *configstore.Store
	Theme    *theme.Applier
	Catalog  *catalogcache.Cache
	Cart     *cart.Cart
	Wishlist *wishlist.Synchronizer
	Checkout *checkout.Service

	ids    *layout.IDGenerator
	logger *zap.Logger

	mu   sync.RWMutex
	user *remote.Account
}

func New(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	storage := opts.WishlistStorage
	if storage == nil {
		storage = &wishlist.MemoryStorage{}
	}
	target := opts.ThemeTarget
	if target == nil {
		target = &theme.MapTarget{}
	}

	client := remote.NewClient(opts.BaseURL, opts.HTTPClient, logger.Named("remote"))
	client.SetToken(opts.Token)

	products := catalogcache.New()
	likes, err := wishlist.New(storage, client, products, logger.Named("wishlist"))
	if err != nil {
		return nil, err
	}
	c := cart.New()

	s := &Session{
		Remote:   client,
		Config:   configstore.New(client, logger.Named("config")),
		Theme:    theme.NewApplier(target, logger.Named("theme")),
		Catalog:  products,
		Cart:     c,
		Wishlist: likes,
		Checkout: checkout.New(c, client, opts.Clock, logger.Named("checkout")),
		ids:      layout.NewIDGenerator(opts.Clock),
		logger:   logger,
	}

	// The theme follows every accepted configuration, once per change.
	s.Config.OnChange(func(cfg *site.SiteConfig) {
		if _, err := s.Theme.Apply(cfg); err != nil {
			s.logger.Error("Theme apply failed", zap.Error(err))
		}
	})
	return s, nil
}

// ErrCatalogUnavailable wraps a catalog failure in Start. The configuration is
// loaded by then and the page can still render.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Start loads the configuration and the catalog. A configuration failure is
// returned as is: nothing should render without it. A catalog failure comes
// back wrapped in ErrCatalogUnavailable after the stored token is checked.
func (s *Session) Start(ctx context.Context) error {
	if _, err := s.Config.Load(ctx); err != nil {
		return err
	}
	catalogErr := s.Catalog.Load(ctx, s.Remote)
	if s.Remote.Token() != "" {
		if acc, err := s.Remote.Me(ctx); err == nil {
			s.setUser(acc)
		} else {
			s.logger.Warn("Stored token rejected", zap.Error(err))
			s.Remote.SetToken("")
		}
	}
	if catalogErr != nil {
		s.logger.Warn("Catalog load failed", zap.Error(catalogErr))
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, catalogErr)
	}
	return nil
}

// HomeSections returns the published homepage in render order.
func (s *Session) HomeSections() ([]site.LayoutSection, error) {
	cfg, err := s.Config.Current()
	if err != nil {
		return nil, err
	}
	return layout.Visible(cfg.HomeLayout), nil
}

func (s *Session) Login(ctx context.Context, username, password string) (*remote.Account, error) {
	res, err := s.Remote.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.setUser(&res.User)
	s.logger.Info("Logged in", zap.String("username", res.User.Username))
	return &res.User, nil
}

func (s *Session) Logout() {
	s.Remote.SetToken("")
	s.setUser(nil)
}

// User returns the logged-in account, if any.
func (s *Session) User() (*users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := s.user.User
	return &u, true
}

// Require returns gate.ErrLoginRequired or gate.ErrForbidden unless the
// session may perform capability.
func (s *Session) Require(capability access.Capability) error {
	u, _ := s.User()
	return gate.Check(u, capability)
}

// Allowed lists the administrative actions the session may show.
func (s *Session) Allowed() []access.Capability {
	u, _ := s.User()
	return gate.Allowed(u)
}

// EditLayout opens a layout editor over the current configuration.
func (s *Session) EditLayout() (*layout.Editor, error) {
	if err := s.Require(access.ManageSite); err != nil {
		return nil, err
	}
	cfg, err := s.Config.Current()
	if err != nil {
		return nil, err
	}
	return layout.NewEditor(cfg.HomeLayout, s.ids), nil
}

// SaveLayout saves the editor's layout as a partial update.
func (s *Session) SaveLayout(ctx context.Context, e *layout.Editor) (*site.SiteConfig, error) {
	return s.SaveConfig(ctx, e.Update())
}

func (s *Session) SaveConfig(ctx context.Context, u site.Update) (*site.SiteConfig, error) {
	if err := s.Require(access.ManageSite); err != nil {
		return nil, err
	}
	return s.Config.SaveUpdate(ctx, u)
}

func (s *Session) ListOrders(ctx context.Context) ([]orders.Order, error) {
	if err := s.Require(access.ManageOrders); err != nil {
		return nil, err
	}
	return s.Remote.ListOrders(ctx)
}

func (s *Session) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status orders.Status) (*orders.Order, error) {
	if err := s.Require(access.ManageOrders); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return s.Remote.UpdateOrderStatus(ctx, id, status)
}

// Close ends the session: the cart is emptied and the user logged out.
func (s *Session) Close() {
	s.Cart.Clear()
	s.Logout()
}

func (s *Session) setUser(acc *remote.Account) {
	s.mu.Lock()
	s.user = acc
	s.mu.Unlock()
}
