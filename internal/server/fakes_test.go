package server

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/clktech/storefront/internal/config"
	"github.com/clktech/storefront/internal/models"
	"github.com/clktech/storefront/internal/store"
)

// In-memory store fakes. Each mutating call bumps Mutations so tests can
// assert that rejected requests never reach the storage layer.

type fakeProducts struct {
	items     []models.Product
	nextID    int64
	Mutations int
	Err       error
}

func (f *fakeProducts) List(context.Context) ([]models.Product, error) {
	return f.items, f.Err
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*models.Product, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProducts) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.items {
		if f.items[i].Slug == slug {
			return &f.items[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProducts) Create(_ context.Context, in models.ProductInput) (*models.Product, error) {
	f.Mutations++
	if f.Err != nil {
		return nil, f.Err
	}
	for _, p := range f.items {
		if p.Slug == in.Slug {
			return nil, fmt.Errorf("%w: slug %q", store.ErrDuplicate, in.Slug)
		}
	}
	f.nextID++
	p := models.Product{
		ID:              f.nextID,
		Name:            in.Name,
		Slug:            in.Slug,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		Price:           in.Price,
		Image:           in.Image,
		Category:        in.Category,
		InStock:         in.InStock,
		Specs:           in.Specs,
		ExternalLinks:   in.ExternalLinks,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	f.items = append(f.items, p)
	return &p, nil
}

func (f *fakeProducts) Update(_ context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	f.Mutations++
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		p := &f.items[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.FullDescription != nil {
			p.FullDescription = *patch.FullDescription
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.InStock != nil {
			p.InStock = *patch.InStock
		}
		if patch.Specs != nil {
			p.Specs = *patch.Specs
		}
		if patch.ExternalLinks != nil {
			p.ExternalLinks = *patch.ExternalLinks
		}
		return p, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	f.Mutations++
	if f.Err != nil {
		return f.Err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeOrders struct {
	items     []models.Order
	nextID    int64
	Mutations int
	Err       error
}

func (f *fakeOrders) List(context.Context) ([]models.Order, error) {
	return f.items, f.Err
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (*models.Order, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrders) Create(_ context.Context, in models.OrderInput) (*models.Order, error) {
	f.Mutations++
	if f.Err != nil {
		return nil, f.Err
	}
	f.nextID++
	o := models.Order{
		ID:           f.nextID,
		OrderID:      store.NewOrderID(time.Now()),
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
		Price:        in.Price,
		Notes:        in.Notes,
		Status:       models.OrderStatusPending,
		CreatedAt:    time.Now(),
	}
	f.items = append(f.items, o)
	return &o, nil
}

func (f *fakeOrders) Update(_ context.Context, id int64, patch models.OrderPatch) (*models.Order, error) {
	f.Mutations++
	if f.Err != nil {
		return nil, f.Err
	}
	if patch.Status != nil && !models.ValidOrderStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", store.ErrInvalidInput, *patch.Status)
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if patch.Status != nil {
			f.items[i].Status = *patch.Status
		}
		if patch.Notes != nil {
			f.items[i].Notes = *patch.Notes
		}
		return &f.items[i], nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrders) Delete(_ context.Context, id int64) error {
	f.Mutations++
	if f.Err != nil {
		return f.Err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeContacts struct {
	items     []models.Contact
	nextID    int64
	Mutations int
	Err       error
}

func (f *fakeContacts) List(context.Context) ([]models.Contact, error) {
	return f.items, f.Err
}

func (f *fakeContacts) Create(_ context.Context, in models.ContactInput) (*models.Contact, error) {
	f.Mutations++
	if f.Err != nil {
		return nil, f.Err
	}
	f.nextID++
	c := models.Contact{
		ID:            f.nextID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Subject:       in.Subject,
		Message:       in.Message,
		CaptchaAnswer: in.CaptchaAnswer,
		CreatedAt:     time.Now(),
	}
	f.items = append(f.items, c)
	return &c, nil
}

func (f *fakeContacts) Delete(_ context.Context, id int64) error {
	f.Mutations++
	if f.Err != nil {
		return f.Err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeSettings struct {
	current   *models.Settings
	Mutations int
	Err       error
}

func (f *fakeSettings) Get(context.Context) (*models.Settings, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.current == nil {
		return nil, store.ErrNotFound
	}
	return f.current, nil
}

func (f *fakeSettings) Update(_ context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	f.Mutations++
	if f.Err != nil {
		return nil, f.Err
	}
	if f.current == nil {
		return nil, store.ErrNotFound
	}
	if patch.SiteTitle != nil {
		f.current.SiteTitle = *patch.SiteTitle
	}
	if patch.SocialFacebook != nil {
		f.current.SocialFacebook = *patch.SocialFacebook
	}
	if patch.SocialTwitter != nil {
		f.current.SocialTwitter = *patch.SocialTwitter
	}
	if patch.SocialInstagram != nil {
		f.current.SocialInstagram = *patch.SocialInstagram
	}
	if patch.SocialLinkedin != nil {
		f.current.SocialLinkedin = *patch.SocialLinkedin
	}
	if patch.DownloadURL != nil {
		f.current.DownloadURL = *patch.DownloadURL
	}
	if patch.Havale != nil {
		f.current.Havale = *patch.Havale
	}
	if patch.Harici != nil {
		f.current.Harici = *patch.Harici
	}
	return f.current, nil
}

type fakeAdmins struct {
	items []models.Admin
}

func (f *fakeAdmins) GetByLogin(_ context.Context, login string) (*models.Admin, error) {
	for i := range f.items {
		if f.items[i].Username == login || f.items[i].Email == login {
			return &f.items[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAdmins) Create(_ context.Context, username, email, passwordHash string) (*models.Admin, error) {
	a := models.Admin{ID: int64(len(f.items) + 1), Username: username, Email: email, Password: passwordHash}
	f.items = append(f.items, a)
	return &a, nil
}

type testEnv struct {
	srv      *Server
	cfg      *config.Config
	products *fakeProducts
	orders   *fakeOrders
	contacts *fakeContacts
	settings *fakeSettings
	admins   *fakeAdmins
}

const testSecret = "test-signing-secret"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0", Env: "test"},
		Auth:   config.AuthConfig{Secret: testSecret, TokenTTL: 2 * time.Hour},
		Uploads: config.UploadsConfig{
			ImageDir:        filepath.Join(dir, "uploads"),
			DownloadDir:     filepath.Join(dir, "downloads"),
			MaxImageBytes:   5 << 20,
			MaxArchiveBytes: 200 << 20,
		},
		Log: config.LogConfig{ClientErrorFile: filepath.Join(dir, "client-errors.log")},
	}

	env := &testEnv{
		cfg:      cfg,
		products: &fakeProducts{},
		orders:   &fakeOrders{},
		contacts: &fakeContacts{},
		settings: &fakeSettings{current: &models.Settings{ID: 1, Havale: true, Harici: true}},
		admins:   &fakeAdmins{},
	}

	srv, err := NewServerWithStores(cfg, Stores{
		Products: env.products,
		Orders:   env.orders,
		Contacts: env.contacts,
		Settings: env.settings,
		Admins:   env.admins,
	})
	require.NoError(t, err)
	env.srv = srv
	return env
}

// adminToken issues a token signed with the server's own secret.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := e.srv.tokens.Issue(1, "admin@clktech.com")
	require.NoError(t, err)
	return token
}
