package handler

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/repository"
	"github.com/bizpeer/cdg-beauty/internal/utils"
)

// In-memory store fakes. They mirror the repository semantics (sentinel
// errors, receiver fallback, idempotent deletes) closely enough to exercise
// the handlers without a database.

func newTestCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(r, rec), rec
}

type fakeAdminStore struct {
	admins []model.Admin
	nextID uint64
	err    error // when set, every call fails with it
}

func (f *fakeAdminStore) add(email, password, role string, receives bool) {
	hash, _ := utils.HashPassword(password, 4)
	f.nextID++
	f.admins = append(f.admins, model.Admin{
		ID: f.nextID, Email: email, PasswordHash: hash, Role: role,
		ReceivesInquiries: receives, CreatedAt: time.Now().UTC(),
	})
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (model.Admin, error) {
	if f.err != nil {
		return model.Admin{}, f.err
	}
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Admin{}, repository.ErrNotFound
}

func (f *fakeAdminStore) ListSubAdmins(ctx context.Context) ([]model.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Admin
	for _, a := range f.admins {
		if a.Role == model.RoleSub {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, email, password string, cost int) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, a := range f.admins {
		if a.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	f.add(email, password, model.RoleSub, false)
	return f.nextID, nil
}

func (f *fakeAdminStore) Delete(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	for i, a := range f.admins {
		if a.ID == id && a.Role == model.RoleSub {
			f.admins = append(f.admins[:i], f.admins[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAdminStore) SetInquiryReceiver(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	found := false
	for _, a := range f.admins {
		if a.Email == email {
			found = true
		}
	}
	if !found {
		return repository.ErrNotFound
	}
	for i := range f.admins {
		f.admins[i].ReceivesInquiries = f.admins[i].Email == email
	}
	return nil
}

func (f *fakeAdminStore) GetInquiryReceiver(ctx context.Context) (model.Admin, error) {
	if f.err != nil {
		return model.Admin{}, f.err
	}
	for _, a := range f.admins {
		if a.ReceivesInquiries {
			return a, nil
		}
	}
	for _, a := range f.admins {
		if a.Role == model.RoleMain {
			return a, nil
		}
	}
	return model.Admin{}, repository.ErrNotFound
}

func (f *fakeAdminStore) EnsureMainAdmin(ctx context.Context, email, password string, cost int) error {
	if _, err := f.GetByEmail(ctx, email); err == nil {
		return nil
	}
	f.add(email, password, model.RoleMain, false)
	return nil
}

type fakeInquiryStore struct {
	items  []model.Inquiry
	nextID uint64
	err    error
}

func (f *fakeInquiryStore) Create(ctx context.Context, inq *model.Inquiry) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	inq.ID = f.nextID
	inq.CreatedAt = time.Now().UTC()
	f.items = append(f.items, *inq)
	return nil
}

func (f *fakeInquiryStore) List(ctx context.Context) ([]model.Inquiry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Inquiry, len(f.items))
	copy(out, f.items)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeInquiryStore) Delete(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeProductStore struct {
	items []model.Product
	err   error
}

func (f *fakeProductStore) List(ctx context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Product(nil), f.items...), nil
}

func (f *fakeProductStore) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	if f.err != nil {
		return model.Product{}, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repository.ErrNotFound
}

func (f *fakeProductStore) Update(ctx context.Context, p *model.Product) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == p.ID {
			f.items[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProductStore) SeedDefaults(ctx context.Context, products []model.Product) error {
	if len(f.items) == 0 {
		for i, p := range products {
			p.ID = uint64(i + 1)
			f.items = append(f.items, p)
		}
	}
	return nil
}

type fakeMediaStore struct {
	items  []model.MediaAsset
	nextID uint64
	err    error
}

func (f *fakeMediaStore) List(ctx context.Context) ([]model.MediaAsset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.MediaAsset(nil), f.items...), nil
}

func (f *fakeMediaStore) Create(ctx context.Context, m *model.MediaAsset) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	m.ID = f.nextID
	f.items = append(f.items, *m)
	return nil
}

func (f *fakeMediaStore) Update(ctx context.Context, m *model.MediaAsset) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == m.ID {
			f.items[i] = *m
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeMediaStore) Delete(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeShowcaseStore struct {
	items  []model.ShowcaseSlide
	nextID uint64
	err    error
}

func (f *fakeShowcaseStore) List(ctx context.Context) ([]model.ShowcaseSlide, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.ShowcaseSlide(nil), f.items...), nil
}

func (f *fakeShowcaseStore) Create(ctx context.Context, s *model.ShowcaseSlide) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	s.ID = f.nextID
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeShowcaseStore) Update(ctx context.Context, s *model.ShowcaseSlide) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == s.ID {
			f.items[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeShowcaseStore) Delete(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeShowcaseStore) SeedDefaults(ctx context.Context, slides []model.ShowcaseSlide) error {
	if len(f.items) == 0 {
		f.items = append(f.items, slides...)
	}
	return nil
}

type fakeContactStore struct {
	info model.ContactInfo
	set  bool
	err  error
}

func (f *fakeContactStore) Get(ctx context.Context) (model.ContactInfo, error) {
	if f.err != nil {
		return model.ContactInfo{}, f.err
	}
	if !f.set {
		return model.ContactInfo{}, repository.ErrNotFound
	}
	return f.info, nil
}

func (f *fakeContactStore) Save(ctx context.Context, c *model.ContactInfo) error {
	if f.err != nil {
		return f.err
	}
	if !f.set {
		c.ID = 1
	} else {
		c.ID = f.info.ID
	}
	c.UpdatedAt = time.Now().UTC()
	f.info = *c
	f.set = true
	return nil
}

// fakeNotifier records deliveries and optionally fails them.
type fakeNotifier struct {
	sent []string // receiver emails, in order
	err  error
}

func (f *fakeNotifier) SendInquiryNotification(to string, inq model.Inquiry) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}
