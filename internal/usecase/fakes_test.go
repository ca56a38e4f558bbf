package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
)

// In-memory repository fakes. The fake transactor snapshots every store
// before running fn and restores them when fn fails, mirroring a rollback.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type snapshotter interface {
	snapshot()
	restore()
}

type fakeTransactor struct {
	stores []snapshotter
	calls  int
}

func (t *fakeTransactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	for _, s := range t.stores {
		s.snapshot()
	}

	if err := fn(ctx); err != nil {
		for _, s := range t.stores {
			s.restore()
		}
		return err
	}

	return nil
}

type memCartRepo struct {
	carts map[int64]domain.Cart
	saved map[int64]domain.Cart
}

func newMemCartRepo(carts ...domain.Cart) *memCartRepo {
	m := &memCartRepo{carts: make(map[int64]domain.Cart)}
	for _, c := range carts {
		m.carts[c.ID] = c
	}
	return m
}

func (m *memCartRepo) snapshot() {
	m.saved = make(map[int64]domain.Cart, len(m.carts))
	for k, v := range m.carts {
		m.saved[k] = v
	}
}

func (m *memCartRepo) restore() { m.carts = m.saved }

func (m *memCartRepo) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	cart.ID = int64(len(m.carts) + 1)
	m.carts[cart.ID] = *cart
	return cart, nil
}

func (m *memCartRepo) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	cart, ok := m.carts[id]
	if !ok {
		return nil, e.ErrCartNotFound
	}
	return &cart, nil
}

func (m *memCartRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Cart, error) {
	var result []domain.Cart
	for _, c := range m.carts {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *memCartRepo) Update(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if _, ok := m.carts[cart.ID]; !ok {
		return nil, e.ErrCartNotFound
	}
	m.carts[cart.ID] = *cart
	return cart, nil
}

func (m *memCartRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.carts[id]; !ok {
		return e.ErrCartNotFound
	}
	delete(m.carts, id)
	return nil
}

type memProductRepo struct {
	products []domain.Product
	nextID   int64
	saved    []domain.Product
	savedID  int64
}

func newMemProductRepo(products ...domain.Product) *memProductRepo {
	m := &memProductRepo{nextID: 1}
	for _, p := range products {
		m.products = append(m.products, p)
		if p.ID >= m.nextID {
			m.nextID = p.ID + 1
		}
	}
	return m
}

func (m *memProductRepo) snapshot() {
	m.saved = append([]domain.Product(nil), m.products...)
	m.savedID = m.nextID
}

func (m *memProductRepo) restore() {
	m.products = m.saved
	m.nextID = m.savedID
}

func (m *memProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Barcode != nil {
		for _, p := range m.products {
			if p.Barcode != nil && *p.Barcode == *product.Barcode {
				return nil, e.ErrBarcodeTaken
			}
		}
	}
	product.ID = m.nextID
	m.nextID++
	m.products = append(m.products, *product)
	return product, nil
}

func (m *memProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var result []domain.Product
	for _, id := range ids {
		for _, p := range m.products {
			if p.ID == id {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (m *memProductRepo) FindFirstMatching(ctx context.Context, terms []string) (*domain.Product, error) {
	var best *domain.Product
	for i := range m.products {
		p := &m.products[i]
		name := strings.ToLower(p.Name)

		matches := true
		for _, term := range terms {
			if !strings.Contains(name, strings.ToLower(term)) {
				matches = false
				break
			}
		}

		if matches && (best == nil || p.ID < best.ID) {
			best = p
		}
	}

	if best == nil {
		return nil, nil
	}

	found := *best
	return &found, nil
}

func (m *memProductRepo) UpdatePrice(ctx context.Context, id int64, price int64) error {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Price = price
			return nil
		}
	}
	return e.ErrProductNotFound
}

type memCartProductRepo struct {
	rows  map[[2]int64]domain.CartProduct
	saved map[[2]int64]domain.CartProduct
}

func newMemCartProductRepo() *memCartProductRepo {
	return &memCartProductRepo{rows: make(map[[2]int64]domain.CartProduct)}
}

func (m *memCartProductRepo) snapshot() {
	m.saved = make(map[[2]int64]domain.CartProduct, len(m.rows))
	for k, v := range m.rows {
		m.saved[k] = v
	}
}

func (m *memCartProductRepo) restore() { m.rows = m.saved }

func (m *memCartProductRepo) Get(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error) {
	row, ok := m.rows[[2]int64{cartID, productID}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memCartProductRepo) Insert(ctx context.Context, cp *domain.CartProduct) error {
	m.rows[[2]int64{cp.CartID, cp.ProductID}] = *cp
	return nil
}

func (m *memCartProductRepo) UpdateQuantity(ctx context.Context, cartID, productID int64, quantity int32) error {
	key := [2]int64{cartID, productID}
	row, ok := m.rows[key]
	if !ok {
		return e.ErrCartProductNotFound
	}
	row.Quantity = quantity
	m.rows[key] = row
	return nil
}

func (m *memCartProductRepo) ListItems(ctx context.Context, cartID int64) ([]CartItem, error) {
	var items []CartItem
	for key, row := range m.rows {
		if key[0] == cartID {
			items = append(items, NewCartItem(row.ProductID, "", "", 0, row.Quantity, row.IsBought))
		}
	}
	return items, nil
}

func (m *memCartProductRepo) ToggleBought(ctx context.Context, cartID, productID int64) (*domain.CartProduct, error) {
	key := [2]int64{cartID, productID}
	row, ok := m.rows[key]
	if !ok {
		return nil, e.ErrCartProductNotFound
	}
	row.IsBought = !row.IsBought
	m.rows[key] = row
	return &row, nil
}

func (m *memCartProductRepo) Delete(ctx context.Context, cartID, productID int64) error {
	key := [2]int64{cartID, productID}
	if _, ok := m.rows[key]; !ok {
		return e.ErrCartProductNotFound
	}
	delete(m.rows, key)
	return nil
}

func (m *memCartProductRepo) Clear(ctx context.Context, cartID int64) error {
	for key := range m.rows {
		if key[0] == cartID {
			delete(m.rows, key)
		}
	}
	return nil
}

type memOutboxRepo struct {
	events []*OutboxEvent
	saved  []*OutboxEvent
}

func (m *memOutboxRepo) snapshot() { m.saved = append([]*OutboxEvent(nil), m.events...) }
func (m *memOutboxRepo) restore()  { m.events = m.saved }

func (m *memOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *memOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	var result []*OutboxEvent
	for _, ev := range m.events {
		if ev.Status == Pending && len(result) < limit {
			ev.Status = Processing
			result = append(result, ev)
		}
	}
	return result, nil
}

func (m *memOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, ev := range m.events {
		if ev.ID == id {
			ev.Status = Processed
			return nil
		}
	}
	return e.ErrStatusBadRequest
}

type memCacheRepo struct {
	mu      sync.Mutex
	items   map[int64][]CartItem
	deletes int
}

func newMemCacheRepo() *memCacheRepo {
	return &memCacheRepo{items: make(map[int64][]CartItem)}
}

func (m *memCacheRepo) GetCartItems(ctx context.Context, cartID int64) ([]CartItem, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.items[cartID]
	return items, ok, nil
}

func (m *memCacheRepo) SetCartItems(ctx context.Context, cartID int64, items []CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[cartID] = items
	return nil
}

func (m *memCacheRepo) DeleteCartItems(ctx context.Context, cartID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, cartID)
	m.deletes++
	return nil
}

type fakeTextGen struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeTextGen) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeImagesInfra struct {
	uploadedKey string
	uploadErr   error
	cleaned     [][]string
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadedKey, nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	f.cleaned = append(f.cleaned, keys)
}

func (f *fakeImagesInfra) WaitForCleanup(ctx context.Context) error { return nil }
