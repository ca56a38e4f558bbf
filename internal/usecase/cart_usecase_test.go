package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	uc          *CartUseCase
	carts       *memCartRepo
	products    *memProductRepo
	memberships *memCartProductRepo
	outbox      *memOutboxRepo
	cache       *memCacheRepo
	transactor  *fakeTransactor
}

func newCartFixture(t *testing.T, carts []domain.Cart, products []domain.Product) *cartFixture {
	t.Helper()

	f := &cartFixture{
		carts:       newMemCartRepo(carts...),
		products:    newMemProductRepo(products...),
		memberships: newMemCartProductRepo(),
		outbox:      &memOutboxRepo{},
		cache:       newMemCacheRepo(),
	}
	f.transactor = &fakeTransactor{stores: []snapshotter{f.carts, f.products, f.memberships, f.outbox}}
	f.uc = NewCartUC(f.carts, f.products, f.memberships, f.outbox, f.cache, &fakeTextGen{}, f.transactor, nopLogger{})
	return f
}

func existingItem(id int64, name string) SuggestedItemInput {
	return SuggestedItemInput{Type: string(domain.SuggestionExisting), ID: &id, Name: name}
}

func newItem(name string, price int64) SuggestedItemInput {
	return SuggestedItemInput{Type: string(domain.SuggestionNew), Name: name, Price: price}
}

func TestAddSuggestedItems_EmptySelection(t *testing.T) {
	f := newCartFixture(t, nil, nil)

	_, err := f.uc.AddSuggestedItems(context.Background(), &AddSuggestedItemsReq{CartID: 1})

	assert.ErrorIs(t, err, e.ErrNoItems)
	assert.Zero(t, f.transactor.calls)
}

func TestAddSuggestedItems_CartMissing(t *testing.T) {
	f := newCartFixture(t, nil, nil)

	_, err := f.uc.AddSuggestedItems(context.Background(), &AddSuggestedItemsReq{
		CartID: 42,
		Items:  []SuggestedItemInput{newItem("Nến sinh nhật", 15000)},
	})

	assert.ErrorIs(t, err, e.ErrCartNotFound)
	assert.Empty(t, f.products.products)
}

func TestAddSuggestedItems_MixedSelection(t *testing.T) {
	f := newCartFixture(t,
		[]domain.Cart{{ID: 1, Name: "Sinh nhật bé", UserID: 9}},
		[]domain.Product{{ID: 7, Name: "Bánh kem bắp", Price: 350000}},
	)

	res, err := f.uc.AddSuggestedItems(context.Background(), &AddSuggestedItemsReq{
		CartID: 1,
		Items: []SuggestedItemInput{
			existingItem(7, "Bánh kem bắp"),
			newItem("Nến sinh nhật", 15000),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	// The NEW item became a catalog product in the OTHER category.
	require.Len(t, f.products.products, 2)
	created := f.products.products[1]
	assert.Equal(t, "Nến sinh nhật", created.Name)
	assert.Equal(t, int64(15000), created.Price)
	assert.Equal(t, domain.CategoryOther, created.Category)

	// Both items got membership rows with quantity 1.
	for _, productID := range []int64{7, created.ID} {
		row, err := f.memberships.Get(context.Background(), 1, productID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, int32(1), row.Quantity)
		assert.False(t, row.IsBought)
	}

	// One outbox event, written inside the same transaction.
	require.Len(t, f.outbox.events, 1)
	ev := f.outbox.events[0]
	assert.Equal(t, EventCartItemsAdded, ev.EventType)
	assert.Equal(t, int64(1), ev.CartID)
	assert.Equal(t, Pending, ev.Status)
	assert.NotEmpty(t, ev.EventID)

	var payload CartItemsAddedPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, int64(1), payload.CartID)
	assert.Equal(t, []int64{7, created.ID}, payload.ProductIDs)
	assert.Equal(t, 2, payload.Count)

	assert.Equal(t, 1, f.cache.deletes)
}

func TestAddSuggestedItems_RepeatBumpsQuantity(t *testing.T) {
	f := newCartFixture(t,
		[]domain.Cart{{ID: 1, Name: "Tuần này"}},
		[]domain.Product{{ID: 7, Name: "Sữa tươi"}},
	)

	req := &AddSuggestedItemsReq{CartID: 1, Items: []SuggestedItemInput{existingItem(7, "Sữa tươi")}}

	_, err := f.uc.AddSuggestedItems(context.Background(), req)
	require.NoError(t, err)
	_, err = f.uc.AddSuggestedItems(context.Background(), req)
	require.NoError(t, err)

	// Still a single row, quantity bumped.
	require.Len(t, f.memberships.rows, 1)
	row, err := f.memberships.Get(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(2), row.Quantity)
}

func TestAddSuggestedItems_RollsBackOnBadItem(t *testing.T) {
	f := newCartFixture(t,
		[]domain.Cart{{ID: 1, Name: "Sinh nhật bé"}},
		nil,
	)

	// A NEW item that succeeds followed by an EXISTING item with no id: the
	// whole batch must be rolled back, including the already-created product.
	_, err := f.uc.AddSuggestedItems(context.Background(), &AddSuggestedItemsReq{
		CartID: 1,
		Items: []SuggestedItemInput{
			newItem("Mũ chóp giấy", 20000),
			{Type: string(domain.SuggestionExisting), Name: "Bánh kem"},
		},
	})

	assert.ErrorIs(t, err, e.ErrExistingItemMissingID)
	assert.Empty(t, f.products.products)
	assert.Empty(t, f.memberships.rows)
	assert.Empty(t, f.outbox.events)
	assert.Zero(t, f.cache.deletes)
}

func TestAddSuggestedItems_UnknownTypeRejected(t *testing.T) {
	f := newCartFixture(t, []domain.Cart{{ID: 1, Name: "Tuần này"}}, nil)

	_, err := f.uc.AddSuggestedItems(context.Background(), &AddSuggestedItemsReq{
		CartID: 1,
		Items:  []SuggestedItemInput{{Type: "MAYBE", Name: "Bánh mì"}},
	})

	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestAddSuggestedItems_NegativeNewPriceClamped(t *testing.T) {
	f := newCartFixture(t, []domain.Cart{{ID: 1, Name: "Tuần này"}}, nil)

	_, err := f.uc.AddSuggestedItems(context.Background(), &AddSuggestedItemsReq{
		CartID: 1,
		Items:  []SuggestedItemInput{newItem("Bánh mì", -5000)},
	})

	require.NoError(t, err)
	require.Len(t, f.products.products, 1)
	assert.Equal(t, int64(0), f.products.products[0].Price)
}

func TestCreateCart(t *testing.T) {
	f := newCartFixture(t, nil, nil)
	notifyAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	cart, err := f.uc.CreateCart(context.Background(), &CreateCartReq{
		Name:     "Sinh nhật bé",
		Budget:   500000,
		NotifyAt: &notifyAt,
		UserID:   9,
	})

	require.NoError(t, err)
	assert.NotZero(t, cart.ID)
	assert.Equal(t, "Sinh nhật bé", cart.Name)
	assert.Equal(t, int64(500000), cart.Budget)
	require.NotNil(t, cart.NotifyAt)
	assert.Equal(t, notifyAt, *cart.NotifyAt)
}

func TestCreateCart_Validation(t *testing.T) {
	f := newCartFixture(t, nil, nil)

	_, err := f.uc.CreateCart(context.Background(), &CreateCartReq{Name: "  "})
	assert.ErrorIs(t, err, e.ErrCartNameRequired)

	cart, err := f.uc.CreateCart(context.Background(), &CreateCartReq{Name: "Tuần này", Budget: -100})
	require.NoError(t, err)
	assert.Equal(t, int64(0), cart.Budget)
}

func TestUpdateCart_PartialFields(t *testing.T) {
	f := newCartFixture(t, []domain.Cart{{ID: 1, Name: "Tuần này", Budget: 100000}}, nil)

	newBudget := int64(250000)
	updated, err := f.uc.UpdateCart(context.Background(), &UpdateCartReq{ID: 1, Budget: &newBudget})

	require.NoError(t, err)
	assert.Equal(t, "Tuần này", updated.Name)
	assert.Equal(t, int64(250000), updated.Budget)

	empty := " "
	_, err = f.uc.UpdateCart(context.Background(), &UpdateCartReq{ID: 1, Name: &empty})
	assert.ErrorIs(t, err, e.ErrCartNameRequired)
}

func TestDeleteCart_InvalidatesCache(t *testing.T) {
	f := newCartFixture(t, []domain.Cart{{ID: 1, Name: "Tuần này"}}, nil)
	require.NoError(t, f.cache.SetCartItems(context.Background(), 1, []CartItem{{ProductID: 7}}))

	require.NoError(t, f.uc.DeleteCart(context.Background(), 1))

	_, ok, err := f.cache.GetCartItems(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, f.uc.DeleteCart(context.Background(), 1), e.ErrCartNotFound)
}

func TestToggleItemStatus(t *testing.T) {
	f := newCartFixture(t, []domain.Cart{{ID: 1}}, []domain.Product{{ID: 7, Name: "Sữa tươi"}})
	require.NoError(t, f.memberships.Insert(context.Background(), domain.NewCartProduct(1, 7, 1)))

	cp, err := f.uc.ToggleItemStatus(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, cp.IsBought)

	cp, err = f.uc.ToggleItemStatus(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.False(t, cp.IsBought)

	_, err = f.uc.ToggleItemStatus(context.Background(), 1, 99)
	assert.ErrorIs(t, err, e.ErrCartProductNotFound)
}

func TestClearCart(t *testing.T) {
	f := newCartFixture(t, []domain.Cart{{ID: 1}}, nil)
	require.NoError(t, f.memberships.Insert(context.Background(), domain.NewCartProduct(1, 7, 1)))
	require.NoError(t, f.memberships.Insert(context.Background(), domain.NewCartProduct(1, 8, 2)))

	require.NoError(t, f.uc.ClearCart(context.Background(), 1))
	assert.Empty(t, f.memberships.rows)

	assert.ErrorIs(t, f.uc.ClearCart(context.Background(), 99), e.ErrCartNotFound)
}
