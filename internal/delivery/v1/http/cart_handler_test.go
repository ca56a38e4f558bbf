package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// stubCartUC records the last request per operation and plays back canned
// results.
type stubCartUC struct {
	usecase.CartUC

	suggestRes *usecase.SuggestRes
	suggestErr error

	addReq *usecase.AddSuggestedItemsReq
	addRes *usecase.AddSuggestedItemsRes
	addErr error

	createReq *usecase.CreateCartReq
	createRes *domain.Cart
}

func (s *stubCartUC) Suggest(ctx context.Context, cartName string) (*usecase.SuggestRes, error) {
	if s.suggestErr != nil {
		return nil, s.suggestErr
	}
	return s.suggestRes, nil
}

func (s *stubCartUC) AddSuggestedItems(ctx context.Context, req *usecase.AddSuggestedItemsReq) (*usecase.AddSuggestedItemsRes, error) {
	s.addReq = req
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.addRes, nil
}

func (s *stubCartUC) CreateCart(ctx context.Context, req *usecase.CreateCartReq) (*domain.Cart, error) {
	s.createReq = req
	return s.createRes, nil
}

func newCartTestRouter(uc usecase.CartUC) *chi.Mux {
	mux := chi.NewRouter()
	registerCartRoutes(mux, NewCartHandler(uc, nopLogger{}))
	return mux
}

func TestSuggestEndpoint(t *testing.T) {
	productID := int64(7)
	uc := &stubCartUC{suggestRes: &usecase.SuggestRes{
		Keyword: "sinh nhật",
		Items: []domain.SuggestionCandidate{
			{Type: domain.SuggestionExisting, ProductID: &productID, Name: "Bánh kem bắp", Price: 350000},
			{Type: domain.SuggestionNew, Name: "Nến sinh nhật", Price: 15000},
		},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts/suggest", strings.NewReader(`{"name":"sinh nhật"}`))
	newCartTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"keyword": "sinh nhật",
		"items": [
			{"type":"EXISTING","id":7,"name":"Bánh kem bắp","price":350000},
			{"type":"NEW","name":"Nến sinh nhật","price":15000}
		]
	}`, rec.Body.String())
}

func TestSuggestEndpoint_GeneratorDown(t *testing.T) {
	uc := &stubCartUC{suggestErr: e.Wrap("CartUseCase.Suggest", e.ErrTextGenUnavailable)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts/suggest", strings.NewReader(`{"name":"sinh nhật"}`))
	newCartTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSuggestEndpoint_BadJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts/suggest", strings.NewReader(`{"name":`))
	newCartTestRouter(&stubCartUC{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddAiItemsEndpoint(t *testing.T) {
	uc := &stubCartUC{addRes: &usecase.AddSuggestedItemsRes{Count: 2}}

	body := `{
		"cart_id": 1,
		"items": [
			{"type":"EXISTING","id":7,"name":"Bánh kem bắp","price":350000},
			{"type":"NEW","name":"Nến sinh nhật","price":15000}
		]
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts/add-ai-items", strings.NewReader(body))
	newCartTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())

	require.NotNil(t, uc.addReq)
	assert.Equal(t, int64(1), uc.addReq.CartID)
	require.Len(t, uc.addReq.Items, 2)
	assert.Equal(t, "EXISTING", uc.addReq.Items[0].Type)
	require.NotNil(t, uc.addReq.Items[0].ID)
	assert.Equal(t, int64(7), *uc.addReq.Items[0].ID)
	assert.Nil(t, uc.addReq.Items[1].ID)
}

func TestAddAiItemsEndpoint_CartMissing(t *testing.T) {
	uc := &stubCartUC{addErr: e.Wrap("CartUseCase.AddSuggestedItems", e.ErrCartNotFound)}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts/add-ai-items",
		strings.NewReader(`{"cart_id":42,"items":[{"type":"NEW","name":"Nến"}]}`))
	newCartTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"message":"cart not found"}`, rec.Body.String())
}

func TestCreateCartEndpoint(t *testing.T) {
	uc := &stubCartUC{createRes: &domain.Cart{ID: 1, Name: "Tuần này", UserID: 9}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carts/",
		strings.NewReader(`{"name":"Tuần này","budget":500000,"user_id":9}`))
	newCartTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.createReq)
	assert.Equal(t, "Tuần này", uc.createReq.Name)
	assert.Equal(t, int64(500000), uc.createReq.Budget)
	assert.Equal(t, int64(9), uc.createReq.UserID)
}

func TestToggleItemStatusEndpoint_BadID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/carts/abc/items/7/toggle-status", nil)
	newCartTestRouter(&stubCartUC{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
