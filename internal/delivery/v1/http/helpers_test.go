package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToVND(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "plain integer", input: "350000", want: 350000},
		{name: "zero", input: "0", want: 0},
		{name: "trailing zero decimals", input: "350000.00", want: 350000},
		{name: "fractional dong rejected", input: "350000.5", wantErr: e.ErrPricePrecision},
		{name: "negative rejected", input: "-1", wantErr: e.ErrInvalidPrice},
		{name: "above cap rejected", input: "1000000000001", wantErr: e.ErrInvalidPrice},
		{name: "at cap accepted", input: "1000000000000", want: 1_000_000_000_000},
		{name: "garbage rejected", input: "ba trăm", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToVND(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceToVND_Empty(t *testing.T) {
	_, err := parsePriceToVND("  ")
	assert.Error(t, err)
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrCartNameRequired, http.StatusBadRequest},
		{e.ErrNoItems, http.StatusBadRequest},
		{e.ErrExistingItemMissingID, http.StatusBadRequest},
		{e.ErrInvalidCredentials, http.StatusUnauthorized},
		{e.ErrCartNotFound, http.StatusNotFound},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrEmailTaken, http.StatusConflict},
		{e.ErrBarcodeTaken, http.StatusConflict},
		{e.ErrTextGenUnavailable, http.StatusBadGateway},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "error %v", tt.err)
	}

	// Wrapped errors still map through errors.Is.
	code, msg := ToHTTPResponse(e.Wrap("CartUseCase.Suggest", e.ErrTextGenUnavailable))
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, e.ErrTextGenUnavailable.Error(), msg)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, e.ErrCartNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"cart not found"}`, rec.Body.String())
}

func TestParseQueryIDs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products?ids=1,2,%203", nil)

	ids, err := parseQueryIDs(req, "ids")

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestParseQueryIDs_Invalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products?ids=1,abc", nil)
	_, err := parseQueryIDs(req, "ids")
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	_, err = parseQueryIDs(req, "ids")
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestParseQueryID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/carts?user_id=9", nil)
	id, err := parseQueryID(req, "user_id")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)

	req = httptest.NewRequest(http.MethodGet, "/carts?user_id=0", nil)
	_, err = parseQueryID(req, "user_id")
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}
