package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestFixture(gen *fakeTextGen, products ...domain.Product) (*CartUseCase, *memProductRepo) {
	productRepo := newMemProductRepo(products...)
	cartRepo := newMemCartRepo()
	cartProductRepo := newMemCartProductRepo()
	outboxRepo := &memOutboxRepo{}
	cacheRepo := newMemCacheRepo()
	transactor := &fakeTransactor{stores: []snapshotter{cartRepo, productRepo, cartProductRepo, outboxRepo}}

	uc := NewCartUC(cartRepo, productRepo, cartProductRepo, outboxRepo, cacheRepo, gen, transactor, nopLogger{})
	return uc, productRepo
}

func TestParseSuggestionLines(t *testing.T) {
	text := "```\nBánh kem bắp | 350000\n\nNến sinh nhật số | 15.000\nMũ chóp giấy\n```"

	candidates := parseSuggestionLines(text)

	require.Len(t, candidates, 3)
	assert.Equal(t, "Bánh kem bắp", candidates[0].Name)
	assert.Equal(t, int64(350000), candidates[0].Price)
	// Thousands separators are just stripped.
	assert.Equal(t, int64(15000), candidates[1].Price)
	// A line without a separator is a name with no price.
	assert.Equal(t, "Mũ chóp giấy", candidates[2].Name)
	assert.Equal(t, int64(0), candidates[2].Price)
}

func TestParsePriceToken(t *testing.T) {
	assert.Equal(t, int64(350000), parsePriceToken(" 350000 VND"))
	assert.Equal(t, int64(350000), parsePriceToken("350.000"))
	assert.Equal(t, int64(0), parsePriceToken("không rõ"))
	assert.Equal(t, int64(0), parsePriceToken(""))
}

func TestMatchTerms(t *testing.T) {
	assert.Equal(t, []string{"Bánh", "kem", "bắp"}, matchTerms("Bánh kem bắp"))

	// Single-rune tokens are dropped.
	assert.Equal(t, []string{"kem"}, matchTerms("kem ơ"))

	// When nothing survives the filter, the whole name is the filter.
	assert.Equal(t, []string{"ơ i"}, matchTerms("ơ i"))
}

func TestSuggest_EmptyNameRejected(t *testing.T) {
	uc, _ := newSuggestFixture(&fakeTextGen{})

	_, err := uc.Suggest(context.Background(), "   ")

	assert.ErrorIs(t, err, e.ErrCartNameRequired)
}

func TestSuggest_GeneratorFailureIsBadGateway(t *testing.T) {
	uc, _ := newSuggestFixture(&fakeTextGen{err: errors.New("boom")})

	_, err := uc.Suggest(context.Background(), "sinh nhật")

	assert.ErrorIs(t, err, e.ErrTextGenUnavailable)
}

func TestSuggest_EmptyOutputGivesEmptyList(t *testing.T) {
	uc, _ := newSuggestFixture(&fakeTextGen{response: "\n\n```\n```\n"})

	res, err := uc.Suggest(context.Background(), "sinh nhật")

	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, "sinh nhật", res.Keyword)
}

func TestSuggest_ClassifiesAndPreservesOrder(t *testing.T) {
	gen := &fakeTextGen{response: "Bánh kem bắp | 350000\nNến sinh nhật | 15000\nMũ chóp giấy | 20000"}
	uc, _ := newSuggestFixture(gen, domain.Product{
		ID:     7,
		Name:   "Bánh kem bắp cao cấp",
		Price:  320000,
		ImgURL: "cakes/7.jpg",
	})

	res, err := uc.Suggest(context.Background(), "sinh nhật bé")

	require.NoError(t, err)
	require.Len(t, res.Items, 3)

	first := res.Items[0]
	assert.Equal(t, domain.SuggestionExisting, first.Type)
	require.NotNil(t, first.ProductID)
	assert.Equal(t, int64(7), *first.ProductID)
	// Catalog values win over generator estimates.
	assert.Equal(t, "Bánh kem bắp cao cấp", first.Name)
	assert.Equal(t, int64(320000), first.Price)
	assert.Equal(t, "cakes/7.jpg", first.ImgURL)

	assert.Equal(t, domain.SuggestionNew, res.Items[1].Type)
	assert.Nil(t, res.Items[1].ProductID)
	assert.Equal(t, "Nến sinh nhật", res.Items[1].Name)
	assert.Equal(t, int64(15000), res.Items[1].Price)

	assert.Equal(t, "Mũ chóp giấy", res.Items[2].Name)
}

func TestSuggest_ConjunctiveMatchingAvoidsPartialHits(t *testing.T) {
	// "kem táo" must not match a product that only contains "kem".
	gen := &fakeTextGen{response: "kem táo | 30000"}
	uc, _ := newSuggestFixture(gen, domain.Product{ID: 1, Name: "Bánh kem chuối", Price: 50000})

	res, err := uc.Suggest(context.Background(), "tráng miệng")

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.SuggestionNew, res.Items[0].Type)
}

func TestSuggest_ManyCandidates(t *testing.T) {
	// More candidates than the lookup semaphore permits at once.
	var text string
	for i := 0; i < 20; i++ {
		text += fmt.Sprintf("Món số %d | %d\n", i, (i+1)*1000)
	}
	uc, _ := newSuggestFixture(&fakeTextGen{response: text})

	res, err := uc.Suggest(context.Background(), "liên hoan")

	require.NoError(t, err)
	require.Len(t, res.Items, 20)
	for i, item := range res.Items {
		assert.Equal(t, fmt.Sprintf("Món số %d", i), item.Name)
	}
}

func TestSuggestPrice(t *testing.T) {
	gen := &fakeTextGen{response: "35000"}
	uc, _ := newSuggestFixture(gen)

	res, err := uc.SuggestPrice(context.Background(), &SuggestPriceReq{ProductName: "Nước mắm"})

	require.NoError(t, err)
	assert.Equal(t, int64(35000), res.Price)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Nước mắm")
}

func TestSuggestPrice_EmptyName(t *testing.T) {
	uc, _ := newSuggestFixture(&fakeTextGen{})

	_, err := uc.SuggestPrice(context.Background(), &SuggestPriceReq{ProductName: ""})

	assert.ErrorIs(t, err, e.ErrProductNameRequired)
}

func TestUpdatePrice(t *testing.T) {
	uc, productRepo := newSuggestFixture(&fakeTextGen{}, domain.Product{ID: 3, Name: "Muối", Price: 5000})

	err := uc.UpdatePrice(context.Background(), &UpdatePriceReq{ID: 3, Price: 7000})

	require.NoError(t, err)
	assert.Equal(t, int64(7000), productRepo.products[0].Price)
}

func TestUpdatePrice_NegativeRejected(t *testing.T) {
	uc, _ := newSuggestFixture(&fakeTextGen{})

	err := uc.UpdatePrice(context.Background(), &UpdatePriceReq{ID: 3, Price: -1})

	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}
