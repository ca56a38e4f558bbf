package domain

// SuggestionType tags whether an AI candidate resolved to a catalog product.
type SuggestionType string

const (
	SuggestionExisting SuggestionType = "EXISTING"
	SuggestionNew      SuggestionType = "NEW"
)

// SuggestionCandidate is an AI-suggested item pending user confirmation.
// It is never persisted; a confirmed selection is promoted into Product and
// CartProduct rows by the bulk add.
type SuggestionCandidate struct {
	Type      SuggestionType
	ProductID *int64 // set iff Type == SuggestionExisting
	Name      string
	Price     int64 // VND, catalog price for EXISTING, AI estimate for NEW
	ImgURL    string
	Keyword   string // the raw AI line the candidate came from
}

func NewExistingCandidate(product *Product, keyword string) SuggestionCandidate {
	id := product.ID
	return SuggestionCandidate{
		Type:      SuggestionExisting,
		ProductID: &id,
		Name:      product.Name,
		Price:     product.Price,
		ImgURL:    product.ImgURL,
		Keyword:   keyword,
	}
}

func NewNewCandidate(name string, price int64, keyword string) SuggestionCandidate {
	if price < 0 {
		price = 0
	}
	return SuggestionCandidate{
		Type:    SuggestionNew,
		Name:    name,
		Price:   price,
		Keyword: keyword,
	}
}
