package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopmate-vn/go-backend/internal/domain"
	"github.com/shopmate-vn/go-backend/pkg/e"
)

const (
	// minTermLen is the minimum token length (in runes) that participates
	// in catalog matching; shorter tokens are noise.
	minTermLen = 2

	// lookupMaxConcurrent bounds the catalog lookup fan-out per request.
	lookupMaxConcurrent = 8
)

// suggestPromptTemplate mirrors the strict-mode prompt the mobile app was
// tuned against: raw lines only, `name | price` per line, no bullets, no
// quoting, no preamble.
const suggestPromptTemplate = `Tôi muốn mua sắm cho dịp: "%s".
Hãy liệt kê 5-10 món đồ CỤ THỂ, QUAN TRỌNG NHẤT.

QUY TẮC BẮT BUỘC (STRICT MODE):
1. Chỉ trả về danh sách thô (raw text), MỖI MÓN NẰM TRÊN 1 DÒNG.
2. Mỗi dòng theo dạng: tên món | giá ước tính bằng VND (chỉ ghi số).
3. KHÔNG dùng ký tự đầu dòng như: gạch ngang (-), dấu sao (*), hay số thứ tự (1.).
4. KHÔNG bao quanh tên món bằng dấu ngoặc kép (") hay dấu nháy (').
5. KHÔNG có lời dẫn đầu hay kết thúc.
6. Tên món phải cụ thể, ngắn gọn (2-5 từ).

Ví dụ output chuẩn (làm y hệt thế này):
Bánh kem bắp | 350000
Nến sinh nhật số | 15000
Mũ chóp giấy | 20000`

const pricePromptTemplate = `Giá bán lẻ trung bình hiện nay của sản phẩm "%s" tại Việt Nam là bao nhiêu VND?
Chỉ trả về MỘT CON SỐ duy nhất, không có chữ, không có đơn vị, không có dấu phẩy.`

// parsedCandidate is one usable line of generator output before catalog
// resolution.
type parsedCandidate struct {
	Name  string
	Price int64
	Raw   string
}

// Suggest asks the generator for occasion-appropriate items and resolves
// each of them against the catalog. The returned list preserves generator
// order even though lookups run concurrently.
func (c *CartUseCase) Suggest(ctx context.Context, cartName string) (*SuggestRes, error) {
	const op = "CartUseCase.Suggest"

	if strings.TrimSpace(cartName) == "" {
		return nil, e.Wrap(op, e.ErrCartNameRequired)
	}

	prompt := fmt.Sprintf(suggestPromptTemplate, cartName)

	text, err := c.textGen.Complete(ctx, prompt)
	if err != nil {
		c.logger.Warnf("text generation failed for %q: %v", cartName, err)
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrTextGenUnavailable, err))
	}

	candidates := parseSuggestionLines(text)
	if len(candidates) == 0 {
		return NewSuggestRes(cartName, []domain.SuggestionCandidate{}), nil
	}

	items, err := c.resolveCandidates(ctx, candidates)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewSuggestRes(cartName, items), nil
}

// resolveCandidates fans the catalog lookups out under a semaphore and
// reassembles results by input index.
func (c *CartUseCase) resolveCandidates(ctx context.Context, candidates []parsedCandidate) ([]domain.SuggestionCandidate, error) {
	items := make([]domain.SuggestionCandidate, len(candidates))
	errCh := make(chan error, len(candidates))
	sem := make(chan struct{}, lookupMaxConcurrent)

	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			item, err := c.resolveCandidate(ctx, cand)
			if err != nil {
				errCh <- err
				return
			}
			items[i] = item
		}()
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	return items, nil
}

// resolveCandidate classifies one candidate as EXISTING or NEW. Matching is
// conjunctive: a catalog product must contain every term of the candidate
// name as a substring, which keeps "kem táo" from matching "Bánh kem chuối".
func (c *CartUseCase) resolveCandidate(ctx context.Context, cand parsedCandidate) (domain.SuggestionCandidate, error) {
	terms := matchTerms(cand.Name)

	product, err := c.productRepo.FindFirstMatching(ctx, terms)
	if err != nil {
		return domain.SuggestionCandidate{}, err
	}

	if product != nil {
		return domain.NewExistingCandidate(product, cand.Raw), nil
	}

	return domain.NewNewCandidate(cand.Name, cand.Price, cand.Raw), nil
}

// AddSuggestedItems persists a confirmed selection into a cart as a single
// transaction: NEW items become catalog products first, then every item
// upserts its membership row (+1 quantity on repeats). Any failure rolls the
// whole call back.
func (c *CartUseCase) AddSuggestedItems(ctx context.Context, req *AddSuggestedItemsReq) (*AddSuggestedItemsRes, error) {
	const op = "CartUseCase.AddSuggestedItems"

	if len(req.Items) == 0 {
		return nil, e.Wrap(op, e.ErrNoItems)
	}

	var (
		addedIDs []int64
		notifyAt *time.Time
	)

	err := c.transactor.RunInTx(ctx, func(ctx context.Context) error {
		// Existence check lives inside the transaction so the cart cannot
		// disappear between check and write.
		cart, err := c.cartRepo.GetByID(ctx, req.CartID)
		if err != nil {
			return err
		}
		notifyAt = cart.NotifyAt

		for _, item := range req.Items {
			productID, err := c.resolveItemProduct(ctx, item)
			if err != nil {
				return err
			}

			if err := c.attachToCart(ctx, req.CartID, productID); err != nil {
				return err
			}

			addedIDs = append(addedIDs, productID)
		}

		return c.enqueueItemsAddedEvent(ctx, req.CartID, addedIDs, notifyAt)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateCartItems(ctx, req.CartID, op)

	return NewAddSuggestedItemsRes(len(req.Items)), nil
}

// resolveItemProduct maps one input item to a product id, creating the
// product when the item is NEW.
func (c *CartUseCase) resolveItemProduct(ctx context.Context, item SuggestedItemInput) (int64, error) {
	switch domain.SuggestionType(item.Type) {
	case domain.SuggestionNew:
		price := item.Price
		if price < 0 {
			price = 0
		}

		// The generator supplies no category; NEW products land in OTHER.
		product, err := c.productRepo.Insert(ctx, domain.NewProduct(item.Name, price, item.ImgURL, domain.CategoryOther))
		if err != nil {
			return 0, err
		}

		return product.ID, nil

	case domain.SuggestionExisting:
		if item.ID == nil {
			return 0, e.Wrap(fmt.Sprintf("item %q", item.Name), e.ErrExistingItemMissingID)
		}

		return *item.ID, nil

	default:
		return 0, e.Wrap(fmt.Sprintf("item %q: unknown type %q", item.Name, item.Type), e.ErrStatusBadRequest)
	}
}

// attachToCart upserts the membership row for (cartID, productID): bump the
// quantity when the row exists, insert with quantity 1 otherwise.
func (c *CartUseCase) attachToCart(ctx context.Context, cartID, productID int64) error {
	existing, err := c.cartProductRepo.Get(ctx, cartID, productID)
	if err != nil {
		return err
	}

	if existing != nil {
		return c.cartProductRepo.UpdateQuantity(ctx, cartID, productID, existing.Quantity+1)
	}

	return c.cartProductRepo.Insert(ctx, domain.NewCartProduct(cartID, productID, 1))
}

// enqueueItemsAddedEvent writes the notification event inside the same
// transaction as the cart mutation.
func (c *CartUseCase) enqueueItemsAddedEvent(ctx context.Context, cartID int64, productIDs []int64, notifyAt *time.Time) error {
	payload, err := json.Marshal(CartItemsAddedPayload{
		CartID:     cartID,
		ProductIDs: productIDs,
		Count:      len(productIDs),
		NotifyAt:   notifyAt,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventCartItemsAdded, cartID, payload))
	return err
}

// SuggestPrice always asks the generator for a current market price, even
// when the product already has one stored.
func (c *CartUseCase) SuggestPrice(ctx context.Context, req *SuggestPriceReq) (*SuggestPriceRes, error) {
	const op = "CartUseCase.SuggestPrice"

	if strings.TrimSpace(req.ProductName) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	text, err := c.textGen.Complete(ctx, fmt.Sprintf(pricePromptTemplate, req.ProductName))
	if err != nil {
		c.logger.Warnf("price generation failed for %q: %v", req.ProductName, err)
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrTextGenUnavailable, err))
	}

	return NewSuggestPriceRes(parsePriceToken(text)), nil
}

// UpdatePrice persists a user-confirmed price on the catalog product.
func (c *CartUseCase) UpdatePrice(ctx context.Context, req *UpdatePriceReq) error {
	const op = "CartUseCase.UpdatePrice"

	if req.Price < 0 {
		return e.Wrap(op, e.ErrInvalidPrice)
	}

	if err := c.productRepo.UpdatePrice(ctx, req.ID, req.Price); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// parseSuggestionLines turns raw generator output into candidates. The
// generator is not fully compliant, so empty lines and markdown fences are
// dropped and the price field is parsed best-effort.
func parseSuggestionLines(text string) []parsedCandidate {
	lines := strings.Split(text, "\n")

	candidates := make([]parsedCandidate, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		name := line
		var price int64
		if idx := strings.Index(line, "|"); idx >= 0 {
			name = strings.TrimSpace(line[:idx])
			price = parsePriceToken(line[idx+1:])
		}

		if name == "" {
			continue
		}

		candidates = append(candidates, parsedCandidate{
			Name:  name,
			Price: price,
			Raw:   line,
		})
	}

	return candidates
}

// parsePriceToken extracts the digit characters of a price token and parses
// them as an integer; anything unparseable is 0.
func parsePriceToken(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	price, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}

	return price
}

// matchTerms tokenizes a candidate name for the conjunctive catalog filter.
// Tokens shorter than minTermLen runes are dropped; when nothing survives,
// the full name becomes a single substring filter.
func matchTerms(name string) []string {
	fields := strings.Fields(name)

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTermLen {
			terms = append(terms, f)
		}
	}

	if len(terms) == 0 {
		return []string{name}
	}

	return terms
}
