package http

import (
	"net/http"

	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// createCart
//
//	@Summary		Create a shopping list
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createCartRequest	true	"Cart fields"
//	@Success		201		{object}	cartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts [post]
func (h *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	var req createCartRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUsecase.CreateCart(r.Context(), usecase.NewCreateCartReq(req.Name, req.Budget, req.NotifyAt, req.UserID))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCartResponse(cart))
}

// listCarts
//
//	@Summary		List a user's shopping lists
//	@Tags			carts
//	@Produce		json
//	@Param			user_id	query		int	true	"User ID"
//	@Success		200		{array}		cartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/carts [get]
func (h *CartHandler) listCarts(w http.ResponseWriter, r *http.Request) {
	userID, err := parseQueryID(r, "user_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	carts, err := h.cartUsecase.GetCarts(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrCartResponse(carts))
}

// getCart
//
//	@Summary		Get one shopping list
//	@Tags			carts
//	@Produce		json
//	@Param			cartId	path		int	true	"Cart ID"
//	@Success		200		{object}	cartResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/carts/{cartId} [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUsecase.GetCartByID(r.Context(), cartID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// updateCart
//
//	@Summary		Update a shopping list
//	@Description	Partial update; absent fields keep their values
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cartId	path		int					true	"Cart ID"
//	@Param			request	body		updateCartRequest	true	"Fields to change"
//	@Success		200		{object}	cartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/carts/{cartId} [put]
func (h *CartHandler) updateCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateCartRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUsecase.UpdateCart(r.Context(), &usecase.UpdateCartReq{
		ID:       cartID,
		Name:     req.Name,
		Budget:   req.Budget,
		NotifyAt: req.NotifyAt,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// deleteCart
//
//	@Summary		Delete a shopping list
//	@Tags			carts
//	@Param			cartId	path	int	true	"Cart ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/carts/{cartId} [delete]
func (h *CartHandler) deleteCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.DeleteCart(r.Context(), cartID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// suggest
//
//	@Summary		AI item suggestions for an occasion
//	@Description	Asks the generator for items matching the cart name and resolves each against the catalog
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		suggestRequest	true	"Occasion name"
//	@Success		200		{object}	suggestResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/carts/suggest [post]
func (h *CartHandler) suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.cartUsecase.Suggest(r.Context(), req.Name)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSuggestResponse(res))
}

// addAiItems
//
//	@Summary		Persist confirmed AI suggestions into a cart
//	@Description	All items are applied in one transaction; any failure rolls the whole batch back
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addAiItemsRequest	true	"Confirmed items"
//	@Success		201		{object}	addAiItemsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/carts/add-ai-items [post]
func (h *CartHandler) addAiItems(w http.ResponseWriter, r *http.Request) {
	var req addAiItemsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.SuggestedItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.SuggestedItemInput{
			Type:   item.Type,
			ID:     item.ID,
			Name:   item.Name,
			Price:  item.Price,
			ImgURL: item.ImgURL,
		})
	}

	res, err := h.cartUsecase.AddSuggestedItems(r.Context(), &usecase.AddSuggestedItemsReq{
		CartID: req.CartID,
		Items:  items,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, addAiItemsResponse{Count: res.Count})
}

// suggestPrice
//
//	@Summary		AI price estimate for a product
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		suggestPriceRequest	true	"Product name"
//	@Success		200		{object}	suggestPriceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/carts/suggest-price [post]
func (h *CartHandler) suggestPrice(w http.ResponseWriter, r *http.Request) {
	var req suggestPriceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.cartUsecase.SuggestPrice(r.Context(), &usecase.SuggestPriceReq{
		ProductName: req.ProductName,
		ProductID:   req.ProductID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, suggestPriceResponse{Price: res.Price})
}

// updatePrice
//
//	@Summary		Persist a user-confirmed product price
//	@Tags			carts
//	@Accept			json
//	@Param			request	body	updatePriceRequest	true	"Product id and price"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/carts/update-price [post]
func (h *CartHandler) updatePrice(w http.ResponseWriter, r *http.Request) {
	var req updatePriceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.UpdatePrice(r.Context(), &usecase.UpdatePriceReq{ID: req.ID, Price: req.Price}); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toggleItemStatus
//
//	@Summary		Toggle the purchased flag of a cart item
//	@Tags			carts
//	@Produce		json
//	@Param			cartId		path		int	true	"Cart ID"
//	@Param			productId	path		int	true	"Product ID"
//	@Success		200			{object}	cartProductResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/carts/{cartId}/items/{productId}/toggle-status [patch]
func (h *CartHandler) toggleItemStatus(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	cp, err := h.cartUsecase.ToggleItemStatus(r.Context(), cartID, productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartProductResponse(cp))
}

// removeItem
//
//	@Summary		Remove one product from a cart
//	@Tags			carts
//	@Param			cartId		path	int	true	"Cart ID"
//	@Param			productId	path	int	true	"Product ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/carts/{cartId}/items/{productId} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.RemoveItem(r.Context(), cartID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clearCart
//
//	@Summary		Remove every product from a cart
//	@Tags			carts
//	@Param			cartId	path	int	true	"Cart ID"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/carts/{cartId}/clear [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.ClearCart(r.Context(), cartID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
