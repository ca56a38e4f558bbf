package http

import (
	"net/http"

	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/e"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Register a catalog product
//	@Description	Creates a product with an optional image
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Product name"
//	@Param			price		formData	number	true	"Price in VND"
//	@Param			category	formData	string	false	"Category (defaults to OTHER)"
//	@Param			barcode		formData	string	false	"Barcode"
//	@Param			image		formData	file	false	"Product image"
//	@Success		201			{object}	productResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	name := r.FormValue("name")
	priceStr := r.FormValue("price")
	if name == "" || priceStr == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	price, err := parsePriceToVND(priceStr)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	var barcode *string
	if b := r.FormValue("barcode"); b != "" {
		barcode = &b
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:     name,
		Price:    price,
		Category: r.FormValue("category"),
		Barcode:  barcode,
		Image:    image,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// getProducts
//
//	@Summary		Fetch products by ids
//	@Tags			products
//	@Produce		json
//	@Param			ids	query		string	true	"Comma-separated product ids"
//	@Success		200	{array}		productResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	ids, err := parseQueryIDs(r, "ids")
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := p.productUsecase.GetProducts(r.Context(), ids)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// addToCart
//
//	@Summary		Put a catalog product into a cart
//	@Description	Increments the quantity when the product is already in the cart
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addToCartRequest	true	"Cart, product and quantity"
//	@Success		200		{object}	cartProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/add-to-cart [post]
func (p *ProductHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cp, err := p.productUsecase.AddToCart(r.Context(), &usecase.AddToCartReq{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartProductResponse(cp))
}

// getCartItems
//
//	@Summary		List the contents of a cart
//	@Tags			products
//	@Produce		json
//	@Param			cartId	path		int	true	"Cart ID"
//	@Success		200		{array}		usecase.CartItem
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/in-cart/{cartId} [get]
func (p *ProductHandler) getCartItems(w http.ResponseWriter, r *http.Request) {
	cartID, err := parseIDParam(r, "cartId")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := p.productUsecase.GetCartItems(r.Context(), cartID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, items)
}
