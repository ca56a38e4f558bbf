package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/shopmate-vn/go-backend/docs" // generated swagger docs
	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(cartUC usecase.CartUC, productUC usecase.ProductUC, userUC usecase.UserUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(v1, cartHandler)

		productHandler := NewProductHandler(productUC, r.logger)
		registerProductRoutes(v1, productHandler)

		userHandler := NewUserHandler(userUC, r.logger)
		registerUserRoutes(v1, userHandler)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/carts", func(carts chi.Router) {
		carts.Post("/", h.createCart)
		carts.Get("/", h.listCarts)

		carts.Post("/suggest", h.suggest)
		carts.Post("/add-ai-items", h.addAiItems)
		carts.Post("/suggest-price", h.suggestPrice)
		carts.Post("/update-price", h.updatePrice)

		carts.Route("/{cartId}", func(cart chi.Router) {
			cart.Get("/", h.getCart)
			cart.Put("/", h.updateCart)
			cart.Delete("/", h.deleteCart)
			cart.Delete("/clear", h.clearCart)

			cart.Route("/items/{productId}", func(item chi.Router) {
				item.Patch("/toggle-status", h.toggleItemStatus)
				item.Delete("/", h.removeItem)
			})
		})
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Get("/", h.getProducts)
		pr.Post("/add-to-cart", h.addToCart)
		pr.Get("/in-cart/{cartId}", h.getCartItems)
	})
}

func registerUserRoutes(router chi.Router, h *UserHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", h.register)
		auth.Post("/login", h.login)
	})
}
