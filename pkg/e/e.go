package e

import "fmt"

var (
	// Internal transaction errors
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest      = fmt.Errorf("bad request")
	ErrCartNameRequired      = fmt.Errorf("cart name is required")
	ErrProductNameRequired   = fmt.Errorf("product name is required")
	ErrInvalidPrice          = fmt.Errorf("invalid price")
	ErrPricePrecision        = fmt.Errorf("price must be a whole number of VND")
	ErrInvalidCategory       = fmt.Errorf("invalid product category")
	ErrInvalidQuantity       = fmt.Errorf("quantity must be positive")
	ErrNoItems               = fmt.Errorf("no items provided")
	ErrExistingItemMissingID = fmt.Errorf("existing item is missing product id")
	ErrMissingFields         = fmt.Errorf("missing required fields")
	ErrExpectedMultipart     = fmt.Errorf("expected multipart/form-data")
	ErrFileTooLarge          = fmt.Errorf("file too large")
	ErrUnsupportedMediaType  = fmt.Errorf("unsupported media type")
	ErrEmailRequired         = fmt.Errorf("email is required")
	ErrPasswordRequired      = fmt.Errorf("password is required")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")

	// 404 Not Found
	ErrCartNotFound        = fmt.Errorf("cart not found")
	ErrProductNotFound     = fmt.Errorf("product not found")
	ErrCartProductNotFound = fmt.Errorf("product is not in the cart")
	ErrUserNotFound        = fmt.Errorf("user not found")

	// 409 Conflict
	ErrEmailTaken   = fmt.Errorf("email already registered")
	ErrBarcodeTaken = fmt.Errorf("barcode already registered")

	// 502 Bad Gateway
	ErrTextGenUnavailable = fmt.Errorf("text generation service unavailable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap prefixes an error with a location or operation name.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
