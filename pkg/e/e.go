package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound  = fmt.Errorf("transaction not found")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingFields    = fmt.Errorf("all fields are required")
	ErrInvalidPrice     = fmt.Errorf("price must be a valid non-negative number")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be a valid non-negative number")
	ErrEmptyBill        = fmt.Errorf("the bill is empty")
	ErrEmptyQuestion    = fmt.Errorf("question is required")
	ErrEmptyPriceList   = fmt.Errorf("price list has no rows")
	ErrUnsupportedMedia = fmt.Errorf("unsupported media type")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrSaleNotFound    = fmt.Errorf("transaction not found in log")

	// 409 Conflict
	ErrDuplicateSKU = fmt.Errorf("product with this sku already exists")

	// 422 Unprocessable Entity
	ErrInsufficientStock = fmt.Errorf("insufficient stock")

	// 502 Bad Gateway
	ErrRemoteService = fmt.Errorf("advisory service unavailable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// InsufficientStockError описывает отказ списания по конкретному товару.
// Разворачивается в ErrInsufficientStock для проверки через errors.Is.
type InsufficientStockError struct {
	Name      string
	Required  int32
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for '%s': required %d, available %d",
		e.Name, e.Required, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

func NewInsufficientStockError(name string, required, available int32) *InsufficientStockError {
	return &InsufficientStockError{
		Name:      name,
		Required:  required,
		Available: available,
	}
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
