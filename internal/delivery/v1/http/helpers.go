package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// StockErrorResponse — отказ оформления с деталями по товару.
type StockErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Name      string `json:"name"`
	Required  int32  `json:"required"`
	Available int32  `json:"available"`
}

// ProductResponse — представление товара в ответах API.
type ProductResponse struct {
	SKU       string     `json:"sku"`
	Name      string     `json:"name"`
	Price     string     `json:"price"`
	Cents     int64      `json:"price_cents"`
	Quantity  int32      `json:"quantity"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		SKU:       product.SKU,
		Name:      product.Name,
		Price:     domain.FormatUSD(product.PriceCents),
		Cents:     product.PriceCents,
		Quantity:  product.Quantity,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func NewArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, NewProductResponse(&products[i]))
	}
	return result
}

// TransactionResponse — полная запись продажи с позициями.
type TransactionResponse struct {
	ID         int64             `json:"id"`
	TotalCents int64             `json:"total_cents"`
	Total      string            `json:"total"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []domain.SaleItem `json:"items"`
}

func NewTransactionResponse(trans *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         trans.ID,
		TotalCents: trans.TotalCents,
		Total:      domain.FormatUSD(trans.TotalCents),
		CreatedAt:  trans.CreatedAt,
		Items:      trans.Items,
	}
}

// CheckoutResponse — результат оформления счёта.
type CheckoutResponse struct {
	TransactionID int64             `json:"transaction_id"`
	TotalCents    int64             `json:"total_cents"`
	Total         string            `json:"total"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []domain.SaleItem `json:"items"`
}

func NewCheckoutResponse(res *usecase.CheckoutRes) *CheckoutResponse {
	return &CheckoutResponse{
		TransactionID: res.TransactionID,
		TotalCents:    res.TotalCents,
		Total:         res.Total,
		CreatedAt:     res.CreatedAt,
		Items:         res.Items,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrEmptyBill):
		return http.StatusBadRequest, e.ErrEmptyBill.Error()
	case errors.Is(err, e.ErrEmptyQuestion):
		return http.StatusBadRequest, e.ErrEmptyQuestion.Error()
	case errors.Is(err, e.ErrEmptyPriceList):
		return http.StatusBadRequest, e.ErrEmptyPriceList.Error()
	case errors.Is(err, e.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMedia.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrSaleNotFound):
		return http.StatusNotFound, e.ErrSaleNotFound.Error()
	case errors.Is(err, e.ErrDuplicateSKU):
		return http.StatusConflict, e.ErrDuplicateSKU.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, e.ErrInsufficientStock.Error()
	case errors.Is(err, e.ErrRemoteService):
		return http.StatusBadGateway, e.ErrRemoteService.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)

	// Отказ по остатку несёт детали для кассы
	var stockErr *e.InsufficientStockError
	if errors.As(err, &stockErr) {
		WriteSuccess(w, code, &StockErrorResponse{
			Code:      code,
			Message:   stockErr.Error(),
			Name:      stockErr.Name,
			Required:  stockErr.Required,
			Available: stockErr.Available,
		})
		return
	}

	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
