package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

type BillingHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewBillingHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *BillingHandler {
	return &BillingHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

type checkoutLineRequest struct {
	SKU      string `json:"sku"`
	Quantity int32  `json:"quantity"`
}

type checkoutRequest struct {
	Lines []checkoutLineRequest `json:"lines"`
}

// checkout
//
//	@Summary		Оформление счёта
//	@Description	Атомарно списывает остатки по всем позициям и создаёт запись продажи
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checkoutRequest	true	"Позиции счёта"
//	@Success		201		{object}	CheckoutResponse
//	@Failure		400		{object}	ErrorResponse		"Пустой счёт или неверные количества"
//	@Failure		404		{object}	ErrorResponse		"Товар не найден"
//	@Failure		422		{object}	StockErrorResponse	"Недостаточный остаток"
//	@Router			/checkout [post]
func (b *BillingHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		b.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	lines := make([]usecase.CheckoutLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecase.CheckoutLine{SKU: line.SKU, Quantity: line.Quantity})
	}

	res, err := b.checkoutUsecase.Checkout(r.Context(), usecase.NewCheckoutReq(lines))
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewCheckoutResponse(res))
}
