package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type TransactionHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewTransactionHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *TransactionHandler {
	return &TransactionHandler{reportUsecase: reportUsecase, logger: logger}
}

// listTransactions
//
//	@Summary		Журнал продаж
//	@Description	Все продажи, новые первыми
//	@Tags			transactions
//	@Produce		json
//	@Success		200	{array}	usecase.TransactionSummary
//	@Router			/transactions [get]
func (h *TransactionHandler) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.reportUsecase.ListTransactions(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, transactions)
}

// getTransaction
//
//	@Summary		Детали продажи
//	@Tags			transactions
//	@Produce		json
//	@Param			id	path		int	true	"ID продажи"
//	@Success		200	{object}	TransactionResponse
//	@Failure		404	{object}	ErrorResponse	"Продажа не найдена"
//	@Router			/transactions/{id} [get]
func (h *TransactionHandler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseTransactionID(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	trans, err := h.reportUsecase.GetTransaction(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewTransactionResponse(trans))
}

// deleteTransaction
//
//	@Summary		Удаление записи продажи
//	@Description	Удаляет запись журнала; проданные остатки не возвращаются на склад
//	@Tags			transactions
//	@Produce		json
//	@Param			id	path	int	true	"ID продажи"
//	@Success		204	"Удалено"
//	@Failure		404	{object}	ErrorResponse	"Продажа не найдена"
//	@Router			/transactions/{id} [delete]
func (h *TransactionHandler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseTransactionID(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := h.reportUsecase.DeleteTransaction(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseTransactionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
