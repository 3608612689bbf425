package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

// dashboardStats
//
//	@Summary		Сводка дашборда
//	@Description	Количество товаров, позиции с низким остатком, число продаж и выручка
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	usecase.DashboardStats
//	@Router			/reports/dashboard [get]
func (h *ReportHandler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportUsecase.DashboardStats(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, stats)
}

// revenueByDay
//
//	@Summary		Выручка по дням
//	@Description	Период задаётся параметром period (week|month|year) либо явными start и end (YYYY-MM-DD)
//	@Tags			reports
//	@Produce		json
//	@Param			period	query		string	false	"week, month или year"
//	@Param			start	query		string	false	"Начало диапазона YYYY-MM-DD"
//	@Param			end		query		string	false	"Конец диапазона YYYY-MM-DD"
//	@Success		200		{array}		usecase.DailyRevenue
//	@Failure		400		{object}	ErrorResponse	"Неверный диапазон"
//	@Router			/reports/revenue-by-day [get]
func (h *ReportHandler) revenueByDay(w http.ResponseWriter, r *http.Request) {
	req, err := parseRevenueRange(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	revenue, err := h.reportUsecase.RevenueByDay(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, revenue)
}

// topSellers
//
//	@Summary		Лидеры продаж
//	@Description	Товары с наибольшим числом проданных единиц по недавним продажам
//	@Tags			reports
//	@Produce		json
//	@Param			limit	query		int	false	"Максимум строк (по умолчанию 10)"
//	@Success		200		{array}		usecase.TopSellerRow
//	@Router			/reports/top-sellers [get]
func (h *ReportHandler) topSellers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.TopSellers(r.Context(), parseLimit(r, 10))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, rows)
}

// lowStock
//
//	@Summary		Низкие остатки
//	@Description	Товары с остатком ниже порога, самые дефицитные первыми
//	@Tags			reports
//	@Produce		json
//	@Param			limit	query		int	false	"Максимум строк (по умолчанию 10)"
//	@Success		200		{array}		ProductResponse
//	@Router			/reports/low-stock [get]
func (h *ReportHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.reportUsecase.LowStockItems(r.Context(), parseLimit(r, 10))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(products))
}

// parseRevenueRange принимает либо period, либо явную пару start/end.
// Без параметров подразумевается последняя неделя.
func parseRevenueRange(r *http.Request) (*usecase.RevenueByDayReq, error) {
	q := r.URL.Query()

	startStr, endStr := q.Get("start"), q.Get("end")
	if startStr != "" || endStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, err
		}
		return &usecase.RevenueByDayReq{Start: start, End: end}, nil
	}

	period := q.Get("period")
	if period == "" {
		period = "week"
	}

	end := time.Now().UTC()
	return &usecase.RevenueByDayReq{Start: usecase.WindowStart(end, period), End: end}, nil
}

func parseLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}

	return limit
}
