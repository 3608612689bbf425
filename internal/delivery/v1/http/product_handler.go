package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type addProductRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int32  `json:"quantity"`
}

type adjustQuantityRequest struct {
	Delta int32 `json:"delta"`
}

// addProduct
//
//	@Summary		Добавление товара
//	@Description	Создаёт товар каталога с уникальным SKU
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"SKU уже занят"
//	@Router			/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.AddProduct(r.Context(),
		usecase.NewAddProductReq(req.SKU, req.Name, priceCents, req.Quantity))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает каталог; параметр q фильтрует по подстроке имени или SKU
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Подстрока поиска"
//	@Success		200	{array}		ProductResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		products []domain.Product
		err      error
	)
	if term == "" {
		products, err = p.catalogUsecase.ListProducts(r.Context())
	} else {
		products, err = p.catalogUsecase.SearchProducts(r.Context(), term)
	}

	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(products))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Tags			products
//	@Produce		json
//	@Param			sku	path		string	true	"SKU товара"
//	@Success		204	"Удалено"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{sku} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	if err := p.catalogUsecase.DeleteProduct(r.Context(), sku); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// adjustQuantity
//
//	@Summary		Корректировка остатка
//	@Description	Меняет остаток на delta; уход в минус отклоняется
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			sku		path		string					true	"SKU товара"
//	@Param			request	body		adjustQuantityRequest	true	"Дельта"
//	@Success		200		{object}	ProductResponse
//	@Failure		404		{object}	ErrorResponse		"Товар не найден"
//	@Failure		422		{object}	StockErrorResponse	"Недостаточный остаток"
//	@Router			/products/{sku}/quantity [patch]
func (p *ProductHandler) adjustQuantity(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	var req adjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	product, err := p.catalogUsecase.AdjustQuantity(r.Context(), usecase.NewAdjustQuantityReq(sku, req.Delta))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// importPriceList
//
//	@Summary		Импорт прайс-листа
//	@Description	Загружает xlsx-прайс; дубликаты SKU пропускаются
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file					true	"xlsx-файл"
//	@Success		200		{object}	map[string]interface{}	"Итог импорта"
//	@Failure		400		{object}	ErrorResponse			"Ошибка разбора"
//	@Router			/products/import [post]
func (p *ProductHandler) importPriceList(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		p.logger.Warnf("%d %s: %s", http.StatusUnsupportedMediaType, e.ErrUnsupportedMedia.Error(), r.Header.Get("Content-Type"))
		WriteError(w, e.ErrUnsupportedMedia)
		return
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, e.ErrInternalServerError)
		return
	}

	res, err := p.catalogUsecase.ImportPriceList(r.Context(), &usecase.ImportPriceListReq{
		Data:     data,
		Filename: header.Filename,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"created":      res.Created,
		"skipped_skus": res.SkippedSKUs,
	})
}
