package http

import (
	_ "github.com/DRSN-tech/pos-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, checkoutUC usecase.CheckoutUC,
	reportUC usecase.ReportUC, advisorUC usecase.AdvisorUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerBillingRoutes(v1, NewBillingHandler(checkoutUC, r.logger))
		registerReportRoutes(v1, NewReportHandler(reportUC, r.logger))
		registerTransactionRoutes(v1, NewTransactionHandler(reportUC, r.logger))
		registerAdvisorRoutes(v1, NewAdvisorHandler(advisorUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.addProduct)
		pr.Get("/", h.listProducts)
		pr.Post("/import", h.importPriceList)
		pr.Delete("/{sku}", h.deleteProduct)
		pr.Patch("/{sku}/quantity", h.adjustQuantity)
	})
}

func registerBillingRoutes(router chi.Router, h *BillingHandler) {
	router.Post("/checkout", h.checkout)
}

func registerReportRoutes(router chi.Router, h *ReportHandler) {
	router.Route("/reports", func(rp chi.Router) {
		rp.Get("/dashboard", h.dashboardStats)
		rp.Get("/revenue-by-day", h.revenueByDay)
		rp.Get("/top-sellers", h.topSellers)
		rp.Get("/low-stock", h.lowStock)
	})
}

func registerTransactionRoutes(router chi.Router, h *TransactionHandler) {
	router.Route("/transactions", func(tr chi.Router) {
		tr.Get("/", h.listTransactions)
		tr.Get("/{id}", h.getTransaction)
		tr.Delete("/{id}", h.deleteTransaction)
	})
}

func registerAdvisorRoutes(router chi.Router, h *AdvisorHandler) {
	router.Post("/advisor/ask", h.ask)
}
