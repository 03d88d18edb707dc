package rest

import (
	"net/http"
	"net/url"

	"phoneFinder/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	CatalogReader interface {
		AllEntries() []domain.Phone
		Find(model string) (domain.Phone, bool)
	}

	PriceFinder interface {
		BestPrice(p domain.Phone) domain.Offer
	}

	VocabularyReader interface {
		Usages() []string
		DefaultStrategy() string
	}

	PhoneHandler struct {
		catalog    CatalogReader
		pricer     PriceFinder
		vocabulary VocabularyReader
		strategies []string
	}

	PhoneResponse struct {
		domain.Phone
		BestRetailer string  `json:"best_store"`
		BestPrice    float64 `json:"best_price"`
	}

	UsagesResponse struct {
		Usages          []string `json:"usages"`
		Strategies      []string `json:"strategies"`
		DefaultStrategy string   `json:"default_strategy"`
	}
)

func NewPhoneHandler(catalog CatalogReader, pricer PriceFinder, vocabulary VocabularyReader, strategies []string) *PhoneHandler {
	return &PhoneHandler{
		catalog:    catalog,
		pricer:     pricer,
		vocabulary: vocabulary,
		strategies: strategies,
	}
}

func (h *PhoneHandler) toResponse(p domain.Phone) PhoneResponse {
	best := h.pricer.BestPrice(p)
	return PhoneResponse{Phone: p, BestRetailer: best.Retailer, BestPrice: best.Price}
}

// GET /api/v1/phones
func (h *PhoneHandler) GetAllPhones(c echo.Context) error {
	entries := h.catalog.AllEntries()

	phones := make([]PhoneResponse, 0, len(entries))
	for _, p := range entries {
		phones = append(phones, h.toResponse(p))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(phones))
}

// GET /api/v1/phones/:model
func (h *PhoneHandler) GetPhoneByModel(c echo.Context) error {
	model := c.Param("model")
	if unescaped, err := url.PathUnescape(model); err == nil {
		model = unescaped
	}

	p, ok := h.catalog.Find(model)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "phone not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.toResponse(p)))
}

// GET /api/v1/usages
func (h *PhoneHandler) GetUsages(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(UsagesResponse{
		Usages:          h.vocabulary.Usages(),
		Strategies:      h.strategies,
		DefaultStrategy: h.vocabulary.DefaultStrategy(),
	}))
}
