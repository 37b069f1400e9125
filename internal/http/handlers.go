// Package httpapi — HTTP-слой сервиса товаров.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"catalog/internal/domain"
	"catalog/internal/metrics"
	"catalog/internal/repository"
	"catalog/internal/service"
)

// internalErrorMessage — единственный текст, который уходит клиенту при
// внутренних сбоях; детали остаются в логах сервера
const internalErrorMessage = "Something went wrong, please try again later."

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
}

// dataResponse оборачивает полезную нагрузку в поле data
type dataResponse struct {
	Data any `json:"data"`
}

// validationErrorResponse — карта поле → сообщения о нарушениях
type validationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

func NewServer(products *service.ProductService, m *metrics.ServerMetrics) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if m != nil {
		r.Use(m.Middleware())
	}
	s := &Server{engine: r, products: products}
	s.registerRoutes(m != nil)
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes(withMetrics bool) {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	if withMetrics {
		s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := s.engine.Group("/v1")
	{
		product := v1.Group("/Product")
		product.GET(":productId", s.getProduct)
		product.POST("", s.createProduct)
		product.PUT(":productId", s.updateProduct)
	}
}

// @Summary Get product by id
// @Tags product
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} dataResponse
// @Failure 404
// @Failure 500 {object} map[string]string
// @Router /v1/Product/{productId} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseProductID(c.Param("productId"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	view, err := s.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse{Data: view})
}

// @Summary Create product
// @Tags product
// @Accept json
// @Produce json
// @Param input body domain.ProductRequest true "Product"
// @Success 201 {object} dataResponse
// @Failure 400 {object} validationErrorResponse
// @Failure 500 {object} map[string]string
// @Router /v1/Product [post]
func (s *Server) createProduct(c *gin.Context) {
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	created, err := s.products.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", "/v1/Product/"+created.ProductID)
	c.JSON(http.StatusCreated, dataResponse{Data: created.Echo})
}

// @Summary Update product
// @Tags product
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param input body domain.ProductRequest true "Product"
// @Success 204
// @Failure 400 {object} validationErrorResponse
// @Failure 404
// @Failure 500 {object} map[string]string
// @Router /v1/Product/{productId} [put]
func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseProductID(c.Param("productId"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	var req domain.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.products.Update(c.Request.Context(), id, req); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseProductID проверяет, что идентификатор — корректный UUID;
// иначе маршрут считается несуществующим
func parseProductID(raw string) (string, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: verr.Errors})
	case errors.Is(err, repository.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
	}
}
