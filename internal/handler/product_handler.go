package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/apperr"
	"inventory-service/internal/model"
	"inventory-service/internal/service"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// CreateProductRequest is the creation request body
type CreateProductRequest struct {
	QrCodeID    string            `json:"qrCodeId"`
	ProductType string            `json:"productType"`
	Attributes  map[string]string `json:"attributes"`
}

// ProductHandler exposes the product API
type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// validate rejects malformed input at the boundary, before the service runs.
func (req *CreateProductRequest) validate() (model.ProductType, error) {
	if req.QrCodeID == "" {
		return "", &apperr.ValidationError{Field: "qrCodeId", Message: "QR Code ID cannot be empty"}
	}
	if req.ProductType == "" {
		return "", &apperr.ValidationError{Field: "productType", Message: "Product type must be specified"}
	}
	productType, err := model.ParseProductType(req.ProductType)
	if err != nil {
		return "", &apperr.ValidationError{Field: "productType", Message: err.Error()}
	}
	return productType, nil
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return &apperr.ValidationError{Message: "invalid request body"}
	}

	productType, err := req.validate()
	if err != nil {
		log.Warn("Product creation request rejected", zap.Error(err))
		prometheus.RecordProductOperation("create", "invalid")
		return err
	}

	log.Info("Product creation request",
		zap.String("qr_code_id", req.QrCodeID),
		zap.String("product_type", req.ProductType),
		zap.Int("attribute_count", len(req.Attributes)))

	resp, err := h.service.CreateProduct(c.Request().Context(), service.CreateProductRequest{
		QrCodeID:    req.QrCodeID,
		ProductType: productType,
		Attributes:  req.Attributes,
	})
	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusConflict {
			prometheus.RecordProductOperation("create", "duplicate")
		} else {
			prometheus.RecordProductOperation("create", "error")
		}
		return err
	}

	prometheus.RecordProductOperation("create", "success")
	return c.JSON(http.StatusCreated, resp)
}
