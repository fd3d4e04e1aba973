package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inventory-service/internal/apperr"
	"inventory-service/internal/model"
	"inventory-service/internal/namegen"
	"inventory-service/internal/repository"
	"inventory-service/pkg/logger"
)

// CreateProductRequest is the validated input for product creation.
type CreateProductRequest struct {
	QrCodeID    string
	ProductType model.ProductType
	Attributes  map[string]string
}

// ProductResponse is the view returned to the API layer after creation.
type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	QrCodeID    string            `json:"qrCodeId"`
	ProductType model.ProductType `json:"productType"`
	Name        string            `json:"name"`
	Attributes  map[string]string `json:"attributes"`
}

// ProductService orchestrates product creation: duplicate check, entity
// construction, name/description generation and persistence, all in one
// transaction.
type ProductService struct {
	repo      repository.ProductRepository
	generator namegen.Generator
}

func NewProductService(repo repository.ProductRepository, generator namegen.Generator) *ProductService {
	return &ProductService{repo: repo, generator: generator}
}

// CreateProduct registers a new product. A request whose QR code is already
// registered fails with apperr.DuplicateResourceError and writes nothing. The
// pre-check is a fast path only; the storage unique constraint is the
// authoritative guard, and a constraint violation at save time is reported the
// same way.
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	log := logger.FromContext(ctx)

	var resp *ProductResponse
	err := s.repo.Transaction(ctx, func(repo repository.ProductRepository) error {
		existing, err := repo.FindByQrCode(ctx, req.QrCodeID)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Warn("Product with this QR code already exists",
				zap.String("qr_code_id", req.QrCodeID))
			return &apperr.DuplicateResourceError{Resource: "Product", Key: req.QrCodeID}
		}

		product := model.NewProduct(req.QrCodeID, req.ProductType)

		name, description, err := s.generator.Generate(ctx, req.QrCodeID, req.ProductType)
		if err != nil {
			return err
		}
		product.Name = name
		product.Description = description

		for attrName, attrValue := range req.Attributes {
			product.AddAttribute(attrName, attrValue)
		}

		if err := repo.Save(ctx, product); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent writer won the race between the pre-check and
				// the insert; report it the same as the pre-check would.
				log.Warn("Unique constraint hit on product insert",
					zap.String("qr_code_id", req.QrCodeID))
				return &apperr.DuplicateResourceError{Resource: "Product", Key: req.QrCodeID}
			}
			return err
		}

		log.Info("Product created",
			zap.String("product_id", product.ID.String()),
			zap.String("qr_code_id", product.QrCodeID),
			zap.String("product_type", product.ProductType.String()),
			zap.Int("attribute_count", len(product.Attributes)))

		resp = mapToProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func mapToProductResponse(product *model.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		QrCodeID:    product.QrCodeID,
		ProductType: product.ProductType,
		Name:        product.Name,
		Attributes:  product.AttributeMap(),
	}
}
