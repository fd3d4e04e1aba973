package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a physical item registered by scanning its QR code. The QR code
// ID is the natural key: the column carries a unique index and duplicate
// registrations are rejected.
type Product struct {
	ID          uuid.UUID          `json:"id" gorm:"type:uuid;primarykey"`
	QrCodeID    string             `json:"qr_code_id" gorm:"type:varchar(255);uniqueIndex;not null"`
	ProductType ProductType        `json:"product_type" gorm:"type:varchar(50);not null"`
	Name        string             `json:"name" gorm:"type:text"`
	Description string             `json:"description" gorm:"type:text"`
	Attributes  []ProductAttribute `json:"attributes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ProductAttribute is a single name/value pair describing a product. Attribute
// rows never exist without their owning product; they are inserted and removed
// together with it.
type ProductAttribute struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ProductID      uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	AttributeName  string    `json:"attribute_name" gorm:"type:varchar(255);not null"`
	AttributeValue string    `json:"attribute_value" gorm:"type:text;not null"`
}

// NewProduct builds an unsaved product with a freshly generated ID.
func NewProduct(qrCodeID string, productType ProductType) *Product {
	return &Product{
		ID:          uuid.New(),
		QrCodeID:    qrCodeID,
		ProductType: productType,
	}
}

// AddAttribute appends an attribute owned by this product.
func (p *Product) AddAttribute(name, value string) {
	p.Attributes = append(p.Attributes, ProductAttribute{
		ProductID:      p.ID,
		AttributeName:  name,
		AttributeValue: value,
	})
}

// AttributeMap collapses the attribute set into a name -> value mapping. When
// the set carries duplicate names the surviving value depends on slice order.
func (p *Product) AttributeMap() map[string]string {
	m := make(map[string]string, len(p.Attributes))
	for _, attr := range p.Attributes {
		m[attr.AttributeName] = attr.AttributeValue
	}
	return m
}

// BeforeCreate assigns an ID when the caller did not set one.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
