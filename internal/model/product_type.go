package model

import "fmt"

// ProductType is the closed set of product categories.
type ProductType string

const (
	ProductTypeElectronics ProductType = "ELECTRONICS"
	ProductTypeFurniture   ProductType = "FURNITURE"
	ProductTypeClothing    ProductType = "CLOTHING"
	ProductTypeFood        ProductType = "FOOD"
	ProductTypeOther       ProductType = "OTHER"
)

var productTypes = map[ProductType]bool{
	ProductTypeElectronics: true,
	ProductTypeFurniture:   true,
	ProductTypeClothing:    true,
	ProductTypeFood:        true,
	ProductTypeOther:       true,
}

// ParseProductType maps an enum name to its ProductType, rejecting anything
// outside the closed set.
func ParseProductType(s string) (ProductType, error) {
	pt := ProductType(s)
	if !productTypes[pt] {
		return "", fmt.Errorf("unknown product type %q", s)
	}
	return pt, nil
}

func (t ProductType) String() string {
	return string(t)
}
