package namegen

import (
	"context"

	"inventory-service/internal/model"
)

// Generator produces a display name and description for a newly registered
// product. Implementations must not block indefinitely; the call runs inside
// the creation transaction.
type Generator interface {
	Generate(ctx context.Context, qrCodeID string, productType model.ProductType) (name, description string, err error)
}

// Stub returns deterministic placeholder text derived from the QR code.
// TODO: replace with a client for the real GenAI service once it exists.
type Stub struct{}

func (Stub) Generate(ctx context.Context, qrCodeID string, productType model.ProductType) (string, string, error) {
	return "AI Generated Name for " + qrCodeID, "AI Generated Description...", nil
}
