package namegen

import (
	"context"
	"testing"

	"inventory-service/internal/model"
)

func TestStubGenerate(t *testing.T) {
	name, description, err := Stub{}.Generate(context.Background(), "QR-1001", model.ProductTypeElectronics)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if name != "AI Generated Name for QR-1001" {
		t.Fatalf("unexpected name %q", name)
	}
	if description == "" {
		t.Fatal("expected a non-empty description")
	}
}
