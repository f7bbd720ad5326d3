package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docscan/internal/domain"
)

// MockTextDetector is a mock implementation of port.TextDetector.
type MockTextDetector struct {
	mock.Mock
}

func (m *MockTextDetector) DetectText(ctx context.Context, image []byte) (*domain.OCRResult, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OCRResult), args.Error(1)
}
