package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docscan/internal/domain"
	"docscan/internal/pipeline"
)

// MockPipelineService is a mock implementation of pipeline.Service.
type MockPipelineService struct {
	mock.Mock
}

func (m *MockPipelineService) Process(ctx context.Context, class domain.DocumentClass, ocr domain.OCRResult) (*domain.PipelineResult, error) {
	args := m.Called(ctx, class, ocr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineResult), args.Error(1)
}

func (m *MockPipelineService) ProcessImage(ctx context.Context, class domain.DocumentClass, img pipeline.Image) (*domain.PipelineResult, error) {
	args := m.Called(ctx, class, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineResult), args.Error(1)
}

func (m *MockPipelineService) Detect(ctx context.Context, ocr domain.OCRResult) (*domain.PipelineResult, error) {
	args := m.Called(ctx, ocr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PipelineResult), args.Error(1)
}
