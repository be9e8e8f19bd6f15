package mcp

import (
	"context"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// mockLibraryService is a test double for driving.LibraryService.
type mockLibraryService struct {
	standards []domain.Standard
	standard  *domain.Standard
	err       error
}

func (m *mockLibraryService) Ingest(_ context.Context, path string) (*driving.IngestResult, error) {
	return &driving.IngestResult{Path: path}, m.err
}

func (m *mockLibraryService) IngestAll(_ context.Context, _ []string) ([]driving.IngestResult, error) {
	return nil, m.err
}

func (m *mockLibraryService) List(_ context.Context) ([]domain.Standard, error) {
	return m.standards, m.err
}

func (m *mockLibraryService) Get(_ context.Context, _ string) (*domain.Standard, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.standard == nil {
		return nil, domain.ErrNotFound
	}
	return m.standard, nil
}

func (m *mockLibraryService) Remove(_ context.Context, _ string) error {
	return m.err
}

var _ driving.LibraryService = (*mockLibraryService)(nil)

// mockChatService is a test double for driving.ChatService.
type mockChatService struct {
	reply *domain.Message
	err   error
	asked []string
}

func (m *mockChatService) Ask(_ context.Context, question string) (*domain.Message, error) {
	m.asked = append(m.asked, question)
	return m.reply, m.err
}

func (m *mockChatService) History(_ context.Context) ([]domain.Message, error) {
	return nil, m.err
}

func (m *mockChatService) Clear(_ context.Context) error {
	return m.err
}

func (m *mockChatService) ActivateCitation(_ context.Context, _ domain.Citation) (*domain.ViewerRequest, error) {
	return nil, m.err
}

func (m *mockChatService) SearchOnline(_ string) error {
	return m.err
}

func (m *mockChatService) ModelName() string { return "mock-model" }

var _ driving.ChatService = (*mockChatService)(nil)
