package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
)

// stubLibraryService is a scriptable LibraryService for command tests.
type stubLibraryService struct {
	results   []driving.IngestResult
	ingestErr error
	standards []domain.Standard
	listErr   error
	removed   []string
	removeErr error
}

func (s *stubLibraryService) Ingest(_ context.Context, path string) (*driving.IngestResult, error) {
	return &driving.IngestResult{Path: path}, s.ingestErr
}

func (s *stubLibraryService) IngestAll(_ context.Context, _ []string) ([]driving.IngestResult, error) {
	return s.results, s.ingestErr
}

func (s *stubLibraryService) List(_ context.Context) ([]domain.Standard, error) {
	return s.standards, s.listErr
}

func (s *stubLibraryService) Get(_ context.Context, id string) (*domain.Standard, error) {
	for i := range s.standards {
		if s.standards[i].ID == id {
			return &s.standards[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubLibraryService) Remove(_ context.Context, id string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, id)
	return nil
}

var _ driving.LibraryService = (*stubLibraryService)(nil)

// stubChatService is a scriptable ChatService for command tests.
type stubChatService struct {
	reply   *domain.Message
	askErr  error
	history []domain.Message
	cleared int
}

func (s *stubChatService) Ask(_ context.Context, _ string) (*domain.Message, error) {
	return s.reply, s.askErr
}

func (s *stubChatService) History(_ context.Context) ([]domain.Message, error) {
	return s.history, nil
}

func (s *stubChatService) Clear(_ context.Context) error {
	s.cleared++
	return nil
}

func (s *stubChatService) ActivateCitation(_ context.Context, _ domain.Citation) (*domain.ViewerRequest, error) {
	return nil, domain.ErrNotFound
}

func (s *stubChatService) SearchOnline(_ string) error { return nil }

func (s *stubChatService) ModelName() string { return "stub-model" }

var _ driving.ChatService = (*stubChatService)(nil)

// stubConfigStore keeps settings in memory.
type stubConfigStore struct {
	settings domain.Settings
	saved    int
	loadErr  error
	saveErr  error
}

func (s *stubConfigStore) Load() (domain.Settings, error) {
	return s.settings, s.loadErr
}

func (s *stubConfigStore) Save(settings domain.Settings) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.settings = settings
	s.saved++
	return nil
}

var _ driven.ConfigStore = (*stubConfigStore)(nil)

// setupTestServices swaps the package services for stubs and returns a
// cleanup restoring the originals.
func setupTestServices() (*stubLibraryService, *stubChatService, *stubConfigStore, func()) {
	oldLibrary := libraryService
	oldChat := chatService
	oldConfig := configStore

	library := &stubLibraryService{
		standards: []domain.Standard{
			{ID: "std-1", Name: "ISO 9001.pdf", Size: 2048,
				UploadedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)},
		},
	}
	chat := &stubChatService{}
	config := &stubConfigStore{settings: domain.DefaultSettings()}

	libraryService = library
	chatService = chat
	configStore = config

	return library, chat, config, func() {
		libraryService = oldLibrary
		chatService = oldChat
		configStore = oldConfig
		rootCmd.SetArgs(nil)
	}
}
