package services

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clauser-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService orchestrates user input, the remote query and citations.
type ChatService struct {
	messages  driven.MessageStore
	standards driven.StandardStore
	query     driven.QueryClient
	searchURL string

	// openURL is swappable for tests.
	openURL func(url string) error
}

// NewChatService creates a new chat service. query may be nil, in which
// case asking is disabled. searchURL is the online-search template;
// empty selects the default.
func NewChatService(
	messages driven.MessageStore,
	standards driven.StandardStore,
	query driven.QueryClient,
	searchURL string,
) *ChatService {
	if searchURL == "" {
		searchURL = domain.DefaultSearchURL
	}
	return &ChatService{
		messages:  messages,
		standards: standards,
		query:     query,
		searchURL: searchURL,
		openURL:   openURL,
	}
}

// Ask appends and persists the user message, queries the remote model,
// then appends and persists the assistant message.
//
// The user message is persisted before the remote call. If that write
// fails, the ask aborts with a storage error and no remote call is made,
// so the store and the in-memory transcript never diverge on the
// optimistic write. If the remote call fails, the user message remains
// and no assistant message is added; the caller surfaces the failure
// once, without retrying.
func (s *ChatService) Ask(ctx context.Context, question string) (*domain.Message, error) {
	if question == "" {
		return nil, domain.ErrInvalidInput
	}
	if s.query == nil {
		return nil, domain.ErrNoCredential
	}

	// The prompt only needs the extracted text; leave the raw bytes in
	// the store.
	standards, err := s.standards.ListMeta(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if len(standards) == 0 {
		return nil, domain.ErrNoStandards
	}

	user := &domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Body:      question,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	logger.Debug("querying %s with %d standards", s.query.ModelName(), len(standards))
	answer, err := s.query.Ask(ctx, question, standards)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	assistant := &domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Body:      answer.Text,
		Citations: answer.Citations,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Append(ctx, assistant); err != nil {
		// The answer was produced; surface the persistence failure but
		// return the message so the transcript on screen stays complete.
		return assistant, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return assistant, nil
}

// History returns the persisted transcript, timestamp-ascending.
func (s *ChatService) History(ctx context.Context) ([]domain.Message, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return msgs, nil
}

// Clear empties the persisted transcript.
func (s *ChatService) Clear(ctx context.Context) error {
	if err := s.messages.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// ActivateCitation resolves a citation and returns the viewer request.
// The target page defaults to 1 when the citation has no positive page.
func (s *ChatService) ActivateCitation(ctx context.Context, c domain.Citation) (*domain.ViewerRequest, error) {
	standards, err := s.standards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	std, err := domain.ResolveCitation(c.Standard, standards)
	if err != nil {
		return nil, fmt.Errorf("standard %q: %w", c.Standard, err)
	}

	return &domain.ViewerRequest{
		Standard: *std,
		Page:     c.TargetPage(),
	}, nil
}

// SearchOnline opens the system browser at the search URL with the
// question URL-encoded.
func (s *ChatService) SearchOnline(question string) error {
	target := fmt.Sprintf(s.searchURL, url.QueryEscape(question))
	return s.openURL(target)
}

// ModelName reports the configured model, empty when asking is disabled.
func (s *ChatService) ModelName() string {
	if s.query == nil {
		return ""
	}
	return s.query.ModelName()
}

// openURL opens a URL using the system default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
