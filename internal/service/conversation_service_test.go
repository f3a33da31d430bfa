package service

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"testing"

	"nko-content-assistant/internal/dto"
	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/repository/contract"
	"nko-content-assistant/internal/repository/memory"
	"nko-content-assistant/internal/repository/specification"
	"nko-content-assistant/internal/repository/unitofwork"
	"nko-content-assistant/pkg/generation"
	"nko-content-assistant/pkg/llm"
	"nko-content-assistant/pkg/prompt"
	"nko-content-assistant/pkg/store"
	"nko-content-assistant/pkg/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeProvider struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	if len(history) > 0 {
		p.lastPrompt = history[len(history)-1].Content
	}
	return p.response, p.err
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.calls++
	p.lastPrompt = prompt
	return p.response, p.err
}

type fakeOrgService struct {
	orgs     []*entity.Organization
	examples map[uint][]string
}

func (f *fakeOrgService) GetAll(ctx context.Context) ([]*dto.OrganizationResponse, error) {
	result := make([]*dto.OrganizationResponse, 0, len(f.orgs))
	for _, o := range f.orgs {
		result = append(result, &dto.OrganizationResponse{Id: o.Id, Name: o.Name, Description: o.Description})
	}
	return result, nil
}

func (f *fakeOrgService) Get(ctx context.Context, id uint) (*entity.Organization, error) {
	for _, o := range f.orgs {
		if o.Id == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgService) GetByName(ctx context.Context, name string) (*entity.Organization, error) {
	for _, o := range f.orgs {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.CreateOrganizationResponse, error) {
	org := &entity.Organization{Id: uint(len(f.orgs) + 1), Name: req.Name, Description: req.Description}
	f.orgs = append(f.orgs, org)
	return &dto.CreateOrganizationResponse{Id: org.Id}, nil
}

func (f *fakeOrgService) ExamplePosts(ctx context.Context, orgID uint) ([]string, error) {
	return f.examples[orgID], nil
}

func (f *fakeOrgService) Posts(ctx context.Context, orgID uint) ([]*dto.PostResponse, error) {
	return nil, nil
}

type fakePostRepository struct {
	posts     []*entity.Post
	createErr error
}

func (r *fakePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if r.createErr != nil {
		return r.createErr
	}
	post.Id = uint(len(r.posts) + 1)
	saved := *post
	r.posts = append(r.posts, &saved)
	return nil
}

func (r *fakePostRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	return r.posts, nil
}

func (r *fakePostRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.posts)), nil
}

type fakeOrgRepository struct {
	orgs []*entity.Organization
}

func (r *fakeOrgRepository) Create(ctx context.Context, org *entity.Organization) error {
	org.Id = uint(len(r.orgs) + 1)
	saved := *org
	r.orgs = append(r.orgs, &saved)
	return nil
}

func (r *fakeOrgRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error) {
	if len(r.orgs) == 0 {
		return nil, nil
	}
	return r.orgs[0], nil
}

func (r *fakeOrgRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Organization, error) {
	return r.orgs, nil
}

func (r *fakeOrgRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.orgs)), nil
}

type fakeUow struct {
	orgRepo *fakeOrgRepository
	posts   *fakePostRepository

	began      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack = true; return nil }
func (u *fakeUow) OrganizationRepository() contract.OrganizationRepository {
	return u.orgRepo
}
func (u *fakeUow) PostRepository() contract.PostRepository {
	return u.posts
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// --- Harness ---

type harness struct {
	svc      IConversationService
	provider *fakeProvider
	posts    *fakePostRepository
	orgs     *fakeOrgService
	sessions *memory.SessionRepository
}

func newHarness() *harness {
	provider := &fakeProvider{response: "сгенерированный пост"}
	posts := &fakePostRepository{}
	orgs := &fakeOrgService{
		orgs:     []*entity.Organization{{Id: 1, Name: "Добрые руки", Description: "Помощь приютам"}},
		examples: map[uint][]string{1: {"пример поста"}},
	}
	sessions := memory.NewSessionRepository()

	generator := generation.NewOrchestrator(provider, nil, log.New(discard{}, "", 0))

	svc := NewConversationService(
		sessions,
		wizard.NewMachine(),
		orgs,
		generator,
		&fakeUowFactory{uow: &fakeUow{posts: posts}},
		nil,
		nopLogger{},
	)
	return &harness{svc: svc, provider: provider, posts: posts, orgs: orgs, sessions: sessions}
}

func (h *harness) selectOption(t *testing.T, value string) *store.Outbound {
	t.Helper()
	out, err := h.svc.HandleEvent(context.Background(), "conv-1", store.Select(value))
	require.NoError(t, err)
	return out
}

func (h *harness) sendText(t *testing.T, value string) *store.Outbound {
	t.Helper()
	out, err := h.svc.HandleEvent(context.Background(), "conv-1", store.Text(value))
	require.NoError(t, err)
	return out
}

func (h *harness) runTextQuestionnaire(t *testing.T) *store.Outbound {
	t.Helper()
	h.sendText(t, "/start")
	h.selectOption(t, wizard.ActionPickTask)
	h.selectOption(t, prompt.TaskText)
	h.selectOption(t, prompt.NetworkTelegram)
	h.selectOption(t, prompt.GoalFundraising)
	h.selectOption(t, "Молодёжь")
	h.selectOption(t, "Дружелюбный")
	h.sendText(t, "Собираем средства на корм")
	h.sendText(t, "Поддержите нас")
	return h.sendText(t, "нет")
}

func allText(out *store.Outbound) string {
	return strings.Join(out.Messages, "\n")
}

func optionValues(out *store.Outbound) []string {
	values := make([]string, 0, len(out.Options))
	for _, o := range out.Options {
		values = append(values, o.Value)
	}
	return values
}

// --- Tests ---

func TestQuestionnaireEndsWithGeneratedText(t *testing.T) {
	h := newHarness()

	out := h.runTextQuestionnaire(t)

	assert.Contains(t, allText(out), "сгенерированный пост")
	assert.Contains(t, optionValues(out), wizard.ActionSaveText)
	assert.Equal(t, 1, h.provider.calls)
	assert.Empty(t, h.posts.posts, "nothing is persisted before an explicit save")
}

func TestSaveBlocksWithoutOrganizationThenSavesExactlyOnce(t *testing.T) {
	h := newHarness()
	h.runTextQuestionnaire(t)

	// Save without an organization: artifact untouched, nothing persisted.
	out := h.selectOption(t, wizard.ActionSaveText)
	assert.Empty(t, h.posts.posts)
	assert.Contains(t, optionValues(out), wizard.ActionSelectOrg)

	// Pick an organization; the pending save completes with the same content.
	out = h.selectOption(t, wizard.ActionSelectOrg)
	assert.Contains(t, optionValues(out), "Добрые руки")

	out = h.selectOption(t, "Добрые руки")
	require.Len(t, h.posts.posts, 1)
	saved := h.posts.posts[0]
	assert.Equal(t, "сгенерированный пост", saved.Content)
	assert.Equal(t, entity.PostTypeGenerated, saved.PostType)
	assert.Equal(t, uint(1), saved.OrgId)
	assert.Equal(t, prompt.GoalFundraising, saved.Goal)
	assert.Contains(t, allText(out), "сохранен")
}

func TestGenerationFailureOffersRetry(t *testing.T) {
	h := newHarness()
	h.provider.err = &url.Error{Op: "Post", URL: "http://llm", Err: errors.New("connection refused")}

	out := h.runTextQuestionnaire(t)

	assert.Contains(t, optionValues(out), wizard.ActionRetry)
	assert.Empty(t, h.posts.posts)

	// Backend recovers; the retry regenerates from the same answers.
	h.provider.err = nil
	out = h.selectOption(t, wizard.ActionRetry)
	assert.Contains(t, allText(out), "сгенерированный пост")
}

func TestRegenerateAutoSavesWhenOrganizationBound(t *testing.T) {
	h := newHarness()
	h.sendText(t, "/start")
	h.selectOption(t, wizard.ActionListOrgs)
	h.selectOption(t, wizard.ActionSelectOrg)
	h.selectOption(t, "Добрые руки")

	// Organization is bound; walk the questionnaire from task selection.
	h.selectOption(t, prompt.TaskText)
	h.selectOption(t, prompt.NetworkTelegram)
	h.selectOption(t, prompt.GoalTopics)
	h.selectOption(t, "Семьи")
	h.selectOption(t, "Деловой")
	h.sendText(t, "Идеи для постов")
	h.sendText(t, "Подпишитесь")
	h.sendText(t, "нет")
	assert.Empty(t, h.posts.posts, "first generation is not auto-saved")

	h.selectOption(t, wizard.ActionRegenerate)
	require.Len(t, h.posts.posts, 1)
	assert.Equal(t, entity.PostTypeRegenerated, h.posts.posts[0].PostType)
}

func TestOrganizationContextReachesPrompt(t *testing.T) {
	h := newHarness()
	h.provider.response = "текст"

	h.sendText(t, "/start")
	h.selectOption(t, wizard.ActionListOrgs)
	h.selectOption(t, wizard.ActionSelectOrg)
	h.selectOption(t, "Добрые руки")
	h.selectOption(t, prompt.TaskText)
	h.selectOption(t, prompt.NetworkTelegram)
	h.selectOption(t, prompt.GoalTopics)
	h.selectOption(t, prompt.SkipAudience)
	h.selectOption(t, "Нейтральный")
	h.sendText(t, "Детали")
	h.sendText(t, "Призыв")
	out := h.sendText(t, "нет")

	assert.Contains(t, allText(out), "текст")
	assert.Contains(t, h.provider.lastPrompt, "Миссия и деятельность: Помощь приютам")
	assert.Contains(t, h.provider.lastPrompt, "пример поста")
}

func TestRefinePromptCarriesSelectedOrganizationName(t *testing.T) {
	h := newHarness()

	h.sendText(t, "/start")
	h.selectOption(t, wizard.ActionListOrgs)
	h.selectOption(t, wizard.ActionSelectOrg)
	h.selectOption(t, "Добрые руки")
	h.selectOption(t, prompt.TaskText)
	h.selectOption(t, prompt.NetworkTelegram)
	h.selectOption(t, prompt.GoalFundraising)
	h.selectOption(t, "Молодёжь")
	h.selectOption(t, "Дружелюбный")
	h.sendText(t, "Собираем средства на корм")
	h.sendText(t, "Поддержите нас")
	h.sendText(t, "нет")

	h.selectOption(t, wizard.ActionEditText)
	h.sendText(t, "мой вариант текста")
	h.selectOption(t, wizard.ActionRefine)

	assert.Contains(t, h.provider.lastPrompt, "- НКО: Добрые руки")
	assert.NotContains(t, h.provider.lastPrompt, "Без указания названия")
}

func TestExplicitSaveAfterRegenerateStoresGeneratedKind(t *testing.T) {
	h := newHarness()

	h.sendText(t, "/start")
	h.selectOption(t, wizard.ActionListOrgs)
	h.selectOption(t, wizard.ActionSelectOrg)
	h.selectOption(t, "Добрые руки")
	h.selectOption(t, prompt.TaskText)
	h.selectOption(t, prompt.NetworkTelegram)
	h.selectOption(t, prompt.GoalTopics)
	h.selectOption(t, "Семьи")
	h.selectOption(t, "Деловой")
	h.sendText(t, "Идеи для постов")
	h.sendText(t, "Подпишитесь")
	h.sendText(t, "нет")

	// The re-run auto-saves one regenerated row.
	h.selectOption(t, wizard.ActionRegenerate)
	require.Len(t, h.posts.posts, 1)
	assert.Equal(t, entity.PostTypeRegenerated, h.posts.posts[0].PostType)

	// The explicit save still records the artifact as generated.
	h.selectOption(t, wizard.ActionSaveText)
	require.Len(t, h.posts.posts, 2)
	assert.Equal(t, entity.PostTypeGenerated, h.posts.posts[1].PostType)
}

func TestLockReleasedWhenSessionEvicted(t *testing.T) {
	h := newHarness()
	h.sendText(t, "/start")

	svc := h.svc.(*conversationService)
	svc.mu.Lock()
	_, held := svc.locks["conv-1"]
	svc.mu.Unlock()
	require.True(t, held, "handled conversation must hold a lock entry")

	h.sessions.Delete("conv-1")

	svc.mu.Lock()
	_, held = svc.locks["conv-1"]
	svc.mu.Unlock()
	assert.False(t, held, "evicted session must release its lock entry")
}
