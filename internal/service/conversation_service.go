package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"nko-content-assistant/internal/dto"
	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/pkg/logger"
	"nko-content-assistant/internal/repository/memory"
	"nko-content-assistant/internal/repository/unitofwork"
	"nko-content-assistant/pkg/events"
	"nko-content-assistant/pkg/generation"
	"nko-content-assistant/pkg/prompt"
	"nko-content-assistant/pkg/store"
	"nko-content-assistant/pkg/wizard"
)

// Operator-facing copy emitted by effect execution.
const (
	msgOrgListEmpty    = "📋 Пока нет ни одного НКО. Создайте новое, чтобы я запомнила ваш стиль."
	msgOrgListHeader   = "📋 Список ваших НКО:"
	msgOrgSelectPrompt = "Выберите НКО из списка:"
	msgOrgNotFound     = "❌ Такого НКО нет в списке. Выберите из предложенных:"
	msgOrgSelected     = "✅ Выбрано НКО: "
	msgOrgCreated      = "✅ НКО успешно создано и выбрано!"
	msgSaved           = "💾 Текст сохранен! Теперь я буду учитывать его стиль в следующих постах."
	msgImageSaved      = "💾 Картинка сохранена!"
	msgAutoSaved       = "💾 Результат автоматически сохранен для выбранного НКО."
	msgSaveFailed      = "❌ Не удалось сохранить результат. Попробуйте еще раз."
	msgImageCaption    = "Ваша созданная картинка!"

	msgGenConnection = "⚠️ Не удалось соединиться с сервисом генерации. Попробуйте позже."
	msgGenTimeout    = "⏳ Сервис генерации не ответил вовремя. Попробуйте снова."
	msgGenUpstream   = "❌ Сервис генерации вернул ошибку. Попробуйте снова."
)

type IConversationService interface {
	HandleEvent(ctx context.Context, conversationID string, inbound store.Inbound) (*store.Outbound, error)
}

// conversationService drives one wizard step per inbound event:
// advance the machine, execute the reported side effect, persist the
// session. Events of the same conversation are handled strictly in
// order; different conversations proceed concurrently.
type conversationService struct {
	sessions         *memory.SessionRepository
	machine          *wizard.Machine
	orgService       IOrganizationService
	generator        *generation.Orchestrator
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewConversationService(
	sessions *memory.SessionRepository,
	machine *wizard.Machine,
	orgService IOrganizationService,
	generator *generation.Orchestrator,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IConversationService {
	c := &conversationService{
		sessions:         sessions,
		machine:          machine,
		orgService:       orgService,
		generator:        generator,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
		locks:            make(map[string]*sync.Mutex),
	}
	// Locks live exactly as long as their session; expired or deleted
	// sessions release their lock entry.
	sessions.OnEvicted(c.releaseLock)
	return c
}

func (c *conversationService) releaseLock(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.locks, conversationID)
}

func (c *conversationService) conversationLock(conversationID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[conversationID] = lock
	}
	return lock
}

func (c *conversationService) HandleEvent(ctx context.Context, conversationID string, inbound store.Inbound) (*store.Outbound, error) {
	lock := c.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	sess := c.sessions.GetOrCreate(conversationID)
	res := c.machine.Advance(sess, inbound)

	out := res.Out
	if res.Effect != wizard.EffectNone {
		c.executeEffect(ctx, sess, res, &out)
	}

	c.sessions.Save(sess)
	return &out, nil
}

func (c *conversationService) executeEffect(ctx context.Context, sess *store.Session, res wizard.Result, out *store.Outbound) {
	switch res.Effect {
	case wizard.EffectListOrgs:
		c.listOrganizations(ctx, sess, out)
	case wizard.EffectListOrgNames:
		c.listOrganizationNames(ctx, out)
	case wizard.EffectSelectOrg:
		c.selectOrganization(ctx, sess, res.Value, out)
	case wizard.EffectSaveOrg:
		c.createOrganization(ctx, sess, out)
	case wizard.EffectGenerateText, wizard.EffectRegenerate:
		c.generateText(ctx, sess, out)
	case wizard.EffectRefine:
		c.refineText(ctx, sess, out)
	case wizard.EffectSavePost:
		// An explicit save from the review menu always records the
		// generated kind, regardless of how many re-runs preceded it.
		c.saveTextArtifact(ctx, sess, sess.Answers.Get(store.FieldGeneratedText), entity.PostTypeGenerated, out)
	case wizard.EffectSaveEdited:
		c.saveTextArtifact(ctx, sess, sess.Answers.Get(store.FieldEditedText), entity.PostTypeEdited, out)
	case wizard.EffectGenerateImage:
		c.generateImage(ctx, sess, out)
	case wizard.EffectSaveImage:
		c.saveImageArtifact(ctx, sess, out)
	}
}

// --- Organization effects ---

func (c *conversationService) listOrganizations(ctx context.Context, sess *store.Session, out *store.Outbound) {
	orgs, err := c.orgService.GetAll(ctx)
	if err != nil {
		c.reportPersistenceFailure(sess, err, out)
		return
	}

	if len(orgs) == 0 {
		out.Say(msgOrgListEmpty)
		out.Options = store.Opts(wizard.ActionCreateOrg, wizard.ActionPickTask)
		return
	}

	var listing strings.Builder
	listing.WriteString(msgOrgListHeader)
	for _, org := range orgs {
		listing.WriteString("\n• ")
		listing.WriteString(org.Name)
		if org.Description != "" {
			listing.WriteString(": ")
			listing.WriteString(org.Description)
		}
	}
	out.Say(listing.String())
	out.Options = store.Opts(wizard.ActionSelectOrg, wizard.ActionCreateOrg, wizard.ActionPickTask)
}

func (c *conversationService) listOrganizationNames(ctx context.Context, out *store.Outbound) {
	orgs, err := c.orgService.GetAll(ctx)
	if err != nil {
		out.Say(msgSaveFailed)
		return
	}
	if len(orgs) == 0 {
		out.Say(msgOrgListEmpty)
		out.Options = store.Opts(wizard.ActionCreateOrg, wizard.EscapeMainMenu)
		return
	}
	out.Say(msgOrgSelectPrompt)
	names := make([]string, 0, len(orgs))
	for _, org := range orgs {
		names = append(names, org.Name)
	}
	names = append(names, wizard.EscapeMainMenu)
	out.Options = store.Opts(names...)
}

func (c *conversationService) selectOrganization(ctx context.Context, sess *store.Session, name string, out *store.Outbound) {
	org, err := c.orgService.GetByName(ctx, name)
	if err != nil {
		c.reportPersistenceFailure(sess, err, out)
		return
	}
	if org == nil {
		out.Say(msgOrgNotFound)
		c.listOrganizationNames(ctx, out)
		return
	}

	id := org.Id
	sess.SelectedOrgID = &id
	// The organization name feeds the prompt compiler alongside the binding.
	sess.Answers.Set(store.FieldName, org.Name)
	out.Say(msgOrgSelected + org.Name)

	if sess.Step == store.StepOrgSelectSave && sess.Answers.Has(store.FieldPendingSave) {
		c.completePendingSave(ctx, sess, out)
		return
	}

	r := c.machine.PresentTaskType(sess)
	c.merge(out, r.Out)
}

// completePendingSave finishes a save that was blocked on organization
// association. The artifact was preserved untouched through the detour.
func (c *conversationService) completePendingSave(ctx context.Context, sess *store.Session, out *store.Outbound) {
	pending := sess.Answers.Get(store.FieldPendingSave)
	delete(sess.Answers, store.FieldPendingSave)

	switch pending {
	case "edited":
		c.saveTextArtifact(ctx, sess, sess.Answers.Get(store.FieldEditedText), entity.PostTypeEdited, out)
	case "image":
		c.saveImageArtifact(ctx, sess, out)
	default:
		c.saveTextArtifact(ctx, sess, sess.Answers.Get(store.FieldGeneratedText), entity.PostTypeGenerated, out)
	}
}

func (c *conversationService) createOrganization(ctx context.Context, sess *store.Session, out *store.Outbound) {
	req := &dto.CreateOrganizationRequest{
		Name:        sess.Answers.Get(store.FieldName),
		Description: sess.Answers.Get(store.FieldDescription),
	}
	if sess.Answers.Has(store.FieldExamples) {
		req.Examples = []string{sess.Answers.Get(store.FieldExamples)}
	}

	created, err := c.orgService.Create(ctx, req)
	if err != nil {
		c.reportPersistenceFailure(sess, err, out)
		return
	}

	id := created.Id
	sess.SelectedOrgID = &id
	out.Say(msgOrgCreated)

	r := c.machine.PresentTaskType(sess)
	c.merge(out, r.Out)
}

// --- Generation effects ---

func (c *conversationService) generateText(ctx context.Context, sess *store.Session, out *store.Outbound) {
	compiled := prompt.BuildTextPrompt(sess.Answers, c.orgContext(ctx, sess))

	text, err := c.generator.GenerateText(ctx, compiled)
	if err != nil {
		c.reportGenerationFailure(sess, "text", err, out)
		return
	}

	sess.Answers.Set(store.FieldGeneratedText, text)
	kind := sess.Answers.Get(store.FieldArtifactKind)

	for _, segment := range generation.SplitMessage(text, generation.MessageLimit) {
		out.Say(segment)
	}

	// Re-runs are persisted automatically once an organization is bound.
	if sess.SelectedOrgID != nil && (kind == entity.PostTypeRegenerated || kind == entity.PostTypeAIRefined) {
		if err := c.savePost(ctx, sess, text, kind, ""); err == nil {
			out.Say(msgAutoSaved)
		}
	}

	r := c.machine.PresentReview(sess)
	c.merge(out, r.Out)
}

func (c *conversationService) refineText(ctx context.Context, sess *store.Session, out *store.Outbound) {
	compiled := prompt.BuildRefinePrompt(sess.Answers, sess.Answers.Get(store.FieldEditedText))

	text, err := c.generator.GenerateText(ctx, compiled)
	if err != nil {
		c.reportGenerationFailure(sess, "refine", err, out)
		return
	}

	sess.Answers.Set(store.FieldGeneratedText, text)

	for _, segment := range generation.SplitMessage(text, generation.MessageLimit) {
		out.Say(segment)
	}

	if sess.SelectedOrgID != nil {
		if err := c.savePost(ctx, sess, text, entity.PostTypeAIRefined, ""); err == nil {
			out.Say(msgAutoSaved)
		}
	}

	r := c.machine.PresentReview(sess)
	c.merge(out, r.Out)
}

func (c *conversationService) generateImage(ctx context.Context, sess *store.Session, out *store.Outbound) {
	data, err := c.generator.GenerateImage(ctx, sess.Answers.Get(store.FieldImagePrompt))
	if err != nil {
		c.reportGenerationFailure(sess, "image", err, out)
		return
	}

	out.Image = &store.ImagePayload{
		Data:    data,
		Caption: msgImageCaption,
	}

	r := c.machine.PresentImageReview(sess)
	c.merge(out, r.Out)
}

// --- Persistence effects ---

func (c *conversationService) saveTextArtifact(ctx context.Context, sess *store.Session, content, kind string, out *store.Outbound) {
	if kind == "" {
		kind = entity.PostTypeGenerated
	}
	if err := c.savePost(ctx, sess, content, kind, ""); err != nil {
		c.reportPersistenceFailure(sess, err, out)
		return
	}
	out.Say(msgSaved)

	sess.Reset()
	r := c.machine.PresentMainMenu(sess)
	c.merge(out, r.Out)
}

func (c *conversationService) saveImageArtifact(ctx context.Context, sess *store.Session, out *store.Outbound) {
	err := c.savePost(ctx, sess,
		msgImageCaption,
		entity.PostTypeImage,
		sess.Answers.Get(store.FieldImagePrompt),
	)
	if err != nil {
		c.reportPersistenceFailure(sess, err, out)
		return
	}
	out.Say(msgImageSaved)

	sess.Reset()
	r := c.machine.PresentMainMenu(sess)
	c.merge(out, r.Out)
}

func (c *conversationService) savePost(ctx context.Context, sess *store.Session, content, kind, imagePrompt string) error {
	if sess.SelectedOrgID == nil {
		return errors.New("no organization selected")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	post := entity.Post{
		OrgId:       *sess.SelectedOrgID,
		PostType:    kind,
		Content:     content,
		Goal:        sess.Answers.Get(store.FieldGoal),
		Audience:    sess.Answers.Get(store.FieldAudience),
		Tone:        sess.Answers.Get(store.FieldTone),
		Details:     sess.Answers.Get(store.FieldDetails),
		CTA:         sess.Answers.Get(store.FieldCTA),
		Nuances:     sess.Answers.Get(store.FieldNuances),
		ImagePrompt: imagePrompt,
		CreatedAt:   time.Now(),
	}
	if err := uow.PostRepository().Create(ctx, &post); err != nil {
		return err
	}

	c.publishEvent(ctx, events.NewPostSaved(post.Id, post.OrgId, post.PostType))
	return nil
}

// --- Failure reporting ---

func (c *conversationService) reportGenerationFailure(sess *store.Session, kind string, err error, out *store.Outbound) {
	c.logger.Error("conversation", "generation failed", map[string]interface{}{
		"conversation_id": sess.ConversationID,
		"kind":            kind,
		"error":           err.Error(),
	})
	c.publishEvent(context.Background(), events.NewGenerationFailed(sess.ConversationID, kind, err.Error()))

	switch {
	case errors.Is(err, generation.ErrConnection):
		out.Say(msgGenConnection)
	case errors.Is(err, generation.ErrTimeout):
		out.Say(msgGenTimeout)
	default:
		out.Say(msgGenUpstream)
	}

	// The review steps accept the retry actions, so a failed run is
	// retried from the step the machine already advanced to.
	if kind == "image" {
		out.Options = store.Opts(wizard.ActionRetry, wizard.ActionChangePrompt, wizard.EscapeMainMenu)
	} else {
		out.Options = store.Opts(wizard.ActionRetry, wizard.EscapeMainMenu)
	}
}

func (c *conversationService) reportPersistenceFailure(sess *store.Session, err error, out *store.Outbound) {
	c.logger.Error("conversation", "persistence failed", map[string]interface{}{
		"conversation_id": sess.ConversationID,
		"error":           err.Error(),
	})
	out.Say(msgSaveFailed)
}

// --- Helpers ---

func (c *conversationService) orgContext(ctx context.Context, sess *store.Session) prompt.OrgContext {
	if sess.SelectedOrgID == nil {
		return prompt.OrgContext{}
	}

	org, err := c.orgService.Get(ctx, *sess.SelectedOrgID)
	if err != nil || org == nil {
		return prompt.OrgContext{}
	}

	examples, err := c.orgService.ExamplePosts(ctx, org.Id)
	if err != nil {
		examples = nil
	}

	return prompt.OrgContext{
		Name:        org.Name,
		Description: org.Description,
		Examples:    examples,
	}
}

func (c *conversationService) merge(out *store.Outbound, extra store.Outbound) {
	out.Messages = append(out.Messages, extra.Messages...)
	if len(extra.Options) > 0 {
		out.Options = extra.Options
	}
	if extra.Image != nil {
		out.Image = extra.Image
	}
}

func (c *conversationService) publishEvent(ctx context.Context, evt events.Event) {
	if c.publisherService == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	_ = c.publisherService.Publish(ctx, payload)
}
