package wizard

import (
	"testing"

	"nko-content-assistant/pkg/prompt"
	"nko-content-assistant/pkg/store"
)

func newStarted(t *testing.T) (*Machine, *store.Session) {
	t.Helper()
	m := NewMachine()
	s := store.NewSession("conv-1")
	m.Advance(s, store.Text("/start"))
	if s.Step != store.StepMainMenu {
		t.Fatalf("after /start step = %s", s.Step)
	}
	return m, s
}

// walk drives the machine through selections/texts and returns the last result.
func walk(m *Machine, s *store.Session, inputs ...store.Inbound) Result {
	var res Result
	for _, in := range inputs {
		res = m.Advance(s, in)
	}
	return res
}

func toTextQuestionnaire(goal string) []store.Inbound {
	return []store.Inbound{
		store.Select(ActionPickTask),
		store.Select(prompt.TaskText),
		store.Select(prompt.NetworkTelegram),
		store.Select(goal),
	}
}

func TestGreetingPresentsMainMenu(t *testing.T) {
	m := NewMachine()
	s := store.NewSession("conv-1")

	res := m.Advance(s, store.Text("привет"))
	if s.Step != store.StepMainMenu {
		t.Fatalf("step = %s, want main menu", s.Step)
	}
	if len(res.Out.Messages) == 0 {
		t.Fatal("no greeting emitted")
	}
	if len(res.Out.Options) != 3 {
		t.Errorf("main menu options = %d, want 3", len(res.Out.Options))
	}
}

func TestFullTextFlowReachesGeneration(t *testing.T) {
	m, s := newStarted(t)

	res := walk(m, s, toTextQuestionnaire(prompt.GoalFundraising)...)
	if s.Step != store.StepAudience {
		t.Fatalf("fundraising goal must skip the event date, step = %s", s.Step)
	}

	res = walk(m, s,
		store.Select("Молодёжь"),
		store.Select("Дружелюбный"),
		store.Text("Собираем средства на корм"),
		store.Text("Поддержите нас"),
		store.Text("нет"),
	)

	if res.Effect != EffectGenerateText {
		t.Fatalf("effect = %v, want EffectGenerateText", res.Effect)
	}
	if s.Step != store.StepReview {
		t.Errorf("step = %s, want review", s.Step)
	}
	for field, want := range map[string]string{
		store.FieldSocialNetwork: prompt.NetworkTelegram,
		store.FieldGoal:          prompt.GoalFundraising,
		store.FieldAudience:      "Молодёжь",
		store.FieldTone:          "Дружелюбный",
		store.FieldDetails:       "Собираем средства на корм",
		store.FieldCTA:           "Поддержите нас",
		store.FieldNuances:       "нет",
	} {
		if got := s.Answers.Get(field); got != want {
			t.Errorf("answer %s = %q, want %q", field, got, want)
		}
	}
}

func TestAnnounceGoalAsksEventDate(t *testing.T) {
	m, s := newStarted(t)

	walk(m, s, toTextQuestionnaire(prompt.GoalAnnounce)...)
	if s.Step != store.StepEventDate {
		t.Fatalf("step = %s, want event date", s.Step)
	}

	walk(m, s, store.Text("15 декабря, 14:00, ул. Пушкина 3"))
	if s.Step != store.StepAudience {
		t.Errorf("step = %s, want audience", s.Step)
	}
	if got := s.Answers.Get(store.FieldEventDate); got != "15 декабря, 14:00, ул. Пушкина 3" {
		t.Errorf("event date = %q", got)
	}
}

func TestAudienceSkipRecordsExplicitNull(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, toTextQuestionnaire(prompt.GoalTopics)...)

	walk(m, s, store.Select(prompt.SkipAudience))
	if !s.Answers.Skipped(store.FieldAudience) {
		t.Error("skipped audience must be recorded as explicit null")
	}
	if s.Step != store.StepTone {
		t.Errorf("step = %s, want tone", s.Step)
	}
}

func TestUnmatchedSelectionKeepsState(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, toTextQuestionnaire(prompt.GoalTopics)...)
	if s.Step != store.StepAudience {
		t.Fatalf("setup step = %s", s.Step)
	}
	before := len(s.Answers)

	res := m.Advance(s, store.Select("нет такой кнопки"))
	if s.Step != store.StepAudience {
		t.Errorf("unmatched selection moved the step to %s", s.Step)
	}
	if len(s.Answers) != before {
		t.Error("unmatched selection mutated answers")
	}
	if len(res.Out.Messages) == 0 || len(res.Out.Options) == 0 {
		t.Error("step must be re-presented")
	}
}

func TestEscapeResetsFromAnyStep(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, toTextQuestionnaire(prompt.GoalAnnounce)...)
	orgID := uint(3)
	s.SelectedOrgID = &orgID

	res := m.Advance(s, store.Select(EscapeMainMenu))
	if s.Step != store.StepMainMenu {
		t.Errorf("step = %s, want main menu", s.Step)
	}
	if len(s.Answers) != 0 {
		t.Error("escape must clear accumulated answers")
	}
	if s.SelectedOrgID != nil {
		t.Error("escape must clear the organization binding")
	}
	if len(res.Out.Options) == 0 {
		t.Error("main menu must be presented")
	}
}

func TestReviewEditRefineCycle(t *testing.T) {
	m, s := newStarted(t)
	s.Step = store.StepReview
	s.Answers.Set(store.FieldGeneratedText, "сгенерированный текст")

	walk(m, s, store.Select(ActionEditText))
	if s.Step != store.StepEditing {
		t.Fatalf("step = %s, want editing", s.Step)
	}

	walk(m, s, store.Text("мой вариант текста"))
	if s.Step != store.StepEditReview {
		t.Fatalf("step = %s, want edit review", s.Step)
	}
	if got := s.Answers.Get(store.FieldEditedText); got != "мой вариант текста" {
		t.Errorf("edited text = %q", got)
	}

	res := m.Advance(s, store.Select(ActionRefine))
	if res.Effect != EffectRefine {
		t.Errorf("effect = %v, want EffectRefine", res.Effect)
	}
	if got := s.Answers.Get(store.FieldArtifactKind); got != "ai_refined" {
		t.Errorf("artifact kind = %q", got)
	}
}

func TestSaveWithoutOrganizationPreservesArtifact(t *testing.T) {
	m, s := newStarted(t)
	s.Step = store.StepReview
	s.Answers.Set(store.FieldGeneratedText, "текст до сохранения")
	s.Answers.Set(store.FieldArtifactKind, "generated")

	res := m.Advance(s, store.Select(ActionSaveText))
	if res.Effect != EffectNone {
		t.Fatalf("save without org must not reach persistence, effect = %v", res.Effect)
	}
	if got := s.Answers.Get(store.FieldGeneratedText); got != "текст до сохранения" {
		t.Error("artifact mutated by the blocked save")
	}
	if got := s.Answers.Get(store.FieldPendingSave); got != "generated" {
		t.Errorf("pending save = %q", got)
	}

	var hasSelect bool
	for _, opt := range res.Out.Options {
		if opt.Value == ActionSelectOrg {
			hasSelect = true
		}
	}
	if !hasSelect {
		t.Error("blocked save must offer organization selection")
	}

	// Selecting the affordance moves into the save-detour list.
	res = m.Advance(s, store.Select(ActionSelectOrg))
	if s.Step != store.StepOrgSelectSave {
		t.Errorf("step = %s, want org select (save detour)", s.Step)
	}
	if res.Effect != EffectListOrgNames {
		t.Errorf("effect = %v, want EffectListOrgNames", res.Effect)
	}
}

func TestSaveWithOrganizationEmitsEffect(t *testing.T) {
	m, s := newStarted(t)
	s.Step = store.StepReview
	s.Answers.Set(store.FieldGeneratedText, "текст")
	orgID := uint(1)
	s.SelectedOrgID = &orgID

	res := m.Advance(s, store.Select(ActionSaveText))
	if res.Effect != EffectSavePost {
		t.Errorf("effect = %v, want EffectSavePost", res.Effect)
	}
}

func TestRegenerateFromReview(t *testing.T) {
	m, s := newStarted(t)
	s.Step = store.StepReview

	res := m.Advance(s, store.Select(ActionRegenerate))
	if res.Effect != EffectRegenerate {
		t.Fatalf("effect = %v, want EffectRegenerate", res.Effect)
	}
	if got := s.Answers.Get(store.FieldArtifactKind); got != "regenerated" {
		t.Errorf("artifact kind = %q", got)
	}
	// Retry after a failure goes through the same transition.
	res = m.Advance(s, store.Select(ActionRetry))
	if res.Effect != EffectRegenerate {
		t.Errorf("retry effect = %v, want EffectRegenerate", res.Effect)
	}
}

func TestOrganizationCreationFlow(t *testing.T) {
	m, s := newStarted(t)

	walk(m, s,
		store.Select(ActionCreateOrg),
		store.Text("Добрые руки"),
		store.Text("Помощь бездомным животным"),
	)
	if s.Step != store.StepOrgExamples {
		t.Fatalf("step = %s, want examples", s.Step)
	}

	res := m.Advance(s, store.Text("пример нашего поста"))
	if res.Effect != EffectSaveOrg {
		t.Fatalf("effect = %v, want EffectSaveOrg", res.Effect)
	}
	if got := s.Answers.Get(store.FieldName); got != "Добрые руки" {
		t.Errorf("name = %q", got)
	}
	if got := s.Answers.Get(store.FieldExamples); got != "пример нашего поста" {
		t.Errorf("examples = %q", got)
	}
}

func TestOrganizationExamplesSkip(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s,
		store.Select(ActionCreateOrg),
		store.Text("Лучик"),
		store.Text("Описание"),
	)

	res := m.Advance(s, store.Select(ActionSkipExamples))
	if res.Effect != EffectSaveOrg {
		t.Fatalf("effect = %v, want EffectSaveOrg", res.Effect)
	}
	if !s.Answers.Skipped(store.FieldExamples) {
		t.Error("skipped examples must be recorded as explicit null")
	}
}

func TestContentPlanIsStub(t *testing.T) {
	m, s := newStarted(t)

	res := walk(m, s,
		store.Select(ActionPickTask),
		store.Select(prompt.TaskPlan),
	)
	if s.Step != store.StepMainMenu {
		t.Errorf("step = %s, want main menu", s.Step)
	}
	if len(res.Out.Messages) == 0 {
		t.Error("stub must explain itself")
	}
}
