package wizard

import (
	"strings"
	"testing"

	"nko-content-assistant/pkg/prompt"
	"nko-content-assistant/pkg/store"
)

func toImageQuestionnaire() []store.Inbound {
	return []store.Inbound{
		store.Select(ActionPickTask),
		store.Select(prompt.TaskImage),
	}
}

func TestImageStandaloneFlowCompilesPrompt(t *testing.T) {
	m, s := newStarted(t)

	res := walk(m, s, append(toImageQuestionnaire(),
		store.Select(ActionImageStandalone),
		store.Text("дети сажают деревья"),
		store.Select("Акварель"),
		store.Select("Теплые тона"),
	)...)

	if s.Step != store.StepImagePrompt {
		t.Fatalf("step = %s, want image prompt", s.Step)
	}
	if !s.Answers.Has(store.FieldImagePrompt) || !s.Answers.Has(store.FieldImageDisplay) {
		t.Fatal("compiled prompt not stored")
	}
	full := s.Answers.Get(store.FieldImagePrompt)
	display := s.Answers.Get(store.FieldImageDisplay)
	if !strings.HasPrefix(full, display) {
		t.Error("full prompt must extend the display rendering")
	}

	var shown bool
	for _, msg := range res.Out.Messages {
		if strings.Contains(msg, display) {
			shown = true
		}
	}
	if !shown {
		t.Error("display rendering must be presented to the operator")
	}
}

func TestImageForPostAsksPostText(t *testing.T) {
	m, s := newStarted(t)

	walk(m, s, append(toImageQuestionnaire(), store.Select(ActionImageForPost))...)
	if s.Step != store.StepPostForImage {
		t.Fatalf("step = %s, want post-for-image", s.Step)
	}

	walk(m, s, store.Text("текст поста про приют"))
	if s.Step != store.StepImageDesc {
		t.Errorf("step = %s, want image description", s.Step)
	}
	if got := s.Answers.Get(store.FieldPostForImage); got != "текст поста про приют" {
		t.Errorf("post text = %q", got)
	}
}

func TestImageCustomStyleTakesFreeText(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, append(toImageQuestionnaire(),
		store.Select(ActionImageStandalone),
		store.Select(ActionSkipImageDesc),
	)...)
	if s.Step != store.StepImageStyle {
		t.Fatalf("step = %s, want style", s.Step)
	}

	res := m.Advance(s, store.Select(prompt.CustomStyle))
	if s.Step != store.StepImageStyle {
		t.Fatal("custom style option must stay on the style step")
	}
	if len(res.Out.Messages) == 0 {
		t.Fatal("custom style must ask for free text")
	}

	walk(m, s, store.Text("в духе советских плакатов"))
	if got := s.Answers.Get(store.FieldImageStyle); got != "в духе советских плакатов" {
		t.Errorf("style = %q", got)
	}
	if s.Step != store.StepImageColors {
		t.Errorf("step = %s, want colors", s.Step)
	}
}

func TestImagePromptEditReplacesBothRenderings(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, append(toImageQuestionnaire(),
		store.Select(ActionImageStandalone),
		store.Select(ActionSkipImageDesc),
		store.Select("Минимализм"),
		store.Select(prompt.SkipColors),
	)...)
	if s.Step != store.StepImagePrompt {
		t.Fatalf("step = %s", s.Step)
	}

	walk(m, s, store.Select(ActionEditImagePrompt))
	if s.Step != store.StepImageEdit {
		t.Fatalf("step = %s, want prompt edit", s.Step)
	}

	walk(m, s, store.Text("мой собственный запрос"))
	if got := s.Answers.Get(store.FieldImagePrompt); got != "мой собственный запрос" {
		t.Errorf("full prompt = %q", got)
	}
	if got := s.Answers.Get(store.FieldImageDisplay); got != "мой собственный запрос" {
		t.Errorf("display prompt = %q", got)
	}
	if s.Step != store.StepImagePrompt {
		t.Errorf("step = %s, want image prompt", s.Step)
	}
}

func TestImageRunEmitsGenerateEffect(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, append(toImageQuestionnaire(),
		store.Select(ActionImageStandalone),
		store.Select(ActionSkipImageDesc),
		store.Select("Минимализм"),
		store.Select(prompt.SkipColors),
	)...)

	res := m.Advance(s, store.Select(ActionRunImage))
	if res.Effect != EffectGenerateImage {
		t.Fatalf("effect = %v, want EffectGenerateImage", res.Effect)
	}
	if s.Step != store.StepImageReview {
		t.Errorf("step = %s, want image review", s.Step)
	}

	// Another run from the review menu regenerates with the same prompt.
	res = m.Advance(s, store.Select(ActionAnotherImage))
	if res.Effect != EffectGenerateImage {
		t.Errorf("effect = %v, want EffectGenerateImage", res.Effect)
	}
}

func TestImageSaveRequiresOrganization(t *testing.T) {
	m, s := newStarted(t)
	s.Step = store.StepImageReview
	s.Answers.Set(store.FieldImagePrompt, "запрос")

	res := m.Advance(s, store.Select(ActionSaveImage))
	if res.Effect != EffectNone {
		t.Fatalf("save without org must be blocked, effect = %v", res.Effect)
	}
	if got := s.Answers.Get(store.FieldPendingSave); got != "image" {
		t.Errorf("pending save = %q", got)
	}

	orgID := uint(5)
	s.SelectedOrgID = &orgID
	s.Step = store.StepImageReview
	res = m.Advance(s, store.Select(ActionSaveImage))
	if res.Effect != EffectSaveImage {
		t.Errorf("effect = %v, want EffectSaveImage", res.Effect)
	}
}

func TestImageSkipDescriptionRecordsNull(t *testing.T) {
	m, s := newStarted(t)
	walk(m, s, append(toImageQuestionnaire(),
		store.Select(ActionImageStandalone),
		store.Select(ActionSkipImageDesc),
	)...)

	if !s.Answers.Skipped(store.FieldImageDesc) {
		t.Error("skipped description must be recorded as explicit null")
	}
}
