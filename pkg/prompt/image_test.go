package prompt

import (
	"strings"
	"testing"

	"nko-content-assistant/pkg/store"
)

func TestBuildImagePromptDualRendering(t *testing.T) {
	a := store.Answers{}
	a.Set(store.FieldImageDesc, "дети сажают деревья")
	a.Set(store.FieldImageStyle, "Акварель")
	a.Set(store.FieldImageColors, "Теплые тона")

	full, display := BuildImagePrompt(a)

	if !strings.HasPrefix(full, display) {
		t.Error("full prompt does not extend the display rendering")
	}
	if strings.Contains(display, "Технические требования") {
		t.Error("technical block leaked into the display rendering")
	}
	if !strings.Contains(full, "Технические требования") {
		t.Error("full prompt misses the technical block")
	}
	if !strings.Contains(display, "акварельная техника") {
		t.Error("named style not resolved to its clause")
	}
	if !strings.Contains(display, "теплые тона") {
		t.Error("named color scheme not resolved to its clause")
	}
}

func TestBuildImagePromptSubjectPriority(t *testing.T) {
	a := store.Answers{}
	a.Set(store.FieldPostForImage, "текст поста про приют")
	a.Set(store.FieldImageDesc, "собака")

	_, display := BuildImagePrompt(a)
	if !strings.Contains(display, "Иллюстрация для поста: текст поста про приют") {
		t.Error("post text should take priority over the free description")
	}
}

func TestBuildImagePromptFallbacks(t *testing.T) {
	a := store.Answers{}
	a.Skip(store.FieldImageDesc)
	a.Skip(store.FieldImageColors)

	_, display := BuildImagePrompt(a)
	if !strings.Contains(display, "Креативная иллюстрация") {
		t.Error("missing generic subject fallback")
	}
	if !strings.Contains(display, fallbackStyleClause) {
		t.Error("missing style fallback")
	}
	if !strings.Contains(display, fallbackColorClause) {
		t.Error("missing color fallback")
	}
}

func TestBuildImagePromptCustomStylePassthrough(t *testing.T) {
	a := store.Answers{}
	a.Set(store.FieldImageDesc, "праздник во дворе")
	a.Set(store.FieldImageStyle, "в духе советских плакатов")

	_, display := BuildImagePrompt(a)
	if !strings.Contains(display, "Стиль: в духе советских плакатов") {
		t.Error("custom style should pass through verbatim")
	}
}
