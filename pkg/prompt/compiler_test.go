package prompt

import (
	"strings"
	"testing"

	"nko-content-assistant/pkg/store"
)

func textAnswers(goal string) store.Answers {
	a := store.Answers{}
	a.Set(store.FieldSocialNetwork, NetworkTelegram)
	a.Set(store.FieldGoal, goal)
	a.Set(store.FieldAudience, "Молодёжь")
	a.Set(store.FieldTone, "Дружелюбный")
	a.Set(store.FieldDetails, "Собираем волонтеров на субботник")
	a.Set(store.FieldCTA, "Приходите в субботу")
	a.Set(store.FieldNuances, "нет")
	return a
}

func TestBuildTextPromptDeterministic(t *testing.T) {
	answers := textAnswers(GoalAnnounce)
	answers.Set(store.FieldEventDate, "15 декабря, 14:00")
	org := OrgContext{Name: "Добрые руки", Description: "Помощь приютам", Examples: []string{"пример поста"}}

	first := BuildTextPrompt(answers, org)
	second := BuildTextPrompt(answers, org)
	if first != second {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestEventClauseOnlyForEventGoals(t *testing.T) {
	tests := []struct {
		name     string
		goal     string
		withDate bool
		want     bool
	}{
		{"announce with date", GoalAnnounce, true, true},
		{"recap with date", GoalRecap, true, true},
		{"announce without date", GoalAnnounce, false, false},
		{"fundraising with stray date", GoalFundraising, true, false},
		{"summary without date", GoalSummary, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := textAnswers(tt.goal)
			if tt.withDate {
				answers.Set(store.FieldEventDate, "10 декабря")
			}
			got := BuildTextPrompt(answers, OrgContext{})
			hasClause := strings.Contains(got, "Дата и место события") ||
				strings.Contains(got, "Дата прошедшего события")
			if hasClause != tt.want {
				t.Errorf("event clause present = %v, want %v", hasClause, tt.want)
			}
		})
	}
}

func TestGoalConditionalRequirements(t *testing.T) {
	fundraising := BuildTextPrompt(textAnswers(GoalFundraising), OrgContext{})
	if !strings.Contains(fundraising, "Вызывает доверие") {
		t.Error("fundraising prompt misses the trust requirement")
	}

	neutral := BuildTextPrompt(textAnswers(GoalTopics), OrgContext{})
	if strings.Contains(neutral, "Вызывает доверие") {
		t.Error("non-fundraising prompt carries the trust requirement")
	}
}

func TestNetworkDirectiveLookup(t *testing.T) {
	vk := textAnswers(GoalTopics)
	vk.Set(store.FieldSocialNetwork, NetworkVK)
	got := BuildTextPrompt(vk, OrgContext{})
	if !strings.Contains(got, "активное комментирование") {
		t.Error("VK directive missing")
	}

	tg := BuildTextPrompt(textAnswers(GoalTopics), OrgContext{})
	if !strings.Contains(tg, "максимальная информативность") {
		t.Error("Telegram directive missing")
	}
}

func TestStyleReferenceOnlyWithExamples(t *testing.T) {
	answers := textAnswers(GoalTopics)

	with := BuildTextPrompt(answers, OrgContext{Examples: []string{"пост один", "пост два"}})
	if !strings.Contains(with, "Стилистический референс") {
		t.Error("examples present but no style reference block")
	}
	if !strings.Contains(with, "пост один\nпост два") {
		t.Error("examples not joined into the reference block")
	}

	without := BuildTextPrompt(answers, OrgContext{})
	if strings.Contains(without, "Стилистический референс") {
		t.Error("style reference block without examples")
	}
}

func TestOrganizationFallback(t *testing.T) {
	got := BuildTextPrompt(textAnswers(GoalTopics), OrgContext{})
	if !strings.Contains(got, "Без указания названия") {
		t.Error("missing unnamed-organization fallback")
	}

	named := BuildTextPrompt(textAnswers(GoalTopics), OrgContext{Name: "Лучик"})
	if !strings.Contains(named, "Лучик") {
		t.Error("organization name not used")
	}
}

func TestBuildRefinePromptCarriesContext(t *testing.T) {
	answers := textAnswers(GoalAnnounce)
	answers.Set(store.FieldName, "Лучик")

	got := BuildRefinePrompt(answers, "мой исправленный текст")
	for _, fragment := range []string{"Лучик", GoalAnnounce, "Молодёжь", "Дружелюбный", "мой исправленный текст"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("refine prompt misses %q", fragment)
		}
	}
}
