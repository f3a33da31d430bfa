package prompt

import (
	"strings"

	"nko-content-assistant/pkg/store"
)

// OrgContext is the organization profile slice the compiler consumes.
// Missing fields degrade to fallback clauses, never to errors.
type OrgContext struct {
	Name        string
	Description string
	Examples    []string
}

const unnamedOrganization = "Без указания названия"

// TextBuilder assembles the text-generation prompt clause by clause.
// The clause order is fixed; identical inputs always produce identical
// output.
type TextBuilder struct {
	answers store.Answers
	org     OrgContext
}

// NewTextBuilder creates a builder over the accumulated answers and the
// organization context.
func NewTextBuilder(answers store.Answers, org OrgContext) *TextBuilder {
	return &TextBuilder{answers: answers, org: org}
}

// BuildTextPrompt compiles the post-generation prompt.
func BuildTextPrompt(answers store.Answers, org OrgContext) string {
	return NewTextBuilder(answers, org).Build()
}

func (b *TextBuilder) Build() string {
	var p strings.Builder

	b.writePersona(&p)
	b.writeBrief(&p)
	b.writeStyleReference(&p)
	b.writeRequirements(&p)
	b.writeNetworkDirective(&p)
	b.writeFooter(&p)

	return p.String()
}

func (b *TextBuilder) organizationClause() string {
	if b.org.Description != "" {
		return "Миссия и деятельность: " + b.org.Description
	}
	name := b.org.Name
	if name == "" {
		name = b.answers.Get(store.FieldName)
	}
	if name == "" {
		name = unnamedOrganization
	}
	return "Название организации: " + name
}

// eventClause is non-empty only when the goal is event-related AND an
// event date was actually collected.
func (b *TextBuilder) eventClause() string {
	if !b.answers.Has(store.FieldEventDate) {
		return ""
	}
	switch b.answers.Get(store.FieldGoal) {
	case GoalAnnounce:
		return "Дата и место события: " + b.answers.Get(store.FieldEventDate)
	case GoalRecap:
		return "Дата прошедшего события: " + b.answers.Get(store.FieldEventDate)
	}
	return ""
}

func (b *TextBuilder) writePersona(p *strings.Builder) {
	p.WriteString("Ты — опытный копирайтер и редактор благотворительной организации: ")
	p.WriteString(b.organizationClause())
	p.WriteString("\n\n")
}

func (b *TextBuilder) writeBrief(p *strings.Builder) {
	p.WriteString("Напиши текст поста для социальных сетей на основе следующих данных:\n")
	p.WriteString("Цель поста: " + b.answers.Get(store.FieldGoal) + "\n")
	if event := b.eventClause(); event != "" {
		p.WriteString(event + "\n")
	}
	p.WriteString("Целевая аудитория поста: " + b.answers.Get(store.FieldAudience) + "\n")
	p.WriteString("Основная информация поста: " + b.answers.Get(store.FieldDetails) + "\n")
	p.WriteString("Призыв к действию: " + b.answers.Get(store.FieldCTA) + "\n")
	p.WriteString("Дополнительные пожелания: " + b.answers.Get(store.FieldNuances) + "\n\n")
}

func (b *TextBuilder) writeStyleReference(p *strings.Builder) {
	if len(b.org.Examples) == 0 {
		return
	}
	p.WriteString("Стилистический референс, пиши в аналогичном стиле с этими постами:\n")
	p.WriteString(strings.Join(b.org.Examples, "\n"))
	p.WriteString("\n\n")
}

func (b *TextBuilder) writeRequirements(p *strings.Builder) {
	goal := b.answers.Get(store.FieldGoal)

	p.WriteString("Требования к тексту:\n")
	p.WriteString("Соответствует цели поста.\n")
	if b.eventClause() != "" {
		p.WriteString("Учитывает дату и место события.\n")
	}
	p.WriteString("Написан в стиле, близком к референсу и глобальному контексту (стиль, интонация, уровень языка). Текст не должен выглядеть сгенерированным нейросетью, пиши так, как писал бы человек.\n")
	if goal == GoalAnnounce {
		p.WriteString("Побуждает к действию (прийти, помочь, поделиться).\n")
	}
	if goal == GoalSummary || goal == GoalReport {
		p.WriteString("Содержит результаты в удобочитаемом виде, избегает большого количества цифр.\n")
	}
	if goal == GoalFundraising {
		p.WriteString("Вызывает доверие, конкретизирует цель (зачем нужны деньги, кому помогут).\n")
	}
	if goal == GoalSponsor {
		p.WriteString("Уважительно, без рекламного тона, с акцентом на вклад и ценность поддержки.\n")
	}
	p.WriteString("\n")
}

func (b *TextBuilder) writeNetworkDirective(p *strings.Builder) {
	directive := networkDirectives[b.answers.Get(store.FieldSocialNetwork)]
	p.WriteString("Учитывай специфику социальной сети: " + directive + "\n\n")
}

func (b *TextBuilder) writeFooter(p *strings.Builder) {
	p.WriteString("Стиль:\n")
	p.WriteString("Естественный, живой, внимание к деталям. Избегай клише, канцеляризмов и морализаторства.\n\n")
	p.WriteString("Формат вывода:\n")
	p.WriteString("Готовый текст поста. Без пояснений, заголовков вроде «[Текст поста]» или комментариев.\n")
	p.WriteString("Добавь 4-5 хештегов в конце по тематике поста для социальных сетей.")
}

// BuildRefinePrompt frames an AI-refinement pass over the operator's
// edited text, preserving the original questionnaire context.
func BuildRefinePrompt(answers store.Answers, editedText string) string {
	name := answers.Get(store.FieldName)
	if name == "" {
		name = unnamedOrganization
	}

	var p strings.Builder
	p.WriteString("Пользователь отредактировал текст и просит его доработать.\n\n")
	p.WriteString("Оригинальный контекст:\n")
	p.WriteString("- НКО: " + name + "\n")
	p.WriteString("- Цель: " + answers.Get(store.FieldGoal) + "\n")
	p.WriteString("- Аудитория: " + answers.Get(store.FieldAudience) + "\n")
	p.WriteString("- Тон: " + answers.Get(store.FieldTone) + "\n\n")
	p.WriteString("Отредактированный текст пользователя:\n")
	p.WriteString(editedText)
	p.WriteString("\n\n")
	p.WriteString("Задача: улучшить текст, сохранив смысл правок пользователя, сделать его более профессиональным и соответствующим исходным требованиям.")
	return p.String()
}
