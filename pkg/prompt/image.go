package prompt

import (
	"strings"

	"nko-content-assistant/pkg/store"
)

const genericImageSubject = "Креативная иллюстрация для социальных сетей"

const imageTechnicalBlock = `
Технические требования:
- Высокое качество, детализированное изображение
- Профессиональное освещение и композиция
- Резкость и четкость
- Гармоничное цветовое сочетание
- Сбалансированная перспектива

Дополнительные параметры:
- Разрешение: 4K
- Глубина резкости: профессиональная
- Текстуры: реалистичные
- Атмосфера: соответствующая стилю

Нежелательные элементы: размытость, искажения, низкое качество, дисгармония в цветах`

// BuildImagePrompt compiles the image-generation request. It returns the
// full prompt handed to the backend and the shorter rendering shown to
// the operator. Both derive from the same subject/style/color clauses so
// they differ only in the trailing technical block.
func BuildImagePrompt(answers store.Answers) (full string, display string) {
	var parts []string

	switch {
	case answers.Has(store.FieldPostForImage):
		parts = append(parts, "Иллюстрация для поста: "+answers.Get(store.FieldPostForImage))
	case answers.Has(store.FieldImageDesc):
		parts = append(parts, answers.Get(store.FieldImageDesc))
	default:
		parts = append(parts, genericImageSubject)
	}

	if answers.Has(store.FieldImageStyle) {
		style := answers.Get(store.FieldImageStyle)
		if clause, ok := styleClauses[style]; ok {
			style = clause
		}
		parts = append(parts, "Стиль: "+style)
	} else {
		parts = append(parts, "Стиль: "+fallbackStyleClause)
	}

	if answers.Has(store.FieldImageColors) {
		colors := answers.Get(store.FieldImageColors)
		if clause, ok := colorClauses[colors]; ok {
			colors = clause
		}
		parts = append(parts, "Цветовая палитра: "+colors)
	} else {
		parts = append(parts, "Цветовая палитра: "+fallbackColorClause)
	}

	display = strings.Join(parts, ", ")
	full = display + imageTechnicalBlock
	return full, display
}
