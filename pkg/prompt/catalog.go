package prompt

// Closed enumerations for the questionnaire categories. The wizard offers
// exactly these values as menu options; the compiler branches on them.

// Content goals.
const (
	GoalAnnounce    = "Анонс события"
	GoalRecap       = "Рассказать о прошедшем событии"
	GoalTopics      = "Создать темы поста"
	GoalSummary     = "Подвести итоги и статистику"
	GoalFundraising = "Сбор средств"
	GoalAwareness   = "Повысить осведомлённость"
	GoalReport      = "Отчитаться о проделанной работе"
	GoalSponsor     = "Рассказать о спонсоре"
)

// Goals lists the goals offered by the wizard, in menu order.
var Goals = []string{
	GoalAnnounce,
	GoalRecap,
	GoalTopics,
	GoalSummary,
	GoalFundraising,
	GoalAwareness,
	GoalReport,
}

// GoalNeedsEventDate reports whether the goal implies an event date step.
func GoalNeedsEventDate(goal string) bool {
	return goal == GoalAnnounce || goal == GoalRecap
}

// Social networks.
const (
	NetworkTelegram = "Телеграм"
	NetworkVK       = "ВК"
)

var Networks = []string{NetworkTelegram, NetworkVK}

// networkDirectives maps a network to its style directive. Unknown
// networks yield an empty directive, not an error.
var networkDirectives = map[string]string{
	NetworkVK:       "Короткий и понятный текст с яркими заголовками. Эмоциональная подача, стимулирующая обсуждение и активное комментирование.",
	NetworkTelegram: "Качественный и структурированный материал с четкими выводами. Лаконичный стиль, минимум графического оформления, максимальная информативность.",
}

// Image styles offered by the wizard. CustomStyle asks for free text.
const CustomStyle = "Ввести свой"

var ImageStyles = []string{
	"Реализм",
	"Импрессионизм",
	"Сюрреализм",
	"Киношный",
	"Фэнтези",
	"Минимализм",
	"Масляная живопись",
	"Акварель",
	CustomStyle,
}

// styleClauses maps a named style to its technical phrase. Custom or
// unknown styles pass through verbatim.
var styleClauses = map[string]string{
	"Реализм":          "фотореалистичный стиль, гиперреализм, профессиональная фотография",
	"Импрессионизм":    "импрессионизм, живописные мазки, игра света",
	"Сюрреализм":       "сюрреализм, фантастические элементы, сновидческая атмосфера",
	"Киношный":         "кинематографичный стиль, драматичное освещение, кадр из фильма",
	"Фэнтези":          "фэнтези, волшебная атмосфера, мифические элементы",
	"Минимализм":       "минимализм, чистые линии, простота композиции",
	"Масляная живопись": "масляная живопись, текстуры масла, классическая техника",
	"Акварель":         "акварельная техника, прозрачные слои, мягкие переходы",
}

const fallbackStyleClause = "профессиональный цифровой арт"

// Color schemes. SkipColors is the explicit skip option.
const SkipColors = "Пропустить"

var ColorSchemes = []string{
	"Теплые тона",
	"Холодные тона",
	"Пастельные цвета",
	"Монохром",
	"Приглушенные цвета",
	"Контрастные",
	SkipColors,
}

var colorClauses = map[string]string{
	"Теплые тона":        "теплые тона, золотистые оттенки, уютная палитра",
	"Холодные тона":      "холодные тона, сине-зеленая палитра, свежие цвета",
	"Пастельные цвета":   "пастельные цвета, мягкие пастельные тона, нежные оттенки",
	"Монохром":           "монохромная палитра, черно-белое, оттенки одного цвета",
	"Приглушенные цвета": "приглушенные цвета, мягкая насыщенность, спокойная палитра",
	"Контрастные":        "высокий контраст, яркие акценты, динамичная цветовая палитра",
}

const fallbackColorClause = "сбалансированная гармоничная"

// Task types.
const (
	TaskText  = "Создание текста"
	TaskImage = "Создание картинки"
	TaskPlan  = "Создание контент плана"
)

var TaskTypes = []string{TaskText, TaskImage, TaskPlan}

// Audience presets. SkipAudience stores an explicit null.
const SkipAudience = "Пропустить"

var Audiences = []string{
	"Жители города",
	"Молодёжь",
	"Семьи",
	"Ветераны",
	"Предприятия / компании",
	SkipAudience,
}

// Tone presets.
var Tones = []string{
	"Нейтральный",
	"Дружелюбный",
	"Воодушевляющий",
	"Деловой",
	"С энтузиазмом",
	"Тон не важен",
}
