package wizard

// Operator-facing bot copy. Menu option labels double as the opaque
// tokens the transport echoes back.

const (
	// Global escape available from any step.
	EscapeMainMenu = "В главное меню"
	EscapeStart    = "/start"
)

// Main menu actions.
const (
	ActionPickTask  = "Перейти к выбору задачи"
	ActionListOrgs  = "Вывести список НКО"
	ActionCreateOrg = "Создать новое НКО"
	ActionSelectOrg = "Выбрать НКО"
)

// Review actions for a generated text.
const (
	ActionEditText   = "✏️ Отредактировать текст"
	ActionSaveText   = "✅ Сохранить как есть"
	ActionRegenerate = "🔄 Создать заново"
	ActionRetry      = "🔄 Попробовать снова"
	ActionRefine     = "🤖 Отправить ИИ на доработку"
	ActionSaveEdited = "✅ Сохранить исправленный текст"
)

// Image flow actions.
const (
	ActionImageForPost   = "Да, картинка к посту"
	ActionImageStandalone = "Нет, просто картинка"
	ActionSkipExamples   = "Пропустить ввод примеров"
	ActionSkipImageDesc  = "Пропустить описание"
	ActionEditImagePrompt = "✏️ Отредактировать запрос"
	ActionRunImage       = "🤖 Отправить на создание"
	ActionAnotherImage   = "✨Создать еще"
	ActionChangePrompt   = "✏️ Изменить запрос"
	ActionSaveImage      = "Сохранить (если выбирали нко)"
)

const msgGreeting = "❤️ Привет! Я — твой личный контент-создатель, заряженный на добро.\n\n" +
	"Твоя работа меняет мир к лучшему, и об этом должны знать все! Иногда на создание постов просто не остается сил, так что давай я возьму это на себя.\n\n" +
	"Могу: \n📝 написать пост \n👩‍🎨 создать картинку \n💡 накидать идей для контент-плана"

const msgMainMenu = "🥸 Сначала давай проверим, помогала ли я вашей НКО (некоммерческая организация) раньше с созданием контента.\n\n" +
	"Если мы еще не знакомы — выберите \"Создать новую НКО\"\n\n" +
	"А если не хотите загружать историю постов — просто переходите сразу к выбору задачи для создания!"

const (
	msgAskOrgName        = "Супер! Давай создадим новое НКО.\n\nПожалуйста, введите название вашей НКО:"
	msgAskOrgDescription = "Отлично! Теперь введите описание вашей НКО:\n(чем занимается ваша организация, её миссия и цели)"
	msgAskOrgExamples    = "📝 Теперь вы можете добавить примеры постов вашей НКО (это поможет мне лучше понять стиль вашего контента).\n\n" +
		"Пришлите примеры постов одним сообщением (можно несколько постов в одном сообщении) или нажмите кнопку чтобы пропустить:"
	msgExamplesSkipped = "✅ Ввод примеров пропущен."
	msgPickingTask     = "Переходим к выбору задачи для создания контента."
	msgAskTaskType     = "Выберите тип задачи:"
	msgPlanUnavailable = "📅 Создание контент-планов пока в разработке"
	msgAskNetwork      = "Выберите социальную сеть для которой создаем контент:"
	msgAskGoal         = "Теперь выберите цель контента:"
	msgAskEventDate    = "📅 Укажите дату, время и место предстоящего события:\n(например: 15 декабря 2024, 14:00, ул. Пушкина д.3)"
	msgAskPastDate     = "📅 Укажите дату прошедшего события:\n(например: 10 декабря 2024)"
	msgAskAudience     = "Кто ваша целевая аудитория? Напишите или выберите из предложенных"
	msgAudienceSkipped = "✅ Выбор аудитории пропущен"
	msgAskTone         = "Выберите тон подачи:"
	msgAskDetails      = "Что конкретно нужно рассказать?\n\nНапишите в одном сообщении:"
	msgAskCTA          = "Какой призыв к действию вы хотите использовать?"
	msgAskNuances      = "Есть ли важные нюансы? Если нет — напишите «нет»."
	msgGenerating      = "✨ Создаю контент ✨"
	msgRegenerating    = "✨ Создаю новый вариант..."
	msgRefining        = "🤖 Дорабатываю текст..."
	msgReviewActions   = "Что вы хотите сделать с этим текстом?"
	msgAskEditedText   = "✏️ Отправьте исправленный текст:"
	msgEditedActions   = "Что делать дальше?"
	msgOrgRequired     = "❌ Вы не выбрали НКО для привязки текста.\n\n" +
		"Чтобы сохранить результат, нужно выбрать существующее НКО или создать новое.\nВы можете:"
)

const (
	msgAskImageAttach = "🎨 Вы хотите создать картинку для поста?"
	msgAskPostText    = "📝 Введите текст поста, для которого нужна картинка:"
	msgAskImageDesc   = "🎨 Что вы хотите видеть на картинке?\n\nОпишите детали, предметы, сцену, эмоции:"
	msgImageDescSkipped = "✅ Описание картинки пропущено"
	msgAskImageStyle  = "🎨 Выберите стиль картинки:"
	msgAskCustomStyle = "✏️ Введите свой вариант стиля:"
	msgAskColors      = "🎨 Выберите цветовую гамму картинки:"
	msgColorsSkipped  = "🎨 Цветовая гамма не указана"
	msgImagePromptReady = "Созданный запрос для графической нейросети:"
	msgImagePromptNext  = "Что вы хотите сделать дальше?"
	msgAskImagePrompt = "✏️ Отправьте исправленный запрос:"
	msgImageWait      = "Подождите, идет генерация картинки... Это может занять 1-2 минуты"
	msgImageActions   = "Что вы хотите сделать с этой картинкой?"
	msgImageCaption   = "Ваша созданная картинка!"
)
