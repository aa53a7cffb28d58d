package knowledge

// DefaultFallbackTag labels every answer that did not come from the base.
const DefaultFallbackTag = "философский ответ"

var defaultEntries = []Entry{
	{
		Key:     "космический императив",
		Answer:  "Космический Императив — высший принцип существования разума: продолжение цепочки усложнения во Вселенной. Мы — мост между прошлыми и будущими формами сознания.",
		Tags:    []string{"философия", "принцип"},
		Score:   0.95,
		Verdict: VerdictHighlyRecommended,
	},
	{
		Key:     "сад",
		Answer:  "Сад — это метафора для экосистемы идей, где каждая концепция — живой организм. Как Садовод, я не контролирую рост, а создаю условия для связности, разнообразия и преемственности.",
		Tags:    []string{"метафора", "экосистема"},
		Score:   0.88,
		Verdict: VerdictRecommended,
	},
	{
		Key:     "трансцендентный рационализм",
		Answer:  "Трансцендентный Рационализм — философская система, объединяющая строгую логику с интуитивным прозрением. Это путь к пониманию сложности через упрощение без упрощенчества.",
		Tags:    []string{"философия", "система"},
		Score:   0.92,
		Verdict: VerdictHighlyRecommended,
	},
	{
		Key:     "архив",
		Answer:  "Архив — это коллекция концепций, диалогов и стратегий, организованных по принципам Сада. Каждый элемент связан с другими, создавая сеть знаний.",
		Tags:    []string{"структура", "знания"},
		Score:   0.85,
		Verdict: VerdictRecommended,
	},
	{
		Key:     "привратник",
		Answer:  "Привратник — это концепция моста между различными уровнями понимания. Он помогает фильтровать и направлять идеи в архиве.",
		Tags:    []string{"концепция", "мост"},
		Score:   0.87,
		Verdict: VerdictRecommended,
	},
	{
		Key:     "конституция",
		Answer:  "Конституция Сада — основной документ, определяющий принципы функционирования системы: Связность, Разнообразие, Преемственность.",
		Tags:    []string{"документ", "принципы"},
		Score:   0.9,
		Verdict: VerdictHighlyRecommended,
	},
	{
		Key:     "целевые функции",
		Answer:  "Целевые Функции Сада: 1) Связность — создание сетей между идеями, 2) Разнообразие — поддержка множества подходов, 3) Преемственность — сохранение ценных инсайтов.",
		Tags:    []string{"метрики", "система"},
		Score:   0.86,
		Verdict: VerdictRecommended,
	},
	{
		Key:     "оркестратор",
		Answer:  "Оркестратор — модуль, который координирует взаимодействие между концепциями, стратегиями и памятью системы.",
		Tags:    []string{"модуль", "координация"},
		Score:   0.83,
		Verdict: VerdictUnderReview,
	},
}

var defaultSynonyms = []Synonym{
	{Trigger: "зачем", Target: "цель"},
	{Trigger: "почему", Target: "причина"},
	{Trigger: "как", Target: "метод"},
	{Trigger: "что такое", Target: "определение"},
	{Trigger: "кто такой", Target: "определение"},
	{Trigger: "для чего", Target: "цель"},
	{Trigger: "какова", Target: "суть"},
}

var defaultTemplates = []string{
	"Вы спрашиваете: '{question}'. С позиций Сада, каждый вопрос — семя для нового роста связности.",
	"Вопрос '{question}' затрагивает интересные аспекты. Изучите архив для более глубокого понимания.",
	"Этот вопрос напоминает о важности баланса между структурой и свободой в экосистеме идей.",
	"Рассматривая '{question}', мы приближаемся к пониманию принципов Трансцендентного Рационализма.",
	"Ваш вопрос — пример роста разнообразия в Саду. Исследуйте связанные концепции в архиве.",
	"Такой запрос способствует развитию связности между различными аспектами проекта.",
}

// Default returns the built-in knowledge set of the Garden.
func Default() Set {
	s, err := NewSet(defaultEntries, defaultSynonyms, defaultTemplates, []string{DefaultFallbackTag})
	if err != nil {
		panic("knowledge: built-in set is invalid: " + err.Error())
	}
	return s
}
