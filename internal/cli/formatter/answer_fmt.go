package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardener/internal/knowledge"
	"github.com/alexanderramin/gardener/internal/responder"
)

const answerWrapWidth = 80

// FormatMetaLine renders "Вердикт: … • Оценка: … • Теги: …" with the
// verdict colored.
func FormatMetaLine(m responder.Meta) string {
	sep := Dim(" • ")
	return Dim("Вердикт: ") + VerdictStyle(m.Verdict).Render(m.Verdict.Label()) +
		sep + Dim("Оценка: ") + StyleFg.Render(m.ScoreText()) +
		sep + Dim("Теги: ") + StyleBlue.Render(m.TagsText())
}

// FormatAnswer renders a result as a boxed reply with its meta line.
func FormatAnswer(res responder.Result) string {
	var b strings.Builder
	b.WriteString(wrapText(res.Answer, answerWrapWidth))
	b.WriteString("\n\n")
	b.WriteString(FormatMetaLine(res.Meta))
	return RenderBox("Садовод", b.String())
}

// FormatPlainAnswer renders the answer and the uncolored meta line, for
// scripts and pipes.
func FormatPlainAnswer(res responder.Result) string {
	return res.Answer + "\n" + res.Meta.String() + "\n"
}

// FormatUserMessage renders the user's line in the transcript.
func FormatUserMessage(question string) string {
	return Dim("Вы: ") + question
}

// FormatThinking is shown while a reply is pending.
func FormatThinking(frame string) string {
	return "  " + StylePurple.Render(frame) + " " + Dim("Размышляю...")
}

// FormatChatWelcome renders the chat banner with the knowledge count.
func FormatChatWelcome(concepts int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  садовод") + Dim(" · диалог с Садом"))
	b.WriteString("\n")
	b.WriteString(Dim("  ─────────────────────────────") + "\n\n")
	b.WriteString(Dim("  "+FormatKnowledgeInfo(concepts)) + "\n")
	b.WriteString(Dim("  Задайте вопрос. /suggest — примеры, /concepts — концепции, /quit — выход.") + "\n\n")
	return b.String()
}

// FormatKnowledgeInfo renders "База знаний: N концепций".
func FormatKnowledgeInfo(concepts int) string {
	return fmt.Sprintf("База знаний: %d %s", concepts, PluralRu(concepts, "концепция", "концепции", "концепций"))
}

// PluralRu picks the Russian plural form for n.
func PluralRu(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return one
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return few
	default:
		return many
	}
}

// FormatSuggestions lists sample questions.
func FormatSuggestions(questions []string) string {
	var b strings.Builder
	for _, q := range questions {
		b.WriteString("  " + StyleGreen.Render("› ") + q + "\n")
	}
	return RenderBox("Попробуйте спросить", strings.TrimRight(b.String(), "\n"))
}

// FormatConcepts renders the knowledge base as a table in match order.
func FormatConcepts(entries []knowledge.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			Bold(e.Key),
			VerdictStyle(e.Verdict).Render(e.Verdict.Label()),
			fmt.Sprintf("%.2f", e.Score),
			Dim(strings.Join(e.Tags, ", ")),
		}
	}
	var b strings.Builder
	b.WriteString(Header("Концепции Сада"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"#", "КОНЦЕПЦИЯ", "ВЕРДИКТ", "ОЦЕНКА", "ТЕГИ"}, rows))
	b.WriteString("\n")
	b.WriteString(Dim(FormatKnowledgeInfo(len(entries))))
	b.WriteString("\n")
	return b.String()
}

// FormatConceptList is the compact list shown by /concepts in chat.
func FormatConceptList(entries []knowledge.Entry) string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return "  " + Dim(FormatKnowledgeInfo(len(entries))+": ") + strings.Join(keys, ", ")
}
