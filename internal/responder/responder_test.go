package responder

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/gardener/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom returns queued values, then zeros.
type fixedRandom struct {
	values []int
}

func (f *fixedRandom) IntN(n int) int {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[0]
	f.values = f.values[1:]
	return v % n
}

type recordingObserver struct {
	mu     sync.Mutex
	events []ResolutionEvent
}

func (o *recordingObserver) ObserveResolution(_ context.Context, e ResolutionEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func newTestResponder(opts ...Option) *Responder {
	return New(knowledge.Default(), append([]Option{WithRandom(NewSeededRandom(42))}, opts...)...)
}

func TestResolve_EveryKeyReturnsItsEntry(t *testing.T) {
	r := newTestResponder()
	ctx := context.Background()

	for _, e := range knowledge.Default().Entries() {
		t.Run(e.Key, func(t *testing.T) {
			res := r.Resolve(ctx, e.Key)
			assert.Equal(t, SourceKnowledge, res.Source)
			assert.Equal(t, e.Key, res.Key)
			assert.Equal(t, e.Answer, res.Answer)
			assert.Equal(t, e.Verdict, res.Meta.Verdict)
			assert.Equal(t, e.Score, res.Meta.Score)
			assert.Equal(t, strings.Join(e.Tags, ", "), res.Meta.TagsText())
		})
	}
}

func TestResolve_GardenScenario(t *testing.T) {
	res := newTestResponder().Resolve(context.Background(), "что такое сад?")

	entry, ok := knowledge.Default().Lookup("сад")
	require.True(t, ok)
	assert.Equal(t, entry.Answer, res.Answer)

	meta := res.Meta.String()
	assert.Contains(t, meta, "Вердикт: РЕКОМЕНДОВАНО")
	assert.Contains(t, meta, "Оценка: 0.88")
	assert.Contains(t, meta, "Теги: метафора, экосистема")
	assert.Equal(t, "Вердикт: РЕКОМЕНДОВАНО • Оценка: 0.88 • Теги: метафора, экосистема", meta)
}

func TestResolve_CaseInsensitiveSubstring(t *testing.T) {
	res := newTestResponder().Resolve(context.Background(), "Расскажи про КОНСТИТУЦИЮ и Конституция Сада")
	assert.Equal(t, SourceKnowledge, res.Source)
	assert.Equal(t, "сад", res.Key, "сад precedes конституция in base order")
}

func TestResolve_FirstKeyInBaseOrderWins(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantKey  string
	}{
		{"later key first in text", "оркестратор и космический императив", "космический императив"},
		{"архив before привратник", "привратник охраняет архив", "архив"},
		{"substring inside word", "садовод", "сад"},
	}
	r := newTestResponder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(context.Background(), tt.question)
			assert.Equal(t, tt.wantKey, res.Key)
		})
	}
}

func TestResolve_SynonymWithKeyReturnsEntry(t *testing.T) {
	res := newTestResponder().Resolve(context.Background(), "почему сад?")
	assert.NotEqual(t, SourceFallback, res.Source)
	assert.Equal(t, "сад", res.Key)
}

func TestResolve_SynonymPassReportsTarget(t *testing.T) {
	obs := &recordingObserver{}
	r := newTestResponder(WithObserver(obs))

	res := r.Resolve(context.Background(), "зачем всё это?")
	assert.Equal(t, SourceFallback, res.Source)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "зачем", ev.Trigger)
	assert.Equal(t, "цель", ev.Target)
	assert.Equal(t, SourceFallback, ev.Source)
}

func TestResolve_SynonymSourceNeverReported(t *testing.T) {
	set := knowledge.Default()
	r := newTestResponder()

	for _, syn := range set.Synonyms() {
		questions := []string{syn.Trigger + " это?"}
		for _, e := range set.Entries() {
			questions = append(questions, syn.Trigger+" "+e.Key)
		}
		for _, q := range questions {
			assert.NotEqual(t, SourceSynonym, r.Resolve(context.Background(), q).Source, q)
		}
	}
}

func TestResolve_FallbackScenario(t *testing.T) {
	templates := knowledge.Default().Templates()
	r := newTestResponder()

	for i := 0; i < 200; i++ {
		res := r.Resolve(context.Background(), "xyz123")

		assert.Equal(t, SourceFallback, res.Source)
		assert.Empty(t, res.Key)
		assert.Contains(t, expandedTemplates(templates, "xyz123"), res.Answer)
		assert.GreaterOrEqual(t, res.Meta.Score, 0.70)
		assert.Less(t, res.Meta.Score, 0.95)
		assert.Equal(t, knowledge.VerdictForScore(res.Meta.Score), res.Meta.Verdict)
		assert.Equal(t, []string{knowledge.DefaultFallbackTag}, res.Meta.Tags)
	}
}

func TestResolve_FallbackKeepsOriginalCase(t *testing.T) {
	r := New(knowledge.Default(), WithRandom(&fixedRandom{values: []int{0, 0}}))

	res := r.Resolve(context.Background(), "XYZ Вопрос")
	assert.Equal(t, "Вы спрашиваете: 'XYZ Вопрос'. С позиций Сада, каждый вопрос — семя для нового роста связности.", res.Answer)
	assert.Equal(t, 0.70, res.Meta.Score)
	assert.Equal(t, knowledge.VerdictUnderReview, res.Meta.Verdict)
	assert.Equal(t, "0.70", res.Meta.ScoreText())
}

func TestResolve_FallbackTemplateWithoutPlaceholder(t *testing.T) {
	r := New(knowledge.Default(), WithRandom(&fixedRandom{values: []int{2, 24}}))

	res := r.Resolve(context.Background(), "xyz123")
	assert.Equal(t, knowledge.Default().Template(2), res.Answer)
	assert.Equal(t, 0.94, res.Meta.Score)
	assert.Equal(t, knowledge.VerdictHighlyRecommended, res.Meta.Verdict)
}

func TestResolve_FallbackVerdictThresholds(t *testing.T) {
	tests := []struct {
		offset int
		want   knowledge.Verdict
	}{
		{10, knowledge.VerdictUnderReview},       // 0.80
		{11, knowledge.VerdictRecommended},       // 0.81
		{20, knowledge.VerdictRecommended},       // 0.90
		{21, knowledge.VerdictHighlyRecommended}, // 0.91
	}
	for _, tt := range tests {
		r := New(knowledge.Default(), WithRandom(&fixedRandom{values: []int{0, tt.offset}}))
		res := r.Resolve(context.Background(), "xyz")
		assert.Equal(t, tt.want, res.Meta.Verdict, "score %s", res.Meta.ScoreText())
	}
}

func TestResolve_SeededFallbackIsReproducible(t *testing.T) {
	a := New(knowledge.Default(), WithRandom(NewSeededRandom(7)))
	b := New(knowledge.Default(), WithRandom(NewSeededRandom(7)))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Resolve(context.Background(), "xyz"), b.Resolve(context.Background(), "xyz"))
	}
}

func TestResolve_KnowledgePathIsIdempotent(t *testing.T) {
	r := newTestResponder()
	first := r.Resolve(context.Background(), "что такое архив")
	second := r.Resolve(context.Background(), "что такое архив")
	assert.Equal(t, first, second)
}

func TestResolve_TotalOverOddInput(t *testing.T) {
	r := newTestResponder()
	inputs := []string{"", "\x00\x01\x7f", strings.Repeat("я", 100000), "日本語のテキスト", "\xff\xfe"}
	for _, in := range inputs {
		res := r.Resolve(context.Background(), in)
		assert.Equal(t, SourceFallback, res.Source)
		assert.NotEmpty(t, res.Answer)
	}
}

func TestResolve_AlternateKnowledgeSet(t *testing.T) {
	set, err := knowledge.NewSet(
		[]knowledge.Entry{{Key: "ping", Answer: "pong", Tags: []string{"net"}, Score: 1, Verdict: knowledge.VerdictHighlyRecommended}},
		nil,
		[]string{"no idea about {question}, really: {question}"},
		[]string{"custom"},
	)
	require.NoError(t, err)
	r := New(set, WithRandom(NewSeededRandom(1)))

	assert.Equal(t, "pong", r.Resolve(context.Background(), "PING?").Answer)

	res := r.Resolve(context.Background(), "other")
	assert.Equal(t, "no idea about other, really: {question}", res.Answer, "only the first placeholder is replaced")
	assert.Equal(t, []string{"custom"}, res.Meta.Tags)
}

func TestResolve_ResultTagsAreCopies(t *testing.T) {
	r := newTestResponder()
	res := r.Resolve(context.Background(), "сад")
	res.Meta.Tags[0] = "mutated"

	again := r.Resolve(context.Background(), "сад")
	assert.Equal(t, "метафора", again.Meta.Tags[0])
}

func TestResolve_ConcurrentCalls(t *testing.T) {
	r := newTestResponder()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Resolve(context.Background(), "xyz")
				r.Resolve(context.Background(), "сад")
			}
		}()
	}
	wg.Wait()
}

func TestLogObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	r := newTestResponder(WithObserver(NewLogObserver(&buf)))

	r.Resolve(context.Background(), "почему архив")

	out := buf.String()
	assert.Contains(t, out, "msg=resolve")
	assert.Contains(t, out, "source=knowledge")
	assert.Contains(t, out, "key=архив")
}

func TestMultiObserver_SkipsNil(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	r := newTestResponder(WithObserver(MultiObserver{a, nil, b}))

	r.Resolve(context.Background(), "сад")
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

func TestValidateQuestion(t *testing.T) {
	q, err := ValidateQuestion("  что такое сад?\n")
	require.NoError(t, err)
	assert.Equal(t, "что такое сад?", q)

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := ValidateQuestion(blank)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	}
}

func expandedTemplates(templates []string, question string) []string {
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = strings.Replace(tmpl, knowledge.QuestionPlaceholder, question, 1)
	}
	return out
}
