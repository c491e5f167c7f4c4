package matchmaker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(tags ...Tag) AnswerSet {
	a := AnswerSet{}
	for i, t := range tags {
		a[i+1] = t
	}
	return a
}

func TestResolveAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerSet
		want    OutcomeID
	}{
		{"ACE global elite", answers(TagA, TagC, TagE), OutcomeGlobalElite},
		{"BDF chill specialist", answers(TagB, TagD, TagF), OutcomeChillSpecialist},
		{"ADE tech pioneer", answers(TagA, TagD, TagE), OutcomeTechPioneer},
		{"ACF default", answers(TagA, TagC, TagF), OutcomeCulinaryMaster},
		{"BCE default", answers(TagB, TagC, TagE), OutcomeCulinaryMaster},
		{"BCF default", answers(TagB, TagC, TagF), OutcomeCulinaryMaster},
		{"BDE default", answers(TagB, TagD, TagE), OutcomeCulinaryMaster},
		{"ADF default", answers(TagA, TagD, TagF), OutcomeCulinaryMaster},
		{"empty default", AnswerSet{}, OutcomeCulinaryMaster},
		{"nil default", nil, OutcomeCulinaryMaster},
		{"partial A default", answers(TagA), OutcomeCulinaryMaster},
		{"partial AC default", answers(TagA, TagC), OutcomeCulinaryMaster},
		// Order of collection does not matter.
		{"ECA global elite", answers(TagE, TagC, TagA), OutcomeGlobalElite},
		{"FDB chill specialist", answers(TagF, TagD, TagB), OutcomeChillSpecialist},
		{"EA tech pioneer", answers(TagE, TagA), OutcomeTechPioneer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAnswers(tt.answers)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestResolveAnswers_FirstMatchWins(t *testing.T) {
	// Satisfies rules 1, 2 and 3 at once; rule 1 is declared first.
	all := answers(TagA, TagB, TagC, TagD, TagE, TagF)
	require.True(t, rules[0].Matches(all))
	require.True(t, rules[1].Matches(all))
	require.True(t, rules[2].Matches(all))

	assert.Equal(t, OutcomeGlobalElite, ResolveAnswers(all).ID)

	// Rule 2 beats rule 3 when rule 1 does not hold.
	noC := answers(TagA, TagB, TagD, TagE, TagF)
	assert.Equal(t, OutcomeChillSpecialist, ResolveAnswers(noC).ID)
}

func TestResolveAnswers_Pure(t *testing.T) {
	a := answers(TagA, TagC, TagE)
	first := ResolveAnswers(a)
	second := ResolveAnswers(a.Clone())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resolve not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, answers(TagA, TagC, TagE), a, "resolve must not mutate its input")
}

func TestResolveAnswers_TotalOverAllCompleteSets(t *testing.T) {
	for _, a := range []Tag{TagA, TagB} {
		for _, c := range []Tag{TagC, TagD} {
			for _, e := range []Tag{TagE, TagF} {
				got := ResolveAnswers(answers(a, c, e))
				_, ok := GetOutcome(got.ID)
				assert.True(t, ok, "combo %s%s%s resolved to unknown outcome %q", a, c, e, got.ID)
			}
		}
	}
}

func TestOutcomeRecords(t *testing.T) {
	want := map[OutcomeID]string{
		OutcomeGlobalElite:     "Shanghai",
		OutcomeChillSpecialist: "Chengdu",
		OutcomeTechPioneer:     "Shenzhen",
		OutcomeCulinaryMaster:  "Guangzhou",
	}
	got := make(map[OutcomeID]string)
	for _, o := range AllOutcomes() {
		got[o.ID] = o.City
		assert.NotEmpty(t, o.Tagline)
		assert.NotEmpty(t, o.Description)
		assert.NotEmpty(t, o.Roast)
		assert.Contains(t, o.ImageURL, "https://images.unsplash.com/photo-")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcome cities mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, OutcomeCulinaryMaster, AllOutcomes()[len(AllOutcomes())-1].ID)
}

func TestScoreAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerSet
		want    int
	}{
		{"empty", AnswerSet{}, 0},
		{"nil", nil, 0},
		{"one answer", answers(TagA), 85},
		{"two answers", answers(TagA, TagC), 86},
		{"ACE", answers(TagA, TagC, TagE), 87},
		{"BDF", answers(TagB, TagD, TagF), 87},
		{"ADF", answers(TagA, TagD, TagF), 87},
		// Longer tags wrap around the 15-value range.
		{"length 15 wraps", AnswerSet{1: Tag("ABCDEFGHIJKLMNO")}, 84},
		{"length 14 tops out", AnswerSet{1: Tag("ABCDEFGHIJKLMN")}, 98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAnswers(tt.answers))
		})
	}
}
