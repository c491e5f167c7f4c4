package matchmaker

import (
	"errors"
	"testing"
)

func TestQuestionSet(t *testing.T) {
	qs := Questions()
	if len(qs) != NumQuestions {
		t.Fatalf("len(Questions()) = %d, want %d", len(qs), NumQuestions)
	}

	seen := make(map[Tag]bool)
	for i, q := range qs {
		if q.Ordinal != i+1 {
			t.Errorf("question %d has ordinal %d", i+1, q.Ordinal)
		}
		for _, o := range q.Options {
			if !o.Tag.Valid() {
				t.Errorf("question %d: invalid tag %q", q.Ordinal, o.Tag)
			}
			if seen[o.Tag] {
				t.Errorf("tag %q used twice", o.Tag)
			}
			seen[o.Tag] = true
		}
	}
	if len(seen) != len(AllTags()) {
		t.Errorf("questions use %d tags, want %d", len(seen), len(AllTags()))
	}
}

func TestStart(t *testing.T) {
	s := Start()
	if s.Step() != 1 {
		t.Errorf("Step() = %d, want 1", s.Step())
	}
	if s.Finished() {
		t.Error("fresh session should not be finished")
	}
	if len(s.Answers()) != 0 {
		t.Errorf("fresh session has %d answers", len(s.Answers()))
	}
	if s.ID == "" {
		t.Error("expected session ID")
	}
	if Start().ID == s.ID {
		t.Error("each Start should mint a new ID")
	}
	if Score(s) != 0 {
		t.Errorf("Score(fresh) = %d, want 0", Score(s))
	}
}

func TestZeroSessionIsAtFirstStep(t *testing.T) {
	var s Session
	if s.Step() != 1 {
		t.Errorf("Step() = %d, want 1", s.Step())
	}
	next, err := Select(s, 1, TagB)
	if err != nil {
		t.Fatalf("Select on zero session: %v", err)
	}
	if next.Step() != 2 {
		t.Errorf("Step() = %d, want 2", next.Step())
	}
}

func TestForwardWalk(t *testing.T) {
	s := Start()
	steps := []struct {
		tag      Tag
		wantStep int
	}{
		{TagA, 2},
		{TagC, 3},
		{TagE, 4},
	}

	for i, st := range steps {
		var err error
		s, err = Select(s, i+1, st.tag)
		if err != nil {
			t.Fatalf("Select(%d, %s): %v", i+1, st.tag, err)
		}
		if s.Step() != st.wantStep {
			t.Errorf("after Select(%d) Step() = %d, want %d", i+1, s.Step(), st.wantStep)
		}
	}

	if !s.Finished() {
		t.Fatal("expected finished after three answers")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report no question once finished")
	}
	if got := Resolve(s).ID; got != OutcomeGlobalElite {
		t.Errorf("Resolve = %q, want %q", got, OutcomeGlobalElite)
	}
	if got := Score(s); got != 87 {
		t.Errorf("Score = %d, want 87", got)
	}
	if got := s.Answers().Combo(); got != "ACE" {
		t.Errorf("Combo = %q, want ACE", got)
	}
}

func TestSelect_OutOfOrder(t *testing.T) {
	s := Start()
	got, err := Select(s, 2, TagC)
	if !errors.Is(err, ErrOutOfOrderAnswer) {
		t.Fatalf("err = %v, want ErrOutOfOrderAnswer", err)
	}
	if got.Step() != 1 || len(got.Answers()) != 0 {
		t.Errorf("session changed: step %d, %d answers", got.Step(), len(got.Answers()))
	}
	if s.Step() != 1 || len(s.Answers()) != 0 {
		t.Error("original session mutated")
	}
}

func TestSelect_AfterFinished(t *testing.T) {
	s := finishedSession(t, TagB, TagD, TagF)
	_, err := Select(s, NumQuestions+1, TagA)
	if !errors.Is(err, ErrOutOfOrderAnswer) {
		t.Fatalf("err = %v, want ErrOutOfOrderAnswer", err)
	}
}

func TestSelect_TagNotOffered(t *testing.T) {
	s := Start()
	got, err := Select(s, 1, TagE)
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("err = %v, want ErrInvalidTag", err)
	}
	if got.Step() != 1 {
		t.Errorf("Step() = %d, want 1", got.Step())
	}
}

func TestBack_KeepsAnswers(t *testing.T) {
	s := Start()
	s, _ = Select(s, 1, TagA)

	back, err := Back(s)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if back.Step() != 1 {
		t.Errorf("Step() = %d, want 1", back.Step())
	}
	tag, ok := back.Selected(1)
	if !ok || tag != TagA {
		t.Errorf("Selected(1) = %q, %v; want A, true", tag, ok)
	}
	if back.ID != s.ID {
		t.Error("Back should keep the session ID")
	}
}

func TestBack_AtFirstStep(t *testing.T) {
	s := Start()
	got, err := Back(s)
	if !errors.Is(err, ErrAtFirstStep) {
		t.Fatalf("err = %v, want ErrAtFirstStep", err)
	}
	if got.Step() != 1 {
		t.Errorf("Step() = %d, want 1", got.Step())
	}
}

func TestBack_FromFinished(t *testing.T) {
	s := finishedSession(t, TagA, TagC, TagE)
	back, err := Back(s)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if back.Step() != NumQuestions {
		t.Errorf("Step() = %d, want %d", back.Step(), NumQuestions)
	}
	if back.Finished() {
		t.Error("should no longer be finished")
	}
}

func TestReanswerOverwritesOnlyThatStep(t *testing.T) {
	s := finishedSession(t, TagA, TagC, TagE)

	var err error
	for i := 0; i < 2; i++ {
		s, err = Back(s)
		if err != nil {
			t.Fatalf("Back: %v", err)
		}
	}
	if s.Step() != 2 {
		t.Fatalf("Step() = %d, want 2", s.Step())
	}

	s, err = Select(s, 2, TagD)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	// Step 3's earlier answer is still recorded.
	if tag, ok := s.Selected(3); !ok || tag != TagE {
		t.Errorf("Selected(3) = %q, %v; want E, true", tag, ok)
	}
	if got := s.Answers().Combo(); got != "ADE" {
		t.Errorf("Combo = %q, want ADE", got)
	}
	if got := Resolve(s).ID; got != OutcomeTechPioneer {
		t.Errorf("Resolve = %q, want %q", got, OutcomeTechPioneer)
	}
}

func TestTransitionsDoNotAlias(t *testing.T) {
	s1, _ := Select(Start(), 1, TagA)
	s2, _ := Select(s1, 2, TagC)

	if _, ok := s1.Selected(2); ok {
		t.Error("advancing s1 leaked an answer back into s1")
	}

	answers := s2.Answers()
	answers[3] = TagF
	if _, ok := s2.Selected(3); ok {
		t.Error("Answers() should return a copy")
	}
}

func TestReset(t *testing.T) {
	s := finishedSession(t, TagB, TagD, TagF)
	r := Reset(s)
	if r.Step() != 1 || len(r.Answers()) != 0 {
		t.Errorf("Reset: step %d, %d answers", r.Step(), len(r.Answers()))
	}
	if r.ID == s.ID {
		t.Error("Reset should mint a new session ID")
	}
}

func TestResolve_PartialSession(t *testing.T) {
	s, _ := Select(Start(), 1, TagA)
	if got := Resolve(s).ID; got != DefaultOutcome {
		t.Errorf("Resolve(partial) = %q, want %q", got, DefaultOutcome)
	}
	if got := Score(s); got != 85 {
		t.Errorf("Score(partial) = %d, want 85", got)
	}
}

func TestProgress(t *testing.T) {
	s := Start()
	if got := s.Progress(); got != 1.0/3.0 {
		t.Errorf("Progress() = %v, want 1/3", got)
	}
	s = finishedSession(t, TagA, TagC, TagE)
	if got := s.Progress(); got != 1 {
		t.Errorf("Progress() = %v, want 1", got)
	}
}

func TestBuildResult(t *testing.T) {
	s := finishedSession(t, TagB, TagD, TagF)
	r := BuildResult(s)
	if r.SessionID != s.ID {
		t.Errorf("SessionID = %q, want %q", r.SessionID, s.ID)
	}
	if r.Answers != "BDF" {
		t.Errorf("Answers = %q, want BDF", r.Answers)
	}
	if r.Outcome.City != "Chengdu" {
		t.Errorf("City = %q, want Chengdu", r.Outcome.City)
	}
	if r.Score != 87 {
		t.Errorf("Score = %d, want 87", r.Score)
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"A", TagA, true},
		{"f", TagF, true},
		{"G", "", false},
		{"", "", false},
		{"AB", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTag(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTag(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func finishedSession(t *testing.T, tags ...Tag) Session {
	t.Helper()
	s := Start()
	for i, tag := range tags {
		var err error
		s, err = Select(s, i+1, tag)
		if err != nil {
			t.Fatalf("Select(%d, %s): %v", i+1, tag, err)
		}
	}
	return s
}
