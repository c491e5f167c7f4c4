package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAppendAndQueryQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	in := []QuizResultData{
		{SessionID: "a", Answers: "ACE", Outcome: "global-elite", City: "Shanghai", Score: 87},
		{SessionID: "b", Answers: "BDF", Outcome: "chill-specialist", City: "Chengdu", Score: 87},
		{SessionID: "c", Answers: "ADE", Outcome: "tech-pioneer", City: "Shenzhen", Score: 87},
	}
	for _, d := range in {
		if err := repo.AppendQuizResult(ctx, d); err != nil {
			t.Fatalf("append %s: %v", d.SessionID, err)
		}
	}

	got, err := repo.QueryQuizResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var gotData []QuizResultData
	for _, r := range got {
		gotData = append(gotData, r.QuizResultData)
	}
	want := []QuizResultData{in[2], in[1], in[0]}
	if diff := cmp.Diff(want, gotData); diff != "" {
		t.Errorf("results mismatch, newest first (-want +got):\n%s", diff)
	}
	if time.Since(got[0].Timestamp) > time.Minute {
		t.Errorf("timestamp %v not recent", got[0].Timestamp)
	}
}

func TestQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendQuizResult(ctx, QuizResultData{SessionID: string(rune('a' + i)), Answers: "ACF", Outcome: "culinary-master", City: "Guangzhou", Score: 87}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		opts QueryOpts
		want []int64
	}{
		{"all", QueryOpts{}, []int64{5, 4, 3, 2, 1}},
		{"limit", QueryOpts{Limit: 2}, []int64{5, 4}},
		{"after", QueryOpts{After: 3}, []int64{5, 4}},
		{"before", QueryOpts{Before: 3}, []int64{2, 1}},
		{"window", QueryOpts{After: 1, Before: 5, Limit: 2}, []int64{4, 3}},
		{"future from", QueryOpts{From: time.Now().Add(time.Hour)}, nil},
		{"past to", QueryOpts{To: time.Now().Add(-time.Hour)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryQuizResults(ctx, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			var seqs []int64
			for _, r := range got {
				seqs = append(seqs, r.Sequence)
			}
			if diff := cmp.Diff(tt.want, seqs, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("sequences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVoteEventsShareSequenceWithResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	steps := []func() error{
		func() error { return repo.AppendVoteEvent(ctx, VoteEventData{Action: "count-me-in", Count: 1249}) },
		func() error {
			return repo.AppendQuizResult(ctx, QuizResultData{SessionID: "x", Answers: "BDF", Outcome: "chill-specialist", City: "Chengdu", Score: 87})
		},
		func() error { return repo.AppendVoteEvent(ctx, VoteEventData{Action: "quiz-closed", Count: 1249, Voted: true}) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	votes, err := repo.QueryVoteEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(votes) != 2 {
		t.Fatalf("got %d vote events, want 2", len(votes))
	}
	if votes[0].Sequence != 3 || votes[0].Action != "quiz-closed" || !votes[0].Voted {
		t.Errorf("newest vote event = %+v", votes[0])
	}
	if votes[1].Sequence != 1 || votes[1].Voted {
		t.Errorf("oldest vote event = %+v", votes[1])
	}

	results, err := repo.QueryQuizResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Sequence != 2 {
		t.Errorf("results = %+v, want one at sequence 2", results)
	}
}

func TestOutcomeCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	counts, err := repo.OutcomeCounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 0 {
		t.Errorf("counts on empty store = %v", counts)
	}

	for _, o := range []string{"global-elite", "global-elite", "culinary-master"} {
		if err := repo.AppendQuizResult(ctx, QuizResultData{SessionID: o, Answers: "ACE", Outcome: o, City: "X", Score: 87}); err != nil {
			t.Fatal(err)
		}
	}

	counts, err = repo.OutcomeCounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"global-elite": 2, "culinary-master": 1}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}
