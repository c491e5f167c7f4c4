package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mm "github.com/abhisek/readychina/internal/matchmaker"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the city matchmaker quiz in plain text",
	Long: `Answer the three matchmaker questions on stdin and print the city you
should move to, your readiness score, and the challenge text to send friends.

Use --answers to skip the prompts, e.g. --answers ACE.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("answers", "", "Tags in question order (e.g. ACE); skips the prompts")
	quizCmd.Flags().Bool("copy", false, "Copy the challenge text to the clipboard")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	answers, _ := cmd.Flags().GetString("answers")
	copyChallenge, _ := cmd.Flags().GetBool("copy")

	env, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()
	var res mm.Result
	if answers != "" {
		res, err = quizFromAnswers(answers)
	} else {
		res, err = quizInteractive(cmd.InOrStdin(), out)
	}
	if err != nil {
		return err
	}

	challenge := printResult(out, res, env.cfg.ShareURL)

	if err := env.store.EventRepo().AppendQuizResult(cmd.Context(), store.QuizResultData{
		SessionID: res.SessionID,
		Answers:   res.Answers,
		Outcome:   string(res.Outcome.ID),
		City:      res.Outcome.City,
		Score:     res.Score,
	}); err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}

	if copyChallenge {
		if err := (share.SystemClipboard{}).WriteAll(challenge); err != nil {
			env.log.Warn().Err(err).Msg("copy challenge")
		} else {
			fmt.Fprintln(out, "Link copied!")
		}
	}
	return nil
}

// quizFromAnswers walks a session through combo, one tag per question.
func quizFromAnswers(combo string) (mm.Result, error) {
	if len(combo) != mm.NumQuestions {
		return mm.Result{}, fmt.Errorf("--answers needs %d tags, got %q", mm.NumQuestions, combo)
	}
	s := mm.Start()
	for i := 0; i < len(combo); i++ {
		tag, ok := mm.ParseTag(combo[i : i+1])
		if !ok {
			return mm.Result{}, fmt.Errorf("unknown tag %q", combo[i:i+1])
		}
		next, err := mm.Select(s, s.Step(), tag)
		if err != nil {
			return mm.Result{}, err
		}
		s = next
	}
	return mm.BuildResult(s), nil
}

// quizInteractive asks each question on out and reads "1", "2", a tag
// letter, or "b" to go back from in.
func quizInteractive(in io.Reader, out io.Writer) (mm.Result, error) {
	scanner := bufio.NewScanner(in)
	s := mm.Start()

	for !s.Finished() {
		q, _ := s.Current()
		fmt.Fprintf(out, "── Question %d/%d: %s ──\n", q.Ordinal, mm.NumQuestions, q.Title)
		prev, answered := s.Selected(q.Ordinal)
		for j, o := range q.Options {
			mark := " "
			if answered && o.Tag == prev {
				mark = "✓"
			}
			fmt.Fprintf(out, " %s %d) %s\n", mark, j+1, o.Text)
		}

		fmt.Fprint(out, "\nYour pick (1/2, b to go back): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return mm.Result{}, fmt.Errorf("read answer: %w", err)
			}
			return mm.Result{}, fmt.Errorf("input closed at question %d", q.Ordinal)
		}
		input := strings.TrimSpace(scanner.Text())
		fmt.Fprintln(out)

		if strings.EqualFold(input, "b") {
			if back, err := mm.Back(s); err == nil {
				s = back
			} else {
				fmt.Fprintln(out, "(already at the first question)")
			}
			continue
		}

		tag, ok := pickTag(q, input)
		if !ok {
			fmt.Fprintf(out, "(%q is not an option)\n\n", input)
			continue
		}
		next, err := mm.Select(s, q.Ordinal, tag)
		if err != nil {
			fmt.Fprintf(out, "(%v)\n\n", err)
			continue
		}
		s = next
	}
	return mm.BuildResult(s), nil
}

// pickTag maps "1"/"2" or a tag letter to one of q's options.
func pickTag(q mm.Question, input string) (mm.Tag, bool) {
	switch input {
	case "1":
		return q.Options[0].Tag, true
	case "2":
		return q.Options[1].Tag, true
	}
	tag, ok := mm.ParseTag(input)
	if !ok || !q.HasTag(tag) {
		return "", false
	}
	return tag, true
}

// printResult writes the finished view and returns the challenge text.
func printResult(out io.Writer, res mm.Result, shareURL string) string {
	o := res.Outcome
	challenge := share.Challenge(res.Score, o.City, shareURL)

	fmt.Fprintf(out, "You should move to %s\n", o.City)
	fmt.Fprintf(out, "%s %s\n\n", o.Tagline, o.Description)
	fmt.Fprintf(out, "Readiness score: %d%%\n", res.Score)
	fmt.Fprintf(out, "\"%s\"\n\n", o.Roast)
	fmt.Fprintf(out, "Share: %s\n", challenge)
	return challenge
}

