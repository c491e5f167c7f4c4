package matchmaker

const (
	scoreBase  = 84
	scoreRange = 15
)

// ScoreAnswers returns the cosmetic readiness score in [84, 98], or 0 when
// nothing has been answered. The score is the total length of the collected
// tags mod 15, plus 84. Single-letter tags over three questions always give 87.
func ScoreAnswers(answers AnswerSet) int {
	if len(answers) == 0 {
		return 0
	}
	n := 0
	for _, t := range answers {
		n += len(t)
	}
	return scoreBase + n%scoreRange
}
