package matchmaker

// Option is one of the two answers offered by a question.
type Option struct {
	Tag  Tag
	Text string
}

// Question is a single quiz step.
type Question struct {
	Ordinal int // 1-based position in the quiz
	Title   string
	Options [2]Option
}

// HasTag reports whether tag is one of the question's options.
func (q Question) HasTag(tag Tag) bool {
	return q.Options[0].Tag == tag || q.Options[1].Tag == tag
}

// OptionIndex returns the index of tag within Options, or -1.
func (q Question) OptionIndex(tag Tag) int {
	for i, o := range q.Options {
		if o.Tag == tag {
			return i
		}
	}
	return -1
}

var questions = []Question{
	{
		Ordinal: 1,
		Title:   "The paycheck paradox",
		Options: [2]Option{
			{Tag: TagA, Text: `I want a high salary and a "global" career, even if 50% of it goes to rent.`},
			{Tag: TagB, Text: `I want a massive apartment and $2 street food; I'm over the "rat race."`},
		},
	},
	{
		Ordinal: 2,
		Title:   "The social battery",
		Options: [2]Option{
			{Tag: TagC, Text: `I need English-speaking friends, international bars, and zero "alien" stares.`},
			{Tag: TagD, Text: `I want to learn Mandarin by force and be the only foreigner in the noodle shop.`},
		},
	},
	{
		Ordinal: 3,
		Title:   "The Saturday vibe",
		Options: [2]Option{
			{Tag: TagE, Text: `I want to be in a futuristic megacity with neon lights and subways every 60 seconds.`},
			{Tag: TagF, Text: `I want a city with mountains or lakes nearby and a slower "tea-drinking" pace.`},
		},
	},
}

// NumQuestions is the length of the quiz. Step NumQuestions+1 means finished.
const NumQuestions = 3

// Questions returns a copy of the question sequence.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionAt returns the question for a 1-based step.
func QuestionAt(step int) (Question, bool) {
	if step < 1 || step > len(questions) {
		return Question{}, false
	}
	return questions[step-1], true
}
