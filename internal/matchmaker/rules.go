package matchmaker

// Rule maps a conjunction of required tags to an outcome.
type Rule struct {
	Requires []Tag
	Outcome  OutcomeID
}

// Matches reports whether every required tag was collected.
func (r Rule) Matches(answers AnswerSet) bool {
	return answers.tags().containsAll(r.Requires)
}

// rules is evaluated top to bottom; the first match wins. Rule 3 is a subset
// of rule 1, so the order is load-bearing.
var rules = []Rule{
	{Requires: []Tag{TagA, TagC, TagE}, Outcome: OutcomeGlobalElite},
	{Requires: []Tag{TagB, TagD, TagF}, Outcome: OutcomeChillSpecialist},
	{Requires: []Tag{TagA, TagE}, Outcome: OutcomeTechPioneer},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// ResolveAnswers maps an answer set to exactly one outcome. It is total: any
// set, including an empty or partial one, resolves.
func ResolveAnswers(answers AnswerSet) Outcome {
	for _, r := range rules {
		if r.Matches(answers) {
			return outcomes[r.Outcome]
		}
	}
	return outcomes[DefaultOutcome]
}
