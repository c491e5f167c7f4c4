package matchmaker

import "fmt"

// OutcomeID names one of the fixed quiz results.
type OutcomeID string

const (
	OutcomeGlobalElite     OutcomeID = "global-elite"
	OutcomeChillSpecialist OutcomeID = "chill-specialist"
	OutcomeTechPioneer     OutcomeID = "tech-pioneer"
	OutcomeCulinaryMaster  OutcomeID = "culinary-master"
)

// Outcome is the static result record shown when the quiz finishes.
type Outcome struct {
	ID          OutcomeID
	City        string
	ImageURL    string
	Tagline     string
	Description string
	Roast       string
}

func cityImage(photoID string) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?auto=format&fit=crop&q=80&w=1000", photoID)
}

var outcomes = map[OutcomeID]Outcome{
	OutcomeGlobalElite: {
		ID:          OutcomeGlobalElite,
		City:        "Shanghai",
		ImageURL:    cityImage("1474181483307-a45a995300d6"),
		Tagline:     "The global elite.",
		Description: "You want the center of the universe.",
		Roast:       "You'll fit in perfectly until you realize nobody speaks English at the local dumpling shop and your 'VPN' is your only personality trait.",
	},
	OutcomeChillSpecialist: {
		ID:          OutcomeChillSpecialist,
		City:        "Chengdu",
		ImageURL:    cityImage("1544670259-22a088898b9e"),
		Tagline:     "The chill specialist.",
		Description: "You found the loophole to a happy life.",
		Roast:       "Your ambition is low enough to survive here. Just remember: 'Relaxing' is a full-time job, and the spicy oil will claim your soul eventually.",
	},
	OutcomeTechPioneer: {
		ID:          OutcomeTechPioneer,
		City:        "Shenzhen",
		ImageURL:    cityImage("1526040671297-3824b20755a7"),
		Tagline:     "The tech pioneer.",
		Description: "You want the future, now.",
		Roast:       "You'll be surrounded by drones and delivery bots. You won't have a soul, but your internet speed will be 10G.",
	},
	OutcomeCulinaryMaster: {
		ID:          OutcomeCulinaryMaster,
		City:        "Guangzhou",
		ImageURL:    cityImage("1518173946687-a4c81c78399e"),
		Tagline:     "The culinary master.",
		Description: "You just want to eat and exist in peace.",
		Roast:       "You're just here for the Dim Sum. We respect the hustle, or lack thereof.",
	},
}

// DefaultOutcome is returned when no rule matches.
const DefaultOutcome = OutcomeCulinaryMaster

// GetOutcome returns the outcome record for id.
func GetOutcome(id OutcomeID) (Outcome, bool) {
	o, ok := outcomes[id]
	return o, ok
}

// AllOutcomes returns every outcome in rule order, default last.
func AllOutcomes() []Outcome {
	out := make([]Outcome, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, outcomes[r.Outcome])
	}
	return append(out, outcomes[DefaultOutcome])
}
