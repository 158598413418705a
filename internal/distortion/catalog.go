package distortion

import "regexp"

// Rule describes one cognitive distortion: how to spot it and how to
// talk about it.
type Rule struct {
	Type        string
	Name        string
	Description string
	Patterns    []*regexp.Regexp
	Explanation string
	Reframe     string
}

// catalog holds the ten canonical distortions in fixed declaration
// order. Detection results preserve this order regardless of where a
// match lands in the text.
var catalog = []Rule{
	{
		Type:        "catastrophizing",
		Name:        "Catastrophizing",
		Description: "Expecting the worst possible outcome",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`worst thing`),
			regexp.MustCompile(`disaster`),
			regexp.MustCompile(`ruined?( my| every)`),
			regexp.MustCompile(`never recover`),
			regexp.MustCompile(`end of the world`),
			regexp.MustCompile(`catastrophe`),
		},
		Explanation: "I noticed you might be imagining the worst possible outcome. Our minds often jump to catastrophe when we're stressed, even when other outcomes are far more likely.",
		Reframe:     "What is the most likely outcome, rather than the worst one you can imagine?",
	},
	{
		Type:        "all_or_nothing",
		Name:        "All-or-Nothing Thinking",
		Description: "Seeing things in absolute, black-and-white categories",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\balways\b`),
			regexp.MustCompile(`\bnever\b`),
			regexp.MustCompile(`\beveryone\b`),
			regexp.MustCompile(`\bnobody\b`),
			regexp.MustCompile(`\beverything\b`),
			regexp.MustCompile(`\bnothing\b`),
			regexp.MustCompile(`total(ly)? fail`),
			regexp.MustCompile(`complete(ly)? (fail|ruin)`),
		},
		Explanation: "I noticed some absolute words like 'always' or 'never'. Life usually happens in shades of gray, and absolute thinking can make setbacks feel bigger than they are.",
		Reframe:     "Can you think of even one exception to that 'always' or 'never'?",
	},
	{
		Type:        "mind_reading",
		Name:        "Mind Reading",
		Description: "Assuming you know what others are thinking",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`they (must )?think`),
			regexp.MustCompile(`(he|she) thinks i`),
			regexp.MustCompile(`everyone thinks`),
			regexp.MustCompile(`probably hates? me`),
			regexp.MustCompile(`they'?re judging`),
			regexp.MustCompile(`know(s)? (what|that) i'?m`),
		},
		Explanation: "It sounds like you might be assuming you know what others are thinking. We can't actually read minds, and our guesses about others' thoughts often reflect our own fears.",
		Reframe:     "What evidence do you actually have about what they're thinking?",
	},
	{
		Type:        "fortune_telling",
		Name:        "Fortune Telling",
		Description: "Predicting negative outcomes as certainties",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`will never`),
			regexp.MustCompile(`(it'?s|is) going to (fail|go wrong|be awful)`),
			regexp.MustCompile(`i know it will`),
			regexp.MustCompile(`bound to (fail|lose|go wrong)`),
			regexp.MustCompile(`no point (in )?trying`),
		},
		Explanation: "You seem to be predicting the future with certainty. None of us can know how things will turn out, and treating predictions as facts can stop us from trying.",
		Reframe:     "If a friend made that prediction, what would you say to them?",
	},
	{
		Type:        "personalization",
		Name:        "Personalization",
		Description: "Blaming yourself for things outside your control",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(it'?s )?all my fault`),
			regexp.MustCompile(`i'?m to blame`),
			regexp.MustCompile(`because of me`),
			regexp.MustCompile(`i (ruined|caused) (it|this|everything)`),
			regexp.MustCompile(`should have (stopped|prevented|known)`),
		},
		Explanation: "You seem to be taking responsibility for something that may not be fully in your control. Most outcomes have many causes, and you are only one of them.",
		Reframe:     "What other factors, besides you, contributed to this situation?",
	},
	{
		Type:        "mental_filter",
		Name:        "Mental Filter",
		Description: "Focusing only on the negatives while filtering out positives",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`nothing (went|goes) right`),
			regexp.MustCompile(`only (the )?bad`),
			regexp.MustCompile(`can'?t (see|find) anything good`),
			regexp.MustCompile(`all i (can )?see is`),
			regexp.MustCompile(`one (bad|wrong) thing`),
		},
		Explanation: "It sounds like one negative detail might be coloring the whole picture. Our attention narrows under stress, and the good parts slip out of view.",
		Reframe:     "What is one thing, however small, that went okay today?",
	},
	{
		Type:        "emotional_reasoning",
		Name:        "Emotional Reasoning",
		Description: "Treating feelings as proof of facts",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`i feel (like a|so) (failure|stupid|worthless)`),
			regexp.MustCompile(`feel(s)? true`),
			regexp.MustCompile(`must be true because`),
			regexp.MustCompile(`i feel it,? so`),
		},
		Explanation: "Feelings are real, but they aren't always accurate evidence about the world. Feeling like a failure doesn't make you one.",
		Reframe:     "If you set the feeling aside for a moment, what do the facts say?",
	},
	{
		Type:        "should_statements",
		Name:        "Should Statements",
		Description: "Rigid rules about how you or others must behave",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`i should(n'?t)? (have|be|feel)`),
			regexp.MustCompile(`i must(n'?t)? `),
			regexp.MustCompile(`i have to be`),
			regexp.MustCompile(`i'?m supposed to`),
			regexp.MustCompile(`ought to`),
		},
		Explanation: "I heard some 'should' language. Rigid rules about how we must feel or behave often pile guilt on top of whatever we were already carrying.",
		Reframe:     "What would it sound like to replace 'I should' with 'I would like to'?",
	},
	{
		Type:        "labeling",
		Name:        "Labeling",
		Description: "Defining yourself by a single negative trait or event",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`i'?m (such )?(a|an) (failure|idiot|loser|mess|burden)`),
			regexp.MustCompile(`i'?m (just )?(stupid|useless|broken|unlovable)`),
			regexp.MustCompile(`that'?s just who i am`),
		},
		Explanation: "You're describing yourself with a fixed label. A label freezes one moment into an identity, but people are far more than their hardest moments.",
		Reframe:     "Instead of 'I am X', could you say 'I did X' or 'I felt X this time'?",
	},
	{
		Type:        "magnification",
		Name:        "Magnification and Minimization",
		Description: "Blowing up negatives or shrinking positives out of proportion",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(huge|enormous|massive) (mistake|problem|deal)`),
			regexp.MustCompile(`doesn'?t (really )?count`),
			regexp.MustCompile(`(just|only) (got )?lucky`),
			regexp.MustCompile(`anyone could have`),
			regexp.MustCompile(`blow(n|ing)? (it )?out of proportion`),
		},
		Explanation: "It sounds like the negatives may be magnified while the positives get shrunk. Both distort the scale of what actually happened.",
		Reframe:     "How would you weigh this event if it had happened to someone else?",
	},
}

// Catalog returns the full distortion rule catalog in declaration order.
func Catalog() []Rule {
	return catalog
}
