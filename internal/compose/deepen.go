package compose

import (
	"strings"

	"github.com/elowen/haven/internal/crisis"
)

// topicEntry maps follow-up keywords to a validating reply. probing is
// used instead of question once reflectionDepth >= 3.
type topicEntry struct {
	keywords []string
	message  string
	question string
	probing  string
}

// Topic table for the deeper-reflection layer. Order is fixed; first
// matching topic wins.
var topicTable = []topicEntry{
	{
		keywords: []string{"family", "parent", "mother", "father"},
		message:  "Family relationships shape us in ways that run deep. The feelings that come up around family often carry years of history with them.",
		question: "What role do you usually find yourself playing in your family?",
		probing:  "If you could say one thing to your family without any consequences, what would it be?",
	},
	{
		keywords: []string{"work", "job", "boss", "career"},
		message:  "Work takes up so much of our lives that struggles there can touch everything else. It makes sense this is weighing on you.",
		question: "What part of the work situation drains you the most?",
		probing:  "What would work look like if it honored what you actually need?",
	},
	{
		keywords: []string{"relationship", "partner", "boyfriend", "girlfriend", "husband", "wife"},
		message:  "Relationships ask a lot of us — closeness and vulnerability at the same time. What you're feeling says something about what matters to you in connection.",
		question: "What do you find yourself needing most from this relationship?",
		probing:  "What pattern from earlier relationships might be echoing in this one?",
	},
	{
		keywords: []string{"past", "childhood", "younger", "grew up"},
		message:  "Our past has a way of living in the present. Being willing to look back takes real courage.",
		question: "How do you think that earlier experience still shows up today?",
		probing:  "What did younger you need back then that you could offer yourself now?",
	},
	{
		keywords: []string{"fear", "scared", "afraid", "terrified"},
		message:  "Fear can feel so big that it crowds out everything else. Naming it, like you just did, already takes some of its power away.",
		question: "What is the fear trying to keep you safe from?",
		probing:  "If the fear spoke with a voice, what would it be trying to tell you?",
	},
	{
		keywords: []string{"alone", "lonely", "isolated"},
		message:  "Loneliness is one of the heaviest feelings there is, and sharing it here is the opposite of being alone with it.",
		question: "When do you feel the loneliness most strongly?",
		probing:  "What would real connection feel like, if you could design it?",
	},
	{
		keywords: []string{"angry", "mad", "furious", "rage"},
		message:  "That anger deserves to be heard rather than pushed down. Anger usually stands guard over something tender.",
		question: "What happened right before the anger showed up?",
		probing:  "If the anger stepped aside for a moment, what feeling might be waiting behind it?",
	},
}

// Depth-tiered generic deepening text used when no topic matches.
const (
	deepDefault4Message  = "You've gone somewhere real in this reflection. Staying at this depth, without rushing to fix anything, is itself the work."
	deepDefault4Question = "What feels most true for you, sitting right here?"

	deepDefault3Message  = "You're connecting threads now. Keep following what feels charged — that's usually where the meaning is."
	deepDefault3Question = "What surprised you most about what you just said?"

	deepDefaultMessage  = "Thank you for staying with this. There's more here, and you're moving toward it at your own pace."
	deepDefaultQuestion = "As you sit with what you shared, what else comes up?"
)

// Deepen composes the reply for the opt-in "reflect more" layer. Same
// crisis and emoji-only guards as Respond; otherwise first-match topic
// lookup over the follow-up text, with a depth-conditioned question.
func Deepen(originalFeeling, originalResponse, userFollowUp string, reflectionDepth int) DeepResponse {
	_ = originalFeeling
	_ = originalResponse

	if emojiOnly(userFollowUp) {
		return DeepResponse{
			Message:          emojiPrompt,
			FollowUpQuestion: defaultQuestion,
		}
	}

	if cr := crisis.Detect(userFollowUp); cr.IsCrisis {
		return DeepResponse{
			Message:          crisis.Respond(cr),
			FollowUpQuestion: crisisFollowUp,
			IsCrisis:         true,
		}
	}

	lower := strings.ToLower(userFollowUp)
	for _, topic := range topicTable {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				question := topic.question
				if reflectionDepth >= 3 {
					question = topic.probing
				}
				return DeepResponse{Message: topic.message, FollowUpQuestion: question}
			}
		}
	}

	switch {
	case reflectionDepth >= 4:
		return DeepResponse{Message: deepDefault4Message, FollowUpQuestion: deepDefault4Question}
	case reflectionDepth == 3:
		return DeepResponse{Message: deepDefault3Message, FollowUpQuestion: deepDefault3Question}
	default:
		return DeepResponse{Message: deepDefaultMessage, FollowUpQuestion: deepDefaultQuestion}
	}
}
