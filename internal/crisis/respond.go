package crisis

import "strings"

// Resource lines shown with every crisis response. This text is
// safety-critical and shown to real users; keep it stable.
const resourceText = `If you are in immediate danger, please call 911 or go to your nearest emergency room.

You can also reach out right now:
- 988 Suicide & Crisis Lifeline: call or text 988 (24/7, free, confidential)
- Crisis Text Line: text HOME to 741741
- International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/`

const interveneFraming = `I'm really concerned about what you're sharing with me right now. What you're feeling matters, and you deserve immediate support from someone trained to help. Please reach out to one of these resources right away — you don't have to face this moment alone.`

const supportFraming = `Thank you for trusting me with something this heavy. I'm concerned about you, and I want you to know that real support is available whenever you need it. Talking with a trained counselor can make a difference, even if it doesn't feel that way right now.`

const monitorFraming = `It sounds like you're carrying a lot right now. I'm here to listen, and I also want you to know about these resources in case things ever feel like too much. Reaching out is a sign of strength, not weakness.`

// Respond formats the safety response for a detection result. Pure
// formatter: the same result always produces the same text.
func Respond(r Result) string {
	var framing string
	switch r.Action {
	case ActionIntervene:
		framing = interveneFraming
	case ActionSupport:
		framing = supportFraming
	default:
		framing = monitorFraming
	}

	var b strings.Builder
	b.WriteString(framing)
	b.WriteString("\n\n")
	b.WriteString(resourceText)
	return b.String()
}
