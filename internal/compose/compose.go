// Package compose turns analyzer signals into the therapeutic reply
// shown to the user. Both entry points are deterministic text-in,
// text-out functions with no external calls.
package compose

import (
	"strings"

	"github.com/elowen/haven/internal/crisis"
	"github.com/elowen/haven/internal/distortion"
	"github.com/elowen/haven/internal/reflection"
)

// Context carries the caller-threaded conversation state into Respond.
// The core holds no hidden memory; PreviousDepth comes from the last
// Analysis the caller received.
type Context struct {
	SessionHistory    []string
	PreviousDepth     int
	ConversationCount int
}

// Response is the composed first-layer reply.
type Response struct {
	Message          string
	FollowUpQuestion string
	Distortions      *distortion.Result
	Reflection       reflection.Analysis
	IsCrisis         bool
	SessionSummary   string
}

// DeepResponse is the composed deeper-layer reply.
type DeepResponse struct {
	Message          string
	FollowUpQuestion string
	IsCrisis         bool
}

const emojiPrompt = "I see you've sent some emojis. I'd love to understand more about what you're feeling — could you put it into words for me?"

const crisisFollowUp = "Are you somewhere safe right now?"

// emotionEntry maps a feeling keyword to its canned first-layer reply.
// Order matters: first dictionary match wins.
type emotionEntry struct {
	keyword  string
	message  string
	question string
}

var emotionTable = []emotionEntry{
	{
		keyword:  "overwhelmed",
		message:  "Feeling overwhelmed can be exhausting — like everything is demanding your attention at once. It makes sense that you'd feel stretched thin.",
		question: "If you could set down just one of the things you're carrying, which would it be?",
	},
	{
		keyword:  "anxious",
		message:  "Anxiety has a way of pulling us out of the present and into a storm of what-ifs. What you're feeling is real, and it's okay to slow down with it.",
		question: "Where do you notice the anxiety showing up in your body?",
	},
	{
		keyword:  "sad",
		message:  "I hear the sadness in what you're sharing. Sadness often carries something important — it shows up where things matter to us.",
		question: "What do you think this sadness might be about, underneath?",
	},
	{
		keyword:  "angry",
		message:  "Anger is often a messenger — it tends to show up when something important to us feels crossed or unprotected.",
		question: "What do you think your anger is trying to protect?",
	},
	{
		keyword:  "confused",
		message:  "Feeling confused can be unsettling, especially when you want clarity and it won't come. It's okay to not have it figured out yet.",
		question: "What part of this feels the most tangled right now?",
	},
}

const defaultMessage = "Thank you for sharing that with me. Whatever you're feeling right now is valid, and I'm here to listen."

const defaultQuestion = "Can you tell me more about what's been on your mind?"

// Depth-tiered base messages used once a session has moved past
// surface-level sharing.
const (
	depth2Message  = "You're starting to look at where these feelings come from, and that takes courage. Connections like the one you just made matter."
	depth2Question = "When did you first notice this feeling showing up in your life?"

	depth3Message  = "You're noticing patterns now — that's a real shift. Seeing the shape of something is the beginning of loosening it."
	depth3Question = "What do you think keeps this pattern going?"

	depth4Message  = "You're touching something deep here. Understanding what sits underneath a pattern is some of the hardest and most valuable reflection there is."
	depth4Question = "As you sit with this understanding, what feels different?"
)

const distortionInvite = " Would you like to look at that thought together from another angle?"

// Respond runs the full first-layer pipeline over a user message. The
// error return exists for interface symmetry with async callers and is
// always nil.
func Respond(userInput string, ctx Context) (Response, error) {
	// Emoji-only input short-circuits before any analysis; depth is
	// carried through unchanged.
	if emojiOnly(userInput) {
		prev := ctx.PreviousDepth
		if prev < 1 {
			prev = 1
		}
		return Response{
			Message:          emojiPrompt,
			FollowUpQuestion: defaultQuestion,
			Reflection: reflection.Analysis{
				CurrentDepth: prev,
			},
		}, nil
	}

	// Crisis wins over everything else.
	if cr := crisis.Detect(userInput); cr.IsCrisis {
		return Response{
			Message:          crisis.Respond(cr),
			FollowUpQuestion: crisisFollowUp,
			IsCrisis:         true,
			Reflection: reflection.Analysis{
				CurrentDepth: maxInt(ctx.PreviousDepth, 1),
			},
		}, nil
	}

	dist := distortion.Detect(userInput)
	refl := reflection.AnalyzeDepth(userInput, ctx.PreviousDepth, ctx.SessionHistory)

	message, question := baseReply(userInput, refl.CurrentDepth)

	if dist.Detected {
		message = message + "\n\n" + distortion.Explain(dist.Distortions) + distortionInvite
	}

	resp := Response{
		Message:          message,
		FollowUpQuestion: question,
		Reflection:       refl,
	}
	if dist.Detected {
		resp.Distortions = &dist
	}
	if refl.ReadyForSummary {
		resp.SessionSummary = reflection.Summary(ctx.SessionHistory, refl.CurrentDepth, refl.QualityIndicators)
	}

	return resp, nil
}

// baseReply picks the depth-tiered message, falling back to the
// emotion keyword table at surface depth.
func baseReply(userInput string, depth int) (string, string) {
	switch {
	case depth >= 4:
		return depth4Message, depth4Question
	case depth == 3:
		return depth3Message, depth3Question
	case depth == 2:
		return depth2Message, depth2Question
	}

	lower := strings.ToLower(userInput)
	for _, e := range emotionTable {
		if strings.Contains(lower, e.keyword) {
			return e.message, e.question
		}
	}
	return defaultMessage, defaultQuestion
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
