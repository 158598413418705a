package reflection

import (
	"fmt"
	"strings"
)

// depthDescriptions names what each reflection level represents in the
// closing summary.
var depthDescriptions = map[int]string{
	1: "naming what you feel",
	2: "exploring where those feelings come from",
	3: "recognizing the patterns behind them",
	4: "understanding what lies underneath those patterns",
	5: "finding acceptance and choosing how to move forward",
}

// Summary renders the human-readable session closing paragraph. The
// output always cites the literal depth number reached.
func Summary(history []string, finalDepth int, insights []string) string {
	if finalDepth < 1 {
		finalDepth = 1
	}
	if finalDepth > 5 {
		finalDepth = 5
	}

	var b strings.Builder
	fmt.Fprintf(&b, "In this session you reached depth %d of 5 — %s.",
		finalDepth, depthDescriptions[finalDepth])

	if len(history) > 0 {
		fmt.Fprintf(&b, " Across %d messages, you stayed with some difficult material rather than turning away from it.",
			len(history))
	}

	if len(insights) > 0 {
		b.WriteString(" Along the way, I noticed: ")
		b.WriteString(strings.Join(insights, "; "))
		b.WriteString(".")
	}

	b.WriteString(" Reflection like this is slow, real work. Be gentle with yourself about where it leads next.")
	return b.String()
}
