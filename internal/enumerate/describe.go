package enumerate

import (
	"fmt"
	"strings"

	"github.com/airvair/STAMPWebTool-sub001/internal/authority"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

// Describe renders a candidate as the human-readable sentence shown to the
// analyst. Hazard-relevance scoring and dedup both tokenize this text, so
// it names the controllers and actions explicitly.
func Describe(am *authority.Model, c model.Candidate) string {
	parts := make([]string, 0, len(c.Elements))
	for _, el := range c.Elements {
		parts = append(parts, describeElement(am, el, c.Type))
	}
	switch c.Type {
	case model.InteractionTiming:
		return strings.Join(parts, " while ")
	default:
		return strings.Join(parts, " and ")
	}
}

func describeElement(am *authority.Model, el model.CombinationElement, typ model.InteractionType) string {
	ctrlName := el.ControllerID
	if c, ok := am.Controller(el.ControllerID); ok && c.Name != "" {
		ctrlName = c.Name
	}
	actionText := el.ActionID
	if a, ok := am.Action(el.ActionID); ok {
		actionText = strings.TrimSpace(a.Verb + " " + a.Object)
	}

	if typ == model.InteractionTiming {
		when := "too late"
		if el.Timing == model.TimingEarly {
			when = "too early"
		}
		return fmt.Sprintf("%s issues %s %s", ctrlName, actionText, when)
	}

	verb := "withholds"
	if el.Provided {
		verb = "provides"
	}
	return fmt.Sprintf("%s %s %s", ctrlName, verb, actionText)
}
