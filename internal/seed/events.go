package seed

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ashita-ai/agentseed/internal/model"
)

// AgentMessages generates a time-ordered message sequence for every run.
// Each message advances from the previous one by a random step, starting at the
// run's created_at, so timestamps are strictly increasing within a run.
func (g *Generator) AgentMessages(runs []model.AgentRun, agents []model.Agent) ([]model.AgentMessage, error) {
	if len(runs) == 0 {
		return []model.AgentMessage{}, nil
	}
	if g.cfg.MessageAuthor == AuthorAnyAgent && len(agents) == 0 {
		return nil, ErrNoCandidates
	}

	messages := make([]model.AgentMessage, 0, len(runs)*(g.cfg.AgentMessages.Min+g.cfg.AgentMessages.Max)/2)
	for _, run := range runs {
		at := run.CreatedAt
		for range g.intBetween(g.cfg.AgentMessages) {
			at = at.Add(g.durationBetween(g.cfg.AgentMessageStep))

			author := run.AgentID
			if g.cfg.MessageAuthor == AuthorAnyAgent {
				author = pick(g.src, agents).ID
			}

			messages = append(messages, model.AgentMessage{
				ID:         g.newID(),
				AgentRunID: run.ID,
				AgentID:    author,
				Content:    g.sentences(g.cfg.AgentMessageSentences),
				CreatedAt:  at,
			})
		}
	}
	return messages, nil
}

// UserMessages generates a time-ordered message sequence for every run,
// always authored by the run's own user.
func (g *Generator) UserMessages(runs []model.AgentRun) []model.UserMessage {
	messages := make([]model.UserMessage, 0, len(runs)*(g.cfg.UserMessages.Min+g.cfg.UserMessages.Max)/2)
	for _, run := range runs {
		at := run.CreatedAt
		for range g.intBetween(g.cfg.UserMessages) {
			at = at.Add(g.durationBetween(g.cfg.UserMessageStep))
			messages = append(messages, model.UserMessage{
				ID:         g.newID(),
				AgentRunID: run.ID,
				UserID:     run.UserID,
				Content:    g.sentences(g.cfg.UserMessageSentences),
				CreatedAt:  at,
			})
		}
	}
	return messages
}

// RunActions generates action records for runs in took_action status and for a
// random share of the remaining runs.
func (g *Generator) RunActions(runs []model.AgentRun, agents []model.Agent, actions []model.AgentAction) ([]model.RunAction, error) {
	if len(runs) == 0 {
		return []model.RunAction{}, nil
	}
	if len(agents) == 0 || len(actions) == 0 {
		return nil, ErrNoCandidates
	}

	var out []model.RunAction
	for _, run := range runs {
		if !g.takesAction(run.Status) {
			continue
		}
		at := run.CreatedAt
		for range g.intBetween(g.cfg.RunActions) {
			at = at.Add(g.durationBetween(g.cfg.RunActionStep))
			out = append(out, model.RunAction{
				ID:            g.newID(),
				AgentRunID:    run.ID,
				AgentID:       pick(g.src, agents).ID,
				AgentActionID: pick(g.src, actions).ID,
				CreatedAt:     at,
			})
		}
	}
	if out == nil {
		out = []model.RunAction{}
	}
	return out, nil
}

// takesAction reports whether a run of the given status records actions.
// The probability draw is made for every run that is not took_action.
func (g *Generator) takesAction(status model.RunStatus) bool {
	if status == model.RunStatusTookAction {
		return true
	}
	return g.src.Float64() < g.cfg.RunActionProbability
}

// sentences returns between r.Min and r.Max lorem sentences of 4 to 12 words.
func (g *Generator) sentences(r Range) string {
	n := g.intBetween(r)
	parts := make([]string, n)
	for i := range n {
		words := make([]string, g.intBetween(Range{4, 12}))
		for j := range words {
			words[j] = pick(g.src, g.vocab.LoremWords)
		}
		parts[i] = capitalize(strings.Join(words, " ")) + "."
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
