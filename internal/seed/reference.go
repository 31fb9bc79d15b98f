package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ashita-ai/agentseed/internal/model"
)

// Users generates cfg.Users users with unique lower-cased emails.
func (g *Generator) Users(now time.Time) []model.User {
	users := make([]model.User, 0, g.cfg.Users)
	taken := make(map[string]struct{}, g.cfg.Users)

	for range g.cfg.Users {
		first := pick(g.src, g.vocab.FirstNames)
		last := pick(g.src, g.vocab.LastNames)
		users = append(users, model.User{
			ID:        g.newID(),
			Email:     g.uniqueEmail(first, last, taken),
			Name:      first + " " + last,
			CreatedAt: g.timeInLookback(now),
		})
	}
	return users
}

// AgentActions returns the first cfg.AgentActions catalog entries, in catalog order.
func (g *Generator) AgentActions(now time.Time) []model.AgentAction {
	templates := g.vocab.ActionCatalog[:g.cfg.AgentActions]
	actions := make([]model.AgentAction, len(templates))
	for i, t := range templates {
		actions[i] = model.AgentAction{
			ID:          g.newID(),
			Name:        t.Name,
			Description: t.Description,
			CreatedAt:   g.timeInLookback(now),
		}
	}
	return actions
}

// uniqueEmail derives an address from a name pair. A repeated address gets a
// numeric suffix on the local part until it is unused.
func (g *Generator) uniqueEmail(first, last string, taken map[string]struct{}) string {
	f, l := emailToken(first), emailToken(last)

	var local string
	switch g.src.IntN(3) {
	case 0:
		local = f + "." + l
	case 1:
		local = f + "_" + l
	default:
		local = f + l + strconv.Itoa(g.src.IntN(100))
	}
	domain := pick(g.src, g.vocab.EmailDomains)

	email := local + "@" + domain
	for n := 2; ; n++ {
		if _, dup := taken[email]; !dup {
			break
		}
		email = fmt.Sprintf("%s%d@%s", local, n, domain)
	}
	taken[email] = struct{}{}
	return email
}

// emailToken lower-cases s and keeps only characters valid in a local part.
func emailToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}
