package seed

import (
	"time"

	"github.com/ashita-ai/agentseed/internal/model"
)

// Agents generates cfg.Agents agents, each owned by a random user.
func (g *Generator) Agents(now time.Time, users []model.User) ([]model.Agent, error) {
	if g.cfg.Agents == 0 {
		return []model.Agent{}, nil
	}
	if len(users) == 0 {
		return nil, ErrNoCandidates
	}

	agents := make([]model.Agent, 0, g.cfg.Agents)
	for range g.cfg.Agents {
		agents = append(agents, model.Agent{
			ID:          g.newID(),
			Name:        g.agentName(),
			Description: g.agentDescription(),
			CreatedBy:   pick(g.src, users).ID,
			CreatedAt:   g.timeInLookback(now),
		})
	}
	return agents, nil
}

// Runs generates cfg.Runs runs. User and agent are drawn independently.
func (g *Generator) Runs(now time.Time, users []model.User, agents []model.Agent) ([]model.AgentRun, error) {
	if g.cfg.Runs == 0 {
		return []model.AgentRun{}, nil
	}
	if len(users) == 0 || len(agents) == 0 {
		return nil, ErrNoCandidates
	}

	runs := make([]model.AgentRun, 0, g.cfg.Runs)
	for range g.cfg.Runs {
		createdAt := g.timeInLookback(now)
		status := RandomStatus(g.src)

		var updatedAt *time.Time
		if status.Finished() {
			t := createdAt.Add(g.durationBetween(g.cfg.RunDuration))
			updatedAt = &t
		}

		runs = append(runs, model.AgentRun{
			ID:        g.newID(),
			UserID:    pick(g.src, users).ID,
			AgentID:   pick(g.src, agents).ID,
			Status:    status,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}
	return runs, nil
}

func (g *Generator) agentName() string {
	return pick(g.src, g.vocab.AgentPrefixes) + " " +
		pick(g.src, g.vocab.AgentDomains) + " " +
		pick(g.src, g.vocab.AgentSuffixes)
}

func (g *Generator) agentDescription() string {
	return pick(g.src, g.vocab.DescriptionActions) + " " + pick(g.src, g.vocab.DescriptionTasks)
}
