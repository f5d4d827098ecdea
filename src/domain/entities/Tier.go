package entities

// Tier é a faixa de popularidade derivada apenas do score do perfil.
type Tier string

const (
	TierNormal    Tier = "Normal Pop"
	TierCelebrity Tier = "Celebridade Pop"
	TierIcon      Tier = "Icone Pop"
)

const (
	CelebrityThreshold = 500
	IconThreshold      = 1000
)

// TierFor maps a score to its tier: Normal below 500, Celebrity up to 1000
// inclusive, Icon above. There is no hysteresis.
func TierFor(score int) Tier {
	switch {
	case score < CelebrityThreshold:
		return TierNormal
	case score <= IconThreshold:
		return TierCelebrity
	default:
		return TierIcon
	}
}

func Tiers() []Tier {
	return []Tier{TierNormal, TierCelebrity, TierIcon}
}

type Action string

const (
	ActionLike   Action = "like"
	ActionReject Action = "reject"
)

// Policy is the score delta applied to a post per (tier, action).
type Policy map[Tier]map[Action]int

func DefaultPolicy() Policy {
	return Policy{
		TierNormal:    {ActionLike: 1, ActionReject: -1},
		TierCelebrity: {ActionLike: 2, ActionReject: -2},
		TierIcon:      {ActionLike: 3, ActionReject: -3},
	}
}

// Delta returns 0 for pairs missing from the table.
func (p Policy) Delta(tier Tier, action Action) int {
	return p[tier][action]
}

// With returns a copy of the policy with one entry replaced.
func (p Policy) With(tier Tier, action Action, delta int) Policy {
	out := make(Policy, len(p)+1)
	for t, actions := range p {
		out[t] = make(map[Action]int, len(actions))
		for a, d := range actions {
			out[t][a] = d
		}
	}
	if out[tier] == nil {
		out[tier] = make(map[Action]int, 2)
	}
	out[tier][action] = delta
	return out
}

// ApplyLike counts a like on the shared post and moves its score by the tier delta.
func (p Policy) ApplyLike(tier Tier, post *Post) int {
	delta := p.Delta(tier, ActionLike)
	post.registerLike(delta)
	return delta
}

// ApplyReject counts a rejection on the shared post and moves its score by the tier delta.
func (p Policy) ApplyReject(tier Tier, post *Post) int {
	delta := p.Delta(tier, ActionReject)
	post.registerRejection(delta)
	return delta
}
