package domain

// PlayKind classifies a play row. Only Pass, Run, QBKneel and QBSpike are
// "scrimmage" plays (spec §3, §4.3); the rest are excluded from every
// component scorer.
type PlayKind string

const (
	Pass       PlayKind = "pass"
	Run        PlayKind = "run"
	QBKneel    PlayKind = "qb_kneel"
	QBSpike    PlayKind = "qb_spike"
	Punt       PlayKind = "punt"
	FieldGoal  PlayKind = "field_goal"
	Kickoff    PlayKind = "kickoff"
	ExtraPoint PlayKind = "extra_point"
	Other      PlayKind = "other"
)

// IsScrimmage reports whether k counts toward the four component scorers.
func (k PlayKind) IsScrimmage() bool {
	switch k {
	case Pass, Run, QBKneel, QBSpike:
		return true
	default:
		return false
	}
}

// PlayRow is one immutable scrimmage-or-special-teams play, matching the
// schema of spec §3. Optional numeric fields are pointers so "absent" is
// distinguishable from zero.
type PlayRow struct {
	GameID   string
	Season   int
	Week     int
	PosTeam  TeamID
	DefTeam  TeamID
	PlayKind PlayKind

	Down            *int
	YardsToGo       *int
	YardLine100     int
	YardsGained     int
	EPA             *float64
	Success         bool
	Interception    bool
	FumbleLost      bool
	AirYards        *float64
	YardsAfterCatch *float64
	QBEPA           *float64

	QuarterSecondsRemaining *int
	GameSecondsRemaining    *int
}

// RedZone reports whether the play started inside the opponent's 20.
func (p *PlayRow) RedZone() bool { return p.YardLine100 <= 20 }

// GoalLine reports whether the play started inside the opponent's 5.
func (p *PlayRow) GoalLine() bool { return p.YardLine100 <= 5 }

// ThirdDown reports whether the play was a third down.
func (p *PlayRow) ThirdDown() bool { return p.Down != nil && *p.Down == 3 }

// TwoMinute reports whether the play fell in the last 120 seconds of any
// quarter or of the game, per spec §4.3.1.
func (p *PlayRow) TwoMinute() bool {
	if p.QuarterSecondsRemaining != nil && *p.QuarterSecondsRemaining <= 120 {
		return true
	}
	if p.GameSecondsRemaining != nil && *p.GameSecondsRemaining <= 120 {
		return true
	}
	return false
}
