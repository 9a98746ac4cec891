package validate

import (
	"testing"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/injuries"
	"github.com/riversnfl/predictor/internal/playstore"
	"github.com/riversnfl/predictor/internal/riverserr"
)

func fullPlaySet(team, opp domain.TeamID) []domain.PlayRow {
	rows := make([]domain.PlayRow, 0, 150)
	for i := 0; i < 150; i++ {
		rows = append(rows, domain.PlayRow{
			GameID: "g", Season: 2025, Week: 6,
			PosTeam: team, DefTeam: opp, PlayKind: domain.Pass,
			YardLine100: 50, YardsGained: 5,
		})
	}
	return rows
}

func readyFixtures(t *testing.T) (*playstore.Store, *grades.Store, *injuries.Store) {
	t.Helper()
	plays := playstore.New()
	plays.Load(append(fullPlaySet("A", "B"), fullPlaySet("B", "A")...))

	g := grades.New()
	g.Load(map[domain.TeamID]domain.TeamGrades{
		"A": domain.NeutralTeamGrades,
		"B": domain.NeutralTeamGrades,
	}, nil)

	inj := injuries.New()
	return plays, g, inj
}

func TestCheck_PassesWithFullFixtures(t *testing.T) {
	plays, g, inj := readyFixtures(t)
	weights := map[int]float64{2025: 1.0}

	if err := Check(plays, g, inj, "A", "B", weights); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestCheck_TooFewPlaysIsNotReady(t *testing.T) {
	plays := playstore.New()
	plays.Load([]domain.PlayRow{{Season: 2025, PosTeam: "A", DefTeam: "B", PlayKind: domain.Pass}})

	g := grades.New()
	g.Load(map[domain.TeamID]domain.TeamGrades{"A": domain.NeutralTeamGrades, "B": domain.NeutralTeamGrades}, nil)
	inj := injuries.New()

	err := Check(plays, g, inj, "A", "B", map[int]float64{2025: 1.0})
	if riverserr.CodeOf(err) != riverserr.NotReady {
		t.Errorf("Check() code = %v, want NotReady", riverserr.CodeOf(err))
	}
}

func TestCheck_UnknownTeamFailsWithUnknownTeam(t *testing.T) {
	plays, g, inj := readyFixtures(t)
	weights := map[int]float64{2025: 1.0}

	err := Check(plays, g, inj, "A", "ZZZ", weights)
	if riverserr.CodeOf(err) != riverserr.UnknownTeam {
		t.Errorf("Check() code = %v, want UnknownTeam", riverserr.CodeOf(err))
	}
}

func TestCheck_BadWeightsFailsWithNotReady(t *testing.T) {
	plays, g, inj := readyFixtures(t)
	weights := map[int]float64{2025: 0.5}

	err := Check(plays, g, inj, "A", "B", weights)
	if riverserr.CodeOf(err) != riverserr.NotReady {
		t.Errorf("Check() code = %v, want NotReady", riverserr.CodeOf(err))
	}
}
