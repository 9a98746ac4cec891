package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/injuries"
	"github.com/riversnfl/predictor/internal/playstore"
)

// playCSV maps one row of plays.csv, the same direct column-to-field style
// as the teacher's nflverse CSV models.
type playCSV struct {
	GameID                  string   `csv:"game_id"`
	Season                  int      `csv:"season"`
	Week                    int      `csv:"week"`
	PosTeam                 string   `csv:"pos_team"`
	DefTeam                 string   `csv:"def_team"`
	PlayKind                string   `csv:"play_kind"`
	Down                    *int     `csv:"down"`
	YardsToGo               *int     `csv:"yards_to_go"`
	YardLine100             int      `csv:"yardline_100"`
	YardsGained             int      `csv:"yards_gained"`
	EPA                     *float64 `csv:"epa"`
	Success                 bool     `csv:"success"`
	Interception            bool     `csv:"interception"`
	FumbleLost              bool     `csv:"fumble_lost"`
	AirYards                *float64 `csv:"air_yards"`
	YardsAfterCatch         *float64 `csv:"yards_after_catch"`
	QBEPA                   *float64 `csv:"qb_epa"`
	QuarterSecondsRemaining *int     `csv:"quarter_seconds_remaining"`
	GameSecondsRemaining    *int     `csv:"game_seconds_remaining"`
}

func (r playCSV) toDomain() domain.PlayRow {
	return domain.PlayRow{
		GameID:                  r.GameID,
		Season:                  r.Season,
		Week:                    r.Week,
		PosTeam:                 domain.TeamID(r.PosTeam),
		DefTeam:                 domain.TeamID(r.DefTeam),
		PlayKind:                domain.PlayKind(r.PlayKind),
		Down:                    r.Down,
		YardsToGo:               r.YardsToGo,
		YardLine100:             r.YardLine100,
		YardsGained:             r.YardsGained,
		EPA:                     r.EPA,
		Success:                 r.Success,
		Interception:            r.Interception,
		FumbleLost:              r.FumbleLost,
		AirYards:                r.AirYards,
		YardsAfterCatch:         r.YardsAfterCatch,
		QBEPA:                   r.QBEPA,
		QuarterSecondsRemaining: r.QuarterSecondsRemaining,
		GameSecondsRemaining:    r.GameSecondsRemaining,
	}
}

// injuryCSV maps one row of injuries.csv.
type injuryCSV struct {
	Team                string `csv:"team"`
	Player              string `csv:"player"`
	Position            string `csv:"position"`
	Status              string `csv:"status"`
	Note                string `csv:"note"`
	PredatesByTwoMonths bool   `csv:"predates_by_two_months"`
	PredatesSeasonStart bool   `csv:"predates_season_start"`
}

func (r injuryCSV) toDomain() domain.InjuryEntry {
	return domain.InjuryEntry{
		Team:                domain.TeamID(r.Team),
		Player:              r.Player,
		Position:            domain.Position(r.Position),
		Status:              domain.InjuryStatus(r.Status),
		Note:                r.Note,
		PredatesByTwoMonths: r.PredatesByTwoMonths,
		PredatesSeasonStart: r.PredatesSeasonStart,
	}
}

// teamGradeCSV maps one row of team_grades.csv.
type teamGradeCSV struct {
	Team           string  `csv:"team"`
	Passing        float64 `csv:"passing"`
	Rushing        float64 `csv:"rushing"`
	Receiving      float64 `csv:"receiving"`
	PassBlocking   float64 `csv:"pass_blocking"`
	RunBlocking    float64 `csv:"run_blocking"`
	PassRush       float64 `csv:"pass_rush"`
	RunDefense     float64 `csv:"run_defense"`
	Coverage       float64 `csv:"coverage"`
	Tackling       float64 `csv:"tackling"`
	OverallOffense float64 `csv:"overall_offense"`
	OverallDefense float64 `csv:"overall_defense"`
}

func (r teamGradeCSV) toDomain() domain.TeamGrades {
	return domain.TeamGrades{
		Passing:        r.Passing,
		Rushing:        r.Rushing,
		Receiving:      r.Receiving,
		PassBlocking:   r.PassBlocking,
		RunBlocking:    r.RunBlocking,
		PassRush:       r.PassRush,
		RunDefense:     r.RunDefense,
		Coverage:       r.Coverage,
		Tackling:       r.Tackling,
		OverallOffense: r.OverallOffense,
		OverallDefense: r.OverallDefense,
	}
}

// playerGradeCSV maps one row of player_grades.csv.
type playerGradeCSV struct {
	Team     string  `csv:"team"`
	Position string  `csv:"position"`
	Player   string  `csv:"player"`
	Grade    float64 `csv:"grade"`
}

func (r playerGradeCSV) toDomain() domain.PlayerGrade {
	return domain.PlayerGrade{
		Team:     domain.TeamID(r.Team),
		Position: domain.Position(r.Position),
		Player:   r.Player,
		Grade:    r.Grade,
	}
}

// LoadFromCSV reads plays.csv, injuries.csv, team_grades.csv and
// player_grades.csv from dir and assembles a fresh Snapshot. This is an
// external-collaborator boundary (spec §1): the scoring core never calls
// this function itself.
func LoadFromCSV(dir string) (*Snapshot, error) {
	var playRows []*playCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "plays.csv"), &playRows); err != nil {
		return nil, fmt.Errorf("snapshot: loading plays.csv: %w", err)
	}

	var injuryRows []*injuryCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "injuries.csv"), &injuryRows); err != nil {
		return nil, fmt.Errorf("snapshot: loading injuries.csv: %w", err)
	}

	var teamGradeRows []*teamGradeCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "team_grades.csv"), &teamGradeRows); err != nil {
		return nil, fmt.Errorf("snapshot: loading team_grades.csv: %w", err)
	}

	var playerGradeRows []*playerGradeCSV
	if err := unmarshalCSVFile(filepath.Join(dir, "player_grades.csv"), &playerGradeRows); err != nil {
		return nil, fmt.Errorf("snapshot: loading player_grades.csv: %w", err)
	}

	plays := playstore.New()
	domainPlays := make([]domain.PlayRow, 0, len(playRows))
	for _, r := range playRows {
		domainPlays = append(domainPlays, r.toDomain())
	}
	plays.Load(domainPlays)

	g := grades.New()
	teamGrades := make(map[domain.TeamID]domain.TeamGrades, len(teamGradeRows))
	for _, r := range teamGradeRows {
		teamGrades[domain.TeamID(r.Team)] = r.toDomain()
	}
	playerGrades := make([]domain.PlayerGrade, 0, len(playerGradeRows))
	for _, r := range playerGradeRows {
		playerGrades = append(playerGrades, r.toDomain())
	}
	g.Load(teamGrades, playerGrades)

	inj := injuries.New()
	domainInjuries := make([]domain.InjuryEntry, 0, len(injuryRows))
	for _, r := range injuryRows {
		domainInjuries = append(domainInjuries, r.toDomain())
	}
	inj.Load(domainInjuries)

	return New(plays, g, inj), nil
}

func unmarshalCSVFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.UnmarshalFile(f, out)
}
