package snapshot

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riversnfl/predictor/internal/domain"
	"github.com/riversnfl/predictor/internal/grades"
	"github.com/riversnfl/predictor/internal/injuries"
	"github.com/riversnfl/predictor/internal/playstore"
)

// LoadFromPostgres streams plays, team grades, player grades and injuries
// for the given seasons from Postgres tables and assembles a fresh
// Snapshot. Like LoadFromCSV, this is an external-collaborator boundary;
// the scoring core never imports this file's dependencies.
func LoadFromPostgres(ctx context.Context, pool *pgxpool.Pool, seasons []int) (*Snapshot, error) {
	domainPlays, err := queryPlays(ctx, pool, seasons)
	if err != nil {
		return nil, fmt.Errorf("snapshot: querying plays: %w", err)
	}
	plays := playstore.New()
	plays.Load(domainPlays)

	teamGrades, err := queryTeamGrades(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("snapshot: querying team grades: %w", err)
	}
	playerGrades, err := queryPlayerGrades(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("snapshot: querying player grades: %w", err)
	}
	g := grades.New()
	g.Load(teamGrades, playerGrades)

	domainInjuries, err := queryInjuries(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("snapshot: querying injuries: %w", err)
	}
	inj := injuries.New()
	inj.Load(domainInjuries)

	return New(plays, g, inj), nil
}

func queryPlays(ctx context.Context, pool *pgxpool.Pool, seasons []int) ([]domain.PlayRow, error) {
	rows, err := pool.Query(ctx, `
		SELECT game_id, season, week, pos_team, def_team, play_kind,
		       down, yards_to_go, yardline_100, yards_gained, epa, success,
		       interception, fumble_lost, air_yards, yards_after_catch, qb_epa,
		       quarter_seconds_remaining, game_seconds_remaining
		FROM plays
		WHERE season = ANY($1)`, seasons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlayRow
	for rows.Next() {
		var (
			gameID, posTeam, defTeam, playKind string
			season, week, yardLine100, yardsGained int
			down, yardsToGo, quarterSecondsRemaining, gameSecondsRemaining *int
			epa, airYards, yardsAfterCatch, qbEPA *float64
			success, interception, fumbleLost bool
		)
		if err := rows.Scan(&gameID, &season, &week, &posTeam, &defTeam, &playKind,
			&down, &yardsToGo, &yardLine100, &yardsGained, &epa, &success,
			&interception, &fumbleLost, &airYards, &yardsAfterCatch, &qbEPA,
			&quarterSecondsRemaining, &gameSecondsRemaining); err != nil {
			return nil, fmt.Errorf("scanning play row: %w", err)
		}
		out = append(out, domain.PlayRow{
			GameID:                  gameID,
			Season:                  season,
			Week:                    week,
			PosTeam:                 domain.TeamID(posTeam),
			DefTeam:                 domain.TeamID(defTeam),
			PlayKind:                domain.PlayKind(playKind),
			Down:                    down,
			YardsToGo:               yardsToGo,
			YardLine100:             yardLine100,
			YardsGained:             yardsGained,
			EPA:                     epa,
			Success:                 success,
			Interception:            interception,
			FumbleLost:              fumbleLost,
			AirYards:                airYards,
			YardsAfterCatch:         yardsAfterCatch,
			QBEPA:                   qbEPA,
			QuarterSecondsRemaining: quarterSecondsRemaining,
			GameSecondsRemaining:    gameSecondsRemaining,
		})
	}
	return out, rows.Err()
}

func queryTeamGrades(ctx context.Context, pool *pgxpool.Pool) (map[domain.TeamID]domain.TeamGrades, error) {
	rows, err := pool.Query(ctx, `
		SELECT team, passing, rushing, receiving, pass_blocking, run_blocking,
		       pass_rush, run_defense, coverage, tackling, overall_offense, overall_defense
		FROM team_grades`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.TeamID]domain.TeamGrades)
	for rows.Next() {
		var team string
		var g domain.TeamGrades
		if err := rows.Scan(&team, &g.Passing, &g.Rushing, &g.Receiving, &g.PassBlocking,
			&g.RunBlocking, &g.PassRush, &g.RunDefense, &g.Coverage, &g.Tackling,
			&g.OverallOffense, &g.OverallDefense); err != nil {
			return nil, fmt.Errorf("scanning team grade row: %w", err)
		}
		out[domain.TeamID(team)] = g
	}
	return out, rows.Err()
}

func queryPlayerGrades(ctx context.Context, pool *pgxpool.Pool) ([]domain.PlayerGrade, error) {
	rows, err := pool.Query(ctx, `SELECT team, position, player, grade FROM player_grades`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlayerGrade
	for rows.Next() {
		var team, position, player string
		var grade float64
		if err := rows.Scan(&team, &position, &player, &grade); err != nil {
			return nil, fmt.Errorf("scanning player grade row: %w", err)
		}
		out = append(out, domain.PlayerGrade{
			Team:     domain.TeamID(team),
			Position: domain.Position(position),
			Player:   player,
			Grade:    grade,
		})
	}
	return out, rows.Err()
}

func queryInjuries(ctx context.Context, pool *pgxpool.Pool) ([]domain.InjuryEntry, error) {
	rows, err := pool.Query(ctx, `
		SELECT team, player, position, status, note, predates_by_two_months, predates_season_start
		FROM injuries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InjuryEntry
	for rows.Next() {
		var team, player, position, status, note string
		var predatesByTwoMonths, predatesSeasonStart bool
		if err := rows.Scan(&team, &player, &position, &status, &note,
			&predatesByTwoMonths, &predatesSeasonStart); err != nil {
			return nil, fmt.Errorf("scanning injury row: %w", err)
		}
		out = append(out, domain.InjuryEntry{
			Team:                domain.TeamID(team),
			Player:              player,
			Position:            domain.Position(position),
			Status:              domain.InjuryStatus(status),
			Note:                note,
			PredatesByTwoMonths: predatesByTwoMonths,
			PredatesSeasonStart: predatesSeasonStart,
		})
	}
	return out, rows.Err()
}
