package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riversnfl/predictor/internal/domain"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func TestLoadFromCSV(t *testing.T) {
	dir := t.TempDir()

	writeFixture(t, dir, "plays.csv", "game_id,season,week,pos_team,def_team,play_kind,down,yards_to_go,yardline_100,yards_gained,epa,success,interception,fumble_lost,air_yards,yards_after_catch,qb_epa,quarter_seconds_remaining,game_seconds_remaining\n"+
		"g1,2025,6,BUF,MIA,pass,1,10,50,8,0.3,true,false,false,,,,,\n")

	writeFixture(t, dir, "injuries.csv", "team,player,position,status,note,predates_by_two_months,predates_season_start\n"+
		"BUF,qb_star,QB,OUT,knee,false,false\n")

	writeFixture(t, dir, "team_grades.csv", "team,passing,rushing,receiving,pass_blocking,run_blocking,pass_rush,run_defense,coverage,tackling,overall_offense,overall_defense\n"+
		"BUF,80,70,75,65,60,55,50,60,65,78,58\n")

	writeFixture(t, dir, "player_grades.csv", "team,position,player,grade\n"+
		"BUF,QB,qb_star,90\n")

	snap, err := LoadFromCSV(dir)
	if err != nil {
		t.Fatalf("LoadFromCSV() error = %v", err)
	}

	if snap.Plays.PlayCount("BUF") != 1 {
		t.Errorf("Plays.PlayCount(BUF) = %d, want 1", snap.Plays.PlayCount("BUF"))
	}
	if !snap.Grades.HasTeam("BUF") {
		t.Errorf("Grades.HasTeam(BUF) = false, want true")
	}
	entries := snap.Injuries.For("BUF")
	if len(entries) != 1 || entries[0].Status != domain.Out {
		t.Errorf("Injuries.For(BUF) = %+v, want one OUT entry", entries)
	}
}
