package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fastbreak/internal/common/clock"
	commonUUID "github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/config"
	"github.com/KirkDiggler/fastbreak/internal/dice"
	"github.com/KirkDiggler/fastbreak/internal/models"
	bracketRepo "github.com/KirkDiggler/fastbreak/internal/repositories/bracket"
	gameRepo "github.com/KirkDiggler/fastbreak/internal/repositories/game"
	teamRepo "github.com/KirkDiggler/fastbreak/internal/repositories/team"
	"github.com/KirkDiggler/fastbreak/internal/services/playoffs"
	"github.com/KirkDiggler/fastbreak/internal/services/rotation"
	"github.com/KirkDiggler/fastbreak/internal/services/season"
	"github.com/KirkDiggler/fastbreak/internal/services/simulation"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	brackets, err := bracketRepo.NewRedis(&bracketRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create bracket repository: %v", err)
	}

	teamsRepo, err := teamRepo.NewRedis(&teamRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create team repository: %v", err)
	}

	// Initialize dice roller; a fixed seed makes a run reproducible
	seed, _ := strconv.ParseInt(getEnv("SIM_SEED", "0"), 10, 64)
	diceRoller := dice.New(&dice.Config{Seed: seed})

	// Load simulation coefficients
	coeffs := config.Default()
	if path := getEnv("SIM_COEFFS", ""); path != "" {
		coeffs, err = config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load coefficients: %v", err)
		}
	}

	systemClock := &clock.DefaultClock{}
	uuidGen := commonUUID.New()

	// Initialize services
	rotationSvc := rotation.New()

	simulationSvc, err := simulation.New(&simulation.Config{
		Coefficients:  coeffs,
		Rotation:      rotationSvc,
		DiceRoller:    diceRoller,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation service: %v", err)
	}

	playoffsSvc, err := playoffs.New(&playoffs.Config{
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create playoffs service: %v", err)
	}

	seasonSvc, err := season.New(&season.Config{
		GameRepo:      games,
		BracketRepo:   brackets,
		Simulation:    simulationSvc,
		Playoffs:      playoffsSvc,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create season service: %v", err)
	}

	seasonID := getEnv("SEASON_ID", fmt.Sprintf("season-%d", time.Now().Year()))
	teams := buildDemoLeague(diceRoller, rotationSvc)

	runCtx := context.Background()

	for _, t := range teams {
		if err := teamsRepo.SaveTeam(runCtx, &teamRepo.SaveTeamInput{Team: t}); err != nil {
			log.Fatalf("Failed to save team %s: %v", t.Name, err)
		}
	}

	log.Printf("Simulating regular season %s with %d teams", seasonID, len(teams))
	regular, err := seasonSvc.PlayRegularSeason(runCtx, &season.PlayRegularSeasonInput{
		SeasonID: seasonID,
		Teams:    teams,
	})
	if err != nil {
		log.Fatalf("Regular season failed: %v", err)
	}

	result, err := seasonSvc.RunPlayoffs(runCtx, &season.RunPlayoffsInput{
		SeasonID: seasonID,
		Teams:    teams,
		Games:    regular.Games,
	})
	if err != nil {
		log.Fatalf("Playoffs failed: %v", err)
	}

	championName := result.Bracket.ChampionID
	for _, t := range teams {
		if t.ID == result.Bracket.ChampionID {
			championName = t.Name
		}
	}
	log.Printf("Champion: %s", championName)
}

// teamNames is the demo league, east first
var teamNames = []string{
	"Boston Stags", "Brooklyn Barons", "New York Herons", "Philadelphia Forge", "Toronto Huskies",
	"Chicago Zephyrs", "Cleveland Rockers", "Detroit Falcons", "Indiana Racers", "Milwaukee Dukes",
	"Atlanta Firebirds", "Charlotte Crowns", "Miami Cyclones", "Orlando Comets", "Washington Senators",
	"Denver Peaks", "Minnesota Loons", "Oklahoma City Drillers", "Portland Pioneers", "Utah Summit",
	"Golden State Surge", "Los Angeles Stars", "Sacramento Miners", "Phoenix Scorpions", "San Diego Sails",
	"Dallas Rangers", "Houston Comets", "Memphis Kings", "New Orleans Brass", "San Antonio Defenders",
}

// buildDemoLeague creates thirty teams with rolled rosters and a
// nine-man rotation preset apiece. Real roster generation lives in
// the franchise layer; this is just enough league to run the engine.
func buildDemoLeague(roller dice.Roller, rotationSvc rotation.Service) []*models.Team {
	teams := make([]*models.Team, 0, len(teamNames))

	for i, name := range teamNames {
		conf := models.ConferenceEast
		if i >= len(teamNames)/2 {
			conf = models.ConferenceWest
		}

		team := &models.Team{
			ID:         fmt.Sprintf("team-%02d", i+1),
			Name:       name,
			Conference: conf,
		}

		for p := 0; p < models.MinRosterSize; p++ {
			pos := models.AllPositions[p%len(models.AllPositions)]
			player := &models.Player{
				ID:       fmt.Sprintf("%s-p%02d", team.ID, p+1),
				Name:     fmt.Sprintf("%s Player %d", name, p+1),
				Position: pos,
				Attributes: models.PlayerAttributes{
					Shooting:     40 + roller.Intn(50),
					ThreePoint:   40 + roller.Intn(50),
					Inside:       40 + roller.Intn(50),
					Passing:      40 + roller.Intn(50),
					BallHandling: 40 + roller.Intn(50),
					Rebounding:   40 + roller.Intn(50),
					Defense:      40 + roller.Intn(50),
					Blocks:       40 + roller.Intn(50),
					Steals:       40 + roller.Intn(50),
					Speed:        40 + roller.Intn(50),
				}.Clamped(),
			}
			team.Roster = append(team.Roster, player)
		}

		for slot := 0; slot < 5; slot++ {
			team.StartingLineup[slot] = team.Roster[slot].ID
		}

		preset, err := rotationSvc.GeneratePreset(&rotation.GeneratePresetInput{
			Size:           9,
			Roster:         team.Roster,
			StartingLineup: team.StartingLineup,
		})
		if err != nil {
			log.Fatalf("Failed to build rotation for %s: %v", name, err)
		}
		team.Rotation = preset.Config

		teams = append(teams, team)
	}

	return teams
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
