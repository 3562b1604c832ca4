package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"recipefinder/database"
	"recipefinder/internal/config"
	"recipefinder/internal/logger"
	"recipefinder/internal/utils"

	"go.uber.org/zap"
)

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of verified test users to create")
	recipes := seedCmd.String("recipes", "", "Comma separated recipe IDs to bookmark (default: a built-in list)")
	maxPerUser := seedCmd.Int("max-per-user", 3, "Maximum favourites per user")
	seed := seedCmd.Int64("seed", time.Now().UnixNano(), "Random seed")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	countCmd := flag.NewFlagSet("count", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg, err := config.Load(".env", "../../.env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Level: cfg.App.LogLevel, Format: "console", Development: true})
	defer log.Sync()

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()
	seeder := utils.NewSeeder(db, log, *seed)

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		recipeIDs, err := parseRecipeIDs(*recipes)
		if err != nil {
			log.Fatal("invalid --recipes", zap.Error(err))
		}

		users, err := seeder.SeedUsers(ctx, *numUsers)
		if err != nil {
			log.Fatal("error seeding users", zap.Error(err))
		}
		if _, err := seeder.SeedFavourites(ctx, users, recipeIDs, *maxPerUser); err != nil {
			log.Fatal("error seeding favourites", zap.Error(err))
		}

	case "clear":
		clearCmd.Parse(os.Args[2:])
		if _, err := seeder.CleanupTestUsers(ctx); err != nil {
			log.Fatal("error clearing test users", zap.Error(err))
		}

	case "count":
		countCmd.Parse(os.Args[2:])
		counts, err := seeder.FavouriteCounts(ctx)
		if err != nil {
			log.Fatal("error counting favourites", zap.Error(err))
		}
		for recipeID, count := range counts {
			fmt.Printf("%d\t%d\n", recipeID, count)
		}

	default:
		printHelp()
		os.Exit(1)
	}
}

func parseRecipeIDs(list string) ([]int64, error) {
	if strings.TrimSpace(list) == "" {
		return utils.DefaultRecipeIDs, nil
	}
	var ids []int64
	for _, part := range strings.Split(list, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("recipe id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printHelp() {
	fmt.Println("Usage: seed <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed   create verified test users and bookmark recipes for them")
	fmt.Println("         --users N --recipes 716429,715538 --max-per-user 3 --seed 42")
	fmt.Println("  clear  delete the test users and their favourites")
	fmt.Println("  count  print the number of favourites per recipe")
}
