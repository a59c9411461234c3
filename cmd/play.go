package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsalter/cmi5quest/internal/app"
	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/cmi5"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
	addPlayFlags(rootCmd)
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().String("launch-url", "", "Full cmi5 launch URL as passed by the LMS")
	c.Flags().String("fetch", "", "cmi5 auth-token fetch URL")
	c.Flags().String("endpoint", "", "xAPI endpoint URL")
	c.Flags().String("actor", "", "Learner actor as JSON")
	c.Flags().String("registration", "", "cmi5 registration id")
	c.Flags().String("activity-id", "", "Course activity id")
	c.Flags().String("catalog", "", "Path to a JSON course catalog override")
	c.Flags().Uint64("seed", 0, "Random seed for shuffles and exam sampling (0 = random)")
}

func runPlay(cmd *cobra.Command) error {
	ctx := context.Background()

	// .env is optional; LMS launch settings may live there.
	_ = godotenv.Load()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	params, err := launchParams(cmd)
	if err != nil {
		return err
	}

	bridge, launchData, err := cmi5.Connect(ctx, params, st.StatementRepo(), nil)
	if err != nil {
		return fmt.Errorf("cmi5 launch: %w", err)
	}
	// Close flushes the queue and emits terminated last.
	defer bridge.Close()

	gctx := game.New()
	gctx.Save = st.SaveRepo()
	gctx.Load = st.SaveRepo()
	gctx.Reporter = bridge
	gctx.Mastery = launchData.MasteryScore

	if path := flagOrEnv(cmd, "catalog", "CMI5QUEST_CATALOG"); path != "" {
		cat, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		gctx.Catalog = cat
	}

	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		gctx.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	if err := app.Run(gctx); err != nil {
		return err
	}
	gctx.Autosave()
	return nil
}

// launchParams resolves cmi5 launch parameters from the --launch-url
// flag, or from individual flags falling back to CMI5QUEST_* env vars.
// With none of them set the game runs standalone.
func launchParams(cmd *cobra.Command) (cmi5.LaunchParams, error) {
	if raw, _ := cmd.Flags().GetString("launch-url"); raw != "" {
		return cmi5.ParseLaunchURL(raw)
	}

	p := cmi5.LaunchParams{
		Fetch:        flagOrEnv(cmd, "fetch", "CMI5QUEST_FETCH"),
		Endpoint:     flagOrEnv(cmd, "endpoint", "CMI5QUEST_ENDPOINT"),
		Registration: flagOrEnv(cmd, "registration", "CMI5QUEST_REGISTRATION"),
		ActivityID:   flagOrEnv(cmd, "activity-id", "CMI5QUEST_ACTIVITY_ID"),
	}
	if raw := flagOrEnv(cmd, "actor", "CMI5QUEST_ACTOR"); raw != "" {
		var a cmi5.Actor
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return cmi5.LaunchParams{}, fmt.Errorf("parse actor: %w", err)
		}
		p.Actor = &a
	}
	return p, nil
}

func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}
