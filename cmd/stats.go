package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jsalter/cmi5quest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show hero and reporting statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		hero, err := st.SaveRepo().LoadPlayer(ctx)
		if err != nil {
			if errors.Is(err, store.ErrNoSave) {
				fmt.Println("No saved game yet. Run cmi5quest to start one.")
				return nil
			}
			return fmt.Errorf("load save: %w", err)
		}

		fmt.Printf("%s the %s\n", hero.Name, hero.Class)
		fmt.Printf("  Level %d  (%d/%d XP to next, %d total)\n",
			hero.Level, hero.XP, hero.XPToNext, hero.TotalXP)
		fmt.Printf("  HP %d/%d   Stars %d\n", hero.HP, hero.MaxHP, hero.Stars)
		fmt.Printf("  Lessons completed: %d   Bosses defeated: %d   Worlds unlocked: %d\n",
			len(hero.Progress.LessonsCompleted),
			len(hero.Progress.BossesDefeated),
			len(hero.Progress.WorldsUnlocked))
		if len(hero.Skills) > 0 {
			fmt.Println("  Skills:")
			for _, sk := range hero.Skills {
				fmt.Printf("    %s - %s\n", sk.Name, sk.Desc)
			}
		}

		if at, err := st.SaveRepo().SavedAt(ctx); err == nil {
			fmt.Printf("  Last saved: %s\n", at.Format("2006-01-02 15:04:05"))
		}

		total, delivered, err := st.StatementRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count statements: %w", err)
		}
		fmt.Printf("\nxAPI statements: %d logged, %d delivered\n", total, delivered)

		verbs, err := st.StatementRepo().VerbCounts(ctx)
		if err != nil {
			return fmt.Errorf("count verbs: %w", err)
		}
		names := make([]string, 0, len(verbs))
		for v := range verbs {
			names = append(names, v)
		}
		sort.Strings(names)
		for _, v := range names {
			fmt.Printf("  %-12s %d\n", v, verbs[v])
		}
		return nil
	},
}
