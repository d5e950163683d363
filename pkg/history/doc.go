// Package history records a summary of every validation run so operators
// can see which files were submitted, when, and which rules fired most.
//
// Runs are kept in SQLite (SQLiteStore) or in memory (MemoryStore). A
// Pruner deletes runs past the retention period and a Scheduler runs it on
// a cron schedule:
//
//	store, _ := history.NewSQLiteStore(&history.SQLiteConfig{Path: "history.db", WALMode: true})
//	pruner := history.NewPruner(store, history.RetentionConfig{RetentionDays: 90, PruneSchedule: "0 3 * * *"})
//	_ = history.NewScheduler(pruner).Start(ctx)
package history
