// Package health serves the liveness and readiness endpoints of the watch
// process.
//
// Liveness answers as long as the process runs. Readiness runs every
// registered check concurrently, each bounded by the checker timeout, and
// answers 503 when any of them fails:
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("inbox", health.DirCheck(cfg.Inbox.Dir))
//	checker.RegisterCheck("history", health.PingCheck(store))
//
//	mux := http.NewServeMux()
//	health.Register(mux, checker, version, commit, buildDate)
package health
