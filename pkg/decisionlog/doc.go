// Package decisionlog records the outcome of authorization decisions as
// structured log events. It implements accessctl.Observer and is the
// diagnostic collaborator of the engine: it observes decisions strictly
// after they are made and can never alter a pass/fail outcome.
//
// Every allowed or denied check produces one slog record carrying a unique
// event ID, the permission name, the outcome, and the denial detail when
// present.
//
// # Usage
//
//	rec := decisionlog.New(slog.Default())
//	accessctl.SetObserver(rec)
//
// Or drive it from the environment, in which case a missing or disabled
// configuration yields a no-op recorder:
//
//	rec, err := decisionlog.NewFromEnv()
//	if err != nil {
//	    return err
//	}
//	accessctl.SetObserver(rec)
//
// Recognized variables (an optional .env file is loaded first):
//
//	AUTHZLOG_ENABLED  bool, default false
//	AUTHZLOG_FORMAT   "json" or "text", default "text"
//	AUTHZLOG_LEVEL    slog level name, default "info"
//	AUTHZLOG_DENIALS_ONLY  bool, default false
package decisionlog
