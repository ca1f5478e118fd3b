// Package timezone provides timezone utilities for the application.
//
//	timezone.Init(cfg)                          // once at startup, reads APP_TIMEZONE
//	now := timezone.Now()                       // current time in app timezone
//	stamp := timezone.Format(now, time.RFC3339) // formatted in app timezone
//
// Until Init runs every helper works in UTC.
package timezone
