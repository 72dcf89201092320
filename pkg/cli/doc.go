// Package cli implements the flavorfinds command.
//
// # Usage
//
//	flavorfinds [--data-dir DIR] [--log-level LEVEL] [--cors-origin ORIGIN]...
//
// The command starts the HTTP server and blocks until SIGINT or SIGTERM.
//
// # Flags
//
//	--data-dir, -d  Feedback directory (default: data, env: FLAVORFINDS_DATA_DIR)
//	--log-level     debug, info, warn or error (default: info, env: LOG_LEVEL)
//	--cors-origin   Allowed CORS origin, repeatable (env: FLAVORFINDS_CORS_ORIGINS)
//	--help, -h      Show command help
//	--version, -v   Show version information
//
// # Examples
//
// Serve with feedback stored under /var/lib/flavorfinds:
//
//	flavorfinds --data-dir /var/lib/flavorfinds
//
// Allow a separately hosted front end to call the API:
//
//	flavorfinds --cors-origin https://app.example.com
package cli
