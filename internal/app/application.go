package app

import (
	"log/slog"

	"metrobus.islamabad.org/internal/directory"
	"metrobus.islamabad.org/internal/planner"
	"metrobus.islamabad.org/internal/schedule"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: configuration, the logger, and the read-only schedule,
// directory and planner collaborators.
type Application struct {
	Config    Config
	Logger    *slog.Logger
	Schedule  *schedule.Manager
	Directory *directory.Directory
	Planner   *planner.Planner
}
