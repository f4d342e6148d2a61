package engine

import "war/metrics"

type Engine interface {
	// Run plays a session until the player quits, wins or input runs out
	Run() (won bool, session metrics.SessionMetric)
}
