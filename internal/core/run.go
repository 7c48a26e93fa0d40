package core

// RunSummary describes how far a finished run got beyond its score.
type RunSummary struct {
	Level  int // Zero-based
	Wishes int
}

// RunSource is implemented by games that report run details.
type RunSource interface {
	RunSummary() RunSummary
}
