package services

import "time"

type BuildResult struct {
	RootPath string
	Duration time.Duration
}

type RemoveResult struct {
	SuccessCount int
	FailureCount int
	Duration     time.Duration
	Errors       []string
}
