package ports

import (
	"time"

	"go.trai.ch/scriptmerge/internal/core/domain"
)

// Reporter presents build progress to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnBuildStart is called once the component files have been collected.
	OnBuildStart(root string, total int)
	// OnFileResult is called after each component has been processed.
	// It may be called concurrently.
	OnFileResult(result domain.FileResult)
	// OnBuildComplete is called after every component has been processed.
	OnBuildComplete(summary domain.BuildSummary, elapsed time.Duration)
}
