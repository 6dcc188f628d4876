package domain

// FileStatus is the outcome of processing one component during a build.
type FileStatus uint8

const (
	// StatusMerged means a script was spliced in and the output was written.
	StatusMerged FileStatus = iota
	// StatusUpToDate means the merged output already existed with identical content.
	StatusUpToDate
	// StatusUnchanged means the component had no external script.
	StatusUnchanged
	// StatusFailed means the component could not be processed.
	StatusFailed
)

// String returns a human-readable status name.
func (s FileStatus) String() string {
	switch s {
	case StatusMerged:
		return "merged"
	case StatusUpToDate:
		return "up-to-date"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult describes what happened to one component.
type FileResult struct {
	Component string
	Script    string
	Output    string
	Status    FileStatus
	Err       error
}

// BuildSummary counts file results by status.
type BuildSummary struct {
	Total     int
	Merged    int
	UpToDate  int
	Unchanged int
	Failed    int
	DryRun    bool
}

// Summarize counts the given results.
func Summarize(results []FileResult) BuildSummary {
	s := BuildSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusMerged:
			s.Merged++
		case StatusUpToDate:
			s.UpToDate++
		case StatusUnchanged:
			s.Unchanged++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
