package domain

// OutputRecord describes one merged component written by a build.
type OutputRecord struct {
	// Output is the slash-separated path of the merged file relative to the output directory.
	Output    string `json:"output"`
	Component string `json:"component"`
	Script    string `json:"script"`
	Hash      uint64 `json:"hash"`
}
