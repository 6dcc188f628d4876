package domain

// Resolution is the outcome of resolving one component path.
// The zero value is the "not found" marker.
type Resolution struct {
	Path  string
	Found bool
}

// NotFound is the cached marker for a component without an external script.
var NotFound = Resolution{}

// Resolved returns a Resolution pointing at path.
func Resolved(path string) Resolution {
	return Resolution{Path: path, Found: true}
}

// Candidate is a file discovered while scanning a search directory.
type Candidate struct {
	// Path is the full path of the file.
	Path string
	// Name is the file name.
	Name string
	// Base is Name without Extension.
	Base string
	// Extension is the configured suffix the name ends with.
	Extension string
}
