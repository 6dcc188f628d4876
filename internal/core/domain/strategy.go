package domain

// ScriptLocator maps a component path to its external script path.
// It replaces the built-in search when set on Config.
type ScriptLocator interface {
	Locate(componentPath string) (scriptPath string, ok bool)
}

// LocatorFunc adapts a function to ScriptLocator.
type LocatorFunc func(componentPath string) (string, bool)

// Locate calls f.
func (f LocatorFunc) Locate(componentPath string) (string, bool) {
	return f(componentPath)
}

// TransformInput carries everything a SourceTransformer needs for one component.
type TransformInput struct {
	// Source is the component's current text.
	Source string
	// Script is the content of the resolved script file.
	Script string
	// Comment is the rendered comment template.
	Comment string
	// ComponentPath identifies the component.
	ComponentPath string
	// ScriptPath is the resolved script file.
	ScriptPath string
}

// SourceTransformer produces the merged component text.
// Returning ok=false signals that the component should be left untouched.
type SourceTransformer interface {
	Transform(in TransformInput) (out string, ok bool, err error)
}

// TransformerFunc adapts a function to SourceTransformer.
type TransformerFunc func(in TransformInput) (string, bool, error)

// Transform calls f.
func (f TransformerFunc) Transform(in TransformInput) (string, bool, error) {
	return f(in)
}
