package splice

import (
	"fmt"

	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/zerr"
)

// ScriptResolver maps a component path to its external script.
type ScriptResolver interface {
	Resolve(componentPath string) (string, bool)
}

// Transformer produces merged component source. Every failure is logged and
// reported as no change.
type Transformer struct {
	resolver ScriptResolver
	fsys     ports.FileSystem
	log      ports.Logger
	comment  string
	override domain.SourceTransformer
}

// NewTransformer creates a Transformer. A nil override selects the default splicing rule.
func NewTransformer(
	resolver ScriptResolver,
	fsys ports.FileSystem,
	log ports.Logger,
	comment string,
	override domain.SourceTransformer,
) *Transformer {
	if comment == "" {
		comment = domain.DefaultComment
	}
	return &Transformer{
		resolver: resolver,
		fsys:     fsys,
		log:      log,
		comment:  comment,
		override: override,
	}
}

// Transform returns the merged source for the component at componentPath and
// whether it differs from the input.
func (t *Transformer) Transform(source, componentPath string) (string, bool) {
	if !domain.IsComponent(componentPath) {
		return source, false
	}

	scriptPath, ok := t.resolver.Resolve(componentPath)
	if !ok {
		t.log.Debug(fmt.Sprintf("no external script for %s", componentPath))
		return source, false
	}

	content, err := t.fsys.ReadFile(scriptPath)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrScriptReadFailed.Error()), "script", scriptPath)
		t.log.Error(zerr.With(err, "component", componentPath))
		return source, false
	}

	comment := FormatComment(t.comment, componentPath, scriptPath)

	if t.override != nil {
		out, changed, err := t.override.Transform(domain.TransformInput{
			Source:        source,
			Script:        string(content),
			Comment:       comment,
			ComponentPath: componentPath,
			ScriptPath:    scriptPath,
		})
		if err != nil {
			t.log.Error(zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "component", componentPath))
			return source, false
		}
		if !changed {
			return source, false
		}
		return out, true
	}

	out, changed := Splice(source, string(content), comment)
	if !changed {
		t.log.Debug(fmt.Sprintf("%s has no script setup block or closing template tag", componentPath))
		return source, false
	}
	t.log.Debug(fmt.Sprintf("merged %s into %s", scriptPath, componentPath))
	return out, true
}
