// Package splice merges external script content into component source text.
//
// Merging works on text patterns only. The first script setup block wins, and the
// first closing template tag is used when there is no such block.
package splice

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/scriptmerge/internal/core/domain"
)

const (
	templateClose = "</template>"
	scriptClose   = "</script>"
	scriptOpen    = "<script setup>"
)

// scriptSetupPattern matches the first script setup block. The body is non-greedy so
// it stops at the first closing script tag.
var scriptSetupPattern = regexp.MustCompile(`(<script[^>]*setup[^>]*>)([\s\S]*?)(</script>)`)

// Splice inserts script, preceded by comment, into source. It reports false when
// source has neither a script setup block nor a closing template tag.
func Splice(source, script, comment string) (string, bool) {
	if loc := scriptSetupPattern.FindStringSubmatchIndex(source); loc != nil {
		open := source[loc[2]:loc[3]]
		inner := source[loc[4]:loc[5]]

		var b strings.Builder
		b.Grow(len(source) + len(script) + len(comment) + 3)
		b.WriteString(source[:loc[0]])
		b.WriteString(open)
		b.WriteString("\n")
		b.WriteString(comment)
		b.WriteString("\n")
		b.WriteString(script)
		b.WriteString("\n")
		b.WriteString(inner)
		b.WriteString(scriptClose)
		b.WriteString(source[loc[1]:])
		return b.String(), true
	}

	if idx := strings.Index(source, templateClose); idx >= 0 {
		block := templateClose + "\n\n" + scriptOpen + "\n" + comment + "\n" + script + "\n" + scriptClose
		return source[:idx] + block + source[idx+len(templateClose):], true
	}

	return source, false
}

// FormatComment renders template, replacing every placeholder with the script path
// relative to the component's directory in forward-slash form.
func FormatComment(template, componentPath, scriptPath string) string {
	rel, err := filepath.Rel(filepath.Dir(componentPath), scriptPath)
	if err != nil {
		rel = scriptPath
	}
	return strings.ReplaceAll(template, domain.FilenamePlaceholder, filepath.ToSlash(rel))
}
