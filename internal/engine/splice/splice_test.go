package splice_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/scriptmerge/internal/engine/splice"
)

const (
	counterScript  = "import { ref } from 'vue'\nconst count = ref(0)"
	counterComment = "// Injected from ../scripts/Counter.js"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "script_setup",
			source: "<template>\n  <button @click=\"count++\">{{ count }}</button>\n</template>\n\n<script setup>\nconst label = 'Count'\n</script>\n",
		},
		{
			name:   "script_setup_with_attributes",
			source: "<script setup lang=\"ts\">\nconst label: string = 'Count'\n</script>\n\n<template>\n  <span>{{ label }}</span>\n</template>\n",
		},
		{
			name:   "template_fallback",
			source: "<template>\n  <p>{{ count }}</p>\n</template>\n\n<style scoped>\np { color: red; }\n</style>\n",
		},
		{
			name:   "first_block_only",
			source: "<template>\n  <div />\n</template>\n\n<script setup>\nconst a = 1\n</script>\n\n<script setup>\nconst b = 2\n</script>\n",
		},
		{
			name:   "options_script",
			source: "<script>\nexport default { name: 'Counter' }\n</script>\n\n<template>\n  <p>{{ count }}</p>\n</template>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := splice.Splice(tt.source, counterScript, counterComment)
			assert.True(t, ok)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestSplice_PreservesInnerContentAfterScript(t *testing.T) {
	source := "<script setup>\nconst local = 1\n</script>"

	out, ok := splice.Splice(source, "const injected = 2", "// c")

	assert.True(t, ok)
	assert.Equal(t, "<script setup>\n// c\nconst injected = 2\n\nconst local = 1\n</script>", out)
}

func TestSplice_EmptyScriptSetupBlock(t *testing.T) {
	out, ok := splice.Splice("<script setup></script>", "x()", "// c")

	assert.True(t, ok)
	assert.Equal(t, "<script setup>\n// c\nx()\n</script>", out)
}

func TestSplice_NoAnchor(t *testing.T) {
	source := "<div>no template section here</div>\n"

	out, ok := splice.Splice(source, counterScript, counterComment)

	assert.False(t, ok)
	assert.Equal(t, source, out)
}

func TestSplice_OnlyFirstTemplateClose(t *testing.T) {
	source := "<template>a</template><template>b</template>"

	out, ok := splice.Splice(source, "s", "// c")

	assert.True(t, ok)
	assert.Equal(t, "<template>a</template>\n\n<script setup>\n// c\ns\n</script><template>b</template>", out)
}

func TestFormatComment(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		component string
		script    string
		want      string
	}{
		{
			name:      "sibling file",
			template:  "// Injected from {filename}",
			component: "/p/src/components/Foo.vue",
			script:    "/p/src/components/Foo.script.js",
			want:      "// Injected from Foo.script.js",
		},
		{
			name:      "search directory",
			template:  "// Injected from {filename}",
			component: "/p/src/components/Foo.vue",
			script:    "/p/src/scripts/Foo.js",
			want:      "// Injected from ../scripts/Foo.js",
		},
		{
			name:      "every placeholder is replaced",
			template:  "/* {filename} | {filename} */",
			component: "/p/a/Foo.vue",
			script:    "/p/b/Foo.js",
			want:      "/* ../b/Foo.js | ../b/Foo.js */",
		},
		{
			name:      "template without placeholder",
			template:  "// merged",
			component: "/p/a/Foo.vue",
			script:    "/p/b/Foo.js",
			want:      "// merged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splice.FormatComment(tt.template, tt.component, tt.script))
		})
	}
}
