package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viteConfigReact = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

// https://vite.dev/config/
export default defineConfig({
  plugins: [react()],
})
`

var (
	tailwindImport = Descriptor{
		TargetFileCandidates: []string{"vite.config.ts", "vite.config.js"},
		IdempotenceMarker:    "import tailwindcss from '@tailwindcss/vite'",
		Rule:                 InsertAfterLastImport(),
		Payload:              "import tailwindcss from '@tailwindcss/vite'",
	}
	tailwindPlugin = Descriptor{
		TargetFileCandidates: []string{"vite.config.ts", "vite.config.js"},
		IdempotenceMarker:    "tailwindcss()",
		Rule:                 InsertAtFirstOccurrence(`plugins:\s*\[`),
		Payload:              "tailwindcss(),",
	}
)

// TestApply_AfterLastImport tests insertion after the last import line.
func TestApply_AfterLastImport(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single import",
			input: "import a from 'a'\nfoo()\n",
			want:  "import a from 'a'\nX\nfoo()\n",
		},
		{
			name:  "several imports",
			input: "import a from 'a'\nimport './b.css'\n\nfoo()",
			want:  "import a from 'a'\nimport './b.css'\nX\n\nfoo()",
		},
		{
			name:  "no imports falls back to top",
			input: "foo()\nbar()\n",
			want:  "X\nfoo()\nbar()\n",
		},
		{
			name:  "empty file",
			input: "",
			want:  "X\n",
		},
		{
			name:  "multi-line import block",
			input: "import {\n  a,\n  b,\n} from 'x'\nfoo()",
			want:  "import {\n  a,\n  b,\n} from 'x'\nX\nfoo()",
		},
		{
			name:  "dynamic import is not an anchor",
			input: "import a from 'a'\nconst m = import('./m')\n",
			want:  "import a from 'a'\nX\nconst m = import('./m')\n",
		},
		{
			name:  "identifier starting with import is not an anchor",
			input: "importantThing()\n",
			want:  "X\nimportantThing()\n",
		},
		{
			name:  "crlf line endings are kept",
			input: "import a from 'a'\r\nfoo()\r\n",
			want:  "import a from 'a'\r\nX\r\nfoo()\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Descriptor{IdempotenceMarker: "X", Rule: InsertAfterLastImport(), Payload: "X"}
			got, result := Apply(tt.input, d)
			assert.Equal(t, Applied, result)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestApply_AfterLastImport_NonCorruption checks that every original line survives
// in order and exactly one payload line is added.
func TestApply_AfterLastImport_NonCorruption(t *testing.T) {
	inputs := []string{
		viteConfigReact,
		"import { createApp } from 'vue'\nimport './style.css'\nimport App from './App.vue'\n\ncreateApp(App).mount('#app')\n",
		"const x = 1\n",
		"",
	}

	for _, input := range inputs {
		got, result := Apply(input, tailwindImport)
		require.Equal(t, Applied, result)

		original := strings.Split(input, "\n")
		patched := strings.Split(got, "\n")
		require.Len(t, patched, len(original)+1)

		added := 0
		j := 0
		for _, line := range patched {
			if j < len(original) && line == original[j] {
				j++
				continue
			}
			assert.Contains(t, line, tailwindImport.Payload)
			added++
		}
		assert.Equal(t, len(original), j, "original lines must appear in order")
		assert.Equal(t, 1, added)
	}
}

// TestApply_Idempotence tests that a second application is a no-op.
func TestApply_Idempotence(t *testing.T) {
	descriptors := []Descriptor{
		tailwindImport,
		tailwindPlugin,
		{IdempotenceMarker: `@import "tailwindcss"`, Rule: InsertAtTop(), Payload: `@import "tailwindcss";`},
		{IdempotenceMarker: "<RouterProvider", Rule: Replace(`<App\s*/>`), Payload: "<RouterProvider router={router} />"},
	}
	inputs := []string{
		viteConfigReact,
		":root { color: red; }\n",
		"root.render(<StrictMode><App /></StrictMode>)\n",
	}

	for _, d := range descriptors {
		for _, input := range inputs {
			first, r1 := Apply(input, d)
			if r1 == AnchorNotFound {
				continue
			}
			second, r2 := Apply(first, d)
			assert.Equal(t, AlreadyApplied, r2, "rule %s", d.Rule)
			assert.Equal(t, first, second)
		}
	}
}

// TestApply_BeforeFirstOccurrenceOfPattern tests plugin array registration.
func TestApply_BeforeFirstOccurrenceOfPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "entry on same line",
			input: "export default defineConfig({\n  plugins: [react()],\n})\n",
			want:  "export default defineConfig({\n  plugins: [\n    tailwindcss(),\n    react()],\n})\n",
		},
		{
			name:  "empty array on one line",
			input: "export default defineConfig({ plugins: [] })",
			want:  "export default defineConfig({ plugins: [\n  tailwindcss(),\n] })",
		},
		{
			name:  "array already broken over lines",
			input: "export default {\n  plugins: [\n    vue(),\n  ],\n}\n",
			want:  "export default {\n  plugins: [\n    tailwindcss(),\n    vue(),\n  ],\n}\n",
		},
		{
			name:  "only first occurrence",
			input: "a({ plugins: [x()] })\nb({ plugins: [y()] })",
			want:  "a({ plugins: [\n  tailwindcss(),\n  x()] })\nb({ plugins: [y()] })",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result := Apply(tt.input, tailwindPlugin)
			assert.Equal(t, Applied, result)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestApply_AnchorNotFound tests that a missing anchor leaves text untouched.
func TestApply_AnchorNotFound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		d     Descriptor
	}{
		{"no plugins array", "export default defineConfig({})\n", tailwindPlugin},
		{"empty text", "", tailwindPlugin},
		{"replace without match", "createApp(Main)", Descriptor{IdempotenceMarker: "use(router)", Rule: Replace(`createApp\(App\)`), Payload: "createApp(App).use(router)"}},
		{"invalid pattern", "plugins: [", Descriptor{IdempotenceMarker: "zzz", Rule: InsertAtFirstOccurrence(`([`), Payload: "zzz"}},
		{"unknown rule", "anything", Descriptor{IdempotenceMarker: "zzz", Rule: Rule{Kind: RuleKind(99)}, Payload: "zzz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result := Apply(tt.input, tt.d)
			assert.Equal(t, AnchorNotFound, result)
			assert.Equal(t, tt.input, got)
		})
	}
}

// TestApply_MarkerCheckedBeforeAnchor tests that AlreadyApplied wins over a missing anchor.
func TestApply_MarkerCheckedBeforeAnchor(t *testing.T) {
	input := "// tailwindcss() registered elsewhere\n"
	got, result := Apply(input, tailwindPlugin)
	assert.Equal(t, AlreadyApplied, result)
	assert.Equal(t, input, got)
}

// TestApply_ReplaceFirstMatch tests entry-point substitution.
func TestApply_ReplaceFirstMatch(t *testing.T) {
	input := "import App from './App.tsx'\n\ncreateRoot(el).render(\n  <StrictMode>\n    <App />\n  </StrictMode>,\n)\n"
	d := Descriptor{
		IdempotenceMarker: "<RouterProvider",
		Rule:              Replace(`<App\s*/>`),
		Payload:           "<RouterProvider router={router} />",
	}

	got, result := Apply(input, d)
	require.Equal(t, Applied, result)
	assert.Contains(t, got, "    <RouterProvider router={router} />\n")
	assert.NotContains(t, got, "<App />")
	assert.Contains(t, got, "import App from './App.tsx'")
}

// TestApply_EmptyMarkerUsesPayload tests the payload fallback for the idempotence check.
func TestApply_EmptyMarkerUsesPayload(t *testing.T) {
	d := Descriptor{Rule: InsertAtTop(), Payload: "// header"}
	first, r1 := Apply("body\n", d)
	require.Equal(t, Applied, r1)
	_, r2 := Apply(first, d)
	assert.Equal(t, AlreadyApplied, r2)
}

// TestApplyAll tests the styling scenario on a minimal vite config.
func TestApplyAll(t *testing.T) {
	input := "import { defineConfig } from 'vite'\nexport default defineConfig({ plugins: [] })"

	got, results := ApplyAll(input, []Descriptor{tailwindImport, tailwindPlugin})
	require.Equal(t, []Result{Applied, Applied}, results)

	importIdx := strings.Index(got, "import tailwindcss from '@tailwindcss/vite'")
	exportIdx := strings.Index(got, "export default")
	require.NotEqual(t, -1, importIdx)
	assert.Less(t, importIdx, exportIdx)

	pluginsIdx := strings.Index(got, "plugins: [")
	callIdx := strings.Index(got, "tailwindcss()")
	closeIdx := strings.Index(got[pluginsIdx:], "]") + pluginsIdx
	assert.Greater(t, callIdx, pluginsIdx)
	assert.Less(t, callIdx, closeIdx)

	again, results := ApplyAll(got, []Descriptor{tailwindImport, tailwindPlugin})
	assert.Equal(t, []Result{AlreadyApplied, AlreadyApplied}, results)
	assert.Equal(t, got, again)
}

// TestResultDone tests the Done helper.
func TestResultDone(t *testing.T) {
	assert.True(t, Applied.Done())
	assert.True(t, AlreadyApplied.Done())
	assert.False(t, AnchorNotFound.Done())
	assert.False(t, FileNotFound.Done())
}

// TestRuleString tests rule formatting.
func TestRuleString(t *testing.T) {
	assert.Equal(t, "AfterLastImport", InsertAfterLastImport().String())
	assert.Equal(t, `BeforeFirstOccurrenceOfPattern(plugins:\s*\[)`, tailwindPlugin.Rule.String())
	assert.Equal(t, "RuleKind(42)", RuleKind(42).String())
}

// TestApply_MarkerIgnoresQuoteStyle checks double-quoted sources count as patched.
func TestApply_MarkerIgnoresQuoteStyle(t *testing.T) {
	input := "import { defineConfig } from \"vite\";\nimport tailwindcss from \"@tailwindcss/vite\";\n"

	got, result := Apply(input, tailwindImport)
	assert.Equal(t, AlreadyApplied, result)
	assert.Equal(t, input, got)

	css := "@import 'tailwindcss';\nbody {}\n"
	got, result = Apply(css, Descriptor{IdempotenceMarker: `@import "tailwindcss"`, Rule: InsertAtTop(), Payload: `@import "tailwindcss";`})
	assert.Equal(t, AlreadyApplied, result)
	assert.Equal(t, css, got)
}

// TestApply_BeforeFirstOccurrenceOfPattern_MultilineMatch checks the payload
// is indented from the line where the match ends.
func TestApply_BeforeFirstOccurrenceOfPattern_MultilineMatch(t *testing.T) {
	input := "export default defineConfig({\n  plugins:\n    [react()],\n})\n"

	got, result := Apply(input, tailwindPlugin)
	require.Equal(t, Applied, result)
	assert.Equal(t, "export default defineConfig({\n  plugins:\n    [\n      tailwindcss(),\n      react()],\n})\n", got)
}
