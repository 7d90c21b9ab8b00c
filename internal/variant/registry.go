package variant

import (
	"fmt"
	"strings"

	"github.com/tacogips/vitesetup/internal/patch"
)

const (
	tailwindImport = "import tailwindcss from '@tailwindcss/vite'"
	tailwindModule = "'@tailwindcss/vite'"
	routerModule   = "from './router'"
	tailwindCall   = "tailwindcss()"
	tailwindCSS    = `@import "tailwindcss";`
)

var folderDescriptions = map[string]string{
	"components":  "Reusable UI components",
	"pages":       "Page components",
	"views":       "Vue page views",
	"routes":      "Svelte routes",
	"hooks":       "Custom React hooks",
	"composables": "Vue composables",
	"stores":      "State management",
	"utils":       "Utility functions",
	"services":    "API services",
	"lib":         "Library code",
	"assets":      "Static files",
	"router":      "Routing configuration",
}

type frameworkSpec struct {
	displayName   string
	routerPackage string
	folders       []string
	stylesheet    string
	rootComponent func(lang Language) string
	fileExt       func(lang Language) string
	routing       func(lang Language) ([]GeneratedFile, []Step)
	docsURL       string
}

var frameworks = map[Framework]frameworkSpec{
	React: {
		displayName:   "React",
		routerPackage: "react-router-dom",
		folders:       []string{"components", "pages", "hooks", "utils", "assets", "services", "router"},
		stylesheet:    "src/index.css",
		rootComponent: func(lang Language) string { return "src/App." + jsxExt(lang) },
		fileExt:       jsxExt,
		routing:       reactRouting,
		docsURL:       "https://react.dev",
	},
	Vue: {
		displayName:   "Vue",
		routerPackage: "vue-router",
		folders:       []string{"components", "views", "composables", "stores", "assets", "utils", "router"},
		stylesheet:    "src/style.css",
		rootComponent: func(Language) string { return "src/App.vue" },
		fileExt:       scriptExt,
		routing:       vueRouting,
		docsURL:       "https://vuejs.org",
	},
	Svelte: {
		displayName:   "Svelte",
		routerPackage: "svelte-spa-router",
		folders:       []string{"components", "routes", "stores", "lib", "assets", "utils", "router"},
		stylesheet:    "src/app.css",
		rootComponent: func(Language) string { return "src/App.svelte" },
		fileExt:       scriptExt,
		routing:       svelteRouting,
		docsURL:       "https://svelte.dev",
	},
}

// order is the presentation order used by prompts and listings.
var order = []struct {
	framework Framework
	language  Language
}{
	{React, JavaScript},
	{React, TypeScript},
	{Vue, TypeScript},
	{Vue, JavaScript},
	{Svelte, TypeScript},
	{Svelte, JavaScript},
}

var registry = buildRegistry()

func buildRegistry() map[Variant]Config {
	entries := make(map[Variant]Config, len(order))
	for _, o := range order {
		cfg := newConfig(o.framework, o.language)
		entries[key(o.framework, o.language)] = cfg
	}
	return entries
}

func key(fw Framework, lang Language) Variant {
	return Variant{Framework: fw, Language: lang}
}

func newConfig(fw Framework, lang Language) Config {
	spec := frameworks[fw]

	templateID := string(fw)
	if lang == TypeScript {
		templateID += "-ts"
	}
	langName := "JavaScript"
	if lang == TypeScript {
		langName = "TypeScript"
	}

	folders := make([]FolderSpec, 0, len(spec.folders))
	for _, name := range spec.folders {
		folders = append(folders, FolderSpec{RelativePath: name, Description: folderDescriptions[name]})
	}

	setup, steps := spec.routing(lang)

	return Config{
		Variant: Variant{
			Framework:     fw,
			Language:      lang,
			TemplateID:    templateID,
			FileExtension: spec.fileExt(lang),
		},
		DisplayName:   spec.displayName + " + " + langName,
		RouterPackage: spec.routerPackage,
		Folders:       folders,
		Styling: Injection{
			Name:     "Tailwind CSS v4",
			Packages: []string{"tailwindcss", "@tailwindcss/vite"},
			Dev:      true,
			Steps:    stylingSteps(lang, spec.stylesheet),
		},
		Routing: Injection{
			Name:     spec.routerPackage,
			Packages: []string{spec.routerPackage},
			Setup:    setup,
			Steps:    steps,
		},
		RootComponent: spec.rootComponent(lang),
		Stylesheet:    spec.stylesheet,
		DocsURL:       spec.docsURL,
	}
}

// Lookup returns the registry entry for the pair, or an UnknownVariant error.
func Lookup(framework Framework, language Language) (Config, error) {
	cfg, ok := registry[key(framework, language)]
	if !ok {
		return Config{}, &Error{Type: UnknownVariant, Framework: string(framework), Language: string(language)}
	}
	return cfg.clone(), nil
}

// All returns every registry entry in presentation order.
func All() []Config {
	out := make([]Config, 0, len(order))
	for _, o := range order {
		out = append(out, registry[key(o.framework, o.language)].clone())
	}
	return out
}

// Stacks returns the --stack spelling of every variant in presentation order.
func Stacks() []string {
	out := make([]string, 0, len(order))
	for _, o := range order {
		out = append(out, string(o.framework)+"-"+string(o.language))
	}
	return out
}

// ParseStack resolves "<framework>-<language>" or a Vite template id
// ("react", "react-ts") to a registry entry.
func ParseStack(stack string) (Config, error) {
	s := strings.ToLower(strings.TrimSpace(stack))
	if s == "" {
		return Config{}, &Error{Type: InvalidStack, Input: stack}
	}

	fw, lang, found := strings.Cut(s, "-")
	if !found {
		lang = string(JavaScript)
	}
	if fw == "" || lang == "" {
		return Config{}, &Error{Type: InvalidStack, Input: stack}
	}
	return Lookup(Framework(fw), Language(lang))
}

func jsxExt(lang Language) string {
	if lang == TypeScript {
		return "tsx"
	}
	return "jsx"
}

func scriptExt(lang Language) string {
	return string(lang)
}

func viteConfigCandidates(lang Language) []string {
	if lang == TypeScript {
		return []string{"vite.config.ts", "vite.config.js", "vite.config.mjs"}
	}
	return []string{"vite.config.js", "vite.config.mjs", "vite.config.ts"}
}

func entryCandidates(ext string) []string {
	primary := "src/main." + ext
	var fallback string
	switch ext {
	case "tsx":
		fallback = "src/main.jsx"
	case "jsx":
		fallback = "src/main.tsx"
	case "ts":
		fallback = "src/main.js"
	default:
		fallback = "src/main.ts"
	}
	return []string{primary, fallback}
}

func stylesheetCandidates(own string) []string {
	candidates := []string{own}
	for _, css := range []string{"src/index.css", "src/style.css", "src/app.css"} {
		if css != own {
			candidates = append(candidates, css)
		}
	}
	return candidates
}

func stylingSteps(lang Language, stylesheet string) []Step {
	configs := viteConfigCandidates(lang)
	return []Step{
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: configs,
				IdempotenceMarker:    tailwindModule,
				Rule:                 patch.InsertAfterLastImport(),
				Payload:              tailwindImport,
			},
		},
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: configs,
				IdempotenceMarker:    tailwindCall,
				Rule:                 patch.InsertAtFirstOccurrence(`plugins:\s*\[`),
				Payload:              tailwindCall + ",",
			},
		},
		{
			Descriptor: patch.Descriptor{
				TargetFileCandidates: stylesheetCandidates(stylesheet),
				IdempotenceMarker:    `@import "tailwindcss"`,
				Rule:                 patch.InsertAtTop(),
				Payload:              tailwindCSS,
			},
		},
	}
}

func reactRouting(lang Language) ([]GeneratedFile, []Step) {
	ext := jsxExt(lang)
	setup := GeneratedFile{
		Path: "src/router/index." + ext,
		Content: `import { createBrowserRouter } from 'react-router-dom';
import App from '../App';

export const router = createBrowserRouter([
  {
    path: '/',
    element: <App />,
  },
]);
`,
	}
	entries := entryCandidates(ext)
	return []GeneratedFile{setup}, []Step{
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: entries,
				IdempotenceMarker:    "<RouterProvider",
				Rule:                 patch.Replace(`<App\s*/>`),
				Payload:              "<RouterProvider router={router} />",
			},
		},
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: entries,
				IdempotenceMarker:    routerModule,
				Rule:                 patch.Replace(`import App from ['"]\./App(\.[jt]sx)?['"];?`),
				Payload:              "import { RouterProvider } from 'react-router-dom'\nimport { router } from './router'",
			},
		},
	}
}

// vueRouting mounts a RouterView shell in place of App; App stays the "/" page.
func vueRouting(lang Language) ([]GeneratedFile, []Step) {
	ext := scriptExt(lang)
	router := GeneratedFile{
		Path: "src/router/index." + ext,
		Content: `import { createRouter, createWebHistory } from 'vue-router'

const router = createRouter({
  history: createWebHistory(import.meta.env.BASE_URL),
  routes: [
    {
      path: '/',
      name: 'home',
      component: () => import('../App.vue'),
    },
  ],
})

export default router
`,
	}
	shell := GeneratedFile{
		Path: "src/router/AppRouter.vue",
		Content: `<template>
  <RouterView />
</template>
`,
	}
	entries := entryCandidates(ext)
	return []GeneratedFile{router, shell}, []Step{
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: entries,
				IdempotenceMarker:    routerModule,
				Rule:                 patch.InsertAfterLastImport(),
				Payload:              "import router from './router'",
			},
		},
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: entries,
				IdempotenceMarker:    "./router/AppRouter.vue",
				Rule:                 patch.Replace(`import App from ['"]\./App\.vue['"];?`),
				Payload:              "import App from './router/AppRouter.vue'",
			},
		},
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: entries,
				IdempotenceMarker:    ".use(router)",
				Rule:                 patch.Replace(`createApp\(App\)`),
				Payload:              "createApp(App).use(router)",
			},
		},
	}
}

func svelteRouting(lang Language) ([]GeneratedFile, []Step) {
	ext := scriptExt(lang)
	scriptTag := "<script>"
	if lang == TypeScript {
		scriptTag = `<script lang="ts">`
	}
	setup := GeneratedFile{
		Path: "src/router/AppRouter.svelte",
		Content: fmt.Sprintf(`%s
  import Router from 'svelte-spa-router'
  import App from '../App.svelte'

  const routes = {
    '/': App,
  }
</script>

<Router {routes} />
`, scriptTag),
	}
	return []GeneratedFile{setup}, []Step{
		{
			Primary: true,
			Descriptor: patch.Descriptor{
				TargetFileCandidates: entryCandidates(ext),
				IdempotenceMarker:    "./router/AppRouter.svelte",
				Rule:                 patch.Replace(`import App from ['"]\./App\.svelte['"];?`),
				Payload:              "import App from './router/AppRouter.svelte'",
			},
		},
	}
}
