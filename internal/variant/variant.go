// Package variant holds the static registry of supported frontend stacks.
//
// Every buildable (framework, language) combination maps to a Config carrying
// the Vite template identifier, the packages to install, the folder layout and
// the patch descriptors used by the injection engine. The registry is pure data.
package variant

import (
	"github.com/tacogips/vitesetup/internal/patch"
)

// Framework is a supported frontend framework.
type Framework string

const (
	// React is the React framework.
	React Framework = "react"
	// Vue is the Vue framework.
	Vue Framework = "vue"
	// Svelte is the Svelte framework.
	Svelte Framework = "svelte"
)

// Language is a supported language flavor.
type Language string

const (
	// JavaScript selects plain JavaScript templates.
	JavaScript Language = "js"
	// TypeScript selects TypeScript templates.
	TypeScript Language = "ts"
)

// Variant identifies one buildable combination. It is a value type and never mutated.
type Variant struct {
	// Framework is the frontend framework.
	Framework Framework
	// Language is the language flavor.
	Language Language
	// TemplateID is the template name passed to the external generator.
	TemplateID string
	// FileExtension is the extension of the entry-point and router files.
	FileExtension string
}

// Stack returns the "<framework>-<language>" form accepted by the --stack flag.
func (v Variant) Stack() string {
	return string(v.Framework) + "-" + string(v.Language)
}

// IsTypeScript reports whether the variant uses TypeScript.
func (v Variant) IsTypeScript() bool {
	return v.Language == TypeScript
}

// FolderSpec is one directory under src/ created for a variant.
type FolderSpec struct {
	// RelativePath is relative to the project's src directory.
	RelativePath string
	// Description is written into the folder's README.md.
	Description string
}

// GeneratedFile is a file the engine creates when it does not exist yet.
type GeneratedFile struct {
	// Path is project-relative.
	Path string
	// Content is the full file body.
	Content string
}

// Step is one patch applied during an injection.
type Step struct {
	// Descriptor is the patch to apply.
	Descriptor patch.Descriptor
	// Primary steps decide whether the injection as a whole succeeded.
	Primary bool
}

// Injection groups everything needed to wire one capability.
type Injection struct {
	// Name is a short human label ("Tailwind CSS", "react-router-dom").
	Name string
	// Packages are installed before any file is patched.
	Packages []string
	// Dev installs Packages as development dependencies.
	Dev bool
	// Setup files are created, when absent, before patching.
	Setup []GeneratedFile
	// Steps are applied in order.
	Steps []Step
}

// Config is the registry entry for one variant.
type Config struct {
	Variant

	// DisplayName is the human name shown in prompts ("React + TypeScript").
	DisplayName string
	// RouterPackage is the npm package providing routing for the framework.
	RouterPackage string
	// Folders is the ordered folder layout under src/.
	Folders []FolderSpec
	// Styling wires the Tailwind CSS Vite plugin.
	Styling Injection
	// Routing wires the framework router.
	Routing Injection
	// RootComponent is the project-relative root component overwritten by the starter page.
	RootComponent string
	// Stylesheet is the project-relative stylesheet overwritten by the starter stylesheet.
	Stylesheet string
	// DocsURL points to the framework documentation.
	DocsURL string
}

// FolderPaths returns the relative folder paths in registry order.
func (c Config) FolderPaths() []string {
	paths := make([]string, 0, len(c.Folders))
	for _, f := range c.Folders {
		paths = append(paths, f.RelativePath)
	}
	return paths
}

func (c Config) clone() Config {
	out := c
	out.Folders = append([]FolderSpec(nil), c.Folders...)
	out.Styling = c.Styling.clone()
	out.Routing = c.Routing.clone()
	return out
}

func (i Injection) clone() Injection {
	out := i
	out.Packages = append([]string(nil), i.Packages...)
	out.Setup = append([]GeneratedFile(nil), i.Setup...)
	out.Steps = make([]Step, len(i.Steps))
	for n, s := range i.Steps {
		s.Descriptor.TargetFileCandidates = append([]string(nil), s.Descriptor.TargetFileCandidates...)
		out.Steps[n] = s
	}
	return out
}
