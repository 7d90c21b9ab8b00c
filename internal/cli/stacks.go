package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/vitesetup/internal/variant"
)

// stacksCmd represents the stacks command
var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "List the supported stacks",
	Long: `List every supported framework and language combination together with the
Vite template, router package and folders it creates.

Examples:
  vitesetup stacks
  vitesetup stacks --output json`,
	Args: cobra.NoArgs,
	RunE: runStacks,
}

var stacksOutput string

func init() {
	stacksCmd.Flags().StringVarP(&stacksOutput, FlagOutput, "o", "text", DescOutput)
}

// stackInfo is the serialized form of a registry entry.
type stackInfo struct {
	Stack     string   `json:"stack" yaml:"stack"`
	Name      string   `json:"name" yaml:"name"`
	Template  string   `json:"template" yaml:"template"`
	Router    string   `json:"router" yaml:"router"`
	Folders   []string `json:"folders" yaml:"folders"`
	Extension string   `json:"extension" yaml:"extension"`
}

func collectStacks() []stackInfo {
	var infos []stackInfo
	for _, cfg := range variant.All() {
		infos = append(infos, stackInfo{
			Stack:     cfg.Stack(),
			Name:      cfg.DisplayName,
			Template:  cfg.TemplateID,
			Router:    cfg.RouterPackage,
			Folders:   cfg.FolderPaths(),
			Extension: cfg.FileExtension,
		})
	}
	return infos
}

func runStacks(cmd *cobra.Command, args []string) error {
	return writeStacks(cmd.OutOrStdout(), stacksOutput, collectStacks())
}

func writeStacks(w io.Writer, format string, infos []stackInfo) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		data := pterm.TableData{{"STACK", "NAME", "TEMPLATE", "ROUTER"}}
		for _, info := range infos {
			data = append(data, []string{info.Stack, info.Name, info.Template, info.Router})
		}
		return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
	default:
		return fmt.Errorf("unknown output format %q (expected text, json or yaml)", format)
	}
}
