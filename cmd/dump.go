/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apitree/apitree/finder"
	"github.com/apitree/apitree/jsonmodel"
	"github.com/apitree/apitree/loader"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/pyast"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <package...>",
	Short: "Extract a package's public API surface to JSON",
	Long: `Loads one or more Python packages, lowers their public surface into the
structural API model, and writes it as JSON to stdout or --output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("output", "o", "", "write JSON to this file instead of stdout")
	dumpCmd.Flags().Bool("full", false, "include derived fields (path, filepath, is_public) and parsed docstring sections")
	dumpCmd.Flags().String("docstyle", "auto", "docstring section parser: google, numpy, sphinx, or auto")
	dumpCmd.Flags().Bool("resolve-aliases", false, "resolve import aliases to a fixed point")
	dumpCmd.Flags().Bool("resolve-external", false, "resolve aliases into modules outside the search paths")
	dumpCmd.Flags().StringArray("search", nil, "additional search path (repeatable)")
	dumpCmd.Flags().Bool("stats", false, "print a per-file syntactic census instead of the full model")
}

func runDump(cmd *cobra.Command, args []string) error {
	docstyleFlag, _ := cmd.Flags().GetString("docstyle")
	style, err := parseDocstyle(docstyleFlag)
	if err != nil {
		return usageErrorf("%v", err)
	}

	full, _ := cmd.Flags().GetBool("full")
	resolveAliases, _ := cmd.Flags().GetBool("resolve-aliases")
	resolveExternal, _ := cmd.Flags().GetBool("resolve-external")
	showStats, _ := cmd.Flags().GetBool("stats")
	extraSearch, _ := cmd.Flags().GetStringArray("search")
	output, _ := cmd.Flags().GetString("output")

	paths := searchPaths(extraSearch)
	opts := loader.LoadOptions{
		SearchPaths:     paths,
		AllowInspection: true,
		ResolveAliases:  resolveAliases,
		ResolveExternal: resolveExternal,
	}

	var out []byte
	for _, pkg := range args {
		if showStats {
			stats, err := dumpStats(paths, pkg)
			if err != nil {
				return fmt.Errorf("dump %s: %w", pkg, err)
			}
			out = append(out, []byte(fmt.Sprintf("%s: %d classes, %d functions, %d imports, %d decorated, max class depth %d\n",
				pkg, stats.Classes, stats.Functions, stats.Imports, stats.Decorated, stats.MaxClassDepth))...)
			continue
		}

		mod, _, err := loader.Load(cmd.Context(), pkg, opts)
		if err != nil {
			return fmt.Errorf("dump %s: %w", pkg, err)
		}
		applyDocstyle(mod, style)

		encoded, err := jsonmodel.Marshal(mod, full)
		if err != nil {
			return fmt.Errorf("dump %s: encoding: %w", pkg, err)
		}
		out = append(out, encoded...)
		out = append(out, '\n')
	}

	if output == "" {
		fmt.Print(string(out))
		return nil
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	pterm.Success.Printf("Wrote %s\n", output)
	return nil
}

func parseDocstyle(s string) (model.DocstringStyle, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return model.DocstringStyleAuto, nil
	case "google":
		return model.DocstringStyleGoogle, nil
	case "numpy":
		return model.DocstringStyleNumpy, nil
	case "sphinx":
		return model.DocstringStyleSphinx, nil
	default:
		return 0, fmt.Errorf("invalid --docstyle %q: must be one of auto, google, numpy, sphinx", s)
	}
}

// applyDocstyle overrides every docstring's parser selection in the tree
// when the user passed an explicit --docstyle; DocstringStyleAuto leaves
// each docstring's own recorded style (set at load time by the visitor)
// untouched.
func applyDocstyle(obj model.Object, style model.DocstringStyle) {
	if obj == nil || style == model.DocstringStyleAuto {
		return
	}
	if ds := obj.Docstring(); ds != nil {
		ds.Style = style
	}
	members := obj.Members()
	if members == nil {
		return
	}
	for _, name := range members.Names() {
		if member, ok := members.Get(name); ok {
			applyDocstyle(member, style)
		}
	}
}

// dumpStats runs pyast.CollectStats over every Python source file
// reachable under pkg's location, without paying for a full loader pass.
func dumpStats(searchPaths []string, pkg string) (pyast.FileStats, error) {
	var total pyast.FileStats
	f := finder.NewFinder(finder.NewOSFileSystem(), searchPaths, false)
	found, err := f.Find(pkg)
	if err != nil {
		return total, err
	}
	qm, err := pyast.NewQueryManager()
	if err != nil {
		return total, err
	}

	seen := map[string]bool{}
	for _, entry := range found {
		err := filepath.WalkDir(entry.Path, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".py") || seen[path] {
				return nil
			}
			seen[path] = true
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			tree, err := pyast.Parse(src)
			if err != nil {
				return nil
			}
			stats, err := pyast.CollectStats(qm, tree)
			if err != nil {
				return err
			}
			total.Classes += stats.Classes
			total.Functions += stats.Functions
			total.Imports += stats.Imports
			total.Decorated += stats.Decorated
			if stats.MaxClassDepth > total.MaxClassDepth {
				total.MaxClassDepth = stats.MaxClassDepth
			}
			return nil
		})
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
