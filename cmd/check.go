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
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/apitree/apitree/diff"
	"github.com/apitree/apitree/gitload"
	"github.com/apitree/apitree/loader"
)

var checkCmd = &cobra.Command{
	Use:   "check <package>",
	Short: "Report breaking changes against a prior revision",
	Long: `Loads <package> at its current state and at --against, then reports
every breaking (and soft) change between the two API surfaces. Exits 1 if
any breakage was found, matching CI-gate conventions.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("against", "", "git ref to diff the current package against (required)")
	checkCmd.Flags().String("against-path", "", "path to the repository --against is resolved in (default: current directory)")
	checkCmd.Flags().String("base-ref", "", "current ref, used only to label a suggested version bump")
	checkCmd.Flags().StringArray("search", nil, "additional search path (repeatable)")
	checkCmd.Flags().String("style", "oneline", "explanation style: oneline, verbose, markdown, github")
	checkCmd.MarkFlagRequired("against")
	checkCmd.SilenceErrors = true
}

func runCheck(cmd *cobra.Command, args []string) error {
	pkg := args[0]
	against, _ := cmd.Flags().GetString("against")
	againstPath, _ := cmd.Flags().GetString("against-path")
	baseRef, _ := cmd.Flags().GetString("base-ref")
	extraSearch, _ := cmd.Flags().GetStringArray("search")
	styleFlag, _ := cmd.Flags().GetString("style")
	verbose, _ := cmd.Flags().GetBool("verbose")

	style := diff.ParseStyle(styleFlag)
	if againstPath == "" {
		var err error
		againstPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	ctx := cmd.Context()
	paths := searchPaths(extraSearch)
	opts := loader.LoadOptions{SearchPaths: paths, AllowInspection: true}

	newMod, _, err := loader.Load(ctx, pkg, opts)
	if err != nil {
		return fmt.Errorf("check: loading current %s: %w", pkg, err)
	}

	checkout := gitload.GitCheckout{}
	dir, cleanup, err := checkout.CheckoutRef(ctx, againstPath, against)
	if err != nil {
		var gitErr *gitload.GitError
		if errors.As(err, &gitErr) {
			return fmt.Errorf("check: %w", gitErr)
		}
		return fmt.Errorf("check: checking out %s: %w", against, err)
	}
	defer cleanup()

	oldOpts := opts
	oldOpts.SearchPaths = append([]string{dir}, paths...)
	oldMod, _, err := loader.Load(ctx, pkg, oldOpts)
	if err != nil {
		return fmt.Errorf("check: loading %s at %s: %w", pkg, against, err)
	}

	breakages := diff.FindBreakingChanges(oldMod, newMod)
	fmt.Print(diff.ExplainAll(breakages, style))
	if len(breakages) > 0 {
		fmt.Println()
	}

	if verbose && baseRef != "" {
		if bump := diff.SuggestBump(baseRef, breakages); bump != "" {
			pterm.Info.Printf("Suggested next version: %s\n", bump)
		}
	}

	if len(breakages) > 0 {
		return errExit1
	}
	return nil
}

// errExit1 is returned (never printed; the explanation was already
// written) so Execute's os.Exit(1) path fires without a duplicate error
// line.
var errExit1 = errors.New("breaking changes found")
