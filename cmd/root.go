/*

Copyright © 2025 Benny Powers <web@bennypowers.com>

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
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apitree/apitree/internal/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apitree",
	Short: "Extract and diff Python public API surfaces",
	Long: `Statically analyzes Python packages and extracts their public API
surface into a structural JSON model. Dump a package's API, or check one
revision against another for breaking changes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd. Exit code 2 is used only for errors built with
// usageErrorf (wrapping errUsage); cobra's own flag-parsing and
// argument-count errors are not wrapped and exit 1, like every other
// error RunE returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// errUsage marks a RunE return as a usage error rather than an
// operational one, so Execute can map it to exit code 2 without relying
// on cobra's own (unexported) usage-error detection.
var errUsage = errors.New("usage error")

func usageErrorf(format string, args ...any) error {
	return errors.Join(errUsage, fmt.Errorf(format, args...))
}

func searchPaths(flag []string) []string {
	cfgPaths := viper.GetStringSlice("searchPaths")
	if len(flag) == 0 {
		return cfgPaths
	}
	return append(append([]string{}, cfgPaths...), flag...)
}

// expandPath expands ~, handles relative and absolute paths
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			path = home
		} else if strings.HasPrefix(path, "~/") {
			path = filepath.Join(home, path[2:])
		}
	}
	return filepath.Abs(path)
}

func initConfig() {
	if viper.GetBool("verbose") {
		pterm.EnableDebugMessages()
		logging.SetLevel(logging.LevelDebug)
	} else if lvl := os.Getenv("APITREE_LOG_LEVEL"); lvl != "" {
		logging.SetLevel(logging.ParseLevel(lvl))
	}

	cfgFile := viper.GetString("configFile")
	if cfgFile != "" {
		abs, err := expandPath(cfgFile)
		cobra.CheckErr(err)
		viper.SetConfigFile(abs)
	} else {
		cwd, err := os.Getwd()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(cwd, ".config"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("apitree")
	}

	if err := viper.ReadInConfig(); err == nil {
		pterm.Debug.Println("Using config file: ", viper.ConfigFileUsed())
	}

	viper.AutomaticEnv()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $CWD/.config/apitree.yaml)")
	rootCmd.PersistentFlags().StringArray("search", nil, "additional search path for locating packages (repeatable)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging output")
	viper.BindPFlag("configFile", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
