/*
Copyright © 2026 the TRIFetch authors.
This file is part of TRIFetch.

TRIFetch is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TRIFetch is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TRIFetch.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package trifetchutil holds the command-line interface and
// configuration handling for the trifetch program.
package trifetchutil

import (
	"fmt"

	"github.com/chepyle/trifetch"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to TRIFetch.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "BaseURL",
			usage: `
              BaseURL is the root of the Envirofacts RESTful data service.
              It normally should not need to be changed.`,
			defaultVal: trifetch.DefaultBaseURL,
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "Table1",
			usage: `
              Table1 is the name of the first Envirofacts table in the query,
              normally the TRI facility table.`,
			defaultVal: "TRI_FACILITY",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "Table2",
			usage: `
              Table2 is the name of the second Envirofacts table in the query,
              normally the TRI reporting form table. The reporting year filter,
              if any, applies to this table.`,
			defaultVal: "TRI_REPORTING_FORM",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "Table3",
			usage: `
              Table3 is the name of the third Envirofacts table in the query,
              normally the TRI transfer quantity table.`,
			defaultVal: "TRI_TRANSFER_QTY",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "state",
			usage: `
              state restricts results to facilities in the given two-letter
              state abbreviation (for example TX).`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "county",
			usage: `
              county restricts results to facilities in the given county.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "zip",
			usage: `
              zip restricts results to facilities in the given ZIP code.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "year",
			usage: `
              year restricts results by reporting year. Give one year for a
              single-year query or two years for an inclusive range
              (for example --year 2015,2018).`,
			defaultVal: []int{},
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "chunksize",
			usage: `
              chunksize is the number of rows to request per page after the
              first page, which has a server-determined size.`,
			defaultVal: trifetch.DefaultChunkSize,
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the downloaded records should be
              saved. The extension chooses the format: .csv or .xlsx.`,
			defaultVal: "tri_output.csv",
			shorthand:  "o",
			flagsets:   []*pflag.FlagSet{downloadCmd.Flags()},
		},
		{
			name: "ExampleData.OutputDir",
			usage: `
              ExampleData.OutputDir is the directory where the synthetic
              example data workbooks should be written.`,
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{exampledataCmd.Flags()},
		},
		{
			name: "ExampleData.Seed",
			usage: `
              ExampleData.Seed seeds the random number generator used for the
              synthetic measurement noise, so that generated datasets are
              reproducible.`,
			defaultVal: 8675309,
			flagsets:   []*pflag.FlagSet{exampledataCmd.Flags()},
		},
		{
			name: "ExampleData.InfoFile",
			usage: `
              ExampleData.InfoFile is an optional Excel workbook listing the
              experiments to simulate, with Experiment, Temperature, Pressure,
              and Concentration columns. If empty, a built-in roster is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{exampledataCmd.Flags()},
		},
		{
			name: "ExampleData.PlotFile",
			usage: `
              ExampleData.PlotFile is the path where a plot of the last
              generated experiment should be saved. If empty, no plot is
              created.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{exampledataCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("TRIFETCH")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case []int:
				if option.shorthand == "" {
					set.IntSlice(option.name, option.defaultVal.([]int), option.usage)
				} else {
					set.IntSliceP(option.name, option.shorthand, option.defaultVal.([]int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(downloadCmd)
	Root.AddCommand(exampledataCmd)
}

// outChan returns a channel printing to standard output.
func outChan() chan string {
	outChan := make(chan string)
	go func() {
		for {
			msg := <-outChan
			fmt.Printf(msg)
		}
	}()
	return outChan
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("trifetch: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "trifetch",
	Short: "A downloader for EPA Toxic Release Inventory records.",
	Long: `TRIFetch downloads records from the EPA Toxic Release Inventory (TRI)
through the Envirofacts RESTful data service, paging through the full
result set and saving it as a single table.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'TRIFETCH_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of TRIFetch.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("TRIFetch v%s\n", trifetch.Version)
	},
	DisableAutoGenTag: true,
}

// downloadCmd is a command that downloads TRI records matching the
// configured filters and saves the result.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download TRI records",
	Long: `download retrieves every TRI record matching the configured state,
county, ZIP code, and reporting year filters and saves the result to
OutputFile. The waste management method column, if present, is translated
from codes to descriptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Download(Cfg, outChan())
	},
	DisableAutoGenTag: true,
}

// exampledataCmd is a command that generates synthetic example
// datasets for testing analysis pipelines.
var exampledataCmd = &cobra.Command{
	Use:   "exampledata",
	Short: "Generate synthetic example data",
	Long: `exampledata simulates a set of simple kinetics experiments and writes
one Excel workbook of time and response values per experiment, for use as
test input for data analysis pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return GenerateExampleData(Cfg, outChan())
	},
	DisableAutoGenTag: true,
}
