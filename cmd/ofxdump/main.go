// Command ofxdump parses an OFX or QFX file and prints the statement.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rockstardevs/ofxstream"
)

var format string

var rootCmd = &cobra.Command{
	Use:   "ofxdump [file]",
	Short: "Parse an OFX/QFX statement and print it.",
	Long: `ofxdump parses an OFX 1.x or 2.x statement file and prints the
accounts, balances, transactions and securities it holds.
Reads standard input when the file is "-".`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported format %q, use json or yaml", format)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer glog.Flush()
		statement, err := parse(args[0])
		if err != nil {
			return fmt.Errorf("error parsing data file - %w", err)
		}
		return write(cmd.OutOrStdout(), statement)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "output format, json or yaml")
	// glog registers -v, -logtostderr and friends on the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func parse(path string) (*ofxstream.Statement, error) {
	if path == "-" {
		return ofxstream.ParseReader(os.Stdin, ofxstream.NewCleaner())
	}
	return ofxstream.ParseFile(path, ofxstream.NewCleaner())
}

func write(w io.Writer, statement *ofxstream.Statement) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(statement)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statement)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
