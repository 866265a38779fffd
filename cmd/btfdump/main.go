// Command btfdump decodes a BTF blob and prints its type catalog,
// elevating the teacher's examples/sector_operations flag-based
// harness into a proper cobra CLI (SPEC_FULL.md §7).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/laenix/btfgo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	format  string
)

func main() {
	root := &cobra.Command{
		Use:   "btfdump",
		Short: "Decode and inspect BPF Type Format (BTF) blobs",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decode progress to stderr")
	root.AddCommand(newDumpCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <path>",
		Short: "Decode a BTF blob and print its type catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	start := time.Now()
	cat, err := btf.Open(path)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if verbose {
		logrus.WithField("elapsed", time.Since(start)).Infof("decoded %d types", len(cat.Entries()))
	}

	switch format {
	case "json":
		return dumpJSON(cat)
	case "text":
		return dumpText(cat)
	default:
		return fmt.Errorf("unknown format %q: want text or json", format)
	}
}

func dumpText(cat *btf.Catalog) error {
	fmt.Printf("header: version=%d flags=%#x little_endian=%v\n",
		cat.Header.Version, cat.Header.Flags, cat.Header.LittleEndian)
	for i, e := range cat.Entries() {
		name := e.Name()
		if name == "" {
			name = "<anon>"
		}
		fmt.Printf("[%d] %s %s\n", i+1, e.Kind(), name)
	}
	return nil
}

// jsonEntry flattens an Entry into a format-agnostic shape for the
// json output mode; the decoded Entry types intentionally have no
// exported field tags of their own, so the dump command owns the
// serialization shape rather than the domain types.
type jsonEntry struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
}

func dumpJSON(cat *btf.Catalog) error {
	out := make([]jsonEntry, 0, len(cat.Entries()))
	for i, e := range cat.Entries() {
		out = append(out, jsonEntry{ID: i + 1, Kind: e.Kind().String(), Name: e.Name()})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
