// Command splitdoc is a thin demonstration wrapper around the
// splitstream library, grounded on the library/cmd split the teacher
// project itself uses (eutils as the library, cmd/rchive+xtract as
// the CLI around it). spec.md §6 scopes the CLI out of the core
// system ("No CLI, no environment variables, no on-disk state" refers
// to the splitter itself); this is demo tooling built on top of it.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/creachadair/atomicfile"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rickardp/splitstream"
	"github.com/rickardp/splitstream/checksum"
	"github.com/rickardp/splitstream/sniff"
)

var (
	flagFormat     string
	flagStartDepth int
	flagBufSize    int
	flagStrict     bool
	flagOutDir     string
	flagSum        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("splitdoc: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splitdoc [flags] file...",
		Short: "Split concatenated XML, JSON, or UBJSON documents out of a byte stream",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSplitdoc,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "", `"xml", "json", or "ubjson"; omit to sniff each file`)
	cmd.Flags().IntVar(&flagStartDepth, "startdepth", 0, "nesting depth at which documents are emitted")
	cmd.Flags().IntVar(&flagBufSize, "bufsize", 0, "reader chunk size (0 = implementation default)")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "surface ParseError instead of silently discarding")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "write each document to <out-dir>/<basename>.<n>.<format>; default is stdout only")
	cmd.Flags().BoolVar(&flagSum, "sum", false, "print an xxhash checksum alongside each document")
	return cmd
}

func runSplitdoc(cmd *cobra.Command, args []string) error {
	g, ctx := errgroup.WithContext(cmd.Context())
	for _, path := range args {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return splitFile(path)
		})
	}
	return g.Wait()
}

func splitFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	cfg := splitstream.Config{
		Format:     splitstream.Format(flagFormat),
		StartDepth: flagStartDepth,
		BufSize:    flagBufSize,
		Strict:     flagStrict,
	}

	var r io.Reader = f
	if flagFormat == "" {
		format, preamble, serr := sniff.DetectPreamble(f)
		if serr != nil {
			return fmt.Errorf("%s: %w", path, serr)
		}
		cfg.Format = format
		cfg.Preamble = preamble
	}

	s, err := splitstream.New(r, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	n := 0
	for s.Scan() {
		doc := s.Bytes()
		if err := emit(path, n, cfg.Format, doc); err != nil {
			return err
		}
		n++
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintln(os.Stderr, color.GreenString("%s: %d document(s)", path, n))
	return nil
}

func emit(srcPath string, index int, format splitstream.Format, doc []byte) error {
	if flagSum {
		fmt.Fprintf(os.Stderr, "%s[%d] %016x\n", srcPath, index, checksum.Sum(doc))
	}
	if flagOutDir == "" {
		os.Stdout.Write(doc)
		os.Stdout.Write([]byte("\n"))
		return nil
	}
	base := filepath.Base(srcPath)
	name := base + "." + strconv.Itoa(index) + "." + string(format)
	out := filepath.Join(flagOutDir, name)
	if err := atomicfile.WriteData(out, doc, 0o644); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	return nil
}
