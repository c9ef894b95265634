package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cuplroot "github.com/pbnjay/cupl"
	"github.com/pbnjay/cupl/internal/fuses"
	"github.com/pbnjay/cupl/internal/gal16v8"
	"github.com/pbnjay/cupl/internal/hdl"
	"github.com/pbnjay/cupl/internal/jed"
	"github.com/pbnjay/cupl/internal/pinmap"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:           "cupl",
		Short:         "GAL16V8 fuse-map decoder and Verilog HDL toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(cuplroot.Version())
				return nil
			}
			return cmd.Help()
		},
	}
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print the version and exit")

	root.AddCommand(
		newVersionCmd(),
		newDecompileCmd(),
		newFusedumpCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(cuplroot.Version())
			return nil
		},
	}
}

func newDecompileCmd() *cobra.Command {
	var outPath, pinmapPath string
	cmd := &cobra.Command{
		Use:   "decompile <file.jed>",
		Short: "decode a GAL16V8 fuse file into Verilog HDL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompile(args[0], outPath, pinmapPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output Verilog file (default: stdout)")
	cmd.Flags().StringVar(&pinmapPath, "pinmap", "", "YAML pin-name map file")
	return cmd
}

func runDecompile(inPath, outPath, pinmapPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	parsed, err := jed.Parse(data)
	if err != nil {
		return fmt.Errorf("invalid JEDEC container: %w", err)
	}
	logger.Info("parsed fuse file", "fuses", parsed.QF, "security", parsed.SecurityBit)

	dev, err := gal16v8.NewDevice(parsed.Fuses)
	if err != nil {
		return fmt.Errorf("decode fuse map: %w", err)
	}
	logger.Info("resolved device mode", "mode", dev.Mode)

	var namer hdl.PinNamer = hdl.DefaultNames{}
	if pinmapPath != "" {
		names, err := pinmap.Load(pinmapPath)
		if err != nil {
			return fmt.Errorf("load pin map %s: %w", pinmapPath, err)
		}
		if err := pinmap.Validate(names, 20); err != nil {
			return fmt.Errorf("load pin map %s: %w", pinmapPath, err)
		}
		namer = hdl.StaticNames(names)
	}

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := hdl.Emit(f, dev, namer); err != nil {
			return fmt.Errorf("emit HDL: %w", err)
		}
		logger.Info("wrote HDL", "path", outPath)
		return nil
	}
	return hdl.Emit(w, dev, namer)
}

func newFusedumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fusedump <file.jed>",
		Short: "colorized dump of the raw GAL16V8 fuse grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFusedump(args[0])
		},
	}
}

var (
	fuseOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	fuseOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

func runFusedump(inPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	parsed, err := jed.Parse(data)
	if err != nil {
		return fmt.Errorf("invalid JEDEC container: %w", err)
	}

	f, err := fusesFromParsed(parsed)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("AND array (0 = fuse intact / signal participates)"))
	grid := f.Grid()
	for row := 0; row < 64; row++ {
		var sb strings.Builder
		for col := 0; col < 32; col++ {
			bit := grid[row*32+col]
			sb.WriteString(renderFuseBit(bit))
		}
		fmt.Printf("row %02d: %s\n", row, sb.String())
	}

	fmt.Println()
	fmt.Println(headingStyle.Render("architecture fuses"))
	fmt.Printf("SYN=%s AC0=%s\n", renderFuseBit(f.Syn()), renderFuseBit(f.AC0()))
	for i := 0; i < 8; i++ {
		fmt.Printf("OLMC %d: XOR=%s AC1=%s\n", i, renderFuseBit(f.Xor(i)), renderFuseBit(f.AC1(i)))
	}
	var ptd strings.Builder
	for row := 0; row < 64; row++ {
		ptd.WriteString(renderFuseBit(f.PTD(row)))
	}
	fmt.Printf("PTD: %s\n", ptd.String())
	return nil
}

func renderFuseBit(on bool) string {
	if on {
		return fuseOnStyle.Render("1")
	}
	return fuseOffStyle.Render("0")
}

func fusesFromParsed(p jed.Parsed) (fuses.Map, error) {
	return fuses.New(p.Fuses)
}
