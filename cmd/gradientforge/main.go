package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/mrsinham/gradientforge/cmd/gradientforge/wizard"
	"github.com/mrsinham/gradientforge/internal/gradient"
	"github.com/mrsinham/gradientforge/internal/render"
	"github.com/mrsinham/gradientforge/internal/util"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	// The wizard subcommand is dispatched before flag parsing so its
	// own arguments never collide with the generation flags.
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		var fromConfig string
		args := os.Args[2:]
		for i := 0; i < len(args); i++ {
			if args[i] == "--from" && i+1 < len(args) {
				fromConfig = args[i+1]
			}
		}

		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	output := flag.String("output", "gradient.bmp", "Output image path, .bmp or .png")
	sizeArg := flag.String("size", "", "Image size in pixels, format 'WxH' (required)")
	hueArg := flag.String("hue", util.RandomString, "Hue in degrees, 0 <= hue < 360, or RANDOM")
	saturationArg := flag.String("saturation", "1", "Saturation, 0 to 1, or RANDOM")
	brightnessArg := flag.String("brightness", "1", "Brightness, 0 to 1, or RANDOM")
	seed := flag.Int("seed", 0, "Noise seed (0 = pick one at random)")
	frequency := flag.Float64("frequency", 0, "Noise cycles per pixel (0 = 1/max(width, height))")
	count := flag.Int("count", 1, "Number of images to generate")
	label := flag.Bool("label", false, "Draw an 'Image X/Y' label on each image")
	workers := flag.Int("workers", 0, fmt.Sprintf("Parallel render workers (default %d = CPU cores)", runtime.NumCPU()))
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	configFile := flag.String("config", "", "Load parameters from a YAML file")
	saveConfig := flag.String("save-config", "", "Save the effective parameters to a YAML file")
	interactive := flag.Bool("interactive", false, "Launch the interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch the interactive wizard (shorthand)")
	showVersion := flag.Bool("version", false, "Show version")
	help := flag.Bool("help", false, "Show detailed help")
	flag.Parse()

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("gradientforge %s\n", version)
		os.Exit(0)
	}

	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// YAML config flow: the file carries everything the flags would.
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts, err := wizard.ToOptions(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Workers = *workers
		opts.Quiet = *quiet

		runAndReport(opts, *saveConfig, *quiet)
		return
	}

	if *sizeArg == "" {
		fmt.Fprintln(os.Stderr, "Error: --size is required")
		printUsage()
		os.Exit(1)
	}

	size, err := gradient.ParseSize(*sizeArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hue, err := util.ParseColorValue(*hueArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: --hue: %v\n", err)
		os.Exit(1)
	}
	saturation, err := util.ParseColorValue(*saturationArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: --saturation: %v\n", err)
		os.Exit(1)
	}
	brightness, err := util.ParseColorValue(*brightnessArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: --brightness: %v\n", err)
		os.Exit(1)
	}

	randomCount := 0
	for _, v := range []util.ColorValue{hue, saturation, brightness} {
		if v.Random {
			randomCount++
		}
	}
	if randomCount != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one of --hue, --saturation, --brightness must be %s (got %d)\n",
			util.RandomString, randomCount)
		printUsage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: --output must not be empty")
		os.Exit(1)
	}
	if *count < 1 {
		fmt.Fprintf(os.Stderr, "Error: --count must be >= 1, got %d\n", *count)
		os.Exit(1)
	}
	if *seed < math.MinInt32 || *seed > math.MaxInt32 {
		fmt.Fprintln(os.Stderr, "Error: --seed must fit in 32 bits")
		os.Exit(1)
	}

	noiseSeed := int32(*seed)
	if *seed == 0 {
		noiseSeed = util.RandomSeed()
	}

	noiseFrequency := float32(*frequency)
	if *frequency == 0 {
		magnitude := size.Width
		if size.Height > magnitude {
			magnitude = size.Height
		}
		noiseFrequency = 1 / float32(magnitude)
	}

	opts := render.Options{
		Size:    size,
		Init:    gradient.NewPixelInit(hue.Ptr(), saturation.Ptr(), brightness.Ptr()),
		Noise:   gradient.NoiseOptions{Seed: noiseSeed, Frequency: noiseFrequency},
		Output:  *output,
		Count:   *count,
		Label:   *label,
		Workers: *workers,
		Quiet:   *quiet,
	}

	runAndReport(opts, *saveConfig, *quiet)
}

// runAndReport echoes the effective parameters, renders all images and
// prints what was written.
func runAndReport(opts render.Options, saveConfig string, quiet bool) {
	state := wizard.FromOptions(opts)

	if !quiet {
		fmt.Println("gradientforge")
		fmt.Println("=============")
		fmt.Println()
		printParameters(state)
	}

	files, err := render.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if saveConfig != "" {
		if err := wizard.SaveToYAML(state, saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !quiet {
			fmt.Printf("✓ Configuration saved to %s\n", saveConfig)
		}
	}

	if !quiet {
		fmt.Println()
		for _, f := range files {
			fmt.Printf("✓ %s (%s)\n", f.Path, humanize.Bytes(uint64(f.Bytes)))
		}
	}
}

// printParameters echoes the effective generation parameters in the
// same form the flags accept, so a run can be reproduced by copying
// them back.
func printParameters(state *wizard.WizardState) {
	fmt.Printf("Generating '%s' with the following parameters:\n", state.Image.Output)
	fmt.Printf("\t--size=%s\n", state.Image.Size)
	fmt.Printf("\t--hue=%s\n", state.Color.Hue)
	fmt.Printf("\t--saturation=%s\n", state.Color.Saturation)
	fmt.Printf("\t--brightness=%s\n", state.Color.Brightness)
	fmt.Printf("\t--seed=%d\n", state.Noise.Seed)
	fmt.Printf("\t--frequency=%s\n", util.FormatFloat32(state.Noise.Frequency))
	if state.Image.Count > 1 {
		fmt.Printf("\t--count=%d\n", state.Image.Count)
	}
	if state.Image.Label {
		fmt.Printf("\t--label\n")
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: gradientforge --size <WxH> [options]")
	fmt.Fprintln(os.Stderr, "Run 'gradientforge --help' for details.")
}

func printHelp() {
	fmt.Println(`gradientforge - random gradient image generator

Renders images by driving a single HSV channel per pixel from smooth
gradient noise. The two remaining channels stay fixed, so the output
is a soft wash of color across one dimension of the HSV space.

Usage:
  gradientforge --size <WxH> [options]
  gradientforge wizard [--from <config.yaml>]

Required:
  --size string         Image size in pixels, e.g. '512x256'

Color (exactly one must be RANDOM):
  --hue string          Hue in degrees, 0 <= hue < 360 (default RANDOM)
  --saturation string   Saturation, 0 to 1 (default 1)
  --brightness string   Brightness, 0 to 1 (default 1)

Noise:
  --seed int            Noise seed (default: picked at random)
  --frequency float     Noise cycles per pixel (default: 1/max(width, height))

Output:
  --output string       Output path, .bmp or .png (default "gradient.bmp")
  --count int           Number of images to generate (default 1)
  --label               Draw an 'Image X/Y' label on each image
  --workers int         Parallel render workers (default: CPU cores)
  --quiet               Suppress progress output

Configuration:
  --config string       Load parameters from a YAML file
  --save-config string  Save the effective parameters to a YAML file
  --interactive, -i     Launch the interactive wizard

Examples:
  # One smooth hue wash
  gradientforge --size 512x512

  # Fixed hue, noise drives brightness
  gradientforge --size 1920x1080 --hue 210 --brightness RANDOM --output wall.png

  # Reproducible batch of 12
  gradientforge --size 256x256 --seed 42 --count 12 --output set.bmp

Reproducibility:
  The same size, color parameters, seed and frequency always render
  the exact same image. Batches derive one seed per image from the
  base seed, so a whole batch reproduces from a single --seed.`)
}
