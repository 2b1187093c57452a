package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"anatspace/pkg/config"
	"anatspace/pkg/space"
	"anatspace/pkg/volume"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "Raw volume file (little-endian float64, row-major)")
	outputFile := flag.String("output", "reoriented.raw", "Output volume filename")
	fromSpec := flag.String("from", "", "Source orientation: config name or letters (e.g. asl)")
	toSpec := flag.String("to", "", "Target orientation: config name or letters (e.g. psl)")
	shapeSpec := flag.String("shape", "", "Volume shape as X,Y,Z (overrides config)")
	configPath := flag.String("config", "anatspace.yaml", "Configuration file with named conventions")
	printMatrix := flag.Bool("matrix", false, "Print the 4x4 voxel-index transformation matrix")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *fromSpec == "" {
		*fromSpec = cfg.Defaults.Source
	}
	if *toSpec == "" {
		*toSpec = cfg.Defaults.Target
	}

	shape, haveShape, err := parseShape(*shapeSpec)
	if err != nil {
		log.Fatalf("Invalid -shape: %v", err)
	}

	source, err := buildConvention(cfg.Resolve(*fromSpec), shape, haveShape)
	if err != nil {
		log.Fatalf("Invalid source orientation %q: %v", *fromSpec, err)
	}
	target, err := buildConvention(cfg.Resolve(*toSpec), [3]int{}, false)
	if err != nil {
		log.Fatalf("Invalid target orientation %q: %v", *toSpec, err)
	}

	if cfg.Output.Verbose {
		fmt.Println("================================")
		fmt.Println("ANATOMICAL SPACE REORIENTATION")
		fmt.Println("================================")
		fmt.Printf("Source convention: %s (axes %v)\n", source, source.Axes())
		fmt.Printf("Target convention: %s (axes %v)\n", target, target.Axes())
	}

	order, flips, err := source.MapTo(target)
	if err != nil {
		log.Fatalf("Mapping failed: %v", err)
	}
	fmt.Printf("Axis order: %v\n", order)
	fmt.Printf("Axis flips: %v\n", flips)

	if *printMatrix {
		m, err := source.TransformationMatrixTo(target)
		if err != nil {
			log.Fatalf("Matrix construction failed: %v", err)
		}
		fmt.Printf("Transformation matrix:\n%v\n",
			mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
	}

	if *inputFile == "" {
		if !*printMatrix {
			flag.Usage()
			os.Exit(1)
		}
		return
	}

	srcShape, ok := source.Shape()
	if !ok {
		log.Fatalf("Reorienting a volume needs a shape: pass -shape or configure one for %q", *fromSpec)
	}

	vol, err := volume.ReadRaw(*inputFile, srcShape)
	if err != nil {
		log.Fatalf("Failed to read volume: %v", err)
	}
	vol.VoxelSize = source.Resolution()

	out, err := source.MapVolumeTo(vol, target, false)
	if err != nil {
		log.Fatalf("Reorientation failed: %v", err)
	}

	if err := volume.WriteRaw(out, *outputFile); err != nil {
		log.Fatalf("Failed to write volume: %v", err)
	}

	fmt.Printf("\nReorientation completed successfully!\n")
	fmt.Printf("Output volume saved to: %s (shape %v)\n", *outputFile, out.Shape)
}

// buildConvention turns a configured convention spec into a space.Convention,
// letting an explicit -shape override the configured extents.
func buildConvention(spec config.ConventionSpec, shape [3]int, haveShape bool) (*space.Convention, error) {
	if !haveShape {
		shape = spec.Shape
	}
	return space.NewFromParams(&space.Params{
		Origin:     []string{spec.Origin},
		Shape:      shape,
		Resolution: spec.Resolution,
	})
}

func parseShape(s string) ([3]int, bool, error) {
	var shape [3]int
	if s == "" {
		return shape, false, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return shape, false, fmt.Errorf("want 3 comma-separated extents, got %d", len(parts))
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return shape, false, fmt.Errorf("extent %d: %w", i, err)
		}
		if n <= 0 {
			return shape, false, fmt.Errorf("extent %d must be positive, got %d", i, n)
		}
		shape[i] = n
	}

	return shape, true, nil
}
