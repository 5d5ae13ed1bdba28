// Command flatmedian loads a triangulated mesh and a set of weighted
// input chains, solves for their median shape, and writes the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/flatmedian/flatmedian/chainio"
	"github.com/flatmedian/flatmedian/median"
	"github.com/flatmedian/flatmedian/off"
	"github.com/flatmedian/flatmedian/orient"
)

// chainFlag accumulates repeated -chain path:alpha flags.
type chainFlag struct {
	paths  []string
	alphas []float64
}

func (c *chainFlag) String() string {
	return strings.Join(c.paths, ",")
}

func (c *chainFlag) Set(v string) error {
	path, alphaStr, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("expected path:alpha, got %q", v)
	}
	alpha, err := strconv.ParseFloat(alphaStr, 64)
	if err != nil {
		return fmt.Errorf("invalid alpha in %q: %w", v, err)
	}
	c.paths = append(c.paths, path)
	c.alphas = append(c.alphas, alpha)

	return nil
}

func main() {
	meshPath := flag.String("mesh", "Plane.off", "OFF mesh file")
	outPath := flag.String("out", "median.txt", "output path for the median chain")
	mu := flag.Float64("mu", 1e-3, "edge-length regularization weight")
	lambda := flag.Float64("lambda", 1e-5, "triangle-area regularization weight")
	var chains chainFlag
	flag.Var(&chains, "chain", "path:alpha pair; repeat for each input chain")
	flag.Parse()

	if err := run(*meshPath, *outPath, *mu, *lambda, chains); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(meshPath, outPath string, mu, lambda float64, chains chainFlag) error {
	fmt.Println("Loading mesh...")
	m, err := off.Load(meshPath)
	if err != nil {
		return fmt.Errorf("loading mesh: %w", err)
	}

	fmt.Println("Orienting mesh...")
	if err := orient.Orient(m); err != nil {
		return fmt.Errorf("mesh is not orientable: %w", err)
	}

	if len(chains.paths) == 0 {
		return fmt.Errorf("at least one -chain path:alpha flag is required")
	}

	fmt.Println("Loading chains...")
	builder := median.New(m, mu, lambda)
	for i, path := range chains.paths {
		c, err := chainio.LoadChain(m, path)
		if err != nil {
			return fmt.Errorf("loading chain %d (%s): %w", i+1, path, err)
		}
		if err := builder.AddChain(c, chains.alphas[i]); err != nil {
			return fmt.Errorf("adding chain %d (%s): %w", i+1, path, err)
		}
	}

	fmt.Println("Solving LP...")
	result, _, err := builder.Solve()
	if err != nil {
		return fmt.Errorf("solving LP: %w", err)
	}

	fmt.Printf("Result: %s\n", result)
	if err := chainio.SaveChain(result, outPath); err != nil {
		return fmt.Errorf("saving median chain: %w", err)
	}

	return nil
}
