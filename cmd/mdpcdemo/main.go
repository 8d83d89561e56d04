// Command mdpcdemo generates a QC-MDPC key pair over GF(4), encodes a
// random plaintext, optionally injects an error, and decodes it —
// the end-to-end demonstration entry point called for in the core's
// external interfaces.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mdpc-gf4/codec"
	"mdpc-gf4/internal/gf4"
	"mdpc-gf4/internal/randsrc"
	"mdpc-gf4/keygen"
)

const (
	exitSuccess       = 0
	exitDecodeFailure = 1
	exitInverterBug   = 2
)

func main() {
	r := flag.Int("r", 2339, "block size")
	w := flag.Int("w", 37, "block weight")
	iters := flag.Int("iters", 100, "decoder iteration budget")
	seed := flag.Int64("seed", 0, "PRNG seed (0 draws a fresh seed from OS entropy)")
	inject := flag.Int("inject", 0, "Hamming weight of an error to inject before decoding")
	fast := flag.Bool("fast", false, "use the ChaCha20-backed random source instead of math/rand")
	debug := flag.Bool("debug", false, "narrate key generation and decoding to stderr")
	plotPath := flag.String("plot", "", "write an HTML chart of this run's syndrome weight per iteration to this path")
	flag.Parse()

	keygen.Debug = *debug
	codec.Debug = *debug

	usedSeed := *seed
	if usedSeed == 0 {
		usedSeed = randsrc.NewSeed()
	}
	var src *randsrc.Source
	if *fast {
		src = randsrc.NewChaChaSource(usedSeed)
	} else {
		src = randsrc.NewMTSource(usedSeed)
	}

	field := gf4.New()
	fmt.Printf("mdpcdemo: r=%d w=%d iters=%d seed=%d fast=%v\n", *r, *w, *iters, usedSeed, *fast)

	enc, dec, err := keygen.GenerateKeyPair(field, *r, *w, src)
	if err != nil {
		if err == keygen.ErrInverterBug {
			log.Printf("internal invariant violation: %v", err)
			os.Exit(exitInverterBug)
		}
		log.Fatalf("key generation: %v", err)
	}

	m := src.RandomVector(field, *r)
	c, err := codec.Encode(enc, m)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	if *inject > 0 {
		e, err := src.RandomWeightedVector(field, 2*(*r), *inject)
		if err != nil {
			log.Fatalf("inject: %v", err)
		}
		for i := range c {
			c[i] = field.Add(c[i], e[i])
		}
		fmt.Printf("injected an error of Hamming weight %d\n", *inject)
	}

	var weights []int
	var trace codec.IterationTrace
	if *plotPath != "" {
		trace = func(iteration, syndromeWeight int) {
			weights = append(weights, syndromeWeight)
		}
	}

	errVec, ok, err := codec.Decode(dec, c, *iters, trace)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	if *plotPath != "" {
		if err := writeSyndromeWeightChart(*plotPath, weights); err != nil {
			log.Printf("plot: %v", err)
		} else {
			fmt.Println("syndrome-weight chart:", *plotPath)
		}
	}

	if !ok {
		fmt.Println("decode failed: syndrome did not reach zero within the iteration budget")
		os.Exit(exitDecodeFailure)
	}

	flips := 0
	for _, v := range errVec {
		if !field.IsZero(v) {
			flips++
		}
	}
	fmt.Printf("decode succeeded, recovered error weight %d\n", flips)
	os.Exit(exitSuccess)
}

// writeSyndromeWeightChart renders a single line series of the
// syndrome's Hamming weight per decoder iteration for this one run.
// This is a diagnostic view of a single decode, not a failure-rate
// benchmark: no seeds are swept and no rate is aggregated.
func writeSyndromeWeightChart(path string, weights []int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Syndrome weight per decoder iteration"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hamming weight"}),
	)
	xLabels := make([]string, len(weights))
	data := make([]opts.LineData, len(weights))
	for i, w := range weights {
		xLabels[i] = fmt.Sprintf("%d", i)
		data[i] = opts.LineData{Value: w}
	}
	line.SetXAxis(xLabels).AddSeries("syndrome weight", data)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
