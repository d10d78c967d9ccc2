package main

import (
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/cs-au-dk/ptds/internal/randkey"
	"github.com/cs-au-dk/ptds/pts"
)

// dumpTask drives a small synthetic workload through a BasicStore and
// prints the resulting points-to sets, optionally writing the Keys,
// clustered by shared pointees, as a DOT file. DumpPts/DotGraph work
// against *BasicStore directly, which DiffStore, DFStore and IncDFStore
// embed; this demo drives a plain BasicStore.
func dumpTask(logger *logrus.Logger) {
	if opts.NoColorize {
		color.NoColor = true
	}

	cache := pts.NewPersistentPointsToCache[randkey.Data](randkey.DataHasher)
	s := pts.NewBasicStore[randkey.Key, randkey.Data](cache, randkey.KeyHasher, true)

	r := rand.New(rand.NewSource(opts.Seed))
	w := randkey.Generate(r, opts.NumKeys, opts.NumData, opts.Density)
	for _, a := range w.Assignments {
		s.AddPts(a.Dst, a.Src)
	}
	for _, e := range w.Edges {
		s.UnionPtsKey(e.Dst, e.Src)
	}

	keys := make([]randkey.Key, opts.NumKeys)
	for i := range keys {
		keys[i] = randkey.Key(i)
	}

	pts.DumpPts(os.Stdout, s, keys, false)

	if opts.DotOut == "" {
		return
	}

	dataAsKey := func(randkey.Data) (randkey.Key, bool) { return 0, false }
	dot := pts.DotGraph(s, keys, dataAsKey)
	if err := os.WriteFile(opts.DotOut, []byte(dot), 0644); err != nil {
		logger.Fatalf("ptbench: writing %s: %v", opts.DotOut, err)
	}
	logger.Infof("wrote DOT graph to %s", opts.DotOut)

	if svgOut := opts.DotOut + ".svg"; opts.Verbose {
		if err := pts.RenderDotImage(dot, "svg", svgOut); err != nil {
			logger.Warnf("rendering %s: %v", svgOut, err)
		} else {
			logger.Infof("rendered %s", svgOut)
		}
	}
}
