package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// options mirrors the flat flag-struct-plus-YAML-overlay pattern the
// upstream CLI uses: flags set defaults, an optional -config file overlays
// them, and the package-level opts is read directly everywhere rather than
// threaded explicitly through every call.
type options struct {
	Task      string  `yaml:"task"`
	Store     string  `yaml:"store"`
	NumKeys   int     `yaml:"numKeys"`
	NumData   int     `yaml:"numData"`
	Density   int     `yaml:"density"`
	Seed      int64   `yaml:"seed"`
	TopN      int     `yaml:"topN"`
	DotOut    string  `yaml:"dotOut"`
	Reverse    bool  `yaml:"reverse"`
	Verbose    bool  `yaml:"verbose"`
	NoColorize bool  `yaml:"noColorize"`
}

var opts options

const (
	taskRun  = "run"
	taskDump = "dump"
)

var tasks = []struct{ flag, explanation string }{
	{taskRun, "Drive a synthetic workload to fixpoint and report popularity metrics"},
	{taskDump, "Drive a synthetic workload to fixpoint, then dump points-to sets and a DOT graph"},
}

func init() {
	taskFlag := "\n"
	for _, t := range tasks {
		taskFlag += t.flag + " -- " + t.explanation + "\n"
	}

	flag.StringVar(&opts.Task, "task", taskRun, "task to run:"+taskFlag)
	flag.StringVar(&opts.Store, "store", "diff", "store implementation: basic | diff | df | incdf | versioned")
	flag.IntVar(&opts.NumKeys, "n-keys", 200, "number of synthetic Keys")
	flag.IntVar(&opts.NumData, "n-data", 50, "number of synthetic Data values")
	flag.IntVar(&opts.Density, "density", 4, "assignments/edges generated per Key")
	flag.Int64Var(&opts.Seed, "seed", 1, "random seed for workload generation")
	flag.IntVar(&opts.TopN, "top-n", 10, "N for the TopN popularity metric")
	flag.StringVar(&opts.DotOut, "dot-out", "", "if set, write the points-to graph (Keys clustered by shared pointees) as a .dot file here (task=dump)")
	flag.BoolVar(&opts.Reverse, "reverse", true, "construct stores with reverse points-to tracking enabled")
	flag.BoolVar(&opts.Verbose, "verbose", false, "enable debug logging")
	flag.BoolVar(&opts.NoColorize, "no-colorize", false, "disable colorized dump output")

	configPath := flag.String("config", "", "path to a YAML file overlaying the flag defaults above")
	flag.Parse()

	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("ptbench: opening -config %q: %v", *configPath, err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&opts); err != nil {
			log.Fatalf("ptbench: decoding -config %q: %v", *configPath, err)
		}
	}

	validTask := false
	for _, t := range tasks {
		if t.flag == opts.Task {
			validTask = true
			break
		}
	}
	if !validTask {
		log.Fatalf("ptbench: %q is not a valid -task", opts.Task)
	}
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opts.Verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func main() {
	logger := newLogger()

	switch opts.Task {
	case taskRun:
		runTask(logger)
	case taskDump:
		dumpTask(logger)
	default:
		panic(fmt.Sprintf("unreachable: unhandled task %q", opts.Task))
	}
}
