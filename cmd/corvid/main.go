package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/internal/uci"
)

var (
	hashMB     = flag.Int("hash", 64, "transposition table size in MB")
	threads    = flag.Int("threads", 0, "search worker count (0 = GOMAXPROCS)")
	evalFile   = flag.String("evalfile", "", "NNUE weights file (empty = classical evaluation)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if *threads > 0 {
		engine.NumWorkers = *threads
	}

	eng := engine.NewEngine(*hashMB)

	if *evalFile != "" {
		if err := eng.LoadNNUE(*evalFile); err != nil {
			log.Printf("Warning: NNUE not loaded: %v (using classical evaluation)", err)
		} else {
			eng.SetUseNNUE(true)
		}
	}

	protocol := uci.New(eng)
	protocol.Run()
}
