/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command alice-search is the embedding shell around the fmindex core: it
// reads a text file, builds an Index over it and runs a single count,
// contains or locate query, optionally wiring the telemetry and result
// cache bridges the core itself never invokes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	alice "github.com/ext-sakamoro/alice-search"
	"github.com/ext-sakamoro/alice-search/cache"
	"github.com/ext-sakamoro/alice-search/fmindex"
	"github.com/ext-sakamoro/alice-search/telemetry"
)

const (
	_ALICE_VERSION = "1.0"
	_APP_HEADER    = "alice-search " + _ALICE_VERSION

	_ARG_INPUT   = "--input="
	_ARG_PATTERN = "--pattern="
	_ARG_MODE    = "--mode="
	_ARG_STEP    = "--step="
	_ARG_VERBOSE = "--verbose"
	_ARG_CACHE   = "--cache"
	_ARG_HELP    = "--help"
)

var (
	mutex sync.Mutex
	log   = Printer{os: bufio.NewWriter(os.Stdout)}
)

func main() {
	args, err := parseArgs(os.Args[1:])

	if err != nil {
		fmt.Println(err)
		printHelp()
		os.Exit(alice.ERR_INVALID_PARAM)
	}

	if args.help || args.input == "" {
		printHelp()

		if args.help {
			os.Exit(0)
		}

		os.Exit(alice.ERR_MISSING_PARAM)
	}

	os.Exit(run(args))
}

type cliArgs struct {
	input   string
	pattern string
	mode    string
	step    int
	verbose bool
	cache   bool
	help    bool
}

func parseArgs(argv []string) (cliArgs, error) {
	args := cliArgs{mode: "count", step: 4}

	for _, a := range argv {
		switch {
		case a == _ARG_HELP || a == "-h":
			args.help = true

		case a == _ARG_VERBOSE || a == "-v":
			args.verbose = true

		case a == _ARG_CACHE:
			args.cache = true

		case strings.HasPrefix(a, _ARG_INPUT):
			args.input = strings.TrimPrefix(a, _ARG_INPUT)

		case strings.HasPrefix(a, _ARG_PATTERN):
			args.pattern = strings.TrimPrefix(a, _ARG_PATTERN)

		case strings.HasPrefix(a, _ARG_MODE):
			args.mode = strings.TrimPrefix(a, _ARG_MODE)

		case strings.HasPrefix(a, _ARG_STEP):
			n, err := strconv.Atoi(strings.TrimPrefix(a, _ARG_STEP))

			if err != nil {
				return args, fmt.Errorf("invalid --step value: %w", err)
			}

			args.step = n

		default:
			return args, fmt.Errorf("unknown argument: %s", a)
		}
	}

	if args.mode != "count" && args.mode != "contains" && args.mode != "locate" {
		return args, fmt.Errorf("invalid --mode value: %s (want count, contains or locate)", args.mode)
	}

	return args, nil
}

func printHelp() {
	fmt.Println(_APP_HEADER)
	fmt.Println("Usage: alice-search --input=FILE --pattern=STR [--mode=count|contains|locate]")
	fmt.Println("                     [--step=N] [--verbose] [--cache]")
}

func run(args cliArgs) int {
	text, err := os.ReadFile(args.input)

	if err != nil {
		log.Println(fmt.Sprintf("Failed to read %s: %v", args.input, err), true)
		return alice.ERR_READ_FILE
	}

	idx, err := fmindex.Build(text, args.step)

	if err != nil {
		log.Println(fmt.Sprintf("Failed to build index: %v", err), true)
		return alice.ERR_BUILD_INDEX
	}

	inst := telemetry.Wrap(idx)

	if args.verbose {
		inst.AddListener(telemetry.NewStdoutSink(os.Stdout))
	}

	pattern := []byte(args.pattern)

	var rc *cache.ResultCache

	if args.cache {
		rc = cache.NewDefault()
	}

	switch args.mode {
	case "count":
		if rc != nil {
			log.Println(strconv.Itoa(rc.Count(idx, pattern)), true)
		} else {
			log.Println(strconv.Itoa(inst.Count(pattern)), true)
		}

	case "contains":
		log.Println(strconv.FormatBool(inst.Contains(pattern)), true)

	case "locate":
		var positions []int

		if rc != nil {
			positions = rc.LocateAll(idx, pattern)
		} else {
			positions = inst.LocateAll(pattern)
		}

		strs := make([]string, len(positions))

		for i, p := range positions {
			strs[i] = strconv.Itoa(p)
		}

		log.Println(strings.Join(strs, ","), true)
	}

	return 0
}

// Printer is a buffered, concurrency-safe println, grounded on the shell's
// own ordering guarantee that output lines never interleave.
type Printer struct {
	os *bufio.Writer
}

// Println writes msg followed by a newline when printFlag is true.
func (this *Printer) Println(msg string, printFlag bool) {
	if printFlag {
		mutex.Lock()

		if w, _ := this.os.Write([]byte(msg + "\n")); w > 0 {
			_ = this.os.Flush()
		}

		mutex.Unlock()
	}
}
