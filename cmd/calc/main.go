// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-json-experiment/json"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-calc"
	"github.com/dolthub/go-calc/config"
	"github.com/dolthub/go-calc/history"
)

// ErrHistoryDisabled is returned by -history when no history file is set.
var ErrHistoryDisabled = errors.NewKind("history is disabled, set history_path or %s")

// Reads one expression from stdin, evaluates it and prints the result.
//
// ```
// > echo "(2 + 3) * 4" | calc
// expression: result: 20
// ```
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

func run(
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	lookupEnv func(string) (string, bool),
) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a yaml config file")
	debug := fs.Bool("debug", false, "print a trace of every token and grammar rule; off unless set here, by "+
		config.DebugEnvKey+" or by debug in the config file")
	asJSON := fs.Bool("json", false, "print the result as a JSON object")
	listHistory := fs.Bool("history", false, "print the recorded evaluations and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath, lookupEnv)
	if err != nil {
		return fail(stderr, err)
	}

	if *debug {
		cfg.Debug = true
	}
	if *asJSON {
		cfg.Output = config.JSONOutput
	}

	if err := cfg.Validate(); err != nil {
		return fail(stderr, err)
	}

	level, err := cfg.Level()
	if err != nil {
		return fail(stderr, err)
	}

	var store *history.Store
	if cfg.HistoryPath != "" {
		store, err = history.Open(cfg.HistoryPath)
		if err != nil {
			return fail(stderr, err)
		}
		defer store.Close()
	}

	if *listHistory {
		if store == nil {
			return fail(stderr, ErrHistoryDisabled.New(config.HistoryEnvKey))
		}
		if err := printHistory(stdout, store); err != nil {
			return fail(stderr, err)
		}
		return 0
	}

	e := calc.New(&calc.Config{
		Debug:   cfg.Debug,
		Logger:  calc.NewLogger(stdout, level),
		History: store,
	})

	fmt.Fprint(stdout, cfg.Prompt)
	src, err := readLine(stdin)
	if err != nil {
		return fail(stderr, err)
	}

	r, err := e.Eval(context.Background(), src)
	if err != nil {
		return fail(stderr, err)
	}

	if err := printResult(stdout, cfg.Output, r); err != nil {
		return fail(stderr, err)
	}

	return 0
}

func loadConfig(path string, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readLine reads the first line of r with surrounding whitespace removed.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func printResult(w io.Writer, output string, r *calc.Result) error {
	if output == config.JSONOutput {
		if err := json.MarshalWrite(w, r); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	_, err := fmt.Fprintf(w, "result: %d\n", r.Value)
	return err
}

func printHistory(w io.Writer, store *history.Store) error {
	entries, err := store.List()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "history: %s\n", store.Path()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		outcome := fmt.Sprint(e.Result)
		if e.Failed() {
			outcome = "error: " + e.Error
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Seq, e.Time.Format(time.RFC3339), e.Expression, outcome)
	}

	return tw.Flush()
}

func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "error: %s\n", err)
	return 1
}
