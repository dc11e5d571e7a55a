package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/incmax/cmd"
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/novelty"
)

func init() {
	cmd.UsageMessage = "incmax --help"
	cmd.ExtendedMessage = `
incmax - incremental maximal frequent itemset mining

$ incmax -o <path> [Global Options] <input-path> [<reporter> [Reporter Options]]

Note: The <input-path> may be a regular file, a gzipped file (the extension
      must be '.gz') or a directory. Every file of a directory is read in name
      order as one stream of transactions.

Note: Each line of the input is a transaction. The items are separated by the
      --delimiter (tab by default). Quotes around items are removed and empty
      items are skipped.

Note: If you don't supply a reporter by default it will use 'chain log file'.

Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<float>         minimum support as a fraction of the batch size
                              (default .2)
    --confidence=<float>      minimum confidence of a rule (default .5)
    --novelty=<float>         minimum novelty of a retained itemset (default .5)
    --no-novelty              do not score itemsets and retain no seeds
    --novelty-metric=<name>   coverage (default) or distance
    --confidence-formula=<name>
                              consequent (default): support(A u C)/support(C)
                              antecedent: support(A u C)/support(A)
    --maximal                 drop itemsets contained in another itemset
    -b, --batch-size=<int>    transactions per batch (default: the whole input
                              is one batch)
    -d, --delimiter=<name>    tab, comma or space (default tab)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

    heap-profile Reporter

        $ incmax ... chain ... heap-profile [options]

        -p, profile=<path>    where you want the heap-profile written

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log each batch, its itemsets and rules
    file                      write itemsets, rules and the support table to
                              files in the output dir
    tree                      write the prefix tree and mfi tree of each batch
    unique                    takes an "inner reporter" but only passes
                              itemsets no earlier batch found to it
    max                       takes an "inner reporter" and passes only the
                              maximal itemsets to it
    skip                      takes an "inner reporter" and passes every n-th
                              batch to it
    count                     write the number of batches, itemsets and rules
    dbscan                    cluster the itemsets of all batches

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line
        --limit=<int>         log at most this many (randomly chosen)
                              itemsets per batch

    file Options
        -n, name=<name>       prefix of the files in the output dir. Writes
                              <name>.items, <name>.rules and <name>.support
                              (default incmax)

    tree Options
        -n, name=<name>       writes <name>.tree (default incmax)

    unique Options
        --histogram=<name>    if set unique will write the histogram of how many
                              batches found each itemset to <name>.csv

    skip Options
        -e, every=<int>       pass every n-th batch (default 1)

    count Options
        -f, filename=<name>   (default count)

    dbscan Options
        -f, filename=<name>   (default clusters.json)
        -e, epsilon=<float>   the largest jaccard distance within a cluster
                              (default .5)

    Examples

        $ incmax -o /tmp/incmax --support=.2 ./data/transactions.tsv.gz

        $ incmax -o /tmp/incmax -d comma -b 10000 --novelty=.3 \
            ./data/transactional_T10I4D100K.csv \
            chain \
                log -l DEBUG --limit=10 \
                unique --histogram=seen file -n unique \
                count
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:b:d:",
		[]string{
			"help",
			"output=", "cache=",
			"reporters",
			"support=",
			"confidence=",
			"novelty=",
			"no-novelty",
			"novelty-metric=",
			"confidence-formula=",
			"maximal",
			"batch-size=",
			"delimiter=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := config.Default()
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			conf.Output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			conf.Cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			conf.MinSupport = cmd.ParseFloat(oa.Arg())
		case "--confidence":
			conf.MinConfidence = cmd.ParseFloat(oa.Arg())
		case "--novelty":
			conf.MinNovelty = cmd.ParseFloat(oa.Arg())
		case "--no-novelty":
			conf.UseNovelty = false
		case "--novelty-metric":
			conf.Novelty = oa.Arg()
		case "--confidence-formula":
			conf.Formula = oa.Arg()
		case "--maximal":
			conf.Maximal = true
		case "-b", "--batch-size":
			conf.BatchSize = cmd.ParseInt(oa.Arg())
		case "-d", "--delimiter":
			conf.Delimiter = cmd.ParseDelimiter(oa.Arg())
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	for _, r := range []struct {
		name  string
		value float64
	}{
		{"support", conf.MinSupport},
		{"confidence", conf.MinConfidence},
		{"novelty", conf.MinNovelty},
	} {
		if r.value < 0 || r.value > 1 {
			fmt.Fprintf(os.Stderr, "--%v must be in [0, 1], got %v\n", r.name, r.value)
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if conf.BatchSize < 0 {
		fmt.Fprintf(os.Stderr, "--batch-size must be >= 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if !validMetric(conf.Novelty) {
		fmt.Fprintf(os.Stderr, "Unknown novelty metric '%v' (%v)\n", conf.Novelty, strings.Join(novelty.Scorers, ", "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if conf.Output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(args, conf)
}

func validMetric(name string) bool {
	for _, s := range novelty.Scorers {
		if s == name {
			return true
		}
	}
	return false
}
