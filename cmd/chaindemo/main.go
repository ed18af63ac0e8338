package main

import (
	"errors"
	"fmt"
	"github.com/gostonefire/chainhashtable"
	"github.com/gostonefire/chainhashtable/crt"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"io"
	"os"
	"strings"
)

var log = logging.MustGetLogger("chaindemo")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
)

// Options - Command line options for the demo
type Options struct {
	Capacity  int64  `short:"c" long:"capacity" default:"4" description:"number of buckets in the hash table"`
	Technique string `short:"t" long:"technique" default:"overwrite" choice:"none" choice:"chaining" choice:"overwrite" description:"collision resolution technique"`
	LogLevel  string `short:"l" long:"loglevel" default:"warning" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] key=value..."

	args, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err = setupLogging(opts.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = run(opts, args, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// setupLogging - Sets a formatted stderr backend at the given level for all modules
func setupLogging(logLevel string) (err error) {
	level, err := logging.LogLevel(logLevel)
	if err != nil {
		err = fmt.Errorf("invalid log level %q: %s", logLevel, err)
		return
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, stderrLogFormat))
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)

	return
}

// run - Inserts every key=value pair with the chosen technique and prints the resulting buckets.
// An insert that fails with a collision is reported and skipped, any other error stops the run.
func run(opts Options, pairs []string, w io.Writer) (err error) {
	technique, ok := crt.Parse(opts.Technique)
	if !ok {
		err = fmt.Errorf("unknown technique %q", opts.Technique)
		return
	}

	ht, err := chainhashtable.NewHashTable(opts.Capacity, nil)
	if err != nil {
		return
	}
	log.Infof("created hash table with %d buckets using technique %s", ht.Capacity(), crt.Name(technique))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			err = fmt.Errorf("argument %q is not on the form key=value", pair)
			return
		}

		err = ht.InsertWithTechnique(technique, key, value)
		if errors.Is(err, crt.Collision{}) {
			log.Warningf("skipping %q: %s", key, err)
			_, _ = fmt.Fprintf(w, "collision: %s\n", key)
			err = nil
			continue
		}
		if err != nil {
			return
		}
	}

	return printHashTable(ht, w)
}

// printHashTable - Writes every bucket chain from head to tail followed by a summary
func printHashTable(ht *chainhashtable.HashTable, w io.Writer) (err error) {
	var head *chainhashtable.Entry
	for i := int64(0); i < ht.Capacity(); i++ {
		head, err = ht.Bucket(i)
		if err != nil {
			return
		}

		var links []string
		for e := head; e != nil; e = e.Next {
			links = append(links, fmt.Sprintf("(%s: %v)", e.Key, e.Value))
		}
		if len(links) == 0 {
			links = append(links, "empty")
		}
		_, _ = fmt.Fprintf(w, "bucket %d: %s\n", i, strings.Join(links, " -> "))
	}

	stat := ht.Stat(false)
	_, err = fmt.Fprintf(w, "count: %d, capacity: %d, used buckets: %d, longest chain: %d\n",
		ht.Count(), ht.Capacity(), stat.UsedBuckets, stat.LongestChain)

	return
}
