// Command pnplog writes one line per severity through a pnplog Logger. It is
// handy for checking a log directory layout or terminal colors.
//
//	LEVEL=silly pnplog --log-dir ./logs --millis "hello there"
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Station-Manager/pnplog"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		logDir     = flag.String("log-dir", "", "directory for per-severity log files")
		enableJSON = flag.Bool("json", true, "write JSON files next to the plain-text ones")
		timestamp  = flag.Bool("timestamp", true, "prefix level labels with a timestamp")
		millis     = flag.Bool("millis", false, "include milliseconds in the timestamp")
		announce   = flag.Bool("announce", true, "log the startup line")
		noColor    = flag.Bool("no-color", false, "disable console colors")
		envFile    = flag.String("env-file", "", "dotenv file to load before reading LEVEL and SILENT")
	)
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fmt.Fprintf(os.Stderr, "loading %s: %v\n", *envFile, err)
			os.Exit(1)
		}
	}

	cfg, err := pnplog.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.LogDir = *logDir
	cfg.DisableJSON = !*enableJSON
	cfg.HideTimestamp = !*timestamp
	cfg.ShowMilliseconds = *millis
	cfg.SkipAnnounce = !*announce
	cfg.ConsoleNoColor = *noColor

	log, err := pnplog.New(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()

	msg := strings.Join(flag.Args(), " ")
	if msg == "" {
		msg = "sample"
	}
	meta := pnplog.Fields{"pid": os.Getpid()}

	log.Silly(msg, meta)
	log.Debug(msg, meta)
	log.Info(msg, meta)
	log.Warn(msg, meta)
	log.Error(msg, meta)
}
