package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/serialrsfec/rsfec19/internal/config"
)

const VERSION = "1.0.0"

var (
	HEADER1 = "rsfec19ctl: a bit-exact Reed-Solomon FEC codec for 19-bit tagged words."
	HEADER2 = "RS(127,121) over GF(2^7), three interleaved slices, CRC-18 option."
)

func main() {
	var (
		configFile = flag.String("config", "rsfec19.ini", "Configuration file path")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("rsfec19ctl v%s\n", VERSION)
		fmt.Println(HEADER1)
		fmt.Println(HEADER2)
		return
	}

	if flag.NArg() < 1 {
		log.Fatalf("usage: rsfec19ctl [-config file] <encode|decode|simulate|stats> [args]")
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.NewConfig(*configFile)
	if err := cfg.Load(); err != nil {
		log.Printf("config: %v (continuing with defaults)", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("received signal %v, shutting down...", sig)
		cancel()
	}()

	var err error
	switch flag.Arg(0) {
	case "encode":
		err = runEncode(cfg, flag.Args()[1:])
	case "decode":
		err = runDecode(cfg, flag.Args()[1:])
	case "simulate":
		err = runSimulate(ctx, cfg, flag.Args()[1:])
	case "stats":
		err = runStats(cfg, flag.Args()[1:])
	default:
		log.Fatalf("unknown subcommand %q", flag.Arg(0))
	}

	if err != nil {
		log.Fatalf("rsfec19ctl: %v", err)
	}
}

// colorize wraps s in an ANSI color code only when stdout is an
// interactive terminal.
func colorize(code, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}
