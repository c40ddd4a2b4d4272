package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/glulx-runtime/session"
)

func main() {
	var (
		imagePath   = flag.String("image", "", "Path to program image (raw or archive)")
		configPath  = flag.String("config", "", "TOML session config file")
		seed        = flag.Uint64("seed", 0, "Random seed (0 = host entropy)")
		draws       = flag.Int("draws", 0, "Print N random draws")
		heapLimit   = flag.Uint64("heap", 0, "Heap budget in bytes (0 = unbounded)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if err := run(*imagePath, *configPath, uint32(*seed), *draws, *heapLimit, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(imagePath, configPath string, seed uint32, draws int, heapLimit uint64, interactive, verbose bool) error {
	cfg := session.Config{}
	if configPath != "" {
		loaded, err := session.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if imagePath != "" {
		cfg.ImagePath = imagePath
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if heapLimit != 0 {
		cfg.HeapLimit = heapLimit
	}

	if cfg.ImagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -image <file> [-seed n] [-draws n]")
		fmt.Fprintln(os.Stderr, "       run -image <file> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       run -config <run.toml>")
		os.Exit(1)
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
		session.SetLogger(logger)
	}

	sess, err := session.Start(cfg)
	if err != nil {
		return err
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(sess, cfg.ImagePath)
	}

	fmt.Printf("Image: %s\n", cfg.ImagePath)
	fmt.Printf("Kind: %s\n", sess.Kind())
	fmt.Printf("Program: %d bytes\n", len(sess.Program()))

	if draws > 0 {
		mode := "native"
		if cfg.Seed != 0 {
			mode = fmt.Sprintf("deterministic (seed %d)", cfg.Seed)
		}
		fmt.Printf("\nRandom draws, %s:\n", mode)
		for i := 0; i < draws; i++ {
			fmt.Printf("  %#08x\n", sess.GetRandom())
		}
	}
	return nil
}
