// Command nitrocart is the native host runtime: it loads a cart
// container, boots the console's fixed-step frame loop against an SDL2
// presenter, and persists save data to disk between runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nitrocart/internal/audio"
	"nitrocart/internal/cart"
	"nitrocart/internal/console"
	"nitrocart/internal/debug"
	"nitrocart/internal/disk"
	"nitrocart/internal/presenter"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCart(os.Args[2:])
	case "create":
		err = createCart(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "nitrocart: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nitrocart run <cart> [--scale N] [--save <path>]")
	fmt.Fprintln(os.Stderr, "       nitrocart create <cart>")
}

func runCart(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	scale := fs.Int("scale", 3, "integer window scale factor")
	savePath := fs.String("save", "", "path to the persisted save file (default: <cart-stem>.disk)")
	logComponents := fs.String("log", "", "comma-separated components to log (framebuffer,hostcall,disk,audio,frame,cart,system)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("run: missing cart path")
	}
	cartPath := fs.Arg(0)

	raw, err := os.ReadFile(cartPath)
	if err != nil {
		return fmt.Errorf("run: read cart: %w", err)
	}
	program, _, err := cart.Decode(raw)
	if err != nil {
		return fmt.Errorf("run: decode cart: %w", err)
	}

	logger := debug.NewLogger(10000)
	enableLogComponents(logger, *logComponents)

	diskMgr := disk.Manager(disk.NewFileManager(cartPath, *savePath))

	audioQueue := audio.NewQueue(logger)
	audioDev, err := audio.NewDevice(audioQueue, logger)
	if err != nil {
		// Audio is optional: tones become no-ops per the error handling
		// policy, they are never fatal to startup.
		fmt.Fprintf(os.Stderr, "nitrocart: warning: audio device unavailable: %v\n", err)
	} else {
		defer audioDev.Close()
	}

	view, err := presenter.New(*scale)
	if err != nil {
		return fmt.Errorf("run: open presenter: %w", err)
	}
	defer view.Close()

	// The bytecode engine is an external collaborator (§6): this host
	// boots against cart.NewReferenceEngine here as the integration
	// point where a real VM plugs in. With no start/update exports
	// supplied, the console still runs its full frame loop, input
	// sampling, and scan-out against a blank cart.
	engine := cart.NewReferenceEngine(nil, nil)

	c := console.New(engine, diskMgr, audioQueue, view, logger, printerFunc(func(s string) {
		fmt.Print(s)
	}))

	if err := c.Load(program); err != nil {
		return fmt.Errorf("run: load cart: %w", err)
	}

	return c.Run()
}

func createCart(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("create: missing cart path")
	}
	cartPath := fs.Arg(0)

	if err := os.MkdirAll(filepath.Dir(cartPath), 0o755); err != nil && filepath.Dir(cartPath) != "." {
		return fmt.Errorf("create: %w", err)
	}

	container := cart.Encode(nil)
	if err := os.WriteFile(cartPath, container, 0o644); err != nil {
		return fmt.Errorf("create: write cart: %w", err)
	}

	fmt.Printf("created empty cart %s\n", cartPath)
	return nil
}

// enableLogComponents turns on the named, normally-opt-in log
// components; unrecognized names are ignored.
func enableLogComponents(logger *debug.Logger, spec string) {
	if spec == "" {
		return
	}
	names := map[string]debug.Component{
		"framebuffer": debug.ComponentFramebuffer,
		"hostcall":    debug.ComponentHostCall,
		"disk":        debug.ComponentDisk,
		"audio":       debug.ComponentAudio,
		"frame":       debug.ComponentFrame,
		"cart":        debug.ComponentCart,
		"system":      debug.ComponentSystem,
	}
	for _, name := range strings.Split(spec, ",") {
		if c, ok := names[strings.TrimSpace(name)]; ok {
			logger.SetComponentEnabled(c, true)
		}
	}
}

// printerFunc adapts a plain function to the hostcall.Printer interface.
type printerFunc func(string)

func (f printerFunc) Print(s string) { f(s) }
