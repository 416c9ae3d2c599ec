package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/helixchain/helixd/helixjson"
	"github.com/helixchain/helixd/util"
	"github.com/helixchain/helixd/util/network"
	"github.com/helixchain/helixd/version"
)

const (
	defaultConfigFilename = "helixctl.conf"
	defaultLogFilename    = "helixctl.log"
	defaultErrLogFilename = "helixctl_err.log"
	defaultRPCPort        = "8334"
)

var (
	defaultHomeDir     = util.AppDataDir("helixctl", false)
	helixdHomeDir      = util.AppDataDir("helixd", false)
	defaultConfigFile  = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogFile     = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile  = filepath.Join(defaultHomeDir, defaultErrLogFilename)
	defaultRPCServer   = "localhost"
	defaultRPCCertFile = filepath.Join(helixdHomeDir, "rpc.cert")
)

// listCommands lists all of the supported commands, categorized by whether
// they only work via websockets.
func listCommands() {
	const (
		categoryChain uint8 = iota
		categoryWebsocketOnly
		numCategories
	)

	// Categorize the registered methods. Notifications are not directly
	// callable by clients, so they are excluded.
	categorized := make([][]string, numCategories)
	for _, method := range helixjson.RegisteredCmdMethods() {
		flags, err := helixjson.MethodUsageFlags(method)
		if err != nil {
			continue
		}
		if flags&helixjson.UFNotification != 0 {
			continue
		}

		category := categoryChain
		if flags&helixjson.UFWebsocketOnly != 0 {
			category = categoryWebsocketOnly
		}
		categorized[category] = append(categorized[category], method)
	}

	categoryTitles := make([]string, numCategories)
	categoryTitles[categoryChain] = "Chain Server Commands:"
	categoryTitles[categoryWebsocketOnly] = "Websocket-only Commands:"
	for category := uint8(0); category < numCategories; category++ {
		fmt.Println(categoryTitles[category])
		for _, method := range categorized[category] {
			fmt.Println(method)
		}
		fmt.Println()
	}
}

type configFlags struct {
	ShowVersion    bool          `short:"V" long:"version" description:"Display version information and exit"`
	ListCommands   bool          `short:"l" long:"listcommands" description:"List all of the supported commands and exit"`
	ConfigFile     string        `short:"C" long:"configfile" description:"Path to configuration file"`
	RPCUser        string        `short:"u" long:"rpcuser" description:"RPC username"`
	RPCPassword    string        `short:"P" long:"rpcpass" default-mask:"-" description:"RPC password"`
	RPCServer      string        `short:"s" long:"rpcserver" description:"RPC server to connect to"`
	RPCCert        string        `short:"c" long:"rpccert" description:"RPC server certificate chain for validation"`
	NoTLS          bool          `long:"notls" description:"Disable TLS"`
	Proxy          string        `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser      string        `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass      string        `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	RequestTimeout time.Duration `long:"requesttimeout" description:"Maximum amount of time to wait for a reply from the RPC server"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// promptPassword interactively reads the RPC password without echoing it to
// the terminal.
func promptPassword() (string, error) {
	initialTermState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return "", errors.Wrap(err, "failed to read terminal state")
	}

	// Restore the terminal in the event of an interrupt.
	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt)
	go func() {
		<-interruptChan
		_ = term.Restore(int(syscall.Stdin), initialTermState)
		os.Exit(1)
	}()
	defer signal.Stop(interruptChan)

	fmt.Print("RPC password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}
	return string(password), nil
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func loadConfig() (*configFlags, []string, error) {
	cfg := &configFlags{
		ConfigFile: defaultConfigFile,
		RPCServer:  defaultRPCServer,
		RPCCert:    defaultRPCCertFile,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified. The help message flag can be ignored here since
	// the final parse below handles it.
	preCfg := *cfg
	preParser := flags.NewParser(&preCfg, flags.None)
	_, err := preParser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			return nil, nil, err
		}
	}

	if preCfg.ShowVersion {
		fmt.Println("helixctl version", version.Version())
		os.Exit(0)
	}
	if preCfg.ListCommands {
		listCommands()
		os.Exit(0)
	}

	// Load additional config from file when it exists.
	parser := flags.NewParser(cfg, flags.Default)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if fileExists(configFile) {
		err := flags.NewIniParser(parser).ParseFile(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %s\n",
				err)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if cfg.RPCUser == "" {
		return nil, nil, errors.New("--rpcuser is required")
	}
	if cfg.RPCPassword == "" {
		cfg.RPCPassword, err = promptPassword()
		if err != nil {
			return nil, nil, err
		}
	}

	// Handle environment variable expansion in the RPC certificate path.
	cfg.RPCCert = cleanAndExpandPath(cfg.RPCCert)

	// Add the default port to the RPC server if needed.
	cfg.RPCServer, err = network.NormalizeAddress(cfg.RPCServer, defaultRPCPort)
	if err != nil {
		return nil, nil, err
	}

	initLog(defaultLogFile, defaultErrLogFile)

	return cfg, remainingArgs, nil
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}
