package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/helixchain/helixd/helixjson"
	"github.com/helixchain/helixd/rpcclient"
)

const (
	showHelpMessage = "Specify -h to show available options"
	listCmdMessage  = "Specify -l to list available commands"
)

// commandUsage displays the usage for a specific command.
func commandUsage(method string) {
	fmt.Fprintf(os.Stderr, "Incorrect arguments for method %q\n", method)
	fmt.Fprintln(os.Stderr, listCmdMessage)
}

// usage displays the general usage when the help flag is not displayed and
// an invalid command was specified. The commandUsage function is used
// instead when a valid command was specified.
func usage(errorMessage string) {
	appName := "helixctl"
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <command> <args...>\n\n",
		appName)
	fmt.Fprintln(os.Stderr, showHelpMessage)
	fmt.Fprintln(os.Stderr, listCmdMessage)
}

// newRPCClient returns a client connected over HTTP POST to the RPC server
// described by the passed config.
func newRPCClient(cfg *configFlags) (*rpcclient.Client, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:           cfg.RPCServer,
		User:           cfg.RPCUser,
		Pass:           cfg.RPCPassword,
		Proxy:          cfg.Proxy,
		ProxyUser:      cfg.ProxyUser,
		ProxyPass:      cfg.ProxyPass,
		DisableTLS:     cfg.NoTLS,
		HTTPPostMode:   true,
		RequestTimeout: cfg.RequestTimeout,
	}
	if !cfg.NoTLS {
		certificates, err := ioutil.ReadFile(cfg.RPCCert)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading RPC "+
				"certificate file %s", cfg.RPCCert)
		}
		connCfg.Certificates = certificates
	}
	return rpcclient.New(connCfg, nil)
}

func main() {
	cfg, args, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}
	if len(args) < 1 {
		usage("No command specified")
		os.Exit(1)
	}

	// Ensure the specified method identifies a valid registered command and
	// is one of the usable types.
	method := args[0]
	usageFlags, err := helixjson.MethodUsageFlags(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unrecognized command %q\n", method)
		fmt.Fprintln(os.Stderr, listCmdMessage)
		os.Exit(1)
	}
	if usageFlags&helixjson.UFNotification != 0 {
		fmt.Fprintf(os.Stderr, "The %q command is a notification and "+
			"cannot be called by clients\n", method)
		os.Exit(1)
	}
	if usageFlags&helixjson.UFWebsocketOnly != 0 {
		fmt.Fprintf(os.Stderr, "The %q command requires a websocket "+
			"connection and cannot be called over HTTP POST\n",
			method)
		os.Exit(1)
	}

	// Attempt to create the appropriate command using the arguments
	// provided by the user. The command parser coerces string arguments
	// into the types the command expects, so numeric and boolean
	// parameters may be given as plain text.
	params := make([]interface{}, 0, len(args[1:]))
	for _, arg := range args[1:] {
		params = append(params, arg)
	}
	cmd, err := helixjson.NewCmd(method, params...)
	if err != nil {
		// Show the error along with its error code when it's a
		// helixjson.Error as it realistically will always be since the
		// NewCmd function is only supposed to return errors of that
		// type.
		if jerr, ok := err.(helixjson.Error); ok {
			fmt.Fprintf(os.Stderr, "%s command: %v (code: %s)\n",
				method, err, jerr.ErrorCode)
			commandUsage(method)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s command: %v\n", method, err)
		commandUsage(method)
		os.Exit(1)
	}

	// Marshal the command into a JSON-RPC byte slice and extract the
	// coerced parameters back out of it for submission as a raw request.
	marshalledJSON, err := helixjson.MarshalCmd(1, cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var request helixjson.Request
	if err := json.Unmarshal(marshalledJSON, &request); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	client, err := newRPCClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer client.Shutdown()

	result, err := client.RawRequest(request.Method, request.Params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Choose how to display the result based on its type.
	strResult := string(result)
	switch {
	case strings.HasPrefix(strResult, "{") || strings.HasPrefix(strResult, "["):
		var dst bytes.Buffer
		if err := json.Indent(&dst, result, "", "  "); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to format result: %v\n",
				err)
			os.Exit(1)
		}
		fmt.Println(dst.String())

	case strings.HasPrefix(strResult, `"`):
		var str string
		if err := json.Unmarshal(result, &str); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to unmarshal result: %v\n",
				err)
			os.Exit(1)
		}
		fmt.Println(str)

	case strResult != "null":
		fmt.Println(strResult)
	}
}
