// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package helixjson_test

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/helixchain/helixd/helixjson"
)

// TestAssignField tests the conversions performed by NewCmd when the provided
// arguments are not the exact type of the underlying command struct fields.
func TestAssignField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		args       []interface{}
		staticCmd  func() interface{}
		marshalled string
	}{
		{
			name:   "exact types",
			method: "getblock",
			args:   []interface{}{"123", helixjson.Bool(true), helixjson.Bool(false)},
			staticCmd: func() interface{} {
				return helixjson.NewGetBlockCmd("123",
					helixjson.Bool(true), helixjson.Bool(false))
			},
			marshalled: `{"jsonrpc":"1.0","method":"getblock","params":["123",true,false],"id":1}`,
		},
		{
			name:   "optional params omitted",
			method: "getblock",
			args:   []interface{}{"123"},
			staticCmd: func() interface{} {
				return helixjson.NewGetBlockCmd("123", nil, nil)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getblock","params":["123"],"id":1}`,
		},
		{
			name:   "string to int64",
			method: "getblockhash",
			args:   []interface{}{"123456"},
			staticCmd: func() interface{} {
				return helixjson.NewGetBlockHashCmd(123456)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getblockhash","params":[123456],"id":1}`,
		},
		{
			name:   "int to int64",
			method: "getblockhash",
			args:   []interface{}{123456},
			staticCmd: func() interface{} {
				return helixjson.NewGetBlockHashCmd(123456)
			},
			marshalled: `{"jsonrpc":"1.0","method":"getblockhash","params":[123456],"id":1}`,
		},
		{
			name:   "string to optional bool",
			method: "sendrawtransaction",
			args:   []interface{}{"001122", "true"},
			staticCmd: func() interface{} {
				return helixjson.NewSendRawTransactionCmd("001122",
					helixjson.Bool(true))
			},
			marshalled: `{"jsonrpc":"1.0","method":"sendrawtransaction","params":["001122",true],"id":1}`,
		},
		{
			name:   "json string to optional struct",
			method: "submitblock",
			args:   []interface{}{"112233", `{"workid":"12345"}`},
			staticCmd: func() interface{} {
				options := helixjson.SubmitBlockOptions{
					WorkID: "12345",
				}
				return helixjson.NewSubmitBlockCmd("112233", &options)
			},
			marshalled: `{"jsonrpc":"1.0","method":"submitblock","params":["112233",{"workid":"12345"}],"id":1}`,
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Create the command with the generic mechanism and ensure it
		// matches the statically created one.
		cmd, err := helixjson.NewCmd(test.method, test.args...)
		if err != nil {
			t.Errorf("Test #%d (%s) unexpected NewCmd error: %v",
				i, test.name, err)
			continue
		}
		if !reflect.DeepEqual(cmd, test.staticCmd()) {
			t.Errorf("Test #%d (%s) unexpected cmd - got %s, want "+
				"%s", i, test.name, spew.Sdump(cmd),
				spew.Sdump(test.staticCmd()))
			continue
		}

		// Both versions must marshal to the same bytes.
		marshalled, err := helixjson.MarshalCmd(1, cmd)
		if err != nil {
			t.Errorf("Test #%d (%s) unexpected MarshalCmd error: "+
				"%v", i, test.name, err)
			continue
		}
		if string(marshalled) != test.marshalled {
			t.Errorf("Test #%d (%s) unexpected marshalled data - "+
				"got %s, want %s", i, test.name, marshalled,
				test.marshalled)
			continue
		}
	}
}

// TestUnmarshalCmd ensures requests unmarshal back into the expected concrete
// command, including population of defaults for unspecified optional params.
func TestUnmarshalCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		marshalled string
		unmarshalled interface{}
	}{
		{
			name:       "defaults populated",
			marshalled: `{"jsonrpc":"1.0","method":"getblock","params":["123"],"id":1}`,
			unmarshalled: &helixjson.GetBlockCmd{
				Hash:      "123",
				Verbose:   helixjson.Bool(true),
				VerboseTx: helixjson.Bool(false),
			},
		},
		{
			name:       "explicit optional params",
			marshalled: `{"jsonrpc":"1.0","method":"getrawtransaction","params":["deadbeef",1],"id":1}`,
			unmarshalled: &helixjson.GetRawTransactionCmd{
				TxID:    "deadbeef",
				Verbose: helixjson.Int(1),
			},
		},
		{
			name:       "no params",
			marshalled: `{"jsonrpc":"1.0","method":"getblockcount","params":[],"id":1}`,
			unmarshalled: &helixjson.GetBlockCountCmd{},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		var request helixjson.Request
		if err := json.Unmarshal([]byte(test.marshalled), &request); err != nil {
			t.Errorf("Test #%d (%s) unexpected error while "+
				"unmarshalling JSON-RPC request: %v", i,
				test.name, err)
			continue
		}
		cmd, err := helixjson.UnmarshalCmd(&request)
		if err != nil {
			t.Errorf("Test #%d (%s) unexpected UnmarshalCmd error: "+
				"%v", i, test.name, err)
			continue
		}
		if !reflect.DeepEqual(cmd, test.unmarshalled) {
			t.Errorf("Test #%d (%s) unexpected unmarshalled command "+
				"- got %s, want %s", i, test.name,
				spew.Sdump(cmd), spew.Sdump(test.unmarshalled))
			continue
		}
	}
}

// TestCmdErrors ensures the expected errors are returned for the various error
// conditions of NewCmd, MarshalCmd, and UnmarshalCmd.
func TestCmdErrors(t *testing.T) {
	t.Parallel()

	// Unregistered method.
	if _, err := helixjson.NewCmd("bogusmethod"); !isErrCode(err, helixjson.ErrUnregisteredMethod) {
		t.Errorf("NewCmd unregistered method - got %v", err)
	}

	// Too many parameters.
	if _, err := helixjson.NewCmd("getblockcount", "extra"); !isErrCode(err, helixjson.ErrNumParams) {
		t.Errorf("NewCmd too many params - got %v", err)
	}

	// Too few parameters.
	if _, err := helixjson.NewCmd("getblockhash"); !isErrCode(err, helixjson.ErrNumParams) {
		t.Errorf("NewCmd too few params - got %v", err)
	}

	// Incompatible argument type.
	if _, err := helixjson.NewCmd("getblockhash", []int{1}); !isErrCode(err, helixjson.ErrInvalidType) {
		t.Errorf("NewCmd incompatible type - got %v", err)
	}

	// Argument overflows the destination field.
	overflow := uint64(math.MaxUint64)
	if _, err := helixjson.NewCmd("getblockhash", overflow); !isErrCode(err, helixjson.ErrInvalidType) {
		t.Errorf("NewCmd overflow - got %v", err)
	}

	// Marshalling an unregistered type.
	if _, err := helixjson.MarshalCmd(1, struct{}{}); !isErrCode(err, helixjson.ErrUnregisteredMethod) {
		t.Errorf("MarshalCmd unregistered type - got %v", err)
	}

	// Marshalling a nil command.
	if _, err := helixjson.MarshalCmd(1, (*helixjson.GetBlockCmd)(nil)); !isErrCode(err, helixjson.ErrInvalidType) {
		t.Errorf("MarshalCmd nil command - got %v", err)
	}

	// Unmarshalling a request with an unregistered method.
	request := helixjson.Request{Method: "bogusmethod"}
	if _, err := helixjson.UnmarshalCmd(&request); !isErrCode(err, helixjson.ErrUnregisteredMethod) {
		t.Errorf("UnmarshalCmd unregistered method - got %v", err)
	}

	// Unmarshalling a request with a mistyped parameter.
	request = helixjson.Request{
		Method: "getblockhash",
		Params: []json.RawMessage{[]byte(`"notanumber"`)},
	}
	if _, err := helixjson.UnmarshalCmd(&request); !isErrCode(err, helixjson.ErrInvalidType) {
		t.Errorf("UnmarshalCmd mistyped param - got %v", err)
	}
}

// isErrCode returns whether the passed error is a helixjson.Error with the
// given error code.
func isErrCode(err error, code helixjson.ErrorCode) bool {
	jerr, ok := err.(helixjson.Error)
	if !ok {
		return false
	}
	return jerr.ErrorCode == code
}
