// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package helixjson_test

import (
	"testing"

	"github.com/helixchain/helixd/helixjson"
)

// TestChainSvrWsNtfns ensures all of the notification methods are registered
// as websocket-only notifications so they can never be unmarshalled as client
// commands in HTTP POST mode.
func TestChainSvrWsNtfns(t *testing.T) {
	t.Parallel()

	methods := []string{
		helixjson.BlockConnectedNtfnMethod,
		helixjson.BlockDisconnectedNtfnMethod,
		helixjson.WorkNtfnMethod,
		helixjson.WinningTicketsNtfnMethod,
		helixjson.SpentAndMissedTicketsNtfnMethod,
		helixjson.NewTicketsNtfnMethod,
		helixjson.StakeDifficultyNtfnMethod,
		helixjson.TxAcceptedNtfnMethod,
		helixjson.TxAcceptedVerboseNtfnMethod,
		helixjson.ReorganizationNtfnMethod,
	}

	for _, method := range methods {
		flags, err := helixjson.MethodUsageFlags(method)
		if err != nil {
			t.Errorf("MethodUsageFlags(%q): %v", method, err)
			continue
		}
		if flags&helixjson.UFWebsocketOnly == 0 {
			t.Errorf("%q is not flagged websocket-only", method)
		}
		if flags&helixjson.UFNotification == 0 {
			t.Errorf("%q is not flagged as a notification", method)
		}
	}
}
