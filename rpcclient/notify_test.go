// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/helixchain/helixd/helixjson"
	"github.com/helixchain/helixd/util/chainhash"
)

// TestWorkNotification ensures work notifications are decoded and delivered
// to the OnWork handler.
func TestWorkNotification(t *testing.T) {
	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		switch req.Method {
		case "notifywork":
			notify(t, conn, "work", "0a0b", "ffff0000", "newparent")
			respond(t, conn, req, nil)
		}
	})
	defer server.Close()

	type workNtfn struct {
		data   []byte
		target []byte
		reason string
	}
	workChan := make(chan workNtfn, 1)
	ntfnHandlers := &NotificationHandlers{
		OnWork: func(data, target []byte, reason string) {
			workChan <- workNtfn{data, target, reason}
		},
	}

	client := newTestClient(t, server.URL, ntfnHandlers, 0)
	defer client.Shutdown()

	if err := client.NotifyWork(); err != nil {
		t.Fatalf("NotifyWork: %v", err)
	}

	select {
	case ntfn := <-workChan:
		if len(ntfn.data) != 2 || ntfn.data[0] != 0x0a || ntfn.data[1] != 0x0b {
			t.Fatalf("OnWork: got data %x, want 0a0b", ntfn.data)
		}
		if len(ntfn.target) != 4 {
			t.Fatalf("OnWork: got target %x, want ffff0000",
				ntfn.target)
		}
		if ntfn.reason != "newparent" {
			t.Fatalf("OnWork: got reason %q, want newparent",
				ntfn.reason)
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnWork")
	}
}

// TestWinningTicketsNotification ensures the ticket map in winning ticket
// notifications is flattened into a slice ordered by its numeric keys.
func TestWinningTicketsNotification(t *testing.T) {
	blockHashStr := "000000000000000000000000000000000000000000000000000000000000000a"
	ticketStrs := []string{
		"1111111111111111111111111111111111111111111111111111111111111111",
		"2222222222222222222222222222222222222222222222222222222222222222",
		"3333333333333333333333333333333333333333333333333333333333333333",
	}

	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		switch req.Method {
		case "notifywinningtickets":
			// Out of order keys on purpose.
			tickets := map[string]string{
				"2": ticketStrs[2],
				"0": ticketStrs[0],
				"1": ticketStrs[1],
			}
			notify(t, conn, "winningtickets", blockHashStr,
				int32(55), tickets)
			respond(t, conn, req, nil)
		}
	})
	defer server.Close()

	type winningNtfn struct {
		blockHash *chainhash.Hash
		height    int32
		tickets   []*chainhash.Hash
	}
	winningChan := make(chan winningNtfn, 1)
	ntfnHandlers := &NotificationHandlers{
		OnWinningTickets: func(blockHash *chainhash.Hash, height int32, tickets []*chainhash.Hash) {
			winningChan <- winningNtfn{blockHash, height, tickets}
		},
	}

	client := newTestClient(t, server.URL, ntfnHandlers, 0)
	defer client.Shutdown()

	if err := client.NotifyWinningTickets(); err != nil {
		t.Fatalf("NotifyWinningTickets: %v", err)
	}

	select {
	case ntfn := <-winningChan:
		if ntfn.blockHash.String() != blockHashStr {
			t.Fatalf("OnWinningTickets: got block hash %s, want %s",
				ntfn.blockHash, blockHashStr)
		}
		if ntfn.height != 55 {
			t.Fatalf("OnWinningTickets: got height %d, want 55",
				ntfn.height)
		}
		if len(ntfn.tickets) != len(ticketStrs) {
			t.Fatalf("OnWinningTickets: got %d tickets, want %d",
				len(ntfn.tickets), len(ticketStrs))
		}
		for i, ticket := range ntfn.tickets {
			if ticket.String() != ticketStrs[i] {
				t.Fatalf("OnWinningTickets: ticket %d is %s, "+
					"want %s", i, ticket, ticketStrs[i])
			}
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnWinningTickets")
	}
}

// TestSpentAndMissedTicketsNotification ensures the ticket status strings in
// spent and missed ticket notifications map to the correct booleans.
func TestSpentAndMissedTicketsNotification(t *testing.T) {
	blockHashStr := "000000000000000000000000000000000000000000000000000000000000000b"
	spentStr := "4444444444444444444444444444444444444444444444444444444444444444"
	missedStr := "5555555555555555555555555555555555555555555555555555555555555555"

	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		switch req.Method {
		case "notifyspentandmissedtickets":
			tickets := map[string]string{
				spentStr:  "spent",
				missedStr: "missed",
			}
			notify(t, conn, "spentandmissedtickets", blockHashStr,
				int32(77), int64(20000000), tickets)
			respond(t, conn, req, nil)
		}
	})
	defer server.Close()

	type spentMissedNtfn struct {
		hash      *chainhash.Hash
		height    int32
		stakeDiff int64
		tickets   map[chainhash.Hash]bool
	}
	ntfnChan := make(chan spentMissedNtfn, 1)
	ntfnHandlers := &NotificationHandlers{
		OnSpentAndMissedTickets: func(hash *chainhash.Hash, height int32, stakeDiff int64, tickets map[chainhash.Hash]bool) {
			ntfnChan <- spentMissedNtfn{hash, height, stakeDiff, tickets}
		},
	}

	client := newTestClient(t, server.URL, ntfnHandlers, 0)
	defer client.Shutdown()

	if err := client.NotifySpentAndMissedTickets(); err != nil {
		t.Fatalf("NotifySpentAndMissedTickets: %v", err)
	}

	select {
	case ntfn := <-ntfnChan:
		if ntfn.hash.String() != blockHashStr {
			t.Fatalf("got block hash %s, want %s", ntfn.hash,
				blockHashStr)
		}
		if ntfn.height != 77 {
			t.Fatalf("got height %d, want 77", ntfn.height)
		}
		if ntfn.stakeDiff != 20000000 {
			t.Fatalf("got stake difficulty %d, want 20000000",
				ntfn.stakeDiff)
		}
		if len(ntfn.tickets) != 2 {
			t.Fatalf("got %d tickets, want 2", len(ntfn.tickets))
		}

		spentHash, err := chainhash.NewHashFromStr(spentStr)
		if err != nil {
			t.Fatalf("NewHashFromStr: %v", err)
		}
		missedHash, err := chainhash.NewHashFromStr(missedStr)
		if err != nil {
			t.Fatalf("NewHashFromStr: %v", err)
		}
		if spent, ok := ntfn.tickets[*spentHash]; !ok || !spent {
			t.Fatalf("spent ticket not reported as spent")
		}
		if spent, ok := ntfn.tickets[*missedHash]; !ok || spent {
			t.Fatalf("missed ticket not reported as missed")
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnSpentAndMissedTickets")
	}
}

// TestReorganizationNotification ensures reorganization notifications are
// decoded and delivered to the OnReorganization handler.
func TestReorganizationNotification(t *testing.T) {
	oldHashStr := "000000000000000000000000000000000000000000000000000000000000000c"
	newHashStr := "000000000000000000000000000000000000000000000000000000000000000d"

	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		switch req.Method {
		case "notifyblocks":
			notify(t, conn, "reorganization", oldHashStr, int32(10),
				newHashStr, int32(8))
			respond(t, conn, req, nil)
		}
	})
	defer server.Close()

	type reorgNtfn struct {
		oldHash   *chainhash.Hash
		oldHeight int32
		newHash   *chainhash.Hash
		newHeight int32
	}
	reorgChan := make(chan reorgNtfn, 1)
	ntfnHandlers := &NotificationHandlers{
		OnReorganization: func(oldHash *chainhash.Hash, oldHeight int32, newHash *chainhash.Hash, newHeight int32) {
			reorgChan <- reorgNtfn{oldHash, oldHeight, newHash, newHeight}
		},
	}

	client := newTestClient(t, server.URL, ntfnHandlers, 0)
	defer client.Shutdown()

	if err := client.NotifyBlocks(); err != nil {
		t.Fatalf("NotifyBlocks: %v", err)
	}

	select {
	case ntfn := <-reorgChan:
		if ntfn.oldHash.String() != oldHashStr {
			t.Fatalf("got old hash %s, want %s", ntfn.oldHash,
				oldHashStr)
		}
		if ntfn.oldHeight != 10 {
			t.Fatalf("got old height %d, want 10", ntfn.oldHeight)
		}
		if ntfn.newHash.String() != newHashStr {
			t.Fatalf("got new hash %s, want %s", ntfn.newHash,
				newHashStr)
		}
		if ntfn.newHeight != 8 {
			t.Fatalf("got new height %d, want 8", ntfn.newHeight)
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnReorganization")
	}
}

// TestStakeDifficultyNotification ensures stake difficulty notifications are
// decoded and delivered to the OnStakeDifficulty handler.
func TestStakeDifficultyNotification(t *testing.T) {
	blockHashStr := "000000000000000000000000000000000000000000000000000000000000000e"

	server := newTestWsServer(t, func(conn *websocket.Conn, req *helixjson.Request) {
		switch req.Method {
		case "notifystakedifficulty":
			notify(t, conn, "stakedifficulty", blockHashStr,
				int32(99), int64(30000000))
			respond(t, conn, req, nil)
		}
	})
	defer server.Close()

	type stakeDiffNtfn struct {
		hash      *chainhash.Hash
		height    int32
		stakeDiff int64
	}
	ntfnChan := make(chan stakeDiffNtfn, 1)
	ntfnHandlers := &NotificationHandlers{
		OnStakeDifficulty: func(hash *chainhash.Hash, height int32, stakeDiff int64) {
			ntfnChan <- stakeDiffNtfn{hash, height, stakeDiff}
		},
	}

	client := newTestClient(t, server.URL, ntfnHandlers, 0)
	defer client.Shutdown()

	if err := client.NotifyStakeDifficulty(); err != nil {
		t.Fatalf("NotifyStakeDifficulty: %v", err)
	}

	select {
	case ntfn := <-ntfnChan:
		if ntfn.hash.String() != blockHashStr {
			t.Fatalf("got block hash %s, want %s", ntfn.hash,
				blockHashStr)
		}
		if ntfn.height != 99 {
			t.Fatalf("got height %d, want 99", ntfn.height)
		}
		if ntfn.stakeDiff != 30000000 {
			t.Fatalf("got stake difficulty %d, want 30000000",
				ntfn.stakeDiff)
		}
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for OnStakeDifficulty")
	}
}
