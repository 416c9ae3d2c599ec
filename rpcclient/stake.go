// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/json"

	"github.com/helixchain/helixd/helixjson"
	"github.com/helixchain/helixd/util/chainhash"
)

// FutureGetStakeDifficultyResult is a future promise to deliver the result of
// a GetStakeDifficultyAsync RPC invocation (or an applicable error).
type FutureGetStakeDifficultyResult chan *response

// Receive waits for the response promised by the future and returns the
// current and next stake difficulties.
func (r FutureGetStakeDifficultyResult) Receive() (*helixjson.GetStakeDifficultyResult, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	// Unmarshal result as a getstakedifficulty result object.
	var gsdr helixjson.GetStakeDifficultyResult
	err = json.Unmarshal(res, &gsdr)
	if err != nil {
		return nil, err
	}

	return &gsdr, nil
}

// GetStakeDifficultyAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See GetStakeDifficulty for the blocking version and more details.
//
// NOTE: This is a helixd extension.
func (c *Client) GetStakeDifficultyAsync() FutureGetStakeDifficultyResult {
	cmd := helixjson.NewGetStakeDifficultyCmd()
	return c.sendCmd(cmd)
}

// GetStakeDifficulty returns the current and next stake difficulties.
//
// NOTE: This is a helixd extension.
func (c *Client) GetStakeDifficulty() (*helixjson.GetStakeDifficultyResult, error) {
	return c.GetStakeDifficultyAsync().Receive()
}

// FutureLiveTicketsResult is a future promise to deliver the result of a
// LiveTicketsAsync RPC invocation (or an applicable error).
type FutureLiveTicketsResult chan *response

// Receive waits for the response promised by the future and returns the
// hashes of all currently live tickets.
func (r FutureLiveTicketsResult) Receive() ([]*chainhash.Hash, error) {
	res, err := receiveFuture(r)
	if err != nil {
		return nil, err
	}

	// Unmarshal the result as an array of ticket hash strings.
	var ticketStrs []string
	err = json.Unmarshal(res, &ticketStrs)
	if err != nil {
		return nil, err
	}

	tickets := make([]*chainhash.Hash, 0, len(ticketStrs))
	for _, ticketStr := range ticketStrs {
		ticketHash, err := chainhash.NewHashFromStr(ticketStr)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticketHash)
	}

	return tickets, nil
}

// LiveTicketsAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See LiveTickets for the blocking version and more details.
//
// NOTE: This is a helixd extension.
func (c *Client) LiveTicketsAsync() FutureLiveTicketsResult {
	cmd := helixjson.NewLiveTicketsCmd()
	return c.sendCmd(cmd)
}

// LiveTickets returns the hashes of all tickets currently live and eligible
// to vote.
//
// NOTE: This is a helixd extension.
func (c *Client) LiveTickets() ([]*chainhash.Hash, error) {
	return c.LiveTicketsAsync().Receive()
}
