// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/helixchain/helixd/helixjson"
	"github.com/helixchain/helixd/util"
	"github.com/helixchain/helixd/util/chainhash"
)

var (
	// ErrWebsocketsRequired is an error to describe the condition where the
	// caller is trying to use a websocket-only feature, such as requesting
	// notifications or other websocket requests when the client is
	// configured to run in HTTP POST mode.
	ErrWebsocketsRequired = errors.New("a websocket connection is required " +
		"to use this feature")
)

// notificationState is used to track the current state of successfully
// registered notifications so the state can be automatically re-established on
// reconnect.
type notificationState struct {
	notifyBlocks                bool
	notifyWork                  bool
	notifyWinningTickets        bool
	notifySpentAndMissedTickets bool
	notifyNewTickets            bool
	notifyStakeDifficulty       bool
	notifyNewTx                 bool
	notifyNewTxVerbose          bool
}

// Copy returns a deep copy of the receiver.
func (s *notificationState) Copy() *notificationState {
	var stateCopy notificationState
	stateCopy.notifyBlocks = s.notifyBlocks
	stateCopy.notifyWork = s.notifyWork
	stateCopy.notifyWinningTickets = s.notifyWinningTickets
	stateCopy.notifySpentAndMissedTickets = s.notifySpentAndMissedTickets
	stateCopy.notifyNewTickets = s.notifyNewTickets
	stateCopy.notifyStakeDifficulty = s.notifyStakeDifficulty
	stateCopy.notifyNewTx = s.notifyNewTx
	stateCopy.notifyNewTxVerbose = s.notifyNewTxVerbose

	return &stateCopy
}

// newNotificationState returns a new notification state ready to be populated.
func newNotificationState() *notificationState {
	return &notificationState{}
}

// newNilFutureResult returns a new future result channel that already has the
// result waiting on the channel with the reply set to nil. This is useful
// to ignore things such as notifications when the caller didn't specify any
// notification handlers.
func newNilFutureResult() chan *response {
	responseChan := make(chan *response, 1)
	responseChan <- &response{result: nil, err: nil}
	return responseChan
}

// NotificationHandlers defines callback function pointers to invoke with
// notifications. Since all of the functions are nil by default, all
// notifications are effectively ignored until their handlers are set to a
// concrete callback.
//
// Handlers are invoked from a dedicated dispatch goroutine, one notification
// at a time in the order received, so they are safe for blocking client
// requests. A slow handler delays the notifications queued behind it but
// never the read loop.
type NotificationHandlers struct {
	// OnClientConnected is invoked when the client connects or reconnects
	// to the RPC server. This callback is run async with the rest of the
	// notification handlers.
	OnClientConnected func()

	// OnBlockConnected is invoked when a block is connected to the longest
	// (best) chain. It will only be invoked if a preceding call to
	// NotifyBlocks has been made to register for the notification and the
	// function is non-nil. The callback is passed the serialized block
	// header along with any transactions from the new block that match the
	// client's transaction filter.
	OnBlockConnected func(blockHeader []byte, transactions [][]byte)

	// OnBlockDisconnected is invoked when a block is disconnected from the
	// longest (best) chain. It will only be invoked if a preceding call to
	// NotifyBlocks has been made to register for the notification and the
	// function is non-nil.
	OnBlockDisconnected func(blockHeader []byte)

	// OnWork is invoked when a new block template is generated. It will
	// only be invoked if a preceding call to NotifyWork has been made to
	// register for the notification and the function is non-nil.
	OnWork func(data []byte, target []byte, reason string)

	// OnWinningTickets is invoked when a block is connected and eligible
	// tickets to be voted on for this block are given. It will only be
	// invoked if a preceding call to NotifyWinningTickets has been made to
	// register for the notification and the function is non-nil.
	OnWinningTickets func(blockHash *chainhash.Hash, blockHeight int32,
		tickets []*chainhash.Hash)

	// OnSpentAndMissedTickets is invoked when a block is connected to the
	// longest (best) chain and tickets are spent or missed. It will only
	// be invoked if a preceding call to NotifySpentAndMissedTickets has
	// been made to register for the notification and the function is
	// non-nil. The tickets map pairs ticket hashes with true if the ticket
	// was spent and false if it was missed.
	OnSpentAndMissedTickets func(hash *chainhash.Hash, height int32,
		stakeDiff int64, tickets map[chainhash.Hash]bool)

	// OnNewTickets is invoked when a block is connected to the longest
	// (best) chain and tickets have matured and become active. It will
	// only be invoked if a preceding call to NotifyNewTickets has been
	// made to register for the notification and the function is non-nil.
	OnNewTickets func(hash *chainhash.Hash, height int32, stakeDiff int64,
		tickets []*chainhash.Hash)

	// OnStakeDifficulty is invoked when a block is connected to the
	// longest (best) chain and a new stake difficulty is calculated. It
	// will only be invoked if a preceding call to NotifyStakeDifficulty
	// has been made to register for the notification and the function is
	// non-nil.
	OnStakeDifficulty func(hash *chainhash.Hash, height int32,
		stakeDiff int64)

	// OnTxAccepted is invoked when a transaction is accepted into the
	// memory pool. It will only be invoked if a preceding call to
	// NotifyNewTransactions with the verbose flag set to false has been
	// made to register for the notification and the function is non-nil.
	OnTxAccepted func(hash *chainhash.Hash, amount util.Amount)

	// OnTxAcceptedVerbose is invoked when a transaction is accepted into
	// the memory pool. It will only be invoked if a preceding call to
	// NotifyNewTransactions with the verbose flag set to true has been
	// made to register for the notification and the function is non-nil.
	OnTxAcceptedVerbose func(txDetails *helixjson.TxRawResult)

	// OnReorganization is invoked when the blockchain begins reorganizing.
	// It will only be invoked if a preceding call to NotifyBlocks has been
	// made to register for the notification and the function is non-nil.
	OnReorganization func(oldHash *chainhash.Hash, oldHeight int32,
		newHash *chainhash.Hash, newHeight int32)

	// OnUnknownNotification is invoked when an unrecognized notification
	// is received. This typically means the notification handling code
	// for this package needs to be updated for a new notification type or
	// the caller is using a custom notification this package does not know
	// about.
	OnUnknownNotification func(method string, params []json.RawMessage)
}

// handleNotification examines the passed notification type, performs
// conversions to get the raw notification types into higher level types and
// delivers the notification to the appropriate On<X> handler registered with
// the client.
func (c *Client) handleNotification(ntfn *rawNotification) {
	// Ignore the notification if the client is not interested in any
	// notifications.
	if c.ntfnHandlers == nil {
		return
	}

	switch ntfn.Method {

	// OnBlockConnected
	case helixjson.BlockConnectedNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnBlockConnected == nil {
			return
		}

		blockHeader, transactions, err :=
			parseBlockConnectedParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid block connected "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnBlockConnected(blockHeader, transactions)

	// OnBlockDisconnected
	case helixjson.BlockDisconnectedNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnBlockDisconnected == nil {
			return
		}

		blockHeader, err := parseBlockDisconnectedParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid block disconnected "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnBlockDisconnected(blockHeader)

	// OnWork
	case helixjson.WorkNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnWork == nil {
			return
		}

		data, target, reason, err := parseWorkParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid work notification: %s",
				err)
			return
		}

		c.ntfnHandlers.OnWork(data, target, reason)

	// OnWinningTickets
	case helixjson.WinningTicketsNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnWinningTickets == nil {
			return
		}

		blockHash, blockHeight, tickets, err :=
			parseWinningTicketsNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid winning tickets "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnWinningTickets(blockHash, blockHeight, tickets)

	// OnSpentAndMissedTickets
	case helixjson.SpentAndMissedTicketsNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnSpentAndMissedTickets == nil {
			return
		}

		hash, height, stakeDiff, tickets, err :=
			parseSpentAndMissedTicketsNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid spent and missed tickets "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnSpentAndMissedTickets(hash, height, stakeDiff,
			tickets)

	// OnNewTickets
	case helixjson.NewTicketsNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnNewTickets == nil {
			return
		}

		hash, height, stakeDiff, tickets, err :=
			parseNewTicketsNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid new tickets "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnNewTickets(hash, height, stakeDiff, tickets)

	// OnStakeDifficulty
	case helixjson.StakeDifficultyNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnStakeDifficulty == nil {
			return
		}

		hash, height, stakeDiff, err :=
			parseStakeDifficultyNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid stake difficulty "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnStakeDifficulty(hash, height, stakeDiff)

	// OnTxAccepted
	case helixjson.TxAcceptedNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnTxAccepted == nil {
			return
		}

		hash, amt, err := parseTxAcceptedNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid tx accepted "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnTxAccepted(hash, amt)

	// OnTxAcceptedVerbose
	case helixjson.TxAcceptedVerboseNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnTxAcceptedVerbose == nil {
			return
		}

		rawTx, err := parseTxAcceptedVerboseNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid tx accepted verbose "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnTxAcceptedVerbose(rawTx)

	// OnReorganization
	case helixjson.ReorganizationNtfnMethod:
		// Ignore the notification if the client is not interested in
		// it.
		if c.ntfnHandlers.OnReorganization == nil {
			return
		}

		oldHash, oldHeight, newHash, newHeight, err :=
			parseReorganizationNtfnParams(ntfn.Params)
		if err != nil {
			log.Warnf("Received invalid reorganization "+
				"notification: %s", err)
			return
		}

		c.ntfnHandlers.OnReorganization(oldHash, oldHeight, newHash,
			newHeight)

	// OnUnknownNotification
	default:
		if c.ntfnHandlers.OnUnknownNotification == nil {
			return
		}

		c.ntfnHandlers.OnUnknownNotification(ntfn.Method, ntfn.Params)
	}
}

// wrongNumParams is an error type describing an unparseable JSON-RPC
// notification due to an incorrect number of parameters for the
// expected notification type. The value is the number of parameters
// of the invalid notification.
type wrongNumParams int

// Error satisifies the builtin error interface.
func (e wrongNumParams) Error() string {
	return fmt.Sprintf("wrong number of parameters (%d)", e)
}

// parseHexParam parses a hex-encoded string out of the passed raw parameter
// and returns the decoded bytes.
func parseHexParam(param json.RawMessage) ([]byte, error) {
	var s string
	err := json.Unmarshal(param, &s)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(s)
}

// parseBlockConnectedParams parses out the serialized block header and the
// transactions from the new block that match the client's transaction filter
// from the parameters of a blockconnected notification.
func parseBlockConnectedParams(params []json.RawMessage) (blockHeader []byte,
	transactions [][]byte, err error) {

	if len(params) < 1 || len(params) > 2 {
		return nil, nil, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a hex-encoded block header.
	blockHeader, err = parseHexParam(params[0])
	if err != nil {
		return nil, nil, err
	}

	// If present, unmarshal second optional parameter as a slice of
	// hex-encoded transactions.
	if len(params) > 1 {
		var hexTransactions []string
		err = json.Unmarshal(params[1], &hexTransactions)
		if err != nil {
			return nil, nil, err
		}

		transactions = make([][]byte, len(hexTransactions))
		for i, hexTx := range hexTransactions {
			transactions[i], err = hex.DecodeString(hexTx)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return blockHeader, transactions, nil
}

// parseBlockDisconnectedParams parses out the serialized block header from the
// parameters of a blockdisconnected notification.
func parseBlockDisconnectedParams(params []json.RawMessage) ([]byte, error) {
	if len(params) != 1 {
		return nil, wrongNumParams(len(params))
	}

	return parseHexParam(params[0])
}

// parseWorkParams parses out the new work data, target, and reason from the
// parameters of a work notification.
func parseWorkParams(params []json.RawMessage) (data []byte, target []byte,
	reason string, err error) {

	if len(params) != 3 {
		return nil, nil, "", wrongNumParams(len(params))
	}

	// Unmarshal first parameter as hex-encoded work data.
	data, err = parseHexParam(params[0])
	if err != nil {
		return nil, nil, "", err
	}

	// Unmarshal second parameter as a hex-encoded little-endian target.
	target, err = parseHexParam(params[1])
	if err != nil {
		return nil, nil, "", err
	}

	// Unmarshal third parameter as a string.
	err = json.Unmarshal(params[2], &reason)
	if err != nil {
		return nil, nil, "", err
	}

	return data, target, reason, nil
}

// parseWinningTicketsNtfnParams parses out the block hash, height, and
// winning tickets from the parameters of a winningtickets notification.
func parseWinningTicketsNtfnParams(params []json.RawMessage) (*chainhash.Hash,
	int32, []*chainhash.Hash, error) {

	if len(params) != 3 {
		return nil, 0, nil, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a string and create hash.
	var blockHashStr string
	err := json.Unmarshal(params[0], &blockHashStr)
	if err != nil {
		return nil, 0, nil, err
	}
	blockHash, err := chainhash.NewHashFromStr(blockHashStr)
	if err != nil {
		return nil, 0, nil, err
	}

	// Unmarshal second parameter as an integer.
	var blockHeight int32
	err = json.Unmarshal(params[1], &blockHeight)
	if err != nil {
		return nil, 0, nil, err
	}

	// Unmarshal third parameter as a map of ticket numbers to ticket
	// hashes and flatten it to a slice ordered by ticket number.
	var ticketMap map[string]string
	err = json.Unmarshal(params[2], &ticketMap)
	if err != nil {
		return nil, 0, nil, err
	}

	tickets := make([]*chainhash.Hash, len(ticketMap))
	for ticketNumStr, ticketHashStr := range ticketMap {
		ticketNum, err := strconv.Atoi(ticketNumStr)
		if err != nil {
			return nil, 0, nil, err
		}
		if ticketNum < 0 || ticketNum >= len(tickets) {
			return nil, 0, nil, errors.Errorf("invalid ticket "+
				"number %d", ticketNum)
		}

		ticketHash, err := chainhash.NewHashFromStr(ticketHashStr)
		if err != nil {
			return nil, 0, nil, err
		}
		tickets[ticketNum] = ticketHash
	}

	return blockHash, blockHeight, tickets, nil
}

// parseSpentAndMissedTicketsNtfnParams parses out the block hash, height,
// stake difficulty, and spent or missed tickets from the parameters of a
// spentandmissedtickets notification.
func parseSpentAndMissedTicketsNtfnParams(params []json.RawMessage) (*chainhash.Hash,
	int32, int64, map[chainhash.Hash]bool, error) {

	if len(params) != 4 {
		return nil, 0, 0, nil, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a string and create hash.
	var hashStr string
	err := json.Unmarshal(params[0], &hashStr)
	if err != nil {
		return nil, 0, 0, nil, err
	}
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	// Unmarshal second parameter as an integer.
	var height int32
	err = json.Unmarshal(params[1], &height)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	// Unmarshal third parameter as an integer.
	var stakeDiff int64
	err = json.Unmarshal(params[2], &stakeDiff)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	// Unmarshal fourth parameter as a map of ticket hashes to their
	// status (spent or missed).
	var ticketMap map[string]string
	err = json.Unmarshal(params[3], &ticketMap)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	tickets := make(map[chainhash.Hash]bool)
	for hashStr, status := range ticketMap {
		ticketHash, err := chainhash.NewHashFromStr(hashStr)
		if err != nil {
			return nil, 0, 0, nil, err
		}

		switch status {
		case "spent":
			tickets[*ticketHash] = true
		case "missed":
			tickets[*ticketHash] = false
		default:
			return nil, 0, 0, nil, errors.Errorf("unknown ticket "+
				"status %q", status)
		}
	}

	return hash, height, stakeDiff, tickets, nil
}

// parseNewTicketsNtfnParams parses out the block hash, height, stake
// difficulty, and matured tickets from the parameters of a newtickets
// notification.
func parseNewTicketsNtfnParams(params []json.RawMessage) (*chainhash.Hash,
	int32, int64, []*chainhash.Hash, error) {

	if len(params) != 4 {
		return nil, 0, 0, nil, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a string and create hash.
	var hashStr string
	err := json.Unmarshal(params[0], &hashStr)
	if err != nil {
		return nil, 0, 0, nil, err
	}
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	// Unmarshal second parameter as an integer.
	var height int32
	err = json.Unmarshal(params[1], &height)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	// Unmarshal third parameter as an integer.
	var stakeDiff int64
	err = json.Unmarshal(params[2], &stakeDiff)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	// Unmarshal fourth parameter as a slice of ticket hash strings.
	var ticketStrs []string
	err = json.Unmarshal(params[3], &ticketStrs)
	if err != nil {
		return nil, 0, 0, nil, err
	}

	tickets := make([]*chainhash.Hash, len(ticketStrs))
	for i, ticketStr := range ticketStrs {
		tickets[i], err = chainhash.NewHashFromStr(ticketStr)
		if err != nil {
			return nil, 0, 0, nil, err
		}
	}

	return hash, height, stakeDiff, tickets, nil
}

// parseStakeDifficultyNtfnParams parses out the block hash, height, and new
// stake difficulty from the parameters of a stakedifficulty notification.
func parseStakeDifficultyNtfnParams(params []json.RawMessage) (*chainhash.Hash,
	int32, int64, error) {

	if len(params) != 3 {
		return nil, 0, 0, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a string and create hash.
	var hashStr string
	err := json.Unmarshal(params[0], &hashStr)
	if err != nil {
		return nil, 0, 0, err
	}
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return nil, 0, 0, err
	}

	// Unmarshal second parameter as an integer.
	var height int32
	err = json.Unmarshal(params[1], &height)
	if err != nil {
		return nil, 0, 0, err
	}

	// Unmarshal third parameter as an integer.
	var stakeDiff int64
	err = json.Unmarshal(params[2], &stakeDiff)
	if err != nil {
		return nil, 0, 0, err
	}

	return hash, height, stakeDiff, nil
}

// parseTxAcceptedNtfnParams parses out the transaction hash and total amount
// from the parameters of a txaccepted notification.
func parseTxAcceptedNtfnParams(params []json.RawMessage) (*chainhash.Hash,
	util.Amount, error) {

	if len(params) != 2 {
		return nil, 0, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a string.
	var txHashStr string
	err := json.Unmarshal(params[0], &txHashStr)
	if err != nil {
		return nil, 0, err
	}

	// Unmarshal second parameter as a floating point number.
	var famt float64
	err = json.Unmarshal(params[1], &famt)
	if err != nil {
		return nil, 0, err
	}

	// Bounds check amount.
	amt, err := util.NewAmount(famt)
	if err != nil {
		return nil, 0, err
	}

	// Decode string encoding of transaction hash.
	txHash, err := chainhash.NewHashFromStr(txHashStr)
	if err != nil {
		return nil, 0, err
	}

	return txHash, amt, nil
}

// parseTxAcceptedVerboseNtfnParams parses out details about a raw transaction
// from the parameters of a txacceptedverbose notification.
func parseTxAcceptedVerboseNtfnParams(params []json.RawMessage) (*helixjson.TxRawResult,
	error) {

	if len(params) != 1 {
		return nil, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a raw transaction result object.
	var rawTx helixjson.TxRawResult
	err := json.Unmarshal(params[0], &rawTx)
	if err != nil {
		return nil, err
	}

	return &rawTx, nil
}

// parseReorganizationNtfnParams parses out the old and new tip hashes and
// heights from the parameters of a reorganization notification.
func parseReorganizationNtfnParams(params []json.RawMessage) (*chainhash.Hash,
	int32, *chainhash.Hash, int32, error) {

	if len(params) != 4 {
		return nil, 0, nil, 0, wrongNumParams(len(params))
	}

	// Unmarshal first parameter as a string and create hash.
	var oldHashStr string
	err := json.Unmarshal(params[0], &oldHashStr)
	if err != nil {
		return nil, 0, nil, 0, err
	}
	oldHash, err := chainhash.NewHashFromStr(oldHashStr)
	if err != nil {
		return nil, 0, nil, 0, err
	}

	// Unmarshal second parameter as an integer.
	var oldHeight int32
	err = json.Unmarshal(params[1], &oldHeight)
	if err != nil {
		return nil, 0, nil, 0, err
	}

	// Unmarshal third parameter as a string and create hash.
	var newHashStr string
	err = json.Unmarshal(params[2], &newHashStr)
	if err != nil {
		return nil, 0, nil, 0, err
	}
	newHash, err := chainhash.NewHashFromStr(newHashStr)
	if err != nil {
		return nil, 0, nil, 0, err
	}

	// Unmarshal fourth parameter as an integer.
	var newHeight int32
	err = json.Unmarshal(params[3], &newHeight)
	if err != nil {
		return nil, 0, nil, 0, err
	}

	return oldHash, oldHeight, newHash, newHeight, nil
}

// FutureNotifyBlocksResult is a future promise to deliver the result of a
// NotifyBlocksAsync RPC invocation (or an applicable error).
type FutureNotifyBlocksResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifyBlocksResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifyBlocksAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See NotifyBlocks for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyBlocksAsync() FutureNotifyBlocksResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifyBlocksCmd()
	return c.sendCmd(cmd)
}

// NotifyBlocks registers the client to receive notifications when blocks are
// connected and disconnected from the main chain. The notifications are
// delivered to the notification handlers associated with the client. Calling
// this function has no effect if there are no notification handlers and will
// result in an error if the client is configured to run in HTTP POST mode.
//
// The notifications delivered as a result of this call will be via one of
// OnBlockConnected, OnBlockDisconnected, or OnReorganization.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyBlocks() error {
	return c.NotifyBlocksAsync().Receive()
}

// FutureStopNotifyBlocksResult is a future promise to deliver the result of a
// StopNotifyBlocksAsync RPC invocation (or an applicable error).
type FutureStopNotifyBlocksResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the deregistration was not successful.
func (r FutureStopNotifyBlocksResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// StopNotifyBlocksAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See StopNotifyBlocks for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) StopNotifyBlocksAsync() FutureStopNotifyBlocksResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewStopNotifyBlocksCmd()
	return c.sendCmd(cmd)
}

// StopNotifyBlocks unregisters the client from receiving notifications when
// blocks are connected and disconnected from the main chain. The notifications
// would result in an error if the client is configured to run in HTTP POST
// mode.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) StopNotifyBlocks() error {
	return c.StopNotifyBlocksAsync().Receive()
}

// FutureNotifyWorkResult is a future promise to deliver the result of a
// NotifyWorkAsync RPC invocation (or an applicable error).
type FutureNotifyWorkResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifyWorkResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifyWorkAsync returns an instance of a type that can be used to get the
// result of the RPC at some future time by invoking the Receive function on
// the returned instance.
//
// See NotifyWork for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyWorkAsync() FutureNotifyWorkResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifyWorkCmd()
	return c.sendCmd(cmd)
}

// NotifyWork registers the client to receive notifications when a new block
// template has been generated.
//
// The notifications delivered as a result of this call will be via OnWork.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyWork() error {
	return c.NotifyWorkAsync().Receive()
}

// FutureStopNotifyWorkResult is a future promise to deliver the result of a
// StopNotifyWorkAsync RPC invocation (or an applicable error).
type FutureStopNotifyWorkResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the deregistration was not successful.
func (r FutureStopNotifyWorkResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// StopNotifyWorkAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See StopNotifyWork for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) StopNotifyWorkAsync() FutureStopNotifyWorkResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewStopNotifyWorkCmd()
	return c.sendCmd(cmd)
}

// StopNotifyWork unregisters the client from receiving notifications when a
// new block template has been generated.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) StopNotifyWork() error {
	return c.StopNotifyWorkAsync().Receive()
}

// FutureNotifyWinningTicketsResult is a future promise to deliver the result
// of a NotifyWinningTicketsAsync RPC invocation (or an applicable error).
type FutureNotifyWinningTicketsResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifyWinningTicketsResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifyWinningTicketsAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See NotifyWinningTickets for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyWinningTicketsAsync() FutureNotifyWinningTicketsResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifyWinningTicketsCmd()
	return c.sendCmd(cmd)
}

// NotifyWinningTickets registers the client to receive notifications of the
// tickets eligible to vote on blocks as they are connected to the main chain.
//
// The notifications delivered as a result of this call will be via
// OnWinningTickets.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyWinningTickets() error {
	return c.NotifyWinningTicketsAsync().Receive()
}

// FutureNotifySpentAndMissedTicketsResult is a future promise to deliver the
// result of a NotifySpentAndMissedTicketsAsync RPC invocation (or an
// applicable error).
type FutureNotifySpentAndMissedTicketsResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifySpentAndMissedTicketsResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifySpentAndMissedTicketsAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See NotifySpentAndMissedTickets for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifySpentAndMissedTicketsAsync() FutureNotifySpentAndMissedTicketsResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifySpentAndMissedTicketsCmd()
	return c.sendCmd(cmd)
}

// NotifySpentAndMissedTickets registers the client to receive notifications
// of tickets that are spent or missed as blocks are connected to the main
// chain.
//
// The notifications delivered as a result of this call will be via
// OnSpentAndMissedTickets.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifySpentAndMissedTickets() error {
	return c.NotifySpentAndMissedTicketsAsync().Receive()
}

// FutureNotifyNewTicketsResult is a future promise to deliver the result of a
// NotifyNewTicketsAsync RPC invocation (or an applicable error).
type FutureNotifyNewTicketsResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifyNewTicketsResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifyNewTicketsAsync returns an instance of a type that can be used to get
// the result of the RPC at some future time by invoking the Receive function
// on the returned instance.
//
// See NotifyNewTickets for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyNewTicketsAsync() FutureNotifyNewTicketsResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifyNewTicketsCmd()
	return c.sendCmd(cmd)
}

// NotifyNewTickets registers the client to receive notifications of tickets
// that have matured and become active as blocks are connected to the main
// chain.
//
// The notifications delivered as a result of this call will be via
// OnNewTickets.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyNewTickets() error {
	return c.NotifyNewTicketsAsync().Receive()
}

// FutureNotifyStakeDifficultyResult is a future promise to deliver the result
// of a NotifyStakeDifficultyAsync RPC invocation (or an applicable error).
type FutureNotifyStakeDifficultyResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifyStakeDifficultyResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifyStakeDifficultyAsync returns an instance of a type that can be used
// to get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See NotifyStakeDifficulty for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyStakeDifficultyAsync() FutureNotifyStakeDifficultyResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifyStakeDifficultyCmd()
	return c.sendCmd(cmd)
}

// NotifyStakeDifficulty registers the client to receive notifications of
// stake difficulty changes as blocks are connected to the main chain.
//
// The notifications delivered as a result of this call will be via
// OnStakeDifficulty.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyStakeDifficulty() error {
	return c.NotifyStakeDifficultyAsync().Receive()
}

// FutureNotifyNewTransactionsResult is a future promise to deliver the result
// of a NotifyNewTransactionsAsync RPC invocation (or an applicable error).
type FutureNotifyNewTransactionsResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the registration was not successful.
func (r FutureNotifyNewTransactionsResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// NotifyNewTransactionsAsync returns an instance of a type that can be used to
// get the result of the RPC at some future time by invoking the Receive
// function on the returned instance.
//
// See NotifyNewTransactions for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyNewTransactionsAsync(verbose bool) FutureNotifyNewTransactionsResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewNotifyNewTransactionsCmd(&verbose)
	return c.sendCmd(cmd)
}

// NotifyNewTransactions registers the client to receive notifications every
// time a new transaction is accepted to the memory pool. The notifications are
// delivered to the notification handlers associated with the client. Calling
// this function has no effect if there are no notification handlers and will
// result in an error if the client is configured to run in HTTP POST mode.
//
// The notifications delivered as a result of this call will be via one of
// OnTxAccepted (when verbose is false) or OnTxAcceptedVerbose (when verbose is
// true).
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) NotifyNewTransactions(verbose bool) error {
	return c.NotifyNewTransactionsAsync(verbose).Receive()
}

// FutureStopNotifyNewTransactionsResult is a future promise to deliver the
// result of a StopNotifyNewTransactionsAsync RPC invocation (or an applicable
// error).
type FutureStopNotifyNewTransactionsResult chan *response

// Receive waits for the response promised by the future and returns an error
// if the deregistration was not successful.
func (r FutureStopNotifyNewTransactionsResult) Receive() error {
	_, err := receiveFuture(r)
	return err
}

// StopNotifyNewTransactionsAsync returns an instance of a type that can be
// used to get the result of the RPC at some future time by invoking the
// Receive function on the returned instance.
//
// See StopNotifyNewTransactions for the blocking version and more details.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) StopNotifyNewTransactionsAsync() FutureStopNotifyNewTransactionsResult {
	// Not supported in HTTP POST mode.
	if c.config.HTTPPostMode {
		return newFutureError(ErrWebsocketsRequired)
	}

	// Ignore the notification if the client is not interested in
	// notifications.
	if c.ntfnHandlers == nil {
		return newNilFutureResult()
	}

	cmd := helixjson.NewStopNotifyNewTransactionsCmd()
	return c.sendCmd(cmd)
}

// StopNotifyNewTransactions unregisters the client from receiving
// notifications every time a new transaction is accepted to the memory pool.
//
// NOTE: This is a helixd extension and requires a websocket connection.
func (c *Client) StopNotifyNewTransactions() error {
	return c.StopNotifyNewTransactionsAsync().Receive()
}
