// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package helixjson

// TstHighestUsageFlagBit makes the internal highestUsageFlagBit parameter
// available to the test package.
var TstHighestUsageFlagBit = highestUsageFlagBit

// TstNumErrorCodes makes the internal numErrorCodes parameter available to
// the test package.
var TstNumErrorCodes = int(numErrorCodes)
