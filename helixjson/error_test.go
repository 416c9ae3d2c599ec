// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package helixjson_test

import (
	"testing"

	"github.com/helixchain/helixd/helixjson"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   helixjson.ErrorCode
		want string
	}{
		{helixjson.ErrDuplicateMethod, "ErrDuplicateMethod"},
		{helixjson.ErrInvalidUsageFlags, "ErrInvalidUsageFlags"},
		{helixjson.ErrInvalidType, "ErrInvalidType"},
		{helixjson.ErrEmbeddedType, "ErrEmbeddedType"},
		{helixjson.ErrUnexportedField, "ErrUnexportedField"},
		{helixjson.ErrUnsupportedFieldType, "ErrUnsupportedFieldType"},
		{helixjson.ErrNonOptionalField, "ErrNonOptionalField"},
		{helixjson.ErrNonOptionalDefault, "ErrNonOptionalDefault"},
		{helixjson.ErrMismatchedDefault, "ErrMismatchedDefault"},
		{helixjson.ErrUnregisteredMethod, "ErrUnregisteredMethod"},
		{helixjson.ErrMissingDescription, "ErrMissingDescription"},
		{helixjson.ErrNumParams, "ErrNumParams"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != helixjson.TstNumErrorCodes {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   helixjson.Error
		want string
	}{
		{
			helixjson.Error{Description: "some error"},
			"some error",
		},
		{
			helixjson.Error{Description: "human-readable error"},
			"human-readable error",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}
