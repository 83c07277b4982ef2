package errors

import (
	"fmt"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantDesc string
	}{
		"no errors": {
			errs:    nil,
			wantNil: true,
		},
		"only nil errors": {
			errs:    []error{nil, nil},
			wantNil: true,
		},
		"single error is passed through": {
			errs:     []error{ErrAmount},
			wantDesc: "invalid amount",
		},
		"multiple errors are collected": {
			errs:     []error{ErrAmount, nil, ErrEmpty},
			wantDesc: "invalid amount; value is empty",
		},
		"nested append is flattened": {
			errs:     []error{Append(ErrAmount, ErrEmpty), ErrState},
			wantDesc: "invalid amount; value is empty; invalid state",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %+v", err)
				}
				return
			}
			if err.Error() != tc.wantDesc {
				t.Fatalf("unexpected description: %q", err.Error())
			}
		})
	}
}

func TestAppendFirstErrorDecidesTheCode(t *testing.T) {
	err := Append(ErrAmount, ErrEmpty)
	c, ok := err.(interface{ ABCICode() uint32 })
	if !ok {
		t.Fatalf("%T must provide an ABCI code", err)
	}
	if got, want := c.ABCICode(), ErrAmount.ABCICode(); got != want {
		t.Fatalf("want %d code, got %d", want, got)
	}
}

func TestAppendedErrorMatchesFirst(t *testing.T) {
	err := Append(fmt.Errorf("first"), ErrEmpty)
	if ErrEmpty.Is(err) {
		t.Fatal("only the first error of the group can be matched")
	}
	err = Append(ErrEmpty, fmt.Errorf("second"))
	if !ErrEmpty.Is(err) {
		t.Fatal("the first error of the group must be matched")
	}
}
