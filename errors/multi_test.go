package errors

import (
	"reflect"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs []error
		want error
	}{
		"no errors given": {
			errs: nil,
			want: nil,
		},
		"only nil errors given": {
			errs: []error{nil, nil},
			want: nil,
		},
		"single error is returned directly": {
			errs: []error{ErrNotFound},
			want: ErrNotFound,
		},
		"two errors are clubbed together": {
			errs: []error{ErrNotFound, ErrMsg},
			want: multiError{ErrNotFound, ErrMsg},
		},
		"nil errors are ignored": {
			errs: []error{nil, ErrNotFound, nil, ErrMsg, nil},
			want: multiError{ErrNotFound, ErrMsg},
		},
		"group members are flattened": {
			errs: []error{Append(ErrNotFound, ErrMsg), ErrState},
			want: multiError{ErrNotFound, ErrMsg, ErrState},
		},
		"duplicates are preserved": {
			errs: []error{ErrNotFound, ErrNotFound},
			want: multiError{ErrNotFound, ErrNotFound},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := Append(tc.errs...)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected result: %+v", got)
			}
		})
	}
}

func TestMultiErrorMessage(t *testing.T) {
	err := Append(
		Wrap(ErrNotFound, "first"),
		Wrap(ErrMsg, "second"),
	)
	const want = "first: not found; second: invalid message"
	if got := err.Error(); got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestMultiErrorABCICode(t *testing.T) {
	err := Append(
		Wrap(ErrMsg, "first"),
		Wrap(ErrNotFound, "second"),
	)
	// The first member determines the code, the same as if the processing
	// stopped on the first failure.
	if code := abciCode(err); code != ErrMsg.code {
		t.Fatalf("unexpected code: %d", code)
	}
}
