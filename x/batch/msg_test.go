package batch

import (
	"testing"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/guildtest"
)

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		Msg     Msg
		WantErr *errors.Error
	}{
		"a single message batch": {
			Msg:     newExecuteBatchMsg(1),
			WantErr: nil,
		},
		"the largest allowed batch": {
			Msg:     newExecuteBatchMsg(MaxBatchMessages),
			WantErr: nil,
		},
		"an empty batch": {
			Msg:     newExecuteBatchMsg(0),
			WantErr: nil,
		},
		"one message too many": {
			Msg:     newExecuteBatchMsg(MaxBatchMessages + 1),
			WantErr: errors.ErrMsg,
		},
		"message list cannot be read": {
			Msg:     &executeBatchMsg{err: errors.ErrState},
			WantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := Validate(tc.Msg); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

// executeBatchMsg implements the application side of the batch message
// for tests.
type executeBatchMsg struct {
	guildtest.Msg
	msgs []guild.Msg
	err  error
}

var _ Msg = (*executeBatchMsg)(nil)

func (m *executeBatchMsg) Path() string {
	return PathExecuteBatchMsg
}

func (m *executeBatchMsg) Validate() error {
	return Validate(m)
}

func (m *executeBatchMsg) MsgList() ([]guild.Msg, error) {
	return m.msgs, m.err
}

func newExecuteBatchMsg(size int) *executeBatchMsg {
	msgs := make([]guild.Msg, size)
	for i := range msgs {
		msgs[i] = &guildtest.Msg{RoutePath: "test/any", Serialized: []byte{byte(i)}}
	}
	return &executeBatchMsg{msgs: msgs}
}
