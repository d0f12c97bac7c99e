package oracle_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/book-expert/tone-service/internal/oracle"
	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oracleSubject = "tone.oracle.test"

func createTestNatsClient(t *testing.T) *nats.Conn {
	t.Helper()

	opts := test.DefaultTestOptions
	opts.Port = -1
	natsServer := test.RunServer(&opts)

	natsConnection, err := nats.Connect(natsServer.ClientURL())
	if err != nil {
		t.Fatalf("Failed to connect to test NATS server: %v", err)
	}

	t.Cleanup(func() {
		natsConnection.Close()
		natsServer.Shutdown()
	})

	return natsConnection
}

func respondWith(t *testing.T, natsConnection *nats.Conn, reply oracle.Reply) {
	t.Helper()

	data, err := json.Marshal(reply)
	require.NoError(t, err)

	sub, err := natsConnection.Subscribe(oracleSubject, func(msg *nats.Msg) {
		_ = msg.Respond(data)
	})
	require.NoError(t, err)
	require.NoError(t, natsConnection.Flush())

	t.Cleanup(func() {
		_ = sub.Unsubscribe()
	})
}

func TestNew_RequiresSubject(t *testing.T) {
	t.Parallel()

	_, err := oracle.New(nil, "", time.Second)
	require.ErrorIs(t, err, oracle.ErrSubjectEmpty)
}

func TestSyllableCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reply   oracle.Reply
		want    int
		wantErr error
	}{
		{name: "syllables", reply: oracle.Reply{Syllables: []string{"ขอบ", "คุณ"}}, want: 2},
		{name: "count", reply: oracle.Reply{Count: 3}, want: 3},
		{name: "syllables win", reply: oracle.Reply{Syllables: []string{"กา"}, Count: 4}, want: 1},
		{name: "error", reply: oracle.Reply{Error: "unknown word"}, wantErr: oracle.ErrOracleFailed},
		{name: "empty", reply: oracle.Reply{}, wantErr: oracle.ErrNoAnswer},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			natsConnection := createTestNatsClient(t)
			respondWith(t, natsConnection, testCase.reply)

			client, err := oracle.New(natsConnection, oracleSubject, 2*time.Second)
			require.NoError(t, err)

			count, err := client.SyllableCount(context.Background(), "ขอบคุณ")
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, count)
		})
	}
}

func TestSyllableCount_SendsWord(t *testing.T) {
	t.Parallel()

	natsConnection := createTestNatsClient(t)
	received := make(chan string, 1)

	_, err := natsConnection.Subscribe(oracleSubject, func(msg *nats.Msg) {
		var request oracle.Request

		_ = json.Unmarshal(msg.Data, &request)
		received <- request.Word

		_ = msg.Respond([]byte(`{"count":1}`))
	})
	require.NoError(t, err)
	require.NoError(t, natsConnection.Flush())

	client, err := oracle.New(natsConnection, oracleSubject, 2*time.Second)
	require.NoError(t, err)

	_, err = client.SyllableCount(context.Background(), "หมา")
	require.NoError(t, err)
	assert.Equal(t, "หมา", <-received)
}

func TestSyllableCount_NoResponder(t *testing.T) {
	t.Parallel()

	natsConnection := createTestNatsClient(t)

	client, err := oracle.New(natsConnection, oracleSubject, 200*time.Millisecond)
	require.NoError(t, err)

	_, err = client.SyllableCount(context.Background(), "กา")
	require.Error(t, err)
}
