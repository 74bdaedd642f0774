package domain_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlock/indexer/internal/domain"
)

func TestNanos_UnmarshalJSON(t *testing.T) {
	var header domain.BlockHeader

	// Number form
	err := json.Unmarshal([]byte(`{"height":1,"hash":"h","timestampNanosec":1700000000123456789}`), &header)
	require.NoError(t, err)
	assert.Equal(t, domain.Nanos(1700000000123456789), header.TimestampNanosec)

	// String form
	err = json.Unmarshal([]byte(`{"height":1,"hash":"h","timestampNanosec":"1700000000123456789"}`), &header)
	require.NoError(t, err)
	assert.Equal(t, domain.Nanos(1700000000123456789), header.TimestampNanosec)

	// Garbage
	err = json.Unmarshal([]byte(`{"timestampNanosec":"not-a-number"}`), &header)
	assert.Error(t, err)
}

func TestNanos_Time_MillisecondResolution(t *testing.T) {
	n := domain.Nanos(1700000000123456789)
	ts := n.Time()

	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), ts)
	// Sub-millisecond precision is truncated
	assert.Zero(t, ts.Nanosecond()%int(time.Millisecond))
}

func TestExecutionStatus_Succeeded(t *testing.T) {
	value := base64.StdEncoding.EncodeToString([]byte(`"ok"`))
	receiptID := "r1"

	assert.True(t, domain.ExecutionStatus{SuccessValue: &value}.Succeeded())
	assert.True(t, domain.ExecutionStatus{SuccessReceiptID: &receiptID}.Succeeded())
	assert.False(t, domain.ExecutionStatus{}.Succeeded())
	assert.False(t, domain.ExecutionStatus{Failure: json.RawMessage(`{"kind":"x"}`)}.Succeeded())
}

func TestExecutionStatus_DecodedSuccessValue(t *testing.T) {
	payload := `{"owner":"alice.near"}`
	value := base64.StdEncoding.EncodeToString([]byte(payload))

	decoded, err := domain.ExecutionStatus{SuccessValue: &value}.DecodedSuccessValue()
	require.NoError(t, err)
	assert.Equal(t, payload, string(decoded))

	// No success value means no payload, not an error
	decoded, err = domain.ExecutionStatus{}.DecodedSuccessValue()
	require.NoError(t, err)
	assert.Nil(t, decoded)

	bad := "%%%not-base64%%%"
	_, err = domain.ExecutionStatus{SuccessValue: &bad}.DecodedSuccessValue()
	assert.Error(t, err)
}

func TestBlock_ReceiptByID(t *testing.T) {
	block := &domain.Block{
		Receipts: []domain.Receipt{
			{ReceiptID: "a", ReceiverID: "x.near"},
			{ReceiptID: "b", ReceiverID: "y.near"},
		},
	}

	receipt := block.ReceiptByID("b")
	require.NotNil(t, receipt)
	assert.Equal(t, "y.near", receipt.ReceiverID)

	assert.Nil(t, block.ReceiptByID("missing"))
}

func TestBlock_EventsByReceiptID(t *testing.T) {
	block := &domain.Block{
		Events: []domain.Event{
			{ReceiptID: "a", Event: "donation"},
			{ReceiptID: "b", Event: "other"},
			{ReceiptID: "a", Event: "second"},
		},
	}

	events := block.EventsByReceiptID("a")
	require.Len(t, events, 2)
	assert.Equal(t, "donation", events[0].Event)
	assert.Equal(t, "second", events[1].Event)
	assert.Empty(t, block.EventsByReceiptID("missing"))
}

func TestFunctionCall_DecodedArgs(t *testing.T) {
	args := `{"matching_pool":true}`
	call := domain.FunctionCall{
		MethodName: "donate",
		Args:       base64.StdEncoding.EncodeToString([]byte(args)),
	}

	decoded, err := call.DecodedArgs()
	require.NoError(t, err)
	assert.JSONEq(t, args, string(decoded))
}
