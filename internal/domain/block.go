package domain

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Nanos is a nanosecond clock value. NEAR block headers serialize it either as
// a JSON number or as a decimal string depending on the source, so it carries
// its own unmarshaller.
type Nanos uint64

// UnmarshalJSON accepts both `123` and `"123"`.
func (n *Nanos) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*n = Nanos(v)
	return nil
}

// Time converts the nanosecond clock to a millisecond-resolution UTC timestamp.
func (n Nanos) Time() time.Time {
	return time.UnixMilli(int64(n / 1_000_000)).UTC()
}

// BlockHeader is the subset of the NEAR block header the projector reads.
type BlockHeader struct {
	Height           uint64 `json:"height"`
	Hash             string `json:"hash"`
	TimestampNanosec Nanos  `json:"timestampNanosec"`
}

// ExecutionStatus is the outcome of a receipt's execution. Exactly one field is
// set for completed receipts.
type ExecutionStatus struct {
	// SuccessValue holds the base64-encoded return value of a successful call.
	SuccessValue *string `json:"SuccessValue,omitempty"`
	// SuccessReceiptID forwards success to another receipt.
	SuccessReceiptID *string `json:"SuccessReceiptId,omitempty"`
	// Failure holds the raw failure payload, kept opaque.
	Failure json.RawMessage `json:"Failure,omitempty"`
}

// Succeeded reports whether the status is one of the success variants.
func (s ExecutionStatus) Succeeded() bool {
	return s.SuccessValue != nil || s.SuccessReceiptID != nil
}

// DecodedSuccessValue returns the decoded return value of a successful call,
// or nil when the receipt carries no direct success value.
func (s ExecutionStatus) DecodedSuccessValue() ([]byte, error) {
	if s.SuccessValue == nil {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(*s.SuccessValue)
}

// Receipt is a finalized execution receipt.
type Receipt struct {
	ReceiptID     string          `json:"receiptId"`
	ReceiverID    string          `json:"receiverId"`
	PredecessorID string          `json:"predecessorId"`
	Status        ExecutionStatus `json:"status"`
}

// FunctionCall is a single contract call operation. Args is base64-encoded
// JSON as delivered by the chain.
type FunctionCall struct {
	MethodName string `json:"methodName"`
	Args       string `json:"args"`
	Deposit    string `json:"deposit,omitempty"`
	Gas        uint64 `json:"gas,omitempty"`
}

// DecodedArgs returns the decoded argument payload.
func (c *FunctionCall) DecodedArgs() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.Args)
}

// Operation is one action operation; only function calls are projected.
type Operation struct {
	FunctionCall *FunctionCall `json:"FunctionCall,omitempty"`
}

// Action groups the operations of one receipt together with its acting and
// target accounts.
type Action struct {
	ReceiptID     string      `json:"receiptId"`
	ReceiverID    string      `json:"receiverId"`
	SignerID      string      `json:"signerId"`
	PredecessorID string      `json:"predecessorId"`
	Operations    []Operation `json:"operations"`
}

// Event is a structured event attached to a receipt (NEP-297 EVENT_JSON logs).
type Event struct {
	ReceiptID string          `json:"receiptId"`
	Standard  string          `json:"standard"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
}

// Block is one finalized block as delivered by the host stream: header plus
// the receipts, actions and events executed in it. Blocks arrive in strictly
// increasing, gap-free order.
type Block struct {
	Header   BlockHeader `json:"header"`
	Receipts []Receipt   `json:"receipts"`
	Actions  []Action    `json:"actions"`
	Events   []Event     `json:"events"`
}

// ReceiptByID returns the receipt with the given id, or nil.
func (b *Block) ReceiptByID(receiptID string) *Receipt {
	for i := range b.Receipts {
		if b.Receipts[i].ReceiptID == receiptID {
			return &b.Receipts[i]
		}
	}
	return nil
}

// EventsByReceiptID returns the structured events attached to a receipt.
func (b *Block) EventsByReceiptID(receiptID string) []Event {
	var events []Event
	for _, e := range b.Events {
		if e.ReceiptID == receiptID {
			events = append(events, e)
		}
	}
	return events
}

// Time returns the block time at millisecond resolution. The projector derives
// it once per block and threads it through every handler.
func (b *Block) Time() time.Time {
	return b.Header.TimestampNanosec.Time()
}
