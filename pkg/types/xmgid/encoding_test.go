package xmgid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type row struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

func TestJSON(t *testing.T) {
	in := row{ID: MustParse("0102030405060708090A0B0C"), Name: "a"}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"0102030405060708090a0b0c","name":"a"}`, string(data))

	var out row
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSON_Invalid(t *testing.T) {
	var out row
	err := json.Unmarshal([]byte(`{"id":"xyz"}`), &out)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestBinary(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")
	data, err := id.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, id[:], data)

	var got ID
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, id, got)

	assert.ErrorIs(t, got.UnmarshalBinary(data[:4]), ErrTruncated)
	assert.ErrorIs(t, got.UnmarshalBinary(append(data, 1)), ErrMalformed)
}

// =============================================================================
// database/sql
// =============================================================================

func TestValue(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")
	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, "0102030405060708090a0b0c", v)
}

func TestScan(t *testing.T) {
	id := MustParse("0102030405060708090a0b0c")

	tests := []struct {
		name    string
		src     any
		want    ID
		wantErr error
	}{
		{"nil", nil, Nil, nil},
		{"string", "0102030405060708090A0B0C", id, nil},
		{"hex_bytes", []byte("0102030405060708090a0b0c"), id, nil},
		{"raw_bytes", id.WireBytes(), id, nil},
		{"bad_string", "0102", Nil, ErrMalformed},
		{"bad_bytes", []byte{1, 2, 3}, Nil, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse("ffffffffffffffffffffffff")
			err := got.Scan(tt.src)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var got ID
	assert.Error(t, got.Scan(42))
}

// =============================================================================
// bson.ObjectID
// =============================================================================

func TestObjectID(t *testing.T) {
	oid := bson.NewObjectID()

	id := FromObjectID(oid)
	assert.Equal(t, oid.Hex(), id.String())
	assert.Equal(t, oid, id.ObjectID())

	parsed, err := bson.ObjectIDFromHex(id.String())
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)
}

func TestObjectID_TimestampPrefix(t *testing.T) {
	oid := bson.NewObjectID()
	id := FromObjectID(oid)

	// ObjectId 前 4 字节是秒级时间戳，与 mgid 的时间戳分段一致
	assert.Equal(t, oid.Hex()[:8], id.TimestampHex())
}
