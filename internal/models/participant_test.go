package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParticipantNumericID(t *testing.T) {
	cases := []struct {
		name string
		id   any
		want uint
		ok   bool
	}{
		{name: "json number", id: float64(7), want: 7, ok: true},
		{name: "int", id: 12, want: 12, ok: true},
		{name: "numeric string", id: "42", want: 42, ok: true},
		{name: "padded string", id: " 9 ", want: 9, ok: true},
		{name: "negative", id: float64(-1), want: 0, ok: false},
		{name: "word string", id: "abc", want: 0, ok: false},
		{name: "nil", id: nil, want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := Participant{ID: tc.id}.NumericID()
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, id)
		})
	}
}

func TestDecodeParticipantsRoundTrip(t *testing.T) {
	participants := []Participant{
		{ID: float64(1), LRN: "123456789012", Name: "Alice"},
		{LRN: "210987654321"},
	}

	decoded := DecodeParticipants(EncodeParticipants(participants))
	require.Len(t, decoded, 2)
	require.Equal(t, "123456789012", decoded[0].LRN)
	require.Equal(t, "Alice", decoded[0].Name)
	require.Equal(t, "210987654321", decoded[1].LRN)
}

func TestDecodeParticipantsToleratesBadData(t *testing.T) {
	require.Empty(t, DecodeParticipants(nil))
	require.Empty(t, DecodeParticipants(datatypes.JSON([]byte("not json"))))
	require.Empty(t, DecodeParticipants(datatypes.JSON([]byte(`{"lrn":"123"}`))))
	require.Empty(t, DecodeParticipants(datatypes.JSON([]byte("null"))))
}

func TestEncodeParticipantsNilStoresEmptyArray(t *testing.T) {
	raw := EncodeParticipants(nil)
	require.JSONEq(t, "[]", string(raw))

	var decoded []Participant
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Empty(t, decoded)
}
