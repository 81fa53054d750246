package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// Participant identifies a person attached to an incident or session, by
// numeric id and/or LRN. The intake forms submit loose objects, so ID keeps
// whatever JSON type arrived (number or string).
type Participant struct {
	ID   any    `json:"id,omitempty"`
	LRN  string `json:"lrn,omitempty"`
	Name string `json:"name,omitempty"`
}

// NumericID returns the participant id as an integer when it can be read as
// one. String ids that are not plain integers report false.
func (p Participant) NumericID() (uint, bool) {
	switch v := p.ID.(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case json.Number:
		parsed, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(parsed), true
	case string:
		parsed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(parsed), true
	default:
		return 0, false
	}
}

// DecodeParticipants reads a stored participant column back into its ordered
// list. Absent or malformed data decodes to an empty list, never an error.
func DecodeParticipants(raw datatypes.JSON) []Participant {
	if len(raw) == 0 {
		return []Participant{}
	}

	var participants []Participant
	if err := json.Unmarshal(raw, &participants); err != nil || participants == nil {
		return []Participant{}
	}

	return participants
}

// EncodeParticipants serializes a participant list for storage. A nil list
// is stored as an empty JSON array.
func EncodeParticipants(participants []Participant) datatypes.JSON {
	if participants == nil {
		participants = []Participant{}
	}

	raw, err := json.Marshal(participants)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}

	return datatypes.JSON(raw)
}
