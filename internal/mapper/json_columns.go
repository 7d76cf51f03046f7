package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Snapshot columns are stored as jsonb. A marshal of these in-memory structs
// cannot fail, and an unreadable column decodes to the zero value so a bad
// row never takes the request down.

func marshalColumn(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func unmarshalColumn(data datatypes.JSON, out interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, out)
}
