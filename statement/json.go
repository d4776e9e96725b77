package statement

import "encoding/json"

// The JSON representation of every value carries a "type" field, so that the interface typed lists can be
// decoded by clients without further knowledge.

func (s *SelectStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Command  Command       `json:"command"`
		Columns  []ColumnValue `json:"columns"`
		Tables   []TableEntry  `json:"tables"`
		JoinKeys []JoinKey     `json:"join-keys"`
	}{
		Command:  s.Command(),
		Columns:  nonNil(s.columns),
		Tables:   nonNil(s.tables),
		JoinKeys: nonNil(s.joinKeys),
	})
}

func (s *UnsupportedStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Command Command `json:"command"`
	}{
		Command: s.command,
	})
}

func (c *PlainName) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{
		Type: "plain-name",
		Name: c.name,
	})
}

func (c *QuotedName) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Name  string `json:"name"`
		Quote string `json:"quote"`
	}{
		Type:  "quoted-name",
		Name:  c.name,
		Quote: string(c.quote),
	})
}

func (c *FunctionCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string        `json:"type"`
		Name      string        `json:"name"`
		Arguments []ColumnValue `json:"arguments"`
	}{
		Type:      "function-call",
		Name:      c.name,
		Arguments: nonNil(c.arguments),
	})
}

func (t *TableName) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{
		Type: "table-name",
		Name: t.name,
	})
}

func (t *JoinMarker) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string   `json:"type"`
		Kind JoinKind `json:"kind"`
	}{
		Type: "join-marker",
		Kind: t.kind,
	})
}

func (t *NestedQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{
		Type: "nested-query",
	})
}

func (k *SingleColumn) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{
		Type: "single-column",
		Name: k.name,
	})
}

func (k *ColumnPair) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Left  string `json:"left"`
		Right string `json:"right"`
	}{
		Type:  "column-pair",
		Left:  k.left,
		Right: k.right,
	})
}

// nonNil avoids "null" in the JSON output for empty lists.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
