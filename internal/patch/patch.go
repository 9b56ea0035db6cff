// Package patch は部分更新ドキュメントをフラットなスナップショットへ適用する。
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	OpReplace = "replace"
	OpAdd     = "add"
	OpRemove  = "remove"
)

// Operation は (操作, フィールドパス, 値) の1タプル。
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

type Document []Operation

// Apply はsnapshotのコピーにdocを順番どおり適用し、結果をoutへ書く。
// outはsnapshotと同じシェイプのゼロ値へのポインタであること。
func Apply(doc Document, snapshot any, out any) error {
	fields, err := toMap(snapshot)
	if err != nil {
		return err
	}

	for i, op := range doc {
		name := strings.TrimPrefix(op.Path, "/")
		if name == "" {
			return fmt.Errorf("op %d: empty path", i)
		}
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("op %d: unknown field %q", i, name)
		}

		switch op.Op {
		case OpReplace, OpAdd:
			if len(op.Value) == 0 {
				return fmt.Errorf("op %d: %s %q requires a value", i, op.Op, name)
			}
			var v any
			if err := json.Unmarshal(op.Value, &v); err != nil {
				return fmt.Errorf("op %d: bad value for %q: %w", i, name, err)
			}
			fields[name] = v
		case OpRemove:
			//再型付けでゼロ値になる
			fields[name] = nil
		default:
			return fmt.Errorf("op %d: unsupported op %q", i, op.Op)
		}
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("patched snapshot does not fit target shape: %w", err)
	}
	return nil
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
