// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// JournalEntry is the unit of work delivered to sync workers: the changes of
// one committed write session that target a single snapshot owner.
//
// Changes holds at most one record per (table, uuid) pair, in discovery order.
// On the wire it is encoded as
//
//	{"task_id": "...", "is_retry": false, "db_owner_id": 42,
//	 "changelog": {"TB_PROFILE": {"<uuid>": {"action": "add", "data": {...}}}}}
//
// with tables and uuids kept in discovery order.
type JournalEntry struct {
	TaskID    string
	IsRetry   bool
	DBOwnerID int64
	Changes   []ChangeRecord
}

// Append adds change to the entry, merging it into an existing record for the
// same row if one is present.
func (e *JournalEntry) Append(change ChangeRecord) {
	for i, existing := range e.Changes {
		if existing.Table == change.Table && existing.UUID == change.UUID {
			e.Changes[i] = existing.Merge(change)
			return
		}
	}
	e.Changes = append(e.Changes, change)
}

type journalEntryHeader struct {
	TaskID    string          `json:"task_id"`
	IsRetry   bool            `json:"is_retry"`
	DBOwnerID int64           `json:"db_owner_id"`
	Changelog json.RawMessage `json:"changelog"`
}

type changeBody struct {
	Action Action         `json:"action"`
	Data   map[string]any `json:"data"`
}

// MarshalJSON implements [json.Marshaler].
func (e JournalEntry) MarshalJSON() ([]byte, error) {
	var tables []Table
	byTable := make(map[Table][]ChangeRecord)
	for _, c := range e.Changes {
		if _, ok := byTable[c.Table]; !ok {
			tables = append(tables, c.Table)
		}
		byTable[c.Table] = append(byTable[c.Table], c)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range tables {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONKey(&buf, t.String())
		buf.WriteByte('{')
		for j, c := range byTable[t] {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeJSONKey(&buf, c.UUID)
			body, err := json.Marshal(changeBody{Action: c.Action, Data: c.Data})
			if err != nil {
				return nil, fmt.Errorf("marshal change %s/%s: %w", t, c.UUID, err)
			}
			buf.Write(body)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return json.Marshal(journalEntryHeader{
		TaskID:    e.TaskID,
		IsRetry:   e.IsRetry,
		DBOwnerID: e.DBOwnerID,
		Changelog: buf.Bytes(),
	})
}

// UnmarshalJSON implements [json.Unmarshaler]. Numbers inside change data
// are decoded as int64 when integral and float64 otherwise.
func (e *JournalEntry) UnmarshalJSON(data []byte) error {
	var header journalEntryHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}

	changes, err := decodeChangelog(header.Changelog)
	if err != nil {
		return err
	}

	*e = JournalEntry{
		TaskID:    header.TaskID,
		IsRetry:   header.IsRetry,
		DBOwnerID: header.DBOwnerID,
		Changes:   changes,
	}
	return nil
}

func writeJSONKey(buf *bytes.Buffer, key string) {
	encoded, _ := json.Marshal(key)
	buf.Write(encoded)
	buf.WriteByte(':')
}

func decodeChangelog(raw json.RawMessage) ([]ChangeRecord, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var changes []ChangeRecord
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		table, err := ParseTable(name)
		if err != nil {
			return nil, err
		}

		if err = expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			uuid, err := readKey(dec)
			if err != nil {
				return nil, err
			}
			var body changeBody
			if err = dec.Decode(&body); err != nil {
				return nil, fmt.Errorf("decode change %s/%s: %w", name, uuid, err)
			}
			changes = append(changes, ChangeRecord{
				Table:  table,
				UUID:   uuid,
				Action: body.Action,
				Data:   normalizeNumbers(body.Data),
			})
		}
		if err = expectDelim(dec, '}'); err != nil {
			return nil, err
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return changes, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q in changelog, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", errors.New("expected object key in changelog")
	}
	return key, nil
}

func normalizeNumbers(data map[string]any) map[string]any {
	for k, v := range data {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			data[k] = i
			continue
		}
		f, _ := n.Float64()
		data[k] = f
	}
	return data
}
