package schedule

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Schedule files historically store entries as two-element tuples,
// ["November 22, 2025", [2, 3]], so both the tuple form and the plain
// {date, volumes} object form are accepted.

func (e *Entry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) != 2 {
			return fmt.Errorf("schedule entry tuple has %d elements, want 2", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &e.Date); err != nil {
			return fmt.Errorf("schedule entry date: %w", err)
		}
		if err := json.Unmarshal(tuple[1], &e.Volumes); err != nil {
			return fmt.Errorf("schedule entry volumes: %w", err)
		}
		return nil
	}

	type plain Entry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		if len(value.Content) != 2 {
			return fmt.Errorf("schedule entry tuple has %d elements, want 2", len(value.Content))
		}
		if err := value.Content[0].Decode(&e.Date); err != nil {
			return fmt.Errorf("schedule entry date: %w", err)
		}
		if err := value.Content[1].Decode(&e.Volumes); err != nil {
			return fmt.Errorf("schedule entry volumes: %w", err)
		}
		return nil
	}

	type plain Entry
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}
