package db

import (
	"encoding/json"
	"log/slog"
)

func ItemsToRawMessage(items []OrderItem) json.RawMessage {
	bytes, err := json.Marshal(items)
	if err != nil {
		slog.Error("error marshaling order items", "err", err)
		return nil
	}
	return json.RawMessage(bytes)
}

func RawMessageToItems(raw json.RawMessage) []OrderItem {
	var items []OrderItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Error("error unmarshaling order items", "err", err)
		return nil
	}
	return items
}

func MapToRawMessage(data map[string]interface{}) json.RawMessage {
	bytes, err := json.Marshal(data)
	if err != nil {
		slog.Error("error marshaling config", "err", err)
		return nil
	}
	return json.RawMessage(bytes)
}
