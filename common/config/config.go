package config

import (
	"encoding/json"
	"fmt"
	"os"

	"g2rapid/common/file"
)

// ReadJSON loads a nested key/value document. The caller decides how missing
// or unknown sections are handled.
func ReadJSON(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var para = map[string]interface{}{}
	err = json.Unmarshal(content, &para)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	return para, nil
}

func WriteJSON(path string, data map[string]interface{}) error {
	d, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}

	return file.WriteFileWithSync(path, d)
}

// Section returns the nested map stored under key, or nil when the key is
// absent or holds something else.
func Section(data map[string]interface{}, key string) map[string]interface{} {
	if data == nil {
		return nil
	}
	section, _ := data[key].(map[string]interface{})
	return section
}

// Float reads a numeric value from a decoded document. JSON numbers decode to
// float64 but maps built in code may carry ints.
func Float(section map[string]interface{}, key string) (float64, bool) {
	switch v := section[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func Int(section map[string]interface{}, key string) (int, bool) {
	f, ok := Float(section, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func String(section map[string]interface{}, key string) (string, bool) {
	s, ok := section[key].(string)
	return s, ok
}
