package predict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// keyFactors lists the factor mix quoted in every report.
var keyFactors = []string{
	"FIFA ranking (25%)",
	"Historical performance (20%)",
	"Recent form (25%)",
	"Squad strength (20%)",
	"Home advantage (10%)",
}

const generatedAtLayout = "2006-01-02T15:04:05Z"

// BuildReport wraps the top five entries of a prediction payload into the
// report layout: predictions keyed "1".."5", the factor legend and a UTC
// generation stamp.
func BuildReport(pred map[string]any) map[string]any {
	top := topEntries(pred)
	entries := map[string]any{}
	for i, e := range top {
		entries[strconv.Itoa(i+1)] = e
	}
	report := map[string]any{
		"predictions":  entries,
		"key_factors":  keyFactors,
		"generated_at": time.Now().UTC().Format(generatedAtLayout),
	}
	return map[string]any{"result": "Report generated", "data": report}
}

// Visualization reduces a prediction payload to bar chart data: one label
// and one value per top entry.
func Visualization(payload map[string]any) map[string]any {
	var top []map[string]any
	if payload != nil {
		top = listEntries(payload["top5"])
		if len(top) == 0 {
			if preds, ok := payload["predictions"].(map[string]any); ok {
				top = sortedEntries(preds)
			}
		}
	}
	if len(top) > 5 {
		top = top[:5]
	}
	labels := make([]string, 0, len(top))
	values := make([]float64, 0, len(top))
	for _, item := range top {
		labels = append(labels, entryLabel(item))
		values = append(values, entryValue(item))
	}
	return map[string]any{
		"result": "Visualization data ready",
		"data":   map[string]any{"labels": labels, "values": values, "type": "bar"},
	}
}

// SaveReport writes a report payload as indented JSON under dir, creating
// the directory when needed, and returns the persisted path in the
// standard envelope.
func SaveReport(dir, filename string, content map[string]any) (map[string]any, error) {
	if dir == "" {
		dir = "predictions"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	buf, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return map[string]any{
		"result": fmt.Sprintf("Report saved to %s", path),
		"data":   map[string]any{"filename": path},
	}, nil
}

// topEntries pulls the ranked entries out of a payload: the top5 list when
// present, the values of a "data" map second, and any entry-shaped values
// of the payload itself last.
func topEntries(payload map[string]any) []map[string]any {
	if payload == nil {
		return nil
	}
	if top := listEntries(payload["top5"]); len(top) > 0 {
		return top
	}
	if data, ok := payload["data"].(map[string]any); ok {
		return sortedEntries(data)
	}
	return sortedEntries(payload)
}

// listEntries accepts both the in-process []map form and the []any form a
// JSON round trip produces.
func listEntries(v any) []map[string]any {
	switch t := v.(type) {
	case []map[string]any:
		return t
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// sortedEntries returns up to five map-shaped values of m in key order.
// Ranked maps key their entries "1".."5", so key order is rank order.
func sortedEntries(m map[string]any) []map[string]any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]map[string]any, 0, 5)
	for _, k := range keys {
		if len(out) == 5 {
			break
		}
		if e, ok := m[k].(map[string]any); ok {
			out = append(out, e)
		}
	}
	return out
}

func entryLabel(item map[string]any) string {
	if v, ok := item["team"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if v, ok := item["name"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "?"
}

func entryValue(item map[string]any) float64 {
	if v, ok := item["probability"]; ok {
		return toFloat(v)
	}
	if v, ok := item["score"]; ok {
		return toFloat(v)
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
