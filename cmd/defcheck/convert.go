package main

import (
	"encoding/json"

	"github.com/escalier-lang/defcheck"
)

// decodeJSON parses raw as a JSON value and converts it into a
// defcheck.Value: objects become defcheck.Obj, arrays become
// []defcheck.Value, and numbers/strings/bools/null pass through as
// encoding/json already represents them (float64, string, bool, nil).
func decodeJSON(raw string) (defcheck.Value, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return fromJSON(v), nil
}

func fromJSON(v any) defcheck.Value {
	switch v := v.(type) {
	case map[string]any:
		out := make(defcheck.Obj, len(v))
		for k, fv := range v {
			out[k] = fromJSON(fv)
		}
		return out
	case []any:
		out := make([]defcheck.Value, len(v))
		for i, e := range v {
			out[i] = fromJSON(e)
		}
		return out
	default:
		return v
	}
}

// namedType resolves a catalog type by the name a CLI caller would type.
// Parameterised types are instantiated over Unknown, matching DefaultEnv.
func namedType(name string) (*defcheck.Type, bool) {
	switch name {
	case "Boolean":
		return defcheck.Boolean, true
	case "Number":
		return defcheck.Number, true
	case "Integer":
		return defcheck.Integer, true
	case "FiniteNumber":
		return defcheck.FiniteNumber, true
	case "String":
		return defcheck.String, true
	case "Array":
		return defcheck.Array(defcheck.Unknown), true
	case "Nullable":
		return defcheck.Nullable(defcheck.Unknown), true
	case "Pair":
		return defcheck.Pair(defcheck.Unknown, defcheck.Unknown), true
	case "Object":
		return defcheck.Object(defcheck.Unknown), true
	default:
		return nil, false
	}
}

func belongs(t *defcheck.Type, v defcheck.Value) bool {
	return defcheck.Test(defcheck.DefaultEnv, t, v)
}
