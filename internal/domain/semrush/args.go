package semrush

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultDatabase is the regional database assumed when a report that
// carries one is invoked without an explicit database argument.
const DefaultDatabase = "us"

// ReportArgs is the validated argument set of one report invocation,
// ready to be assembled into a parameter set once the API key is known.
type ReportArgs struct {
	def      Definition
	database string
	required []fieldValue
	optional []fieldValue
}

type fieldValue struct {
	field  Field
	values []string
}

// BuildArgs validates args against the definition and coerces them to
// their wire representation. It performs no I/O: every rejection
// happens before a credential is resolved or a request is built.
// Arguments the definition does not know are ignored.
func (d Definition) BuildArgs(args map[string]any) (*ReportArgs, error) {
	ra := &ReportArgs{def: d}
	listLens := make(map[string]int)

	for _, f := range d.Required {
		raw, ok := args[f.Name]
		if !ok || raw == nil {
			return nil, &MissingArgumentError{Argument: f.Name}
		}
		values, err := coerce(f, raw, listLens)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 || (f.Kind == KindString && values[0] == "") {
			return nil, &MissingArgumentError{Argument: f.Name}
		}
		ra.required = append(ra.required, fieldValue{field: f, values: values})
	}

	if d.Database {
		ra.database = DefaultDatabase
		if raw, ok := args["database"]; ok && raw != nil {
			db, ok := raw.(string)
			if !ok {
				return nil, &MissingArgumentError{Argument: "database", Reason: "must be a string"}
			}
			if db != "" {
				ra.database = db
			}
		}
	}

	for _, f := range d.Optional {
		raw, ok := args[f.Name]
		if !ok || raw == nil {
			continue
		}
		values, err := coerce(f, raw, listLens)
		if err != nil {
			return nil, err
		}
		if values == nil {
			// False flags serialize nothing.
			continue
		}
		ra.optional = append(ra.optional, fieldValue{field: f, values: values})
	}

	return ra, nil
}

// Params assembles the ordered parameter set: type, key, the required
// fields in table order, database when the report carries one, then the
// optional fields that were present. Absent optionals never contribute
// a key.
func (a *ReportArgs) Params(apiKey string) Params {
	params := make(Params, 0, 2+len(a.required)+len(a.optional)+1)
	params.Add("type", a.def.Name)
	params.Add("key", apiKey)
	for _, fv := range a.required {
		for _, v := range fv.values {
			params.Add(fv.field.WireKey(), v)
		}
	}
	if a.def.Database {
		params.Add("database", a.database)
	}
	for _, fv := range a.optional {
		for _, v := range fv.values {
			params.Add(fv.field.WireKey(), v)
		}
	}
	return params
}

// coerce converts one raw argument to its wire values. A nil slice with
// a nil error means the argument serializes nothing (a false flag).
// listLens records the length of every accepted list so that SameLenAs
// pairs can be compared once both sides are seen.
func coerce(f Field, raw any, listLens map[string]int) ([]string, error) {
	switch f.Kind {
	case KindInt:
		v, err := intValue(f, raw)
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	case KindFlag:
		on, ok := raw.(bool)
		if !ok {
			return nil, &MissingArgumentError{Argument: f.Name, Reason: "must be a boolean"}
		}
		if !on {
			return nil, nil
		}
		return []string{f.Const}, nil
	case KindStrings:
		values, err := listValue(f, raw)
		if err != nil {
			return nil, err
		}
		if f.MaxItems > 0 && len(values) > f.MaxItems {
			return nil, &MissingArgumentError{
				Argument: f.Name,
				Reason:   fmt.Sprintf("accepts at most %d items", f.MaxItems),
			}
		}
		if f.SameLenAs != "" {
			if want, ok := listLens[f.SameLenAs]; ok && want != len(values) {
				return nil, &MissingArgumentError{
					Argument: f.Name,
					Reason:   fmt.Sprintf("must have the same number of items as %s", f.SameLenAs),
				}
			}
		}
		listLens[f.Name] = len(values)
		return values, nil
	default:
		v, ok := raw.(string)
		if !ok {
			return nil, &MissingArgumentError{Argument: f.Name, Reason: "must be a string"}
		}
		return []string{v}, nil
	}
}

func intValue(f Field, raw any) (string, error) {
	switch n := raw.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		// JSON numbers decode as float64; reject fractional values.
		if n != math.Trunc(n) {
			return "", &MissingArgumentError{Argument: f.Name, Reason: "must be an integer"}
		}
		return strconv.FormatInt(int64(n), 10), nil
	default:
		return "", &MissingArgumentError{Argument: f.Name, Reason: "must be an integer"}
	}
}

func listValue(f Field, raw any) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []any:
		values := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &MissingArgumentError{Argument: f.Name, Reason: "must be a list of strings"}
			}
			values = append(values, s)
		}
		return values, nil
	default:
		return nil, &MissingArgumentError{Argument: f.Name, Reason: "must be a list of strings"}
	}
}
