package codec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

func init() {
	Register("json", func() (Codec, error) { return JSONCodec{}, nil })
	Register("epoch_millis", func() (Codec, error) { return EpochMillisCodec{}, nil })
}

// JSONCodec stores arbitrary values as JSON text.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (JSONCodec) Decode(v any, target reflect.Type) (any, error) {
	var data []byte
	switch s := v.(type) {
	case nil:
		return reflect.Zero(target).Interface(), nil
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return nil, fmt.Errorf("json codec: unsupported storage type %T", v)
	}
	out := reflect.New(target)
	if err := json.Unmarshal(data, out.Interface()); err != nil {
		return nil, err
	}
	return out.Elem().Interface(), nil
}

// EpochMillisCodec stores time.Time as integer milliseconds since the
// Unix epoch.
type EpochMillisCodec struct{}

func (EpochMillisCodec) Name() string { return "epoch_millis" }

func (EpochMillisCodec) Encode(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UnixMilli(), nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		return t.UnixMilli(), nil
	}
	return nil, fmt.Errorf("epoch_millis codec: want time.Time, got %T", v)
}

func (EpochMillisCodec) Decode(v any, target reflect.Type) (any, error) {
	var ms int64
	switch n := v.(type) {
	case nil:
		return reflect.Zero(target).Interface(), nil
	case int64:
		ms = n
	case int:
		ms = int64(n)
	case float64:
		ms = int64(n)
	default:
		return nil, fmt.Errorf("epoch_millis codec: unsupported storage type %T", v)
	}
	return time.UnixMilli(ms).UTC(), nil
}
