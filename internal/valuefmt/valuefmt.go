// Package valuefmt decodes command line arguments into values the type kernel can classify.
//
// Every format understands a few bare spellings that none of them can express on its own:
// "undefined" decodes to the undefined value (nil), "NaN", "Infinity" and "-Infinity" to numbers.
// A decoded null becomes typekit.Null, so it stays distinguishable from undefined.
package valuefmt

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/ryanve/curious/pkg/typekit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/must"
	"gopkg.in/yaml.v3"
)

const (
	ErrUnknownFormat errorkit.Error = "ErrUnknownFormat"
	ErrDecode        errorkit.Error = "ErrDecode"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	// CBOR input is the hex encoding of the CBOR bytes.
	CBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, CBOR}

func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", ErrUnknownFormat.F("%q", name)
}

var cborDecMode = must.Must(cbor.DecOptions{
	DefaultMapType: reflect.TypeOf(map[string]any{}),
}.DecMode())

var bareWords = map[string]any{
	"undefined": nil,
	"NaN":       math.NaN(),
	"Infinity":  math.Inf(1),
	"-Infinity": math.Inf(-1),
}

// Decode parses text in the given format.
func Decode(format Format, text string) (any, error) {
	if v, ok := bareWords[strings.TrimSpace(text)]; ok {
		return v, nil
	}
	var (
		v   any
		err error
	)
	switch format {
	case JSON:
		dec := json.NewDecoder(strings.NewReader(text))
		err = dec.Decode(&v)
		if err == nil && dec.More() {
			err = ErrDecode.F("unexpected data after the JSON value")
		}
	case YAML:
		err = yaml.Unmarshal([]byte(text), &v)
	case CBOR:
		var data []byte
		data, err = hex.DecodeString(strings.TrimSpace(text))
		if err == nil {
			err = cborDecMode.Unmarshal(data, &v)
		}
	default:
		return nil, ErrUnknownFormat.F("%q", format)
	}
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}
	return normalize(v), nil
}

// normalize replaces the nil values of a decoded document with typekit.Null.
func normalize(v any) any {
	switch v := v.(type) {
	case nil:
		return typekit.Null
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case map[any]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	default:
		return v
	}
}
