package entrypoint

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/biogrid/internal/model"
)

// TagName is the struct tag monitor implementations use to bind fields to
// manifest port names, e.g. `bio:"state_a"`.
const TagName = "bio"

// resolveHandler introspects a monitor handler registered in the binary. The
// handler's Input and Output struct types declare the callable's parameter
// and output names through their `bio` field tags.
func (in *Introspector) resolveHandler(m *model.ModelManifest) (*Signature, error) {
	name := m.Entrypoint.Handler

	handler, ok := in.reg.Monitor(name)
	if !ok {
		return nil, &ResolutionError{Kind: NotFound, Ref: name, Err: fmt.Errorf("no monitor handler registered under this name")}
	}

	if handler.InputType == nil || handler.OutputType == nil ||
		handler.InputType.Kind() != reflect.Struct || handler.OutputType.Kind() != reflect.Struct {
		return nil, &ResolutionError{Kind: NotCallable, Ref: name, Err: fmt.Errorf("handler does not expose input and output struct types")}
	}

	params, paramTypes := taggedFieldNames(handler.InputType)
	outputs, _ := taggedFieldNames(handler.OutputType)

	return &Signature{
		Params:     params,
		Outputs:    outputs,
		ParamTypes: paramTypes,
	}, nil
}

// taggedFieldNames scrapes the `bio` tags off a struct type's exported
// fields, in field order. Fields whose type has no cty equivalent are still
// named; they simply carry no entry in the type map.
func taggedFieldNames(structType reflect.Type) ([]string, map[string]cty.Type) {
	var names []string
	types := make(map[string]cty.Type)

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get(TagName)
		tagName := strings.Split(tag, ",")[0]
		if tagName == "" || tagName == "-" {
			continue
		}
		names = append(names, tagName)

		if implied, err := gocty.ImpliedType(reflect.Zero(field.Type).Interface()); err == nil {
			types[tagName] = implied
		}
	}

	return names, types
}
