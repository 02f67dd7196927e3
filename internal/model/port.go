// SPDX-License-Identifier: MIT
//
// This file defines the structure of a monitor's ports and the logic for
// parsing port blocks from HCL.
//
// Why have a formal Port definition?
//
// A port is one named slot of a monitor's public contract with the
// simulation space. Declaring ports with an enumerated data type tag lets
// the registry perform static checks against the implementation artifact:
// the entrypoint checker verifies that every declared port has a matching
// parameter or output on the real implementation, and the type tag gives it
// enough information to warn about incompatible implementations without ever
// executing the model.
package model

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
)

// PortType is the enumerated data type tag a manifest assigns to a port.
type PortType string

const (
	// PortTypeState is an opaque state snapshot; its wire shape is model-defined.
	PortTypeState PortType = "state"
	// PortTypeScalar is a single numeric value.
	PortTypeScalar PortType = "scalar"
	// PortTypeSeries is an ordered sequence of numeric values.
	PortTypeSeries PortType = "series"
)

// ParsePortType maps a manifest keyword to a PortType.
func ParsePortType(s string) (PortType, bool) {
	switch PortType(s) {
	case PortTypeState, PortTypeScalar, PortTypeSeries:
		return PortType(s), true
	default:
		return "", false
	}
}

// CtyType maps a port type tag onto the cty type system so declared ports
// can be checked against implied Go field types. State ports are dynamically
// typed and exempt from type checking.
func (t PortType) CtyType() cty.Type {
	switch t {
	case PortTypeScalar:
		return cty.Number
	case PortTypeSeries:
		return cty.List(cty.Number)
	default:
		return cty.DynamicPseudoType
	}
}

// Port is a single named input or output slot declared by a manifest.
type Port struct {
	// Name is taken from the HCL block label, e.g. `input "state_a" {}`.
	Name string

	// Type is the declared data type tag.
	Type PortType

	// Description is an optional human-readable note.
	Description string
}

var portNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidPortName reports whether the name is identifier-safe: lowercase
// letters, digits and underscores, not starting with a digit.
func ValidPortName(name string) bool {
	return portNamePattern.MatchString(name)
}

// portBodySchema is the HCL schema for the body of `input` and `output` blocks.
var portBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but we check for its existence manually
		// to produce a field-scoped diagnostic instead of a raw HCL error.
		{Name: "type"},
		{Name: "description"},
	},
}

// parsePorts decodes all blocks of the given type ("input" or "output") from
// a monitor's body content, preserving declaration order. Shape problems with
// required fields produce error diagnostics; a present-but-ill-typed optional
// description only warns.
func parsePorts(manifest string, blocks hcl.Blocks, direction string) ([]Port, []Diagnostic) {
	var diags []Diagnostic
	var ports []Port

	for _, block := range blocks.OfType(direction) {
		// The block schema guarantees exactly one label.
		portName := block.Labels[0]
		fieldPath := fmt.Sprintf("%s.%s", direction, portName)

		bodyContent, contentDiags := block.Body.Content(portBodySchema)
		if contentDiags.HasErrors() {
			diags = append(diags, Errorf(manifest, fieldPath, "malformed %s block: %s", direction, contentDiags.Error()))
			continue
		}

		typeAttr, exists := bodyContent.Attributes["type"]
		if !exists {
			diags = append(diags, Errorf(manifest, fieldPath+".type", "missing required 'type' attribute"))
			continue
		}

		keyword := hcl.ExprAsKeyword(typeAttr.Expr)
		portType, ok := ParsePortType(keyword)
		if !ok {
			diags = append(diags, Errorf(manifest, fieldPath+".type",
				"invalid port type %q: must be one of 'state', 'scalar', 'series'", keyword))
			continue
		}

		var description string
		if descAttr, exists := bodyContent.Attributes["description"]; exists {
			if evalDiags := gohcl.DecodeExpression(descAttr.Expr, nil, &description); evalDiags.HasErrors() {
				diags = append(diags, Warnf(manifest, fieldPath+".description",
					"description is not a string and was ignored"))
			}
		}

		ports = append(ports, Port{
			Name:        portName,
			Type:        portType,
			Description: description,
		})
	}

	return ports, diags
}
