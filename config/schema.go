package config

import (
	"github.com/invopop/jsonschema"

	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/statespace"
)

// Schema returns the JSON schema of a config file.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

// SpaceAttributeSchemas maps the built-in space types to the schema of their attributes.
var SpaceAttributeSchemas = map[string]*jsonschema.Schema{
	statespace.KindBasic2D:   jsonschema.Reflect(&statespace.Basic2DConfig{}),
	statespace.KindBitmap:    jsonschema.Reflect(&statespace.BitmapConfig{}),
	statespace.KindCircles:   jsonschema.Reflect(&statespace.CirclesConfig{}),
	statespace.KindRectangle: jsonschema.Reflect(&statespace.RectangleConfig{}),
}

// PlannerOptionsSchema is the schema of the planner options.
var PlannerOptionsSchema = jsonschema.Reflect(&motionplan.PlannerOptions{})
