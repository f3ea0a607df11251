// Package scenario loads a collision-checking setup from a YAML document
// (C10): the declared inputs, the polygons and circles a robot might
// collide with, and the test points to check against them. Load fetches the
// document from any afs-addressable location; Build wires the decoded scene
// into a spec.Specification using the geometry builders (C5).
package scenario

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/geometry"
	"github.com/viant/lolaspec/spec"
	"github.com/viant/lolaspec/stream"
)

// Coordinate is one component of a Point: either a float literal or a
// "List.get(›Stream‹, idx)"-shaped template resolved against the scene's
// inputs (§4.8/§4.3).
type Coordinate struct {
	Literal  *float64
	Template string
}

// UnmarshalYAML accepts either a bare number or a string template.
func (c *Coordinate) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		c.Literal = &f
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("scenario: coordinate must be a number or a string template: %w", err)
	}
	c.Template = s
	return nil
}

func (c Coordinate) operand(table map[string]stream.Stream) (expr.Operand, error) {
	if c.Literal != nil {
		return expr.Lit(fmt.Sprintf("%v", *c.Literal)), nil
	}
	resolved, err := expr.FromTemplate(c.Template, table)
	if err != nil {
		return nil, err
	}
	return expr.Sub(resolved), nil
}

// PointSpec is one {x, y} entry in a polygon's points list or a test point.
type PointSpec struct {
	X Coordinate `yaml:"x"`
	Y Coordinate `yaml:"y"`
}

func (p PointSpec) resolve(table map[string]stream.Stream) (geometry.Point, error) {
	x, err := p.X.operand(table)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := p.Y.operand(table)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.NewPoint(x, y), nil
}

// PolygonSpec describes a convex obstacle boundary.
type PolygonSpec struct {
	Name   string      `yaml:"name"`
	Pinned bool        `yaml:"pinned"`
	Points []PointSpec `yaml:"points"`
}

// CircleSpec describes a circular obstacle.
type CircleSpec struct {
	Name   string     `yaml:"name"`
	Pinned bool       `yaml:"pinned"`
	Center PointSpec  `yaml:"center"`
	Radius Coordinate `yaml:"radius"`
}

// TestPointSpec names a point whose containment in every polygon and circle
// should be checked.
type TestPointSpec struct {
	Name string     `yaml:"name"`
	X    Coordinate `yaml:"x"`
	Y    Coordinate `yaml:"y"`
}

// Scene is the YAML-decodable description of a collision-checking setup.
type Scene struct {
	Inputs      []string        `yaml:"inputs"`
	Polygons    []PolygonSpec   `yaml:"polygons"`
	Circles     []CircleSpec    `yaml:"circles"`
	TestPoints  []TestPointSpec `yaml:"test_points"`
}

// Load fetches location via afs (local path, mem://, s3://, …) and decodes it
// as a Scene.
func Load(ctx context.Context, location string) (*Scene, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("scenario: failed to download %s: %w", location, err)
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("scenario: failed to decode %s: %w", location, err)
	}
	return &scene, nil
}
