package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/viant/lolaspec/scenario"
	"github.com/viant/lolaspec/spec"
	"github.com/viant/lolaspec/stream"
)

const sceneYAML = `
inputs:
  - Odometry
polygons:
  - name: wall
    pinned: true
    points:
      - {x: -1, y: -1}
      - {x: 1, y: -1}
      - {x: 1, y: 1}
      - {x: -1, y: 1}
circles:
  - name: hazard
    pinned: false
    center: {x: 0, y: 0}
    radius: 0.5
test_points:
  - name: P0
    x: "List.get(›Odometry‹, 0)"
    y: "List.get(›Odometry‹, 1)"
`

func decodeScene(t *testing.T) *scenario.Scene {
	t.Helper()
	var s scenario.Scene
	assert.NoError(t, yaml.Unmarshal([]byte(sceneYAML), &s))
	return &s
}

func TestDecodeScene(t *testing.T) {
	s := decodeScene(t)
	assert.Equal(t, []string{"Odometry"}, s.Inputs)
	assert.Len(t, s.Polygons, 1)
	assert.Equal(t, "wall", s.Polygons[0].Name)
	assert.True(t, s.Polygons[0].Pinned)
	assert.Len(t, s.Polygons[0].Points, 4)
	assert.Len(t, s.Circles, 1)
	assert.Equal(t, "hazard", s.Circles[0].Name)
	assert.False(t, s.Circles[0].Pinned)
	assert.Len(t, s.TestPoints, 1)
	assert.Equal(t, "P0", s.TestPoints[0].Name)
	assert.Equal(t, "List.get(›Odometry‹, 0)", s.TestPoints[0].X.Template)
}

func TestSceneBuildRegistersPinnedPolygonOutputsOnly(t *testing.T) {
	s := decodeScene(t)
	sp := spec.New()

	assert.NoError(t, s.Build(sp))
	assert.True(t, sp.IsInput(stream.New("Odometry")))

	wallResult := stream.New("wall_P0InPoly")
	assert.True(t, sp.IsPinned(wallResult))

	hazardResult := stream.New("hazard_Point0InCircle0")
	_, ok := sp.Binding(hazardResult)
	assert.True(t, ok)
	assert.False(t, sp.IsPinned(hazardResult))

	_, ok = sp.Binding(stream.New("P0X"))
	assert.True(t, ok)
	assert.False(t, sp.IsPinned(stream.New("P0X")))
}

func TestSceneBuildRejectsUnknownInputReference(t *testing.T) {
	s := &scenario.Scene{
		TestPoints: []scenario.TestPointSpec{
			{Name: "P0", X: scenario.Coordinate{Template: "List.get(›Missing‹, 0)"}, Y: scenario.Coordinate{Template: "0"}},
		},
	}
	sp := spec.New()
	err := s.Build(sp)
	assert.Error(t, err)
}
