// Command lolaspec-demo builds and prints a couple of worked examples from
// lolaspec's core: the collapse+prune walkthrough and a point-in-polygon
// check. It is a usage example, not the file-writing, logging-configured
// production driver a generator pipeline would run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/viant/lolaspec/digest"
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/geometry"
	"github.com/viant/lolaspec/scenario"
	"github.com/viant/lolaspec/serialize"
	"github.com/viant/lolaspec/spec"
	"github.com/viant/lolaspec/stream"
)

func main() {
	scenarioFile := flag.String("scenario", "", "path to a scenario YAML file (§4.8); if empty, runs the two built-in examples")
	flag.Parse()

	if *scenarioFile != "" {
		if err := runScenarioFile(*scenarioFile); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := runCollapseExample(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println()
	if err := runPolygonExample(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runCollapseExample reproduces the collapse+prune walkthrough: x = 2*b,
// y = ›x‹ + a, z = c + ›x‹ * ›y‹ (pinned). After collapsing and pruning z,
// only z survives as an output.
func runCollapseExample() error {
	fmt.Println("--- collapse+prune example ---")

	sp := spec.New()
	a, b, c := stream.New("a"), stream.New("b"), stream.New("c")
	x, y, z := stream.New("x"), stream.New("y"), stream.New("z")

	sp.DeclareInput(a)
	sp.DeclareInput(b)
	sp.DeclareInput(c)

	xExpr := expr.Empty()
	xExpr.AppendLiteral("2 * ")
	xExpr.AppendStream(b)
	if err := sp.AddExpression(x, xExpr, false); err != nil {
		return fmt.Errorf("bind x: %w", err)
	}

	yExpr := expr.Empty()
	yExpr.AppendStream(x)
	yExpr.AppendLiteral(" + ")
	yExpr.AppendStream(a)
	if err := sp.AddExpression(y, yExpr, false); err != nil {
		return fmt.Errorf("bind y: %w", err)
	}

	zExpr := expr.Empty()
	zExpr.AppendLiteral("c + ")
	zExpr.AppendStream(x)
	zExpr.AppendLiteral(" * ")
	zExpr.AppendStream(y)
	if err := sp.AddExpression(z, zExpr, true); err != nil {
		return fmt.Errorf("bind z: %w", err)
	}

	if err := sp.CollapseExpression(z); err != nil {
		return fmt.Errorf("collapse z: %w", err)
	}
	sp.Prune()

	out, err := serialize.ToString(sp)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	fmt.Print(out)

	h, err := digest.Specification(sp)
	if err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	fmt.Printf("digest: %x\n", h)
	return nil
}

// runPolygonExample reproduces the unit-square point-in-polygon walkthrough:
// a single test point derived from an Odometry input, checked against a
// square wall via the ray-casting parity test (C5), with the final in/out
// result pinned.
func runPolygonExample() error {
	fmt.Println("--- point-in-polygon example ---")

	sp := spec.New()
	odometry := stream.New("Odometry")
	sp.DeclareInput(odometry)

	px := stream.New("Px")
	py := stream.New("Py")

	pxExpr := expr.Empty()
	pxExpr.AppendLiteral("List.get(")
	pxExpr.AppendStream(odometry)
	pxExpr.AppendLiteral(", 0)")
	if err := sp.AddExpression(px, pxExpr, false); err != nil {
		return fmt.Errorf("bind Px: %w", err)
	}

	pyExpr := expr.Empty()
	pyExpr.AppendLiteral("List.get(")
	pyExpr.AppendStream(odometry)
	pyExpr.AppendLiteral(", 1)")
	if err := sp.AddExpression(py, pyExpr, false); err != nil {
		return fmt.Errorf("bind Py: %w", err)
	}

	corners := []geometry.Point{
		geometry.NewPoint(expr.Lit("-1"), expr.Lit("-1")),
		geometry.NewPoint(expr.Lit("1"), expr.Lit("-1")),
		geometry.NewPoint(expr.Lit("1"), expr.Lit("1")),
		geometry.NewPoint(expr.Lit("-1"), expr.Lit("1")),
	}
	walls := geometry.ConnectPolygon(corners)
	testPoint := geometry.NewPoint(expr.Ref(px), expr.Ref(py))
	bindings, inPoly := geometry.PnPoly([]geometry.Point{testPoint}, walls, "")

	final := inPoly[0]
	for _, b := range bindings {
		if err := sp.AddExpression(b.Stream, b.Expr, b.Stream == final); err != nil {
			return fmt.Errorf("bind %s: %w", b.Stream.Name, err)
		}
	}

	sp.Prune()

	out, err := serialize.ToString(sp)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	fmt.Print(out)

	h, err := digest.Specification(sp)
	if err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	fmt.Printf("digest: %x\n", h)
	return nil
}

func runScenarioFile(location string) error {
	ctx := context.Background()
	scene, err := scenario.Load(ctx, location)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	sp := spec.New()
	if err := scene.Build(sp); err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	sp.Prune()

	out, err := serialize.ToString(sp)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	fmt.Print(out)

	h, err := digest.Specification(sp)
	if err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	fmt.Printf("digest: %x\n", h)
	return nil
}
