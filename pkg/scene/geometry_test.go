package scene

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/builder"
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

func leafFrom(t *testing.T, typ NodeType, m mesh.Mesh, material mesh.Material) *Geometry {
	t.Helper()
	return NewLeaf(typ, "", geom.IdentityTransform, material, func(isCancelled func() bool) (mesh.Mesh, error) {
		return m, nil
	})
}

func TestCombineChildrenRepairsDifferenceOfCubeAndSphere(t *testing.T) {
	cube, err := builder.Cube(geom.New(2, 2, 2), nil)
	if err != nil {
		t.Fatalf("cube: %v", err)
	}
	sphere, err := builder.Sphere(1.2, 16, nil)
	if err != nil {
		t.Fatalf("sphere: %v", err)
	}

	children := []*Geometry{
		leafFrom(t, TypeMesh, cube, mesh.Material{}),
		leafFrom(t, TypeMesh, sphere, mesh.Material{}),
	}
	group := NewGroup(TypeDifference, "", geom.IdentityTransform, mesh.Material{}, children)

	result, err := group.Build(nil, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !result.IsWatertight() {
		t.Fatalf("expected difference { cube; sphere } built through combineChildren to be watertight")
	}
}

func TestCombineChildrenStencilUsesFirstChildsMaterial(t *testing.T) {
	cubeMesh, err := builder.Cube(geom.New(2, 2, 2), nil)
	if err != nil {
		t.Fatalf("cube: %v", err)
	}
	sphereMesh, err := builder.Sphere(1.2, 16, nil)
	if err != nil {
		t.Fatalf("sphere: %v", err)
	}

	green := mesh.Material{Name: "green", Color: geom.Green}
	ambient := mesh.Material{Name: "ambient-blue", Color: geom.Blue}

	children := []*Geometry{
		leafFrom(t, TypeMesh, cubeMesh, green),
		leafFrom(t, TypeMesh, sphereMesh, mesh.Material{Name: "red", Color: geom.Red}),
	}
	group := NewGroup(TypeStencil, "", geom.IdentityTransform, ambient, children)

	result, err := group.Build(nil, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var sawGreen, sawAmbient bool
	for _, p := range result.Polygons() {
		if p.Material == nil {
			continue
		}
		if p.Material.Name == "green" {
			sawGreen = true
		}
		if p.Material.Name == "ambient-blue" {
			sawAmbient = true
		}
	}
	if !sawGreen {
		t.Fatalf("expected stencil to recolor the overlap with the first child's own material")
	}
	if sawAmbient {
		t.Fatalf("stencil must not pull its recolor material from the group's ambient material")
	}

	axisNormal := func(n geom.Vector) bool {
		axes := []geom.Vector{geom.New(1, 0, 0), geom.New(0, 1, 0), geom.New(0, 0, 1)}
		for _, ax := range axes {
			if ax.Sub(n).Length() < 1e-6 || ax.Add(n).Length() < 1e-6 {
				return true
			}
		}
		return false
	}
	var sawSphereShapedFragment bool
	for _, p := range result.Polygons() {
		if p.Material != nil && p.Material.Name == "green" && !axisNormal(p.Plane.Normal) {
			sawSphereShapedFragment = true
		}
	}
	if !sawSphereShapedFragment {
		t.Fatalf("expected the recolored overlap to include the sphere's own curved faces, not just the cube's flat ones")
	}
}
