package mesh

import "testing"

func TestComputeWatertightOnClosedCube(t *testing.T) {
	if !computeWatertight(cubePolygons(1)) {
		t.Fatalf("closed cube should be watertight")
	}
}

func TestComputeWatertightDetectsOpenFace(t *testing.T) {
	if computeWatertight(cubePolygons(1)[1:]) {
		t.Fatalf("cube missing a face should not be watertight")
	}
}

func TestRepairTJunctionsLeavesClosedMeshUnchanged(t *testing.T) {
	polys := cubePolygons(1)
	repaired := RepairTJunctions(polys)
	if len(repaired) != len(polys) {
		t.Fatalf("expected repair to be a no-op on an already-watertight mesh")
	}
}

func TestDifferenceOfCubeAndSphereIsWatertightAfterRepair(t *testing.T) {
	a := cubePolygons(1)
	b := spherePolygons(1.2, 8, 8)

	result := Difference(a, b, nil)
	repaired := New(result).MakeWatertight()
	if !repaired.IsWatertight() {
		t.Fatalf("expected difference { cube; sphere } to be watertight after MakeWatertight")
	}
}
