package scene

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"

	reMath "pathview/math"
)

// ErrNoCamera is returned when a glTF document holds no camera node.
var ErrNoCamera = errors.New("scene: no camera node")

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// frame is a rigid node transform: an origin plus the world-space images of
// the local X, Y and Z axes. Node scale is ignored.
type frame struct {
	origin  reMath.Vec3
	x, y, z reMath.Vec3
}

var identityFrame = frame{x: reMath.Vec3Right, y: reMath.Vec3Up, z: reMath.Vec3Front}

func (f frame) dir(v reMath.Vec3) reMath.Vec3 {
	return f.x.Mul(v.X).Add(f.y.Mul(v.Y)).Add(f.z.Mul(v.Z))
}

func (f frame) point(v reMath.Vec3) reMath.Vec3 {
	return f.origin.Add(f.dir(v))
}

func (f frame) compose(child frame) frame {
	return frame{
		origin: f.point(child.origin),
		x:      f.dir(child.x).Normalize(),
		y:      f.dir(child.y).Normalize(),
		z:      f.dir(child.z).Normalize(),
	}
}

func nodeFrame(n *gltf.Node) frame {
	if n.Matrix != [16]float64{} && n.Matrix != identityMatrix {
		m := n.Matrix
		return frame{
			origin: vec3(m[12], m[13], m[14]),
			x:      vec3(m[0], m[1], m[2]).Normalize(),
			y:      vec3(m[4], m[5], m[6]).Normalize(),
			z:      vec3(m[8], m[9], m[10]).Normalize(),
		}
	}

	rot := reMath.QuaternionIdentity()
	if n.Rotation != [4]float64{} {
		r := n.Rotation
		rot = reMath.NewQuaternion(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])).Normalize()
	}
	t := n.Translation
	return frame{
		origin: vec3(t[0], t[1], t[2]),
		x:      rot.RotateVector(reMath.Vec3Right),
		y:      rot.RotateVector(reMath.Vec3Up),
		z:      rot.RotateVector(reMath.Vec3Front),
	}
}

func vec3(x, y, z float64) reMath.Vec3 {
	return reMath.NewVec3(float32(x), float32(y), float32(z))
}

// LoadCameraGLTF opens a .gltf or .glb file and returns the pose of the first
// camera node of the default scene. glTF cameras look down their local -Z
// axis with +Y up.
func LoadCameraGLTF(path string) (Pose, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Pose{}, fmt.Errorf("gltf open %q: %w", path, err)
	}

	pose, err := CameraPose(doc)
	if err != nil {
		return Pose{}, fmt.Errorf("gltf %q: %w", path, err)
	}
	return pose, nil
}

// CameraPose searches doc depth-first for a node with a camera attached.
func CameraPose(doc *gltf.Document) (Pose, error) {
	roots := rootNodes(doc)
	visited := make(map[int]bool, len(doc.Nodes))

	var walk func(idx int, parent frame) (Pose, bool)
	walk = func(idx int, parent frame) (Pose, bool) {
		if idx < 0 || idx >= len(doc.Nodes) || visited[idx] {
			return Pose{}, false
		}
		visited[idx] = true

		n := doc.Nodes[idx]
		world := parent.compose(nodeFrame(n))
		if n.Camera != nil {
			direction := world.dir(reMath.Vec3Back).Normalize()
			return Pose{
				Location: world.origin,
				At:       world.origin.Add(direction),
				Up:       world.y,
			}, true
		}
		for _, child := range n.Children {
			if pose, ok := walk(child, world); ok {
				return pose, true
			}
		}
		return Pose{}, false
	}

	for _, idx := range roots {
		if pose, ok := walk(idx, identityFrame); ok {
			return pose, nil
		}
	}
	return Pose{}, ErrNoCamera
}

// rootNodes returns the root nodes of the default scene, falling back to the
// first scene and finally to every node when the document declares no scenes.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return doc.Scenes[idx].Nodes
	}

	all := make([]int, len(doc.Nodes))
	for i := range all {
		all[i] = i
	}
	return all
}
