package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"walkthrough/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var errInvalidModel = errors.New("invalid model")

// ModelDecoder loads glTF/OBJ/IQM files through raylib. The root node owns the model;
// each mesh becomes a child node carrying that mesh's bounds, so the subtree's world
// bounds follow the mesh geometry.
type ModelDecoder struct{}

// Decode implements Decoder. Requires a live window.
func (ModelDecoder) Decode(path string) (*scenegraph.Node, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return nil, fmt.Errorf("%s: %w", path, errInvalidModel)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	root := scenegraph.New(base)
	root.Model = &m
	for i, mesh := range m.GetMeshes() {
		b := rl.GetMeshBoundingBox(mesh)
		child := scenegraph.New(fmt.Sprintf("%s/mesh%d", base, i))
		child.Bounds = &b
		root.Add(child)
	}
	return root, nil
}

// Release implements Decoder.
func (ModelDecoder) Release(root *scenegraph.Node) {
	if root == nil || root.Model == nil {
		return
	}
	rl.UnloadModel(*root.Model)
	root.Model = nil
}
