package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/engine/texture"
	"github.com/Faultbox/lumen/internal/logger"
)

// textureDir is searched by file name when a material's texture path does not resolve.
const textureDir = "textures"

// LoadModel loads a Wavefront OBJ model and its MTL diffuse textures.
// Meshes without normals get averaged normals. Models are cached by path.
func (m *Manager) LoadModel(p string) (*model.Model, error) {
	m.mu.RLock()
	cached, ok := m.models[p]
	m.mu.RUnlock()
	if ok {
		return cached, nil
	}

	log := logger.Named("assets")

	data, err := m.Load(p)
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	obj, err := parseOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	if len(obj.groups) == 0 {
		return nil, &LoadError{Path: p, Err: errors.New("no faces")}
	}

	materials := m.loadMaterials(path.Dir(p), obj.mtlLibs)

	mdl := &model.Model{Name: p}
	texIndex := make(map[string]int)
	for i, g := range obj.groups {
		mesh, hasNormals, err := obj.mesh(g)
		if err != nil {
			return nil, &LoadError{Path: p, Err: err}
		}
		if !hasNormals {
			model.CalculateAverageNormals(mesh)
		}

		if texPath, ok := materials[g.material]; ok {
			idx, seen := texIndex[texPath]
			if !seen {
				idx = model.NoTexture
				img, err := m.loadTexture(texPath)
				if err != nil {
					log.Warn("texture unavailable, using plain",
						zap.String("model", p),
						zap.String("texture", texPath),
						zap.Error(err))
				} else {
					idx = len(mdl.Textures)
					mdl.Textures = append(mdl.Textures, img)
				}
				texIndex[texPath] = idx
			}
			mesh.Texture = idx
		}

		if err := mesh.Validate(); err != nil {
			return nil, &LoadError{Path: p, Err: fmt.Errorf("mesh %d: %w", i, err)}
		}
		log.Debug("mesh loaded",
			zap.String("model", p),
			zap.Int("mesh", i),
			zap.String("material", g.material),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Int("indices", len(mesh.Indices)),
			zap.Bool("generatedNormals", !hasNormals))
		mdl.Meshes = append(mdl.Meshes, mesh)
	}
	mdl.ComputeBounds()

	log.Info("model loaded",
		zap.String("path", p),
		zap.Int("meshes", len(mdl.Meshes)),
		zap.Int("textures", len(mdl.Textures)),
		zap.Int("triangles", mdl.TriangleCount()))

	m.mu.Lock()
	m.models[p] = mdl
	m.mu.Unlock()

	return mdl, nil
}

// loadMaterials collects diffuse texture paths from the model's MTL files.
// Missing or unreadable libraries leave their meshes untextured.
func (m *Manager) loadMaterials(dir string, libs []string) map[string]string {
	textures := make(map[string]string)
	for _, lib := range libs {
		libPath := path.Join(dir, lib)
		data, err := m.Load(libPath)
		if err != nil {
			logger.Named("assets").Warn("material library unavailable",
				zap.String("path", libPath), zap.Error(err))
			continue
		}
		parsed, err := parseMTL(bytes.NewReader(data))
		if err != nil {
			logger.Named("assets").Warn("material library unreadable",
				zap.String("path", libPath), zap.Error(err))
			continue
		}
		libDir := path.Dir(libPath)
		for name, tex := range parsed {
			textures[name] = path.Join(libDir, tex)
		}
	}
	return textures
}

// loadTexture decodes a texture, falling back to the shared texture
// directory by file name.
func (m *Manager) loadTexture(p string) (*image.RGBA, error) {
	data, err := m.Load(p)
	if err != nil {
		fallback := path.Join(textureDir, path.Base(p))
		var ferr error
		if data, ferr = m.Load(fallback); ferr != nil {
			return nil, err
		}
		p = fallback
	}
	return texture.Decode(p, data)
}
