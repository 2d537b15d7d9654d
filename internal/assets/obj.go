package assets

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/lumen/internal/engine/model"
)

// objCorner is one face corner: zero-based position, uv and normal indices.
// A missing uv or normal is -1.
type objCorner struct {
	v, vt, vn int
}

// objGroup is a run of triangles sharing one material.
type objGroup struct {
	material  string
	triangles []objCorner // len is a multiple of 3
}

// objFile is the parsed content of a Wavefront OBJ file.
type objFile struct {
	positions [][3]float32
	uvs       [][2]float32
	normals   [][3]float32
	groups    []*objGroup
	mtlLibs   []string
}

// parseOBJ reads positions, uvs, normals and faces. Polygons are fan
// triangulated and a usemtl statement starts a new group.
func parseOBJ(r io.Reader) (*objFile, error) {
	obj := &objFile{}
	current := &objGroup{}
	obj.groups = append(obj.groups, current)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			obj.positions = append(obj.positions, [3]float32{p[0], p[1], p[2]})

		case "vt":
			uv, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", line, err)
			}
			obj.uvs = append(obj.uvs, [2]float32{uv[0], uv[1]})

		case "vn":
			n, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			obj.normals = append(obj.normals, [3]float32{n[0], n[1], n[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, f := range fields[1:] {
				c, err := obj.parseCorner(f)
				if err != nil {
					return nil, fmt.Errorf("line %d: face: %w", line, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				current.triangles = append(current.triangles, corners[0], corners[i], corners[i+1])
			}

		case "usemtl":
			name := strings.TrimSpace(strings.TrimPrefix(text, "usemtl"))
			if len(current.triangles) == 0 {
				current.material = name
				continue
			}
			current = &objGroup{material: name}
			obj.groups = append(obj.groups, current)

		case "mtllib":
			obj.mtlLibs = append(obj.mtlLibs, fields[1:]...)

		default:
			// o, g, s and friends carry nothing we render
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	groups := obj.groups[:0]
	for _, g := range obj.groups {
		if len(g.triangles) > 0 {
			groups = append(groups, g)
		}
	}
	obj.groups = groups

	return obj, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses v, v/vt, v//vn or v/vt/vn. Negative indices count
// back from the most recent element.
func (o *objFile) parseCorner(s string) (objCorner, error) {
	c := objCorner{v: -1, vt: -1, vn: -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return c, fmt.Errorf("malformed corner %q", s)
	}

	var err error
	if c.v, err = resolveIndex(parts[0], len(o.positions)); err != nil {
		return c, fmt.Errorf("corner %q: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], len(o.uvs)); err != nil {
			return c, fmt.Errorf("corner %q: %w", s, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], len(o.normals)); err != nil {
			return c, fmt.Errorf("corner %q: %w", s, err)
		}
	}
	return c, nil
}

func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0 && count+i >= 0:
		return count + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range", i)
	}
}

// mesh builds an interleaved mesh for a group, sharing vertices between
// identical corners. It reports whether every corner carried a normal.
func (o *objFile) mesh(g *objGroup) (*model.Mesh, bool, error) {
	lookup := make(map[objCorner]uint32)
	vertices := make([]float32, 0, len(g.triangles)*model.VertexStride)
	indices := make([]uint32, 0, len(g.triangles))
	hasNormals := true

	for _, c := range g.triangles {
		if idx, ok := lookup[c]; ok {
			indices = append(indices, idx)
			continue
		}

		if c.v >= len(o.positions) {
			return nil, false, fmt.Errorf("vertex index %d out of range (%d positions)", c.v+1, len(o.positions))
		}
		p := o.positions[c.v]

		var uv [2]float32
		if c.vt >= 0 {
			if c.vt >= len(o.uvs) {
				return nil, false, fmt.Errorf("uv index %d out of range (%d uvs)", c.vt+1, len(o.uvs))
			}
			uv = o.uvs[c.vt]
		}

		var n [3]float32
		if c.vn >= 0 {
			if c.vn >= len(o.normals) {
				return nil, false, fmt.Errorf("normal index %d out of range (%d normals)", c.vn+1, len(o.normals))
			}
			n = o.normals[c.vn]
		} else {
			hasNormals = false
		}

		idx := uint32(len(vertices) / model.VertexStride)
		vertices = append(vertices, p[0], p[1], p[2], uv[0], uv[1], n[0], n[1], n[2])
		lookup[c] = idx
		indices = append(indices, idx)
	}

	return model.NewMesh(vertices, indices), hasNormals, nil
}
