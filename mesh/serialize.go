// Package mesh: flat serialized form and the normalized import/export funnel.
//
// Data flattens the whole structure — metadata, defaults, per-entity
// overrides, face cycles, and both key watermarks — into a JSON-friendly
// shape with string map keys (JSON objects cannot carry int keys; decimal
// strings round-trip ints losslessly). FromData reconstructs an equivalent
// mesh: same vertex and face sets, same attributes, same watermarks.
//
// FromVerticesAndFaces is the single entry point every file-format reader
// and shape generator funnels through; ToVerticesAndFaces is its export
// counterpart. The remaining format exporters are intentionally
// unimplemented and fail with ErrNotSupported.

package mesh

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gonum.org/v1/gonum/spatial/r3"
)

// Data is the serialized form of a Mesh.
type Data struct {
	// Attributes holds mesh-wide metadata, including "name".
	Attributes map[string]any `json:"attributes"`

	// DVA, DEA, DFA are the default vertex/edge/face attribute maps.
	DVA map[string]any `json:"dva"`
	DEA map[string]any `json:"dea"`
	DFA map[string]any `json:"dfa"`

	// Vertex maps decimal vertex keys to their attribute overrides.
	Vertex map[string]map[string]any `json:"vertex"`

	// Face maps decimal face keys to ordered decimal vertex-key cycles.
	Face map[string][]string `json:"face"`

	// FaceData and EdgeData hold attribute overrides; EdgeData keys are
	// "u-v" with u <= v (one record per undirected edge).
	FaceData map[string]map[string]any `json:"facedata"`
	EdgeData map[string]map[string]any `json:"edgedata"`

	// MaxVertexKey and MaxFaceKey are the key watermarks.
	MaxVertexKey int `json:"max_int_key"`
	MaxFaceKey   int `json:"max_int_fkey"`
}

// ToData flattens the mesh. All maps are deep-copied; mutating the result
// does not touch the mesh.
// Complexity: O(V+E+F)
func (m *Mesh) ToData() Data {
	d := Data{
		Attributes:   copyAttrMap(m.attrs),
		DVA:          copyAttrMap(m.defaultVertexAttr),
		DEA:          copyAttrMap(m.defaultEdgeAttr),
		DFA:          copyAttrMap(m.defaultFaceAttr),
		Vertex:       make(map[string]map[string]any, len(m.vertexAttr)),
		Face:         make(map[string][]string, len(m.faces)),
		FaceData:     make(map[string]map[string]any, len(m.faceAttr)),
		EdgeData:     make(map[string]map[string]any),
		MaxVertexKey: m.maxVertexKey,
		MaxFaceKey:   m.maxFaceKey,
	}
	for key, attrs := range m.vertexAttr {
		d.Vertex[strconv.Itoa(key)] = copyAttrMap(attrs)
	}
	for fkey, cycle := range m.faces {
		enc := make([]string, len(cycle))
		for i, v := range cycle {
			enc[i] = strconv.Itoa(v)
		}
		d.Face[strconv.Itoa(fkey)] = enc
	}
	for fkey, attrs := range m.faceAttr {
		if len(attrs) > 0 {
			d.FaceData[strconv.Itoa(fkey)] = copyAttrMap(attrs)
		}
	}
	for ek, attrs := range m.edgeAttr {
		// Both key orders share one map; emit the canonical order once.
		if ek[0] <= ek[1] && len(attrs) > 0 {
			d.EdgeData[encodeEdgeKey(ek[0], ek[1])] = copyAttrMap(attrs)
		}
	}

	return d
}

// FromData reconstructs a mesh from its serialized form.
// Returns ErrInvalidKey for unparseable keys and ErrEdgeNotFound for edge
// attribute records naming an edge absent from the reconstructed topology.
// Complexity: O(V+E+F)
func FromData(d Data) (*Mesh, error) {
	m := NewMesh()
	mergeAttrs(m.attrs, d.Attributes)
	mergeAttrs(m.defaultVertexAttr, d.DVA)
	mergeAttrs(m.defaultEdgeAttr, d.DEA)
	mergeAttrs(m.defaultFaceAttr, d.DFA)

	for enc, attrs := range d.Vertex {
		key, err := decodeKey(enc)
		if err != nil {
			return nil, fmt.Errorf("FromData: vertex key %q: %w", enc, err)
		}
		if _, err = m.AddVertex(VertexKey(key), VertexAttrs(attrs)); err != nil {
			return nil, fmt.Errorf("FromData: vertex %d: %w", key, err)
		}
	}
	for enc, cycle := range d.Face {
		fkey, err := decodeKey(enc)
		if err != nil {
			return nil, fmt.Errorf("FromData: face key %q: %w", enc, err)
		}
		verts := make([]int, len(cycle))
		for i, vs := range cycle {
			if verts[i], err = decodeKey(vs); err != nil {
				return nil, fmt.Errorf("FromData: face %d vertex %q: %w", fkey, vs, err)
			}
		}
		opts := []FaceOption{FaceKey(fkey)}
		if attrs, ok := d.FaceData[enc]; ok {
			opts = append(opts, FaceAttrs(attrs))
		}
		if _, err = m.AddFace(verts, opts...); err != nil {
			return nil, fmt.Errorf("FromData: face %d: %w", fkey, err)
		}
	}
	for enc, attrs := range d.EdgeData {
		u, v, err := decodeEdgeKey(enc)
		if err != nil {
			return nil, fmt.Errorf("FromData: edge key %q: %w", enc, err)
		}
		record, err := m.ensureEdgeAttr(u, v)
		if err != nil {
			return nil, fmt.Errorf("FromData: edge {%d,%d}: %w", u, v, err)
		}
		mergeAttrs(record, attrs)
	}

	// Watermarks from the data win when ahead of the reconstructed keys, so
	// key history survives a round trip even after deletions.
	if d.MaxVertexKey > m.maxVertexKey {
		m.maxVertexKey = d.MaxVertexKey
	}
	if d.MaxFaceKey > m.maxFaceKey {
		m.maxFaceKey = d.MaxFaceKey
	}

	return m, nil
}

// ToJSON encodes the mesh's serialized form.
func (m *Mesh) ToJSON() ([]byte, error) {
	return json.Marshal(m.ToData())
}

// FromJSON reconstructs a mesh from its JSON-encoded serialized form.
func FromJSON(b []byte) (*Mesh, error) {
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("FromJSON: %w", err)
	}

	return FromData(d)
}

// MarshalJSON implements json.Marshaler over the serialized form.
func (m *Mesh) MarshalJSON() ([]byte, error) { return m.ToJSON() }

// UnmarshalJSON implements json.Unmarshaler over the serialized form.
func (m *Mesh) UnmarshalJSON(b []byte) error {
	rebuilt, err := FromJSON(b)
	if err != nil {
		return err
	}
	*m = *rebuilt

	return nil
}

// FromVerticesAndFaces builds a mesh from a vertex position list and faces
// given as index cycles into it — the normalized import funnel used by every
// format reader and shape generator. Vertex i becomes key i; degenerate face
// cycles are skipped per the AddFace contract.
// Returns ErrInvalidKey when a face references an index outside the list.
func FromVerticesAndFaces(vertices []r3.Vec, faces [][]int, opts ...Option) (*Mesh, error) {
	m := NewMesh(opts...)
	for i, pos := range vertices {
		if _, err := m.AddVertex(VertexKey(i), VertexPosition(pos)); err != nil {
			return nil, fmt.Errorf("FromVerticesAndFaces: vertex %d: %w", i, err)
		}
	}
	for _, cycle := range faces {
		for _, v := range cycle {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("FromVerticesAndFaces: vertex index %d out of range: %w", v, ErrInvalidKey)
			}
		}
		if _, err := m.AddFace(cycle); err != nil {
			return nil, fmt.Errorf("FromVerticesAndFaces: face %v: %w", cycle, err)
		}
	}

	return m, nil
}

// ToVerticesAndFaces exports the mesh as a vertex position list and faces as
// index cycles into it, both in ascending key order — the normalized export
// funnel.
func (m *Mesh) ToVerticesAndFaces() ([]r3.Vec, [][]int, error) {
	keys, positions, err := m.VertexPositions()
	if err != nil {
		return nil, nil, err
	}
	index := make(map[int]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	fkeys := m.Faces()
	faces := make([][]int, len(fkeys))
	for i, fkey := range fkeys {
		cycle := m.faces[fkey]
		enc := make([]int, len(cycle))
		for j, v := range cycle {
			enc[j] = index[v]
		}
		faces[i] = enc
	}

	return positions, faces, nil
}

// Unimplemented exporters: these fail explicitly instead of silently
// producing wrong output.

// ToPLY is not implemented and returns ErrNotSupported.
func (m *Mesh) ToPLY() ([]byte, error) { return nil, fmt.Errorf("ToPLY: %w", ErrNotSupported) }

// ToSTL is not implemented and returns ErrNotSupported.
func (m *Mesh) ToSTL() ([]byte, error) { return nil, fmt.Errorf("ToSTL: %w", ErrNotSupported) }

// ToOFF is not implemented and returns ErrNotSupported.
func (m *Mesh) ToOFF() ([]byte, error) { return nil, fmt.Errorf("ToOFF: %w", ErrNotSupported) }

// ToLines is not implemented and returns ErrNotSupported.
func (m *Mesh) ToLines() ([][2]r3.Vec, error) { return nil, fmt.Errorf("ToLines: %w", ErrNotSupported) }

// ToPolylines is not implemented and returns ErrNotSupported.
func (m *Mesh) ToPolylines() ([][]r3.Vec, error) {
	return nil, fmt.Errorf("ToPolylines: %w", ErrNotSupported)
}

// Internal helpers:
////////////////////

// copyAttrMap returns a shallow copy of an attribute map (values are shared;
// attribute values are treated as immutable by convention).
func copyAttrMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	mergeAttrs(out, in)

	return out
}

// decodeKey parses a decimal key, rejecting negatives.
func decodeKey(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil || k < 0 {
		return InvalidKey, ErrInvalidKey
	}

	return k, nil
}

// encodeEdgeKey renders an undirected edge as "u-v".
func encodeEdgeKey(u, v int) string {
	return strconv.Itoa(u) + "-" + strconv.Itoa(v)
}

// decodeEdgeKey parses a "u-v" edge key.
func decodeEdgeKey(s string) (int, int, error) {
	var u, v int
	if _, err := fmt.Sscanf(s, "%d-%d", &u, &v); err != nil || u < 0 || v < 0 {
		return InvalidKey, InvalidKey, ErrInvalidKey
	}

	return u, v, nil
}
