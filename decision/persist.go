package decision

import (
	"encoding/gob"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/klauspost/compress/zstd"
)

// formatVersion is bumped whenever the persisted layout changes.
const formatVersion = 1

type collectionDTO struct {
	Version     int
	MaxVertices int
	Structures  []structureDTO
}

type structureDTO struct {
	Vertices    int
	Signature   uint64
	Comparisons []Comparison
	Buckets     [][]int
}

// Save writes c to w as a zstd-compressed gob stream.
func Save(w io.Writer, c *Collection) error {
	dto := collectionDTO{Version: formatVersion, MaxVertices: c.maxVertices}
	for vertices := 2; vertices <= c.maxVertices; vertices++ {
		m := c.structures[vertices]
		for _, sig := range slices.Sorted(maps.Keys(m)) {
			l := m[sig]
			dto.Structures = append(dto.Structures, structureDTO{
				Vertices:    vertices,
				Signature:   uint64(sig),
				Comparisons: l.Tree.Comparisons,
				Buckets:     l.Buckets,
			})
		}
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return fmt.Errorf("decision: Save: %w", err)
	}
	if err := gob.NewEncoder(zw).Encode(&dto); err != nil {
		_ = zw.Close()
		return fmt.Errorf("decision: Save: encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("decision: Save: flush: %w", err)
	}

	return nil
}

// Load reads a collection written by Save and validates its shape.
func Load(r io.Reader) (*Collection, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("decision: Load: %w", err)
	}
	defer zr.Close()

	var dto collectionDTO
	if err := gob.NewDecoder(zr).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decision: Load: decode: %w", err)
	}
	if dto.Version != formatVersion {
		return nil, fmt.Errorf("decision: Load: version %d: %w", dto.Version, ErrCorruptCollection)
	}
	if dto.MaxVertices < 0 || dto.MaxVertices > MaxSupported {
		return nil, fmt.Errorf("decision: Load: max vertices %d: %w", dto.MaxVertices, ErrCorruptCollection)
	}

	c := &Collection{maxVertices: dto.MaxVertices, structures: make(map[int]map[Signature]*Lookup)}
	for vertices := 2; vertices <= dto.MaxVertices; vertices++ {
		c.structures[vertices] = make(map[Signature]*Lookup)
	}
	for _, s := range dto.Structures {
		if err := validate(s); err != nil {
			return nil, fmt.Errorf("decision: Load: %w", err)
		}
		m, ok := c.structures[s.Vertices]
		if !ok {
			return nil, fmt.Errorf("decision: Load: %d vertices: %w", s.Vertices, ErrCorruptCollection)
		}
		m[Signature(s.Signature)] = &Lookup{Tree: Tree{Comparisons: s.Comparisons}, Buckets: s.Buckets}
	}

	return c, nil
}

func validate(s structureDTO) error {
	edges := 0
	for sig := s.Signature; sig != 0; sig &= sig - 1 {
		edges++
	}
	if len(s.Buckets) != len(s.Comparisons)+1 || (len(s.Buckets)&(len(s.Buckets)-1)) != 0 {
		return fmt.Errorf("signature %#x: tree shape: %w", s.Signature, ErrCorruptCollection)
	}
	for _, c := range s.Comparisons {
		if c.First < 0 || c.First >= edges || c.Second < 0 || c.Second >= edges {
			return fmt.Errorf("signature %#x: comparison %v: %w", s.Signature, c, ErrCorruptCollection)
		}
	}
	for _, b := range s.Buckets {
		for _, k := range b {
			if k < 0 || k >= edges {
				return fmt.Errorf("signature %#x: slot %d: %w", s.Signature, k, ErrCorruptCollection)
			}
		}
	}

	return nil
}
