package directlight

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/gekko3d/directlight/shadingrt/rt/core"
)

var ErrUnknownMaterial = errors.New("unknown material")

type MaterialId string

// MaterialLibrary holds resolved materials shared by many fragments.
// It is safe for concurrent use.
type MaterialLibrary struct {
	mu        sync.RWMutex
	materials map[MaterialId]core.Material
	logger    Logger
}

func NewMaterialLibrary(logger Logger) *MaterialLibrary {
	return &MaterialLibrary{
		materials: make(map[MaterialId]core.Material),
		logger:    orNop(logger),
	}
}

func (l *MaterialLibrary) Add(m core.Material) MaterialId {
	id := MaterialId(uuid.NewString())
	l.mu.Lock()
	l.materials[id] = m
	l.mu.Unlock()
	l.logger.Debugf("material %s added (%s)", id, m.ShadingModel())
	return id
}

// Update replaces an existing material.
func (l *MaterialLibrary) Update(id MaterialId, m core.Material) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.materials[id]; !ok {
		return fmt.Errorf("update %s: %w", id, ErrUnknownMaterial)
	}
	l.materials[id] = m
	return nil
}

func (l *MaterialLibrary) Get(id MaterialId) (core.Material, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.materials[id]
	return m, ok
}

func (l *MaterialLibrary) Remove(id MaterialId) {
	l.mu.Lock()
	delete(l.materials, id)
	l.mu.Unlock()
}

func (l *MaterialLibrary) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.materials)
}

// snapshot copies the materials referenced by ids so evaluation does not
// hold the lock.
func (l *MaterialLibrary) snapshot(ids map[MaterialId]struct{}) (map[MaterialId]core.Material, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[MaterialId]core.Material, len(ids))
	for id := range ids {
		m, ok := l.materials[id]
		if !ok {
			return nil, fmt.Errorf("material %s: %w", id, ErrUnknownMaterial)
		}
		out[id] = m
	}
	return out, nil
}
