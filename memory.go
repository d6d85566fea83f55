// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import "sync"

// MemoryStore is a Store that keeps layers in memory, keyed by path.
// It is useful for tests and for callers that supply synthetic features.
// The zero value is ready to use.
type MemoryStore struct {
	mu     sync.Mutex
	layers map[string]*Layer

	// Err, if it holds an entry for a path, is returned by
	// Read and Write for that path.
	Err map[string]error
}

// Read implements the GeometrySource interface. The returned layer is a
// copy; changes to it do not affect the stored layer.
func (m *MemoryStore) Read(path string) (*Layer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.Err[path]; err != nil {
		return nil, err
	}
	l, ok := m.layers[path]
	if !ok {
		return nil, ErrNotFound
	}
	return l.copy(), nil
}

// Write implements the Store interface.
func (m *MemoryStore) Write(path string, l *Layer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.Err[path]; err != nil {
		return err
	}
	if m.layers == nil {
		m.layers = make(map[string]*Layer)
	}
	m.layers[path] = l.copy()
	return nil
}

func (l *Layer) copy() *Layer {
	o := &Layer{
		Features:         make([]*Feature, len(l.Features)),
		SpatialReference: l.SpatialReference,
	}
	for i, f := range l.Features {
		ff := *f
		o.Features[i] = &ff
	}
	return o
}
