// Copyright 2026 The Mechanical-Testing Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prm implements named parameter sets with the {"n": name,
// "v": value} wire encoding used by batch files and property blocks
package prm

// P holds one named parameter
type P struct {
	N string  `json:"n"`           // name
	V float64 `json:"v"`           // value
	U string  `json:"u,omitempty"` // unit; may be empty
}

// Params holds a set of parameters
type Params []*P

// Find returns the parameter with the given name or nil
func (o Params) Find(name string) *P {
	for _, p := range o {
		if p.N == name {
			return p
		}
	}
	return nil
}
