// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mpsc

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent producer tests: ring slot data and
// overflow nodes are published through atomix sequence tags and next links,
// an ordering the detector cannot observe.
const RaceEnabled = true
