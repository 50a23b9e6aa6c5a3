// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// errors returned by the hillslope solutions. match with errors.Is
var (
	// ErrDomain flags invalid physical parameters; no partial result is returned
	ErrDomain = errors.New("ana: invalid physical parameter")

	// ErrNoRealRoot flags a cubic without a (unique) real non-negative root.
	// It cannot happen with positive D, Sc, f and qs ≥ 0
	ErrNoRealRoot = errors.New("ana: no real non-negative root")
)

func domainErr(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDomain, io.Sf(msg, prm...))
}

func rootErr(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNoRealRoot, io.Sf(msg, prm...))
}
