// Package relu: sentinel errors owned by this package.
// Lifecycle and estimation failures reuse the featmap and bandwidth
// sentinels; only configuration-file validation is local.

package relu

import "errors"

// ErrInvalidComponents is returned by ParseConfig when n_components is
// negative. (Option constructors panic instead: a bad WithNComponents call
// is a programmer error, a bad config file is user input.)
var ErrInvalidComponents = errors.New("relu: n_components must be positive")
