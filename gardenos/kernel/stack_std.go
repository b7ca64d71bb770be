//go:build !tinygo

package kernel

import "runtime/debug"

// captureStack must run inside the deferred recover so the panicking
// frames are still on the stack.
func captureStack() []byte { return debug.Stack() }
