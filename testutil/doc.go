// Package testutil provides registry scaffolding for tests.
//
// Tests that exercise code using the process-wide default registry should
// isolate it so registrations cannot leak between tests:
//
//	func TestMyFeature(t *testing.T) {
//	    reg := testutil.Isolate(t)
//	    inject.Register(reg, MyKey{}, "test value")
//	    // the previous default registry is restored when the test ends
//	}
//
// Code that takes a *inject.Registry explicitly can use Scoped instead,
// which never touches the default.
package testutil
